package entity

import (
	"fmt"
	"strings"
)

// Function selects which digital currency series to fetch.
// All three are refreshed daily at midnight UTC.
type Function int

const (
	// Daily is the daily historical series.
	Daily Function = iota
	// Weekly is the weekly historical series.
	Weekly
	// Monthly is the monthly historical series.
	Monthly
)

// Functions lists every Function in refresh order.
var Functions = []Function{Daily, Weekly, Monthly}

func (f Function) String() string {
	switch f {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		return fmt.Sprintf("function(%d)", int(f))
	}
}

// ParseFunction parses "daily", "weekly" or "monthly" (case-insensitive).
// An empty string yields Daily.
func ParseFunction(s string) (Function, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "monthly":
		return Monthly, nil
	default:
		return 0, fmt.Errorf("unknown function %q", s)
	}
}
