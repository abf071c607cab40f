// Package timeseries provides lookups over series whose elements are keyed by
// zero-padded timestamp strings such as "2006-01-02" or "2006-01-02 15:04:05".
// For those keys lexicographic order equals chronological order, so no time
// parsing is needed to rank elements.
package timeseries

import (
	"fmt"
	"sort"
)

// Timed is implemented by series elements. Timestamp must be unique within a series.
type Timed interface {
	Timestamp() string
}

// ShortageError is returned by LatestN when fewer elements exist than requested.
type ShortageError struct {
	Requested int
	Available int
}

func (e *ShortageError) Error() string {
	return fmt.Sprintf("requested %d latest elements, only %d available", e.Requested, e.Available)
}

// Find returns the element whose timestamp equals ts.
func Find[T Timed](items []T, ts string) (T, bool) {
	for _, it := range items {
		if it.Timestamp() == ts {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Latest returns the element with the greatest timestamp.
// On an empty series it returns the zero value and false.
func Latest[T Timed](items []T) (T, bool) {
	var latest T
	found := false
	for _, it := range items {
		if !found || latest.Timestamp() < it.Timestamp() {
			latest = it
			found = true
		}
	}
	return latest, found
}

// LatestN returns the n most recent elements, newest first.
// n <= 0 yields an empty slice. If n exceeds the series length a *ShortageError
// carrying the available count is returned; the result is never truncated.
func LatestN[T Timed](items []T, n int) ([]T, error) {
	if n <= 0 {
		return []T{}, nil
	}

	keys := make([]string, 0, len(items))
	for _, it := range items {
		keys = append(keys, it.Timestamp())
	}
	if n > len(keys) {
		return nil, &ShortageError{Requested: n, Available: len(keys)}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	out := make([]T, 0, n)
	for _, k := range keys[:n] {
		// k was taken from items, so Find always succeeds.
		it, _ := Find(items, k)
		out = append(out, it)
	}
	return out, nil
}
