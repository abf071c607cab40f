// Package entity defines the domain models for the crypto feature.
package entity

import (
	"errors"

	"crypto_backend/internal/feature/crypto/domain"
	"crypto_backend/internal/shared/timeseries"
)

// MetaData describes one digital currency series as reported by the API.
type MetaData struct {
	Information   string `json:"information"`    // e.g. "Daily Prices and Volumes for Digital Currency"
	DigitalCode   string `json:"digital_code"`   // e.g. "BTC"
	DigitalName   string `json:"digital_name"`   // e.g. "Bitcoin"
	MarketCode    string `json:"market_code"`    // e.g. "EUR"
	MarketName    string `json:"market_name"`    // e.g. "Euro"
	LastRefreshed string `json:"last_refreshed"` // e.g. "2023-01-03 00:00:00"
	TimeZone      string `json:"time_zone"`      // e.g. "UTC"
}

// Record is one OHLCV sample. Time is the series key.
type Record struct {
	Time   string  `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// Timestamp implements timeseries.Timed.
func (r Record) Timestamp() string { return r.Time }

// Series is an unordered set of records with unique Time values.
type Series []Record

// Find returns the record whose Time equals time exactly.
func (s Series) Find(time string) (Record, bool) {
	return timeseries.Find(s, time)
}

// Latest returns the most recent record. On an empty series it returns a
// zero Record and false; callers must check the flag.
func (s Series) Latest() (Record, bool) {
	return timeseries.Latest(s)
}

// LatestN returns the n most recent records, newest first.
// It fails with domain.ErrInsufficientData when n exceeds len(s).
func (s Series) LatestN(n int) ([]Record, error) {
	out, err := timeseries.LatestN(s, n)
	if err != nil {
		var se *timeseries.ShortageError
		if errors.As(err, &se) {
			return nil, domain.NewInsufficientData(se.Available)
		}
		return nil, err
	}
	return out, nil
}

// Crypto holds one successful digital currency response.
type Crypto struct {
	Meta   MetaData `json:"meta"`
	Series Series   `json:"series"`
}
