// Package dto defines data transfer objects for Alpha Vantage API responses.
package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
)

var errNull = errors.New("null value")

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Top-level keys with a fixed meaning. Every other top-level key is treated as
// a time series group.
const (
	KeyInformation  = "Information"
	KeyErrorMessage = "Error Message"
	KeyNote         = "Note"
	KeyMetaData     = "Meta Data"
)

// Sentinels holds the three soft-error fields the API returns instead of data.
type Sentinels struct {
	Information  string `json:"Information"`
	ErrorMessage string `json:"Error Message"`
	Note         string `json:"Note"`
}

// MetaData is the "Meta Data" object of a digital currency response.
type MetaData struct {
	Information   string `json:"1. Information"`
	DigitalCode   string `json:"2. Digital Currency Code"`
	DigitalName   string `json:"3. Digital Currency Name"`
	MarketCode    string `json:"4. Market Code"`
	MarketName    string `json:"5. Market Name"`
	LastRefreshed string `json:"6. Last Refreshed"`
	TimeZone      string `json:"7. Time Zone"`
}

// Fields is one sample of a time series; every value is a decimal string.
type Fields struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// RawSeries maps a group key such as "Time Series (Digital Currency Daily)"
// to timestamp -> fields.
type RawSeries map[string]map[string]Fields

// RawEnvelope is a decoded response before triage.
//
// Series is nil when the response had no group key at all. Malformed lists
// top-level keys whose value did not have the expected shape.
type RawEnvelope struct {
	Sentinels
	MetaData  *MetaData
	Series    RawSeries
	Malformed []string
}

// UnmarshalJSON decodes the known keys by name and every other key as a series group.
// Only a body that is not a JSON object is an error.
func (e *RawEnvelope) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	*e = RawEnvelope{}
	for key, raw := range fields {
		var err error
		switch key {
		case KeyInformation:
			err = json.Unmarshal(raw, &e.Information)
		case KeyErrorMessage:
			err = json.Unmarshal(raw, &e.ErrorMessage)
		case KeyNote:
			err = json.Unmarshal(raw, &e.Note)
		case KeyMetaData:
			// null は欠落として扱う
			if isNull(raw) {
				continue
			}
			var md MetaData
			if err = json.Unmarshal(raw, &md); err == nil {
				e.MetaData = &md
			}
		default:
			if isNull(raw) {
				err = errNull
				break
			}
			var group map[string]Fields
			if err = json.Unmarshal(raw, &group); err == nil {
				if e.Series == nil {
					e.Series = RawSeries{}
				}
				e.Series[key] = group
			}
		}
		if err != nil {
			e.Malformed = append(e.Malformed, key)
		}
	}
	sort.Strings(e.Malformed)
	return nil
}
