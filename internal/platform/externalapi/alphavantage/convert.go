package alphavantage

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"crypto_backend/internal/feature/crypto/domain"
	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/platform/externalapi/alphavantage/dto"
)

// Convert flattens every group of raw into one series, one record per timestamp.
// The group key only names the series ("Time Series (Digital Currency Daily)")
// and carries no data, so it is dropped. The result is unordered.
func Convert(raw dto.RawSeries) (entity.Series, error) {
	size := 0
	for _, group := range raw {
		size += len(group)
	}

	out := make(entity.Series, 0, size)
	// outer: group key (ignored), inner: timestamp -> fields
	for _, samples := range raw {
		for ts, f := range samples {
			r, err := toRecord(ts, f)
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
	}
	return out, nil
}

func toRecord(ts string, f dto.Fields) (entity.Record, error) {
	r := entity.Record{Time: ts}
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"1. open", f.Open, &r.Open},
		{"2. high", f.High, &r.High},
		{"3. low", f.Low, &r.Low},
		{"4. close", f.Close, &r.Close},
		{"5. volume", f.Volume, &r.Volume},
	}
	for _, fd := range fields {
		d, err := decimal.NewFromString(fd.raw)
		if err != nil {
			return entity.Record{}, domain.NewFieldDecode(ts, fd.name, err)
		}
		*fd.dst = d.InexactFloat64()
	}
	return r, nil
}

// ParseCrypto runs the whole pipeline on a response body:
// decode, classify, triage, convert.
func ParseCrypto(body []byte) (*entity.Crypto, error) {
	var raw dto.RawEnvelope
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, domain.NewDecodeJSON(err)
	}

	meta, series, err := Triage(Classify(raw))
	if err != nil {
		return nil, err
	}

	records, err := Convert(series)
	if err != nil {
		return nil, err
	}
	return &entity.Crypto{Meta: meta, Series: records}, nil
}
