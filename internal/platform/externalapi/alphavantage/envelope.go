package alphavantage

import (
	"fmt"

	"crypto_backend/internal/feature/crypto/domain"
	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/platform/externalapi/alphavantage/dto"
)

// Envelope is a response after classification. It is exactly one of
// Information, ErrorMessage, Note or Payload.
type Envelope interface {
	isEnvelope()
}

// Information is returned instead of data, e.g. for an invalid symbol or a premium endpoint.
type Information struct{ Message string }

// ErrorMessage is returned for an invalid API call.
type ErrorMessage struct{ Message string }

// Note is returned when the caller is being throttled.
type Note struct{ Message string }

// Payload is a sentinel-free response. Meta and Series may still be missing.
type Payload struct {
	Meta      *dto.MetaData
	Series    dto.RawSeries
	Malformed []string
}

func (Information) isEnvelope()  {}
func (ErrorMessage) isEnvelope() {}
func (Note) isEnvelope()         {}
func (Payload) isEnvelope()      {}

// classifySentinels applies the fixed precedence Information > Error Message > Note.
// It returns nil when no sentinel is set.
func classifySentinels(s dto.Sentinels) Envelope {
	switch {
	case s.Information != "":
		return Information{Message: s.Information}
	case s.ErrorMessage != "":
		return ErrorMessage{Message: s.ErrorMessage}
	case s.Note != "":
		return Note{Message: s.Note}
	}
	return nil
}

// Classify collapses a raw envelope into one variant.
func Classify(raw dto.RawEnvelope) Envelope {
	if env := classifySentinels(raw.Sentinels); env != nil {
		return env
	}
	return Payload{Meta: raw.MetaData, Series: raw.Series, Malformed: raw.Malformed}
}

// Triage turns an envelope into the metadata and raw series of a successful
// response, or into the matching domain error. It never inspects field values.
func Triage(env Envelope) (entity.MetaData, dto.RawSeries, error) {
	switch e := env.(type) {
	case Information:
		return entity.MetaData{}, nil, domain.NewInformation(e.Message)
	case ErrorMessage:
		return entity.MetaData{}, nil, domain.NewErrorMessage(e.Message)
	case Note:
		return entity.MetaData{}, nil, domain.NewNote(e.Message)
	case Payload:
		if len(e.Malformed) > 0 {
			return entity.MetaData{}, nil, domain.NewInvalidResponse(fmt.Sprintf("unexpected value for %q", e.Malformed[0]))
		}
		if e.Meta == nil {
			return entity.MetaData{}, nil, domain.NewInvalidResponse("missing " + dto.KeyMetaData)
		}
		if e.Series == nil {
			return entity.MetaData{}, nil, domain.NewInvalidResponse("missing time series")
		}
		return toMetaData(*e.Meta), e.Series, nil
	default:
		return entity.MetaData{}, nil, domain.NewInvalidResponse(fmt.Sprintf("unknown envelope %T", env))
	}
}

func toMetaData(m dto.MetaData) entity.MetaData {
	return entity.MetaData{
		Information:   m.Information,
		DigitalCode:   m.DigitalCode,
		DigitalName:   m.DigitalName,
		MarketCode:    m.MarketCode,
		MarketName:    m.MarketName,
		LastRefreshed: m.LastRefreshed,
		TimeZone:      m.TimeZone,
	}
}
