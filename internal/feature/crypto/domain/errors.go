// Package domain defines domain-level errors for the crypto feature.
package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an Error. The set is closed.
type Kind int

const (
	// KindInformation means the API answered with an "Information" message instead of data.
	KindInformation Kind = iota + 1
	// KindErrorMessage means the API answered with an "Error Message" instead of data.
	KindErrorMessage
	// KindNote means the API answered with a "Note", usually a rate-limit warning.
	KindNote
	// KindInvalidResponse means no sentinel was present but the payload was missing or malformed.
	KindInvalidResponse
	// KindFieldDecode means a numeric field could not be parsed.
	KindFieldDecode
	// KindInsufficientData means more latest records were requested than exist.
	KindInsufficientData
	// KindRequestFailed means the HTTP round trip failed or returned a non-2xx status.
	KindRequestFailed
	// KindDecodeJSON means the body was not JSON of the expected shape.
	KindDecodeJSON
	// KindCreateURL means a request URL could not be built from the given parameters.
	KindCreateURL
)

func (k Kind) String() string {
	switch k {
	case KindInformation:
		return "information"
	case KindErrorMessage:
		return "error_message"
	case KindNote:
		return "note"
	case KindInvalidResponse:
		return "invalid_response"
	case KindFieldDecode:
		return "field_decode"
	case KindInsufficientData:
		return "insufficient_data"
	case KindRequestFailed:
		return "request_failed"
	case KindDecodeJSON:
		return "decode_json"
	case KindCreateURL:
		return "create_url"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by the crypto data layer.
// Message holds the upstream text for the three sentinel kinds and a
// diagnostic detail for the others. Available is only set for KindInsufficientData.
type Error struct {
	Kind      Kind
	Message   string
	Available int
	Err       error
}

// Sentinels for errors.Is. Any *Error matches the sentinel of the same Kind.
var (
	ErrInformation      = &Error{Kind: KindInformation}
	ErrErrorMessage     = &Error{Kind: KindErrorMessage}
	ErrNote             = &Error{Kind: KindNote}
	ErrInvalidResponse  = &Error{Kind: KindInvalidResponse}
	ErrFieldDecode      = &Error{Kind: KindFieldDecode}
	ErrInsufficientData = &Error{Kind: KindInsufficientData}
	ErrRequestFailed    = &Error{Kind: KindRequestFailed}
	ErrDecodeJSON       = &Error{Kind: KindDecodeJSON}
	ErrCreateURL        = &Error{Kind: KindCreateURL}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindInformation:
		return "information: " + e.Message
	case KindErrorMessage:
		return "error_message: " + e.Message
	case KindNote:
		return "note: " + e.Message
	case KindInvalidResponse:
		if e.Message != "" {
			return "alpha vantage returns invalid data: " + e.Message
		}
		return "alpha vantage returns invalid data"
	case KindInsufficientData:
		return fmt.Sprintf("desired number of latest data not found try using less than %d as n", e.Available)
	}

	msg := e.Kind.String()
	switch e.Kind {
	case KindFieldDecode:
		msg = "failed to decode field"
	case KindRequestFailed:
		msg = "failed to get output from server"
	case KindDecodeJSON:
		msg = "failed to decode string into struct"
	case KindCreateURL:
		msg = "failed to create url"
	}
	if e.Message != "" {
		msg += " " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// NewInformation wraps an upstream "Information" message.
func NewInformation(msg string) *Error { return &Error{Kind: KindInformation, Message: msg} }

// NewErrorMessage wraps an upstream "Error Message".
func NewErrorMessage(msg string) *Error { return &Error{Kind: KindErrorMessage, Message: msg} }

// NewNote wraps an upstream "Note".
func NewNote(msg string) *Error { return &Error{Kind: KindNote, Message: msg} }

// NewInvalidResponse reports a sentinel-free response without a usable payload.
func NewInvalidResponse(detail string) *Error {
	return &Error{Kind: KindInvalidResponse, Message: detail}
}

// NewFieldDecode reports a numeric field of the record at time that failed to parse.
func NewFieldDecode(time, field string, err error) *Error {
	return &Error{Kind: KindFieldDecode, Message: fmt.Sprintf("%q at %s", field, time), Err: err}
}

// NewInsufficientData reports that only available records exist.
func NewInsufficientData(available int) *Error {
	return &Error{Kind: KindInsufficientData, Available: available}
}

// NewRequestFailed wraps a transport failure.
func NewRequestFailed(err error) *Error { return &Error{Kind: KindRequestFailed, Err: err} }

// NewDecodeJSON wraps a JSON decoding failure.
func NewDecodeJSON(err error) *Error { return &Error{Kind: KindDecodeJSON, Err: err} }

// NewCreateURL wraps a URL construction failure.
func NewCreateURL(err error) *Error { return &Error{Kind: KindCreateURL, Err: err} }

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
