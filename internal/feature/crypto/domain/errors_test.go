package domain_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"crypto_backend/internal/feature/crypto/domain"
)

// TestError_Message はエラー種別ごとのメッセージ書式を検証します。
func TestError_Message(t *testing.T) {
	t.Parallel()

	_, parseErr := strconv.ParseFloat("abc", 64)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"information", domain.NewInformation("invalid symbol"), "information: invalid symbol"},
		{"error message", domain.NewErrorMessage("bad call"), "error_message: bad call"},
		{"note", domain.NewNote("5 calls per minute"), "note: 5 calls per minute"},
		{"invalid response", domain.NewInvalidResponse(""), "alpha vantage returns invalid data"},
		{"invalid response with detail", domain.NewInvalidResponse("missing Meta Data"), "alpha vantage returns invalid data: missing Meta Data"},
		{"insufficient data", domain.NewInsufficientData(3), "desired number of latest data not found try using less than 3 as n"},
		{
			"field decode",
			domain.NewFieldDecode("2023-01-01", "1. open", parseErr),
			`failed to decode field "1. open" at 2023-01-01: ` + parseErr.Error(),
		},
		{"request failed", domain.NewRequestFailed(errors.New("eof")), "failed to get output from server: eof"},
		{"decode json", domain.NewDecodeJSON(errors.New("unexpected end")), "failed to decode string into struct: unexpected end"},
		{"create url", domain.NewCreateURL(errors.New("empty symbol")), "failed to create url: empty symbol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

// TestError_Is はerrors.Isで種別ごとのセンチネルと一致することを検証します。
func TestError_Is(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("get crypto: %w", domain.NewNote("slow down"))

	assert.ErrorIs(t, wrapped, domain.ErrNote)
	assert.NotErrorIs(t, wrapped, domain.ErrInformation)
	assert.NotErrorIs(t, wrapped, domain.ErrErrorMessage)
	assert.Equal(t, domain.KindNote, domain.KindOf(wrapped))
	assert.Equal(t, domain.Kind(0), domain.KindOf(errors.New("plain")))
}

// TestError_Unwrap は内部エラーがerrors.Isで辿れることを検証します。
func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := domain.NewRequestFailed(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, domain.ErrRequestFailed)
}

// TestError_AsCarriesAvailable はInsufficientDataが利用可能件数を保持することを検証します。
func TestError_AsCarriesAvailable(t *testing.T) {
	t.Parallel()

	var e *domain.Error
	err := fmt.Errorf("latest: %w", domain.NewInsufficientData(7))

	if assert.ErrorAs(t, err, &e) {
		assert.Equal(t, domain.KindInsufficientData, e.Kind)
		assert.Equal(t, 7, e.Available)
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "note", domain.KindNote.String())
	assert.Equal(t, "insufficient_data", domain.KindInsufficientData.String())
	assert.Equal(t, "unknown", domain.Kind(99).String())
}
