package alphavantage

import (
	"context"
	"errors"
	"net/url"

	"github.com/shopspring/decimal"

	"crypto_backend/internal/feature/crypto/domain"
	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/feature/crypto/usecase"
	"crypto_backend/internal/platform/externalapi/alphavantage/dto"
)

// AlphaVantageMarketがExchangeRateRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ExchangeRateRepository = (*AlphaVantageMarket)(nil)

// GetExchangeRate fetches the realtime rate of from in to through CURRENCY_EXCHANGE_RATE.
func (a *AlphaVantageMarket) GetExchangeRate(ctx context.Context, from, to string) (*entity.ExchangeRate, error) {
	if from == "" || to == "" {
		return nil, domain.NewCreateURL(errors.New("from and to currencies are required"))
	}

	params := url.Values{}
	params.Set("from_currency", from)
	params.Set("to_currency", to)

	var res dto.ExchangeRateResponse
	if err := a.Custom(ctx, "CURRENCY_EXCHANGE_RATE", params, &res); err != nil {
		return nil, err
	}
	if res.Rate == nil {
		return nil, domain.NewInvalidResponse("missing " + dto.KeyExchangeRate)
	}
	return toExchangeRate(*res.Rate)
}

func toExchangeRate(r dto.ExchangeRate) (*entity.ExchangeRate, error) {
	out := &entity.ExchangeRate{
		From:          r.FromCode,
		FromName:      r.FromName,
		To:            r.ToCode,
		ToName:        r.ToName,
		LastRefreshed: r.LastRefreshed,
		TimeZone:      r.TimeZone,
	}
	// Bid/Ask は "-" のこともあるため、必須なのはレートのみ
	fields := []struct {
		name     string
		raw      string
		dst      *float64
		optional bool
	}{
		{"5. Exchange Rate", r.Rate, &out.Rate, false},
		{"8. Bid Price", r.Bid, &out.Bid, true},
		{"9. Ask Price", r.Ask, &out.Ask, true},
	}
	for _, fd := range fields {
		if fd.optional && (fd.raw == "" || fd.raw == "-") {
			continue
		}
		d, err := decimal.NewFromString(fd.raw)
		if err != nil {
			return nil, domain.NewFieldDecode(r.LastRefreshed, fd.name, err)
		}
		*fd.dst = d.InexactFloat64()
	}
	return out, nil
}
