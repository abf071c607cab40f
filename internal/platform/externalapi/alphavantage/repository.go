package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"crypto_backend/internal/feature/crypto/domain"
	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/feature/crypto/usecase"
	"crypto_backend/internal/platform/externalapi/alphavantage/dto"
)

// AlphaVantageMarket fetches digital currency series from the Alpha Vantage API.
type AlphaVantageMarket struct {
	cfg    Config
	client *http.Client
}

// AlphaVantageMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*AlphaVantageMarket)(nil)

// NewAlphaVantageMarket creates an AlphaVantageMarket with the given config and HTTP client.
func NewAlphaVantageMarket(cfg Config, client *http.Client) *AlphaVantageMarket {
	return &AlphaVantageMarket{cfg: cfg, client: client}
}

// functionName maps a Function to the API's function parameter.
func functionName(fn entity.Function) (string, error) {
	switch fn {
	case entity.Daily:
		return "DIGITAL_CURRENCY_DAILY", nil
	case entity.Weekly:
		return "DIGITAL_CURRENCY_WEEKLY", nil
	case entity.Monthly:
		return "DIGITAL_CURRENCY_MONTHLY", nil
	default:
		return "", fmt.Errorf("unsupported function %s", fn)
	}
}

// GetCrypto fetches the series of symbol (e.g. "BTC") quoted in market (e.g. "EUR").
func (a *AlphaVantageMarket) GetCrypto(ctx context.Context, fn entity.Function, symbol, market string) (*entity.Crypto, error) {
	name, err := functionName(fn)
	if err != nil {
		return nil, domain.NewCreateURL(err)
	}
	if symbol == "" {
		return nil, domain.NewCreateURL(errors.New("symbol is required"))
	}
	if market == "" {
		return nil, domain.NewCreateURL(errors.New("market is required"))
	}

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("market", market)

	body, err := a.get(ctx, name, q)
	if err != nil {
		return nil, err
	}
	return ParseCrypto(body)
}

// Custom calls an arbitrary API function with extra query parameters and
// decodes the response into out. Sentinel responses are reported with the
// same errors as GetCrypto.
func (a *AlphaVantageMarket) Custom(ctx context.Context, function string, params url.Values, out any) error {
	if function == "" {
		return domain.NewCreateURL(errors.New("function is required"))
	}
	body, err := a.get(ctx, function, params)
	if err != nil {
		return err
	}
	return decodeCustom(body, out)
}

func decodeCustom(body []byte, out any) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return domain.NewDecodeJSON(err)
	}
	var s dto.Sentinels
	if err := json.Unmarshal(body, &s); err != nil {
		return domain.NewDecodeJSON(err)
	}
	if env := classifySentinels(s); env != nil {
		_, _, err := Triage(env)
		return err
	}

	delete(fields, dto.KeyInformation)
	delete(fields, dto.KeyErrorMessage)
	delete(fields, dto.KeyNote)
	if len(fields) == 0 {
		return domain.NewInvalidResponse("empty response")
	}

	if err := json.Unmarshal(body, out); err != nil {
		return domain.NewDecodeJSON(err)
	}
	return nil
}

// buildURL returns <BaseURL>/query?function=...&apikey=... plus params.
func (a *AlphaVantageMarket) buildURL(function string, params url.Values) (string, error) {
	base, err := url.Parse(a.cfg.BaseURL)
	if err != nil {
		return "", domain.NewCreateURL(err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", domain.NewCreateURL(fmt.Errorf("base url %q is not absolute", a.cfg.BaseURL))
	}

	q := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("function", function)
	q.Set("apikey", a.cfg.AlphaVantageAPIKey)

	u := base.JoinPath("query")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// get performs the request and returns the raw body.
func (a *AlphaVantageMarket) get(ctx context.Context, function string, params url.Values) ([]byte, error) {
	u, err := a.buildURL(function, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, domain.NewCreateURL(err)
	}

	res, err := a.client.Do(req)
	if err != nil {
		return nil, domain.NewRequestFailed(err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, domain.NewRequestFailed(fmt.Errorf("alphavantage http %d", res.StatusCode))
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, domain.NewRequestFailed(err)
	}
	return body, nil
}
