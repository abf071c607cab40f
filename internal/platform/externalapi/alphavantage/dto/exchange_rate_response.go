package dto

// KeyExchangeRate is the top-level key of a CURRENCY_EXCHANGE_RATE response.
const KeyExchangeRate = "Realtime Currency Exchange Rate"

// ExchangeRate is the "Realtime Currency Exchange Rate" object; numbers are decimal strings.
type ExchangeRate struct {
	FromCode      string `json:"1. From_Currency Code"`
	FromName      string `json:"2. From_Currency Name"`
	ToCode        string `json:"3. To_Currency Code"`
	ToName        string `json:"4. To_Currency Name"`
	Rate          string `json:"5. Exchange Rate"`
	LastRefreshed string `json:"6. Last Refreshed"`
	TimeZone      string `json:"7. Time Zone"`
	Bid           string `json:"8. Bid Price"`
	Ask           string `json:"9. Ask Price"`
}

// ExchangeRateResponse is the body of a CURRENCY_EXCHANGE_RATE call.
type ExchangeRateResponse struct {
	Rate *ExchangeRate `json:"Realtime Currency Exchange Rate"`
}
