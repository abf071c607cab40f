// Package dto defines data transfer objects for the crypto HTTP API.
package dto

// RecordResponse は1件の時系列データのレスポンスDTOです。
type RecordResponse struct {
	Time   string  `json:"time"`   // 日付または日時
	Open   float64 `json:"open"`   // 始値
	High   float64 `json:"high"`   // 高値
	Low    float64 `json:"low"`    // 安値
	Close  float64 `json:"close"`  // 終値
	Volume float64 `json:"volume"` // 出来高
}

// MetaResponse は時系列のメタデータです。
type MetaResponse struct {
	Information   string `json:"information"`
	DigitalCode   string `json:"digital_code"`
	DigitalName   string `json:"digital_name"`
	MarketCode    string `json:"market_code"`
	MarketName    string `json:"market_name"`
	LastRefreshed string `json:"last_refreshed"`
	TimeZone      string `json:"time_zone"`
}

// CryptoResponse はメタデータと新しい順の全レコードです。
type CryptoResponse struct {
	Meta    MetaResponse     `json:"meta"`
	Records []RecordResponse `json:"records"`
}

// ErrorResponse はエラー時のレスポンスです。
// Available は要求件数がデータ件数を超えた場合のみ設定されます。
type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	Available *int   `json:"available,omitempty"`
}

// ExchangeRateResponse はリアルタイム為替レートのレスポンスDTOです。
type ExchangeRateResponse struct {
	From          string  `json:"from"`
	FromName      string  `json:"from_name"`
	To            string  `json:"to"`
	ToName        string  `json:"to_name"`
	Rate          float64 `json:"rate"`
	Bid           float64 `json:"bid"`
	Ask           float64 `json:"ask"`
	LastRefreshed string  `json:"last_refreshed"`
	TimeZone      string  `json:"time_zone"`
}
