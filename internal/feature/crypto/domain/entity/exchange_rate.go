package entity

// ExchangeRate is the realtime rate of one currency (digital or physical) in another.
type ExchangeRate struct {
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
