// Package entity defines the domain models for the pairs feature.
package entity

import "time"

// Pair is a tracked digital currency quoted in a market, e.g. BTC/EUR.
// The cache warmer fetches every active pair.
type Pair struct {
	ID        uint      `gorm:"primaryKey"`
	Symbol    string    `gorm:"size:20;not null;uniqueIndex:idx_pairs_symbol_market"`
	Market    string    `gorm:"size:10;not null;uniqueIndex:idx_pairs_symbol_market"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
