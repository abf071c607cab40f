// Package usecase implements the business logic for tracked pair operations.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"crypto_backend/internal/feature/pairs/domain/entity"
)

// PairRepository abstracts the persistence layer for tracked pairs.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PairRepository interface {
	ListActive(ctx context.Context) ([]entity.Pair, error)
	Seed(ctx context.Context, pairs []entity.Pair) error
}

// PairUsecase provides business logic for tracked pairs.
type PairUsecase struct {
	repo PairRepository
}

// NewPairUsecase creates a new PairUsecase with the given repository.
func NewPairUsecase(r PairRepository) *PairUsecase {
	return &PairUsecase{repo: r}
}

// ListActivePairs returns all active pairs ordered by sort key.
func (u *PairUsecase) ListActivePairs(ctx context.Context) ([]entity.Pair, error) {
	return u.repo.ListActive(ctx)
}

// SeedPairs registers "SYMBOL/MARKET" entries that are not tracked yet.
// Existing pairs keep their state. The order of entries becomes the sort key.
func (u *PairUsecase) SeedPairs(ctx context.Context, entries []string) error {
	if len(entries) == 0 {
		return nil
	}
	pairs := make([]entity.Pair, 0, len(entries))
	for i, s := range entries {
		p, err := ParsePair(s)
		if err != nil {
			return err
		}
		p.IsActive = true
		p.SortKey = i + 1
		pairs = append(pairs, p)
	}
	return u.repo.Seed(ctx, pairs)
}

// ParsePair parses "BTC/EUR" (case-insensitive) into a Pair.
func ParsePair(s string) (entity.Pair, error) {
	symbol, market, ok := strings.Cut(strings.TrimSpace(s), "/")
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	market = strings.ToUpper(strings.TrimSpace(market))
	if !ok || symbol == "" || market == "" {
		return entity.Pair{}, fmt.Errorf("invalid pair %q: want SYMBOL/MARKET", s)
	}
	return entity.Pair{Symbol: symbol, Market: market}, nil
}
