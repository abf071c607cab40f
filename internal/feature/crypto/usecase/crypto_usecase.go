// Package usecase はデジタル通貨の時系列データ操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"sort"
	"strings"

	"crypto_backend/internal/feature/crypto/domain/entity"
)

// DefaultMarket は市場コードが未指定の場合に使用する値です。
const DefaultMarket = "USD"

// MarketRepository は外部APIからデジタル通貨の時系列を取得するリポジトリのインターフェイスです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	GetCrypto(ctx context.Context, fn entity.Function, symbol, market string) (*entity.Crypto, error)
}

// CryptoUsecase は時系列の取得と検索（完全一致・最新・最新N件）を提供します。
type CryptoUsecase struct {
	market MarketRepository
}

// NewCryptoUsecase はCryptoUsecaseの新しいインスタンスを生成します。
func NewCryptoUsecase(market MarketRepository) *CryptoUsecase {
	return &CryptoUsecase{market: market}
}

// normalize は銘柄コードと市場コードを大文字に揃え、市場コードのデフォルト値を補います。
func normalize(symbol, market string) (string, string) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	market = strings.ToUpper(strings.TrimSpace(market))
	if market == "" {
		market = DefaultMarket
	}
	return symbol, market
}

func (cu *CryptoUsecase) fetch(ctx context.Context, fn entity.Function, symbol, market string) (*entity.Crypto, error) {
	symbol, market = normalize(symbol, market)
	return cu.market.GetCrypto(ctx, fn, symbol, market)
}

// GetCrypto returns the metadata and every record, newest first.
func (cu *CryptoUsecase) GetCrypto(ctx context.Context, fn entity.Function, symbol, market string) (*entity.Crypto, error) {
	c, err := cu.fetch(ctx, fn, symbol, market)
	if err != nil {
		return nil, err
	}

	// 取得元（キャッシュ等）の系列は書き換えない
	sorted := make(entity.Series, len(c.Series))
	copy(sorted, c.Series)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time > sorted[j].Time })
	return &entity.Crypto{Meta: c.Meta, Series: sorted}, nil
}

// Latest returns the most recent record. ok is false when the series is empty.
func (cu *CryptoUsecase) Latest(ctx context.Context, fn entity.Function, symbol, market string) (entity.Record, bool, error) {
	c, err := cu.fetch(ctx, fn, symbol, market)
	if err != nil {
		return entity.Record{}, false, err
	}
	r, ok := c.Series.Latest()
	return r, ok, nil
}

// LatestN returns the n most recent records, newest first.
func (cu *CryptoUsecase) LatestN(ctx context.Context, fn entity.Function, symbol, market string, n int) ([]entity.Record, error) {
	c, err := cu.fetch(ctx, fn, symbol, market)
	if err != nil {
		return nil, err
	}
	return c.Series.LatestN(n)
}

// FindAt returns the record at exactly time. ok is false when no record has that time.
func (cu *CryptoUsecase) FindAt(ctx context.Context, fn entity.Function, symbol, market, time string) (entity.Record, bool, error) {
	c, err := cu.fetch(ctx, fn, symbol, market)
	if err != nil {
		return entity.Record{}, false, err
	}
	r, ok := c.Series.Find(time)
	return r, ok, nil
}
