package usecase

import (
	"context"
	"log/slog"

	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/shared/ratelimiter"
)

// Pair は通貨コードと市場コードの組み合わせです。
type Pair struct {
	Symbol string
	Market string
}

// CacheInvalidator は指定されたペアのキャッシュを全関数分削除します。
type CacheInvalidator interface {
	Invalidate(ctx context.Context, symbol, market string) error
}

// WarmUsecase は追跡対象の全ペアの時系列を事前に取得し、キャッシュを温めるユースケースです。
type WarmUsecase struct {
	market      MarketRepository
	rateLimiter ratelimiter.RateLimiterInterface
	invalidator CacheInvalidator
}

// NewWarmUsecase は新しい WarmUsecase を作成します。
func NewWarmUsecase(market MarketRepository, rateLimiter ratelimiter.RateLimiterInterface) *WarmUsecase {
	return &WarmUsecase{market: market, rateLimiter: rateLimiter}
}

// WithRefresh は取得前に各ペアのキャッシュを削除するように設定します。
// 設定しない場合、有効期限内のキャッシュはそのまま残ります。
func (wu *WarmUsecase) WithRefresh(inv CacheInvalidator) *WarmUsecase {
	wu.invalidator = inv
	return wu
}

// warmOne は指定されたペアと関数の時系列を取得します。
// market がキャッシュ付きリポジトリであれば、取得結果はキャッシュに保存されます。
func (wu *WarmUsecase) warmOne(ctx context.Context, fn entity.Function, p Pair) error {
	symbol, market := normalize(p.Symbol, p.Market)
	c, err := wu.market.GetCrypto(ctx, fn, symbol, market)
	if err != nil {
		return err
	}
	slog.Info("warmed series", "symbol", symbol, "market", market, "function", fn.String(), "records", len(c.Series))
	return nil
}

// WarmAll は全ペアの時系列を日次・週次・月次で取得します。
// APIのレートリミットを考慮して、リクエスト間に適切な待機時間を設けます。
// 失敗したペアはログに出力して処理を続け、失敗件数を返します。
// ctx が終わった時点で中断し、ctx.Err() を返します。
func (wu *WarmUsecase) WarmAll(ctx context.Context, pairs []Pair) (int, error) {
	failed := 0
	for _, p := range pairs {
		if wu.invalidator != nil {
			symbol, market := normalize(p.Symbol, p.Market)
			if err := wu.invalidator.Invalidate(ctx, symbol, market); err != nil {
				// 削除できなくても取得は続ける（古いキャッシュが返るだけ）
				slog.Warn("failed to invalidate cache", "symbol", symbol, "market", market, "error", err)
			}
		}
		for _, fn := range entity.Functions {
			if err := ctx.Err(); err != nil {
				return failed, err
			}
			if err := wu.rateLimiter.WaitIfNeeded(ctx); err != nil {
				return failed, err
			}
			if err := wu.warmOne(ctx, fn, p); err != nil {
				// 1つのペアでエラーが発生しても処理を止めずにログに出力し、次の処理を続ける
				slog.Error("failed to warm series", "symbol", p.Symbol, "market", p.Market, "function", fn.String(), "error", err)
				failed++
				continue
			}
		}
	}
	return failed, nil
}
