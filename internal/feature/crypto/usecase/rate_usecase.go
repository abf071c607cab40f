package usecase

import (
	"context"

	"crypto_backend/internal/feature/crypto/domain/entity"
)

// ExchangeRateRepository は外部APIから為替レートを取得するリポジトリのインターフェイスです。
type ExchangeRateRepository interface {
	GetExchangeRate(ctx context.Context, from, to string) (*entity.ExchangeRate, error)
}

// RateUsecase はリアルタイムの為替レートを提供します。値が刻々と変わるためキャッシュはしません。
type RateUsecase struct {
	repo ExchangeRateRepository
}

// NewRateUsecase はRateUsecaseの新しいインスタンスを生成します。
func NewRateUsecase(repo ExchangeRateRepository) *RateUsecase {
	return &RateUsecase{repo: repo}
}

// GetRate は from の to 建てレートを返します。to が空の場合は DefaultMarket を使用します。
func (ru *RateUsecase) GetRate(ctx context.Context, from, to string) (*entity.ExchangeRate, error) {
	from, to = normalize(from, to)
	return ru.repo.GetExchangeRate(ctx, from, to)
}
