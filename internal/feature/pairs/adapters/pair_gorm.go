// Package adapters はpairsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"crypto_backend/internal/feature/pairs/domain/entity"
	"crypto_backend/internal/feature/pairs/usecase"
)

// pairGorm はPairRepositoryインターフェースのGORM実装です（PostgreSQL / SQLite）。
type pairGorm struct {
	db *gorm.DB
}

var _ usecase.PairRepository = (*pairGorm)(nil)

// NewPairRepository は指定されたDB接続でpairGormリポジトリの新しいインスタンスを生成します。
func NewPairRepository(db *gorm.DB) *pairGorm {
	return &pairGorm{db: db}
}

// ListActive はsort_key順にすべてのアクティブなペアを返します。
func (r *pairGorm) ListActive(ctx context.Context) ([]entity.Pair, error) {
	var pairs []entity.Pair
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Order("id ASC").
		Find(&pairs).Error; err != nil {
		return nil, err
	}
	return pairs, nil
}

// Seed は未登録のペアを追加します。既存のペア（symbol, market が一致）は変更しません。
func (r *pairGorm) Seed(ctx context.Context, pairs []entity.Pair) error {
	if len(pairs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "symbol"}, {Name: "market"}},
			DoNothing: true,
		}).
		Create(&pairs).Error
}
