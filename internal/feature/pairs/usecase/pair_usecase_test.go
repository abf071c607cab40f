package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crypto_backend/internal/feature/pairs/domain/entity"
	"crypto_backend/internal/feature/pairs/usecase"
)

// mockPairRepository はPairRepositoryインターフェースのモック実装です。
type mockPairRepository struct {
	ListActiveFunc func(ctx context.Context) ([]entity.Pair, error)
	seeded         []entity.Pair
}

// ListActive はモックのListActive関数を呼び出します。
func (m *mockPairRepository) ListActive(ctx context.Context) ([]entity.Pair, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

// Seed は渡されたペアを記録します。
func (m *mockPairRepository) Seed(ctx context.Context, pairs []entity.Pair) error {
	m.seeded = append(m.seeded, pairs...)
	return nil
}

// TestPairUsecase_ListActivePairs はListActivePairsメソッドの各種シナリオをテーブル駆動テストで検証します。
func TestPairUsecase_ListActivePairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		mockListActive func(ctx context.Context) ([]entity.Pair, error)
		expectedPairs  []entity.Pair
		wantErr        bool
	}{
		{
			name: "success: returns list of active pairs",
			mockListActive: func(ctx context.Context) ([]entity.Pair, error) {
				return []entity.Pair{{ID: 1, Symbol: "BTC", Market: "USD", IsActive: true, SortKey: 1}}, nil
			},
			expectedPairs: []entity.Pair{{ID: 1, Symbol: "BTC", Market: "USD", IsActive: true, SortKey: 1}},
		},
		{
			name: "success: returns empty list when no active pairs",
			mockListActive: func(ctx context.Context) ([]entity.Pair, error) {
				return []entity.Pair{}, nil
			},
			expectedPairs: []entity.Pair{},
		},
		{
			name: "failure: repository returns error",
			mockListActive: func(ctx context.Context) ([]entity.Pair, error) {
				return nil, errors.New("database connection failed")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecase.NewPairUsecase(&mockPairRepository{ListActiveFunc: tt.mockListActive})
			pairs, err := uc.ListActivePairs(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, pairs)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPairs, pairs)
		})
	}
}

// TestPairUsecase_SeedPairs は "SYMBOL/MARKET" 形式の解析と並び順の付与を検証します。
func TestPairUsecase_SeedPairs(t *testing.T) {
	t.Parallel()

	repo := &mockPairRepository{}
	uc := usecase.NewPairUsecase(repo)

	require.NoError(t, uc.SeedPairs(context.Background(), []string{"btc/usd", " ETH / EUR "}))
	assert.Equal(t, []entity.Pair{
		{Symbol: "BTC", Market: "USD", IsActive: true, SortKey: 1},
		{Symbol: "ETH", Market: "EUR", IsActive: true, SortKey: 2},
	}, repo.seeded)

	assert.Error(t, uc.SeedPairs(context.Background(), []string{"BTC"}))
	assert.NoError(t, uc.SeedPairs(context.Background(), nil))
}

// TestParsePair は不正な形式が拒否されることを検証します。
func TestParsePair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		wantErr bool
	}{
		{"BTC/USD", false},
		{"eth/eur", false},
		{"BTC", true},
		{"/USD", true},
		{"BTC/", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			_, err := usecase.ParsePair(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
