package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"crypto_backend/internal/feature/pairs/domain/entity"
	"crypto_backend/internal/feature/pairs/transport/http/dto"
)

// PairUsecase は追跡ペアに関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type PairUsecase interface {
	ListActivePairs(ctx context.Context) ([]entity.Pair, error)
}

// PairHandler は追跡ペアに関するHTTPリクエストを処理します。
type PairHandler struct {
	uc PairUsecase
}

// NewPairHandler は新しい PairHandler を作成します。
func NewPairHandler(uc PairUsecase) *PairHandler {
	return &PairHandler{uc: uc}
}

// List は有効なペアの一覧を取得するAPIです。
// Usecaseでエラーが発生した場合は500 Internal Server Errorを返します。
func (h *PairHandler) List(c *gin.Context) {
	pairs, err := h.uc.ListActivePairs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.PairItem, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, dto.PairItem{Symbol: p.Symbol, Market: p.Market})
	}
	c.JSON(http.StatusOK, out)
}
