package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/feature/crypto/transport/http/dto"
)

// RateUsecase は為替レート取得のユースケースインターフェースです。
type RateUsecase interface {
	GetRate(ctx context.Context, from, to string) (*entity.ExchangeRate, error)
}

// RateHandler は為替レートのHTTPリクエストを処理します。
type RateHandler struct {
	uc RateUsecase
}

// NewRateHandler は新しい RateHandler を作成します。
func NewRateHandler(uc RateUsecase) *RateHandler {
	return &RateHandler{uc: uc}
}

// GetRateHandler はリアルタイムの為替レートを返します。
//
// エンドポイント例:
// GET /exchange-rate/BTC/JPY
func (h *RateHandler) GetRateHandler(c *gin.Context) {
	r, err := h.uc.GetRate(c.Request.Context(), c.Param("from"), c.Param("to"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ExchangeRateResponse{
		From:          r.From,
		FromName:      r.FromName,
		To:            r.To,
		ToName:        r.ToName,
		Rate:          r.Rate,
		Bid:           r.Bid,
		Ask:           r.Ask,
		LastRefreshed: r.LastRefreshed,
		TimeZone:      r.TimeZone,
	})
}
