// Package handler はcryptoフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/feature/crypto/transport/http/dto"
)

// CryptoUsecase はデジタル通貨の時系列操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CryptoUsecase interface {
	GetCrypto(ctx context.Context, fn entity.Function, symbol, market string) (*entity.Crypto, error)
	Latest(ctx context.Context, fn entity.Function, symbol, market string) (entity.Record, bool, error)
	LatestN(ctx context.Context, fn entity.Function, symbol, market string, n int) ([]entity.Record, error)
	FindAt(ctx context.Context, fn entity.Function, symbol, market, time string) (entity.Record, bool, error)
}

// CryptoHandler はデジタル通貨の時系列データのHTTPリクエストを処理します。
type CryptoHandler struct {
	uc CryptoUsecase
}

// NewCryptoHandler は指定されたusecaseでCryptoHandlerの新しいインスタンスを生成します。
func NewCryptoHandler(uc CryptoUsecase) *CryptoHandler {
	return &CryptoHandler{uc: uc}
}

// query は共通のクエリパラメータ（function, market）を読み取ります。
// function が不正な場合は400を返し、ok=false になります。
func query(c *gin.Context) (fn entity.Function, market string, ok bool) {
	fn, err := entity.ParseFunction(c.Query("function"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return 0, "", false
	}
	return fn, c.Query("market"), true
}

// GetCryptoHandler はメタデータと全レコードを新しい順に返します。
//
// エンドポイント例:
// GET /crypto/:symbol?market=EUR&function=daily
func (h *CryptoHandler) GetCryptoHandler(c *gin.Context) {
	fn, market, ok := query(c)
	if !ok {
		return
	}

	cr, err := h.uc.GetCrypto(c.Request.Context(), fn, c.Param("symbol"), market)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CryptoResponse{
		Meta:    toMeta(cr.Meta),
		Records: toRecords(cr.Series),
	})
}

// LatestHandler は最新のレコードを返します。データが0件の場合は404です。
//
// エンドポイント例:
// GET /crypto/:symbol/latest?market=EUR
func (h *CryptoHandler) LatestHandler(c *gin.Context) {
	fn, market, ok := query(c)
	if !ok {
		return
	}

	r, found, err := h.uc.Latest(c.Request.Context(), fn, c.Param("symbol"), market)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "no data"})
		return
	}
	c.JSON(http.StatusOK, toRecord(r))
}

// LatestNHandler は最新N件のレコードを新しい順に返します。
// データ件数を超える場合は422と利用可能な件数を返します。
//
// エンドポイント例:
// GET /crypto/:symbol/latest/:n?market=EUR&function=weekly
func (h *CryptoHandler) LatestNHandler(c *gin.Context) {
	fn, market, ok := query(c)
	if !ok {
		return
	}
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil || n < 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "n must be a non-negative integer"})
		return
	}

	rs, err := h.uc.LatestN(c.Request.Context(), fn, c.Param("symbol"), market, n)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRecords(rs))
}

// FindAtHandler は指定した時刻に完全一致するレコードを返します。存在しない場合は404です。
//
// エンドポイント例:
// GET /crypto/:symbol/at/2023-01-01?market=EUR
func (h *CryptoHandler) FindAtHandler(c *gin.Context) {
	fn, market, ok := query(c)
	if !ok {
		return
	}
	at := c.Param("time")

	r, found, err := h.uc.FindAt(c.Request.Context(), fn, c.Param("symbol"), market, at)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "no record at " + at})
		return
	}
	c.JSON(http.StatusOK, toRecord(r))
}

func toMeta(m entity.MetaData) dto.MetaResponse {
	return dto.MetaResponse{
		Information:   m.Information,
		DigitalCode:   m.DigitalCode,
		DigitalName:   m.DigitalName,
		MarketCode:    m.MarketCode,
		MarketName:    m.MarketName,
		LastRefreshed: m.LastRefreshed,
		TimeZone:      m.TimeZone,
	}
}

func toRecord(r entity.Record) dto.RecordResponse {
	return dto.RecordResponse{
		Time:   r.Time,
		Open:   r.Open,
		High:   r.High,
		Low:    r.Low,
		Close:  r.Close,
		Volume: r.Volume,
	}
}

func toRecords(rs []entity.Record) []dto.RecordResponse {
	out := make([]dto.RecordResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, toRecord(r))
	}
	return out
}
