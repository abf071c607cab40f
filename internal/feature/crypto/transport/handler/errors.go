package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"crypto_backend/internal/feature/crypto/domain"
	"crypto_backend/internal/feature/crypto/transport/http/dto"
)

// StatusFor はエラー種別をHTTPステータスに対応付けます。
//
//   - Note（呼び出し頻度の制限）: 429
//   - Information / Error Message / 不正なレスポンス / 通信失敗: 502
//   - URL生成の失敗（不正なパラメータ）: 400
//   - 件数不足: 422
//   - それ以外: 500
func StatusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindNote:
		return http.StatusTooManyRequests
	case domain.KindInformation, domain.KindErrorMessage,
		domain.KindInvalidResponse, domain.KindFieldDecode,
		domain.KindDecodeJSON, domain.KindRequestFailed:
		return http.StatusBadGateway
	case domain.KindCreateURL:
		return http.StatusBadRequest
	case domain.KindInsufficientData:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError はエラーをJSONレスポンスとして返します。
func writeError(c *gin.Context, err error) {
	res := dto.ErrorResponse{Error: err.Error()}

	var de *domain.Error
	if errors.As(err, &de) {
		res.Kind = de.Kind.String()
		if de.Kind == domain.KindInsufficientData {
			available := de.Available
			res.Available = &available
		}
	}
	c.JSON(StatusFor(err), res)
}
