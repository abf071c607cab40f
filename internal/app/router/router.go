// Package router はアプリ全体のHTTPルーティングを組み立てます。
package router

import (
	"github.com/gin-gonic/gin"

	cryptohandler "crypto_backend/internal/feature/crypto/transport/handler"
	pairshandler "crypto_backend/internal/feature/pairs/transport/handler"
	"crypto_backend/internal/platform/http/handler"
	"crypto_backend/internal/platform/http/middleware"
	jwtmw "crypto_backend/internal/platform/jwt"
)

// NewRouter はハンドラーを束ねた gin.Engine を返します。
// ping が nil の場合、ヘルスチェックはキャッシュ無効として報告します。
func NewRouter(crypto *cryptohandler.CryptoHandler, rates *cryptohandler.RateHandler, pairs *pairshandler.PairHandler, ping handler.CachePinger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog(), gin.Recovery())

	// 認証不要
	// 導通確認用
	health := handler.Health(ping)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)

	// 認証必須のルート
	// → リクエストヘッダーに JWT が必要になる
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/crypto/:symbol", crypto.GetCryptoHandler)
		auth.GET("/crypto/:symbol/latest", crypto.LatestHandler)
		auth.GET("/crypto/:symbol/latest/:n", crypto.LatestNHandler)
		auth.GET("/crypto/:symbol/at/:time", crypto.FindAtHandler)
		auth.GET("/exchange-rate/:from/:to", rates.GetRateHandler)
		auth.GET("/pairs", pairs.List)
	}

	return r
}
