// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CachePinger はキャッシュ（Redis）への疎通確認を行う関数です。
type CachePinger func(ctx context.Context) error

// キャッシュの状態。キャッシュはベストエフォートなので、どの状態でもサービスは ok です。
const (
	CacheDisabled    = "disabled"
	CacheUp          = "up"
	CacheUnreachable = "unreachable"
)

// Health はサービスヘルスチェック用の /healthz エンドポイントを返します。
// ping が nil の場合、キャッシュは無効として報告されます。
func Health(ping CachePinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, gin.H{"status": "ok", "cache": cacheState(c.Request.Context(), ping)})
		}
	}
}

func cacheState(ctx context.Context, ping CachePinger) string {
	if ping == nil {
		return CacheDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := ping(ctx); err != nil {
		return CacheUnreachable
	}
	return CacheUp
}
