package http

import (
	"crypto/tls"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

// NewHTTPClient は Alpha Vantage 呼び出し用のクライアントを返します。
// 接続先は1ホストなので、アイドル接続は少数を長めに保持します。
// TLS 1.2 以上のみ許可し、HTTPS では x/net/http2 で HTTP/2 を有効にします。
// timeout はリクエスト全体（接続からボディ読み込みまで）の上限です。
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     2 * time.Minute,
		TLSHandshakeTimeout: 5 * time.Second,
		TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
	}
	// h2 の設定に失敗しても HTTP/1.1 で通信できる
	if err := http2.ConfigureTransport(t); err != nil {
		slog.Warn("failed to enable http2, falling back to http/1.1", "error", err)
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
