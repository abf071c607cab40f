// Package ratelimiter はAPI呼び出しの頻度を制限する仕組みを提供します。
package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// AlphaVantageFreeTier は無料プランの上限（1分あたり5回）です。
const AlphaVantageFreeTier = 5

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
// ctx がキャンセルされると待機を打ち切り、ctx.Err() を返します。
type RateLimiterInterface interface {
	WaitIfNeeded(ctx context.Context) error
}

// RateLimiter は、API呼び出しなどの操作の頻度を制限します。
// 複数のゴルーチンから同時に呼び出しても安全です。
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // interval あたりの上限
	interval  time.Duration // どの単位でリセットするか
	count     int
	lastReset time.Time

	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// sleepContext は d だけ待機します。ctx が先に終われば ctx.Err() を返します。
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// limit が 0 以下の場合は AlphaVantageFreeTier を使用します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = AlphaVantageFreeTier
	}
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
		now:       time.Now,
		sleep:     sleepContext,
	}
}

// WaitIfNeeded はレートリミットの上限に達しているかを確認し、必要であれば待機します。
// 待機中はロックを保持するため、後続の呼び出しも順番に待たされます。
// 待機中に ctx が終わった場合、この呼び出しはカウントされません。
func (rl *RateLimiter) WaitIfNeeded(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	// interval を過ぎたらカウントリセット
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		wait := rl.interval - now.Sub(rl.lastReset)
		if wait > 0 {
			slog.Info("rate limit reached, waiting", "limit", rl.limit, "wait", wait)
			if err := rl.sleep(ctx, wait); err != nil {
				rl.count--
				return err
			}
		}
		// リセット
		rl.count = 1
		rl.lastReset = rl.now()
	}
	return nil
}
