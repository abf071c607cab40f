package ratelimiter

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock はsleepで時間が進む疑似時計です。
type fakeClock struct {
	mu     sync.Mutex
	t      time.Time
	sleeps []time.Duration
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) sleep(ctx context.Context, d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	if err := ctx.Err(); err != nil {
		return err
	}
	c.t = c.t.Add(d)
	return nil
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestLimiter(limit int, interval time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(limit, interval)
	rl.now = clock.now
	rl.sleep = clock.sleep
	rl.lastReset = clock.now()
	return rl, clock
}

// TestNewRateLimiter_DefaultLimit は上限未指定時に無料プランの上限が使われることを検証します。
func TestNewRateLimiter_DefaultLimit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, AlphaVantageFreeTier, NewRateLimiter(0, time.Minute).limit)
	assert.Equal(t, 3, NewRateLimiter(3, time.Minute).limit)
}

// TestRateLimiter_WithinLimit は上限以内の呼び出しでは待機しないことを検証します。
func TestRateLimiter_WithinLimit(t *testing.T) {
	t.Parallel()

	rl, clock := newTestLimiter(5, time.Minute)
	for i := 0; i < 5; i++ {
		assert.NoError(t, rl.WaitIfNeeded(context.Background()))
	}
	assert.Empty(t, clock.sleeps)
}

// TestRateLimiter_WaitsForRemainingInterval は上限超過時に残り時間だけ待機することを検証します。
func TestRateLimiter_WaitsForRemainingInterval(t *testing.T) {
	t.Parallel()

	rl, clock := newTestLimiter(2, time.Minute)
	assert.NoError(t, rl.WaitIfNeeded(context.Background()))
	clock.advance(20 * time.Second)
	assert.NoError(t, rl.WaitIfNeeded(context.Background()))
	assert.NoError(t, rl.WaitIfNeeded(context.Background()))

	assert.Equal(t, []time.Duration{40 * time.Second}, clock.sleeps)
	assert.Equal(t, 1, rl.count)
}

// TestRateLimiter_ResetsAfterInterval は interval 経過後にカウントがリセットされることを検証します。
func TestRateLimiter_ResetsAfterInterval(t *testing.T) {
	t.Parallel()

	rl, clock := newTestLimiter(1, time.Minute)
	assert.NoError(t, rl.WaitIfNeeded(context.Background()))
	clock.advance(time.Minute)
	assert.NoError(t, rl.WaitIfNeeded(context.Background()))

	assert.Empty(t, clock.sleeps)
}

// TestRateLimiter_Concurrent は並行呼び出しでもカウントが失われないことを検証します。
func TestRateLimiter_Concurrent(t *testing.T) {
	t.Parallel()

	rl, clock := newTestLimiter(5, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, rl.WaitIfNeeded(context.Background()))
		}()
	}
	wg.Wait()

	// 10 calls with a limit of 5 per window: exactly one wait
	assert.Len(t, clock.sleeps, 1)
	assert.Equal(t, 5, rl.count)
}

// TestRateLimiter_CanceledBeforeWait はキャンセル済みのコンテキストでは待機もカウントもしないことを検証します。
func TestRateLimiter_CanceledBeforeWait(t *testing.T) {
	t.Parallel()

	rl, clock := newTestLimiter(1, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, rl.WaitIfNeeded(ctx), context.Canceled)
	assert.Equal(t, 0, rl.count)
	assert.Empty(t, clock.sleeps)
}

// TestRateLimiter_CanceledDuringWait は待機中のキャンセルでエラーを返し、呼び出しがカウントされないことを検証します。
func TestRateLimiter_CanceledDuringWait(t *testing.T) {
	t.Parallel()

	rl, clock := newTestLimiter(1, time.Minute)
	assert.NoError(t, rl.WaitIfNeeded(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// ctx.Err() の事前チェックを通過させるため、sleep の中でだけキャンセルを見せる
	rl.sleep = func(_ context.Context, d time.Duration) error {
		return clock.sleep(ctx, d)
	}

	assert.ErrorIs(t, rl.WaitIfNeeded(context.Background()), context.Canceled)
	assert.Equal(t, 1, rl.count)
	assert.Equal(t, []time.Duration{time.Minute}, clock.sleeps)
}

// TestSleepContext は実際のタイマーでもキャンセルで即座に戻ることを検証します。
func TestSleepContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
	assert.Less(t, time.Since(start), time.Second)

	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))
}
