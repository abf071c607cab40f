package cache

import (
	"time"
)

// TimeUntilNextUTCMidnight は次の 00:00 (UTC) までの期間を返します。
// 日次データはこの時刻に更新されます。
func TimeUntilNextUTCMidnight() time.Duration {
	return untilNextMidnight(time.Now().UTC())
}

func untilNextMidnight(now time.Time) time.Duration {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	return next.Sub(now)
}
