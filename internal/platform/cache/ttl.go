package cache

import "time"

// Kathmandu is Nepal Time (UTC+05:45, no daylight saving).
var Kathmandu = time.FixedZone("NPT", 5*3600+45*60)

// TTLFunc computes the TTL of an entry at write time.
type TTLFunc func() time.Duration

// Fixed returns a TTLFunc that always yields d.
func Fixed(d time.Duration) TTLFunc {
	return func() time.Duration { return d }
}

// UntilNext returns a TTLFunc yielding the time left until the next hour:00 in loc.
func UntilNext(loc *time.Location, hour int) TTLFunc {
	return func() time.Duration { return untilNext(time.Now(), loc, hour) }
}

func untilNext(now time.Time, loc *time.Location, hour int) time.Duration {
	now = now.In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, loc)
	// 既に過ぎている場合は翌日
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
