package client

import (
	"time"

	"skydash/pkg/consts"
)

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// RecentWindow is the range shown as "past days": it ends PublishLagDays before
// today and starts WindowSpanDays before its end.
func RecentWindow(now time.Time) (start, end time.Time) {
	end = Day(now).AddDate(0, 0, -consts.PublishLagDays)
	start = end.AddDate(0, 0, -consts.WindowSpanDays)
	return start, end
}

// NeoWindow is today through NeoLookaheadDays ahead.
func NeoWindow(now time.Time) (start, end time.Time) {
	start = Day(now)
	end = start.AddDate(0, 0, consts.NeoLookaheadDays)
	return start, end
}

// DaysInclusive counts calendar days in [start, end].
func DaysInclusive(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	n := 0
	for d := Day(start); !d.After(Day(end)); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}
