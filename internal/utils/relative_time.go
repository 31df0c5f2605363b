package utils

import (
	"fmt"
	"math"
	"time"
)

// CalendarDateLayout renders dates older than a week, e.g. 5/1/2024.
const CalendarDateLayout = "1/2/2006"

// RelativeTime describes t relative to now: "just now", "5 minutes ago",
// "1 hour ago", "3 days ago", or the calendar date once a week has passed.
// Elapsed time is floored to whole seconds and every boundary is exclusive.
func RelativeTime(t, now time.Time) string {
	seconds := int64(math.Floor(now.Sub(t).Seconds()))

	switch {
	case seconds < 60:
		return "just now"
	case seconds < 3600:
		return ago(seconds/60, "minute")
	case seconds < 86400:
		return ago(seconds/3600, "hour")
	case seconds < 7*86400:
		return ago(seconds/86400, "day")
	default:
		return t.In(now.Location()).Format(CalendarDateLayout)
	}
}

func ago(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
