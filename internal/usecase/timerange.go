package usecase

import "time"

// Recognized top-sellers range selectors.
const (
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
)

// WindowStart resolves a range selector to the start of its trailing
// window. The empty selector defaults to week; an unrecognized one
// means no time filter and yields the zero time.
func WindowStart(rangeKey string, now time.Time) time.Time {
	switch rangeKey {
	case "", RangeWeek:
		return now.AddDate(0, 0, -7)
	case RangeMonth:
		return now.AddDate(0, 0, -30)
	case RangeYear:
		return now.AddDate(0, 0, -365)
	default:
		return time.Time{}
	}
}
