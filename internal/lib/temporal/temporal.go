// Package temporal answers the two date questions every meetup rule asks:
// whether an instant is already gone and whether two instants share an hour.
package temporal

import "time"

// Clock returns the current instant. Services take one so tests can pin "now".
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now()
}

func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

// IsPast reports whether t is strictly before now.
func IsPast(now, t time.Time) bool {
	return t.Before(now)
}

// SameHourSlot reports whether a and b fall in the same calendar hour of the
// same day, read in a's location.
func SameHourSlot(a, b time.Time) bool {
	b = b.In(a.Location())

	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd && a.Hour() == b.Hour()
}

// DayBounds returns the half-open range [start, end) covering day's calendar
// date in loc: end is the following midnight.
func DayBounds(day time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := day.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)

	return start, start.AddDate(0, 0, 1)
}
