// internal/daily/daily.go
//
// Calendar arithmetic for the daily puzzle.
//
// Every day boundary is a civil midnight in one fixed named zone (e.g.
// America/New_York), not a fixed UTC offset, so DST transitions move the
// boundary instant but never the day count.
//
// Day counting: both the epoch and "now" are reduced to their civil date in
// the zone, re-expressed as UTC midnights, and subtracted. UTC has no DST, so
// the difference is always a whole number of 24h days.

package daily

import (
	"time"
)

// Calendar resolves instants to day indexes and day boundaries.
type Calendar struct {
	loc    *time.Location
	epoch  time.Time // civil epoch date as a UTC midnight
	offset int       // added to every day index (testing aid)
}

// NewCalendar anchors day 0 at the civil date of epoch in loc.
func NewCalendar(loc *time.Location, epoch time.Time) *Calendar {
	return &Calendar{loc: loc, epoch: civilDate(epoch, loc)}
}

// WithOffset returns a copy of c whose day indexes are shifted by n days.
func (c *Calendar) WithOffset(n int) *Calendar {
	cp := *c
	cp.offset = n
	return &cp
}

// Location returns the fixed zone of the calendar.
func (c *Calendar) Location() *time.Location { return c.loc }

// DateKey returns the civil date of t in the calendar zone as YYYY-MM-DD.
func (c *Calendar) DateKey(t time.Time) string {
	return t.In(c.loc).Format("2006-01-02")
}

// DayIndex returns the number of whole civil days between the epoch and the
// civil date of now. An instant exactly at local midnight belongs to the new day.
func (c *Calendar) DayIndex(now time.Time) int {
	d := civilDate(now, c.loc).Sub(c.epoch)
	return int(d/(24*time.Hour)) + c.offset
}

// NextBoundary returns the instant of the next local midnight after now.
// time.Date resolves the offset for tomorrow's date itself, so a DST change
// between today and tomorrow is honoured.
func (c *Calendar) NextBoundary(now time.Time) time.Time {
	y, m, d := now.In(c.loc).Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, c.loc)
}

// Until returns the time left before the next boundary.
func (c *Calendar) Until(now time.Time) time.Duration {
	return c.NextBoundary(now).Sub(now)
}

// civilDate reduces t to its calendar date in loc, expressed as a UTC midnight.
func civilDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
