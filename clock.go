package gdsii

import "time"

// Clock supplies the current time for a cell's or library's access
// timestamp. Core and internal packages never call time.Now() directly;
// only SystemClock, at this edge, does.
type Clock interface {
	Now() Date
}

// SystemClock is the real wall-clock Clock, built from time.Now().
type SystemClock struct{}

// Now returns the current local time as a Date with its modification and
// access fields both set to the same moment.
func (SystemClock) Now() Date {
	now := time.Now()
	d := Date{
		ModYear: int16(now.Year()), ModMonth: int16(now.Month()), ModDay: int16(now.Day()),
		ModHour: int16(now.Hour()), ModMinute: int16(now.Minute()), ModSecond: int16(now.Second()),
	}
	d.AccYear, d.AccMonth, d.AccDay = d.ModYear, d.ModMonth, d.ModDay
	d.AccHour, d.AccMinute, d.AccSecond = d.ModHour, d.ModMinute, d.ModSecond
	return d
}

// touch stamps c's access timestamp (only) from clock, leaving its
// modification timestamp untouched.
func (c *Cell) touch(clock Clock) {
	now := clock.Now()
	c.Date.AccYear, c.Date.AccMonth, c.Date.AccDay = now.AccYear, now.AccMonth, now.AccDay
	c.Date.AccHour, c.Date.AccMinute, c.Date.AccSecond = now.AccHour, now.AccMinute, now.AccSecond
}

// Touch stamps cell's access timestamp from clock, without altering its
// modification timestamp. Use after mutating a cell already held by a
// library, mirroring the "touch on re-save" behavior applications expect
// from a structure that gained a new revision but not a new creation time.
func (l *Library) Touch(cell *Cell, clock Clock) {
	cell.touch(clock)
}
