package utils

import "time"

// Day-window helpers for the organization's local timezone. Every "today" /
// "due today" / date-range query goes through these so that evening
// timestamps in timezones ahead of UTC land on the right calendar day. A
// naive UTC-midnight truncation would misclassify them.

// StartOfDay returns the instant of 00:00:00.000 on t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// EndOfDay returns the instant of 23:59:59.999 on t's calendar day in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999_000_000, loc)
}

// IsSameDay reports whether t and ref fall on the same calendar day in loc.
func IsSameDay(t, ref time.Time, loc *time.Location) bool {
	a := t.In(loc)
	b := ref.In(loc)
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// StartOfWeek returns midnight of the Sunday starting t's week in loc.
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return StartOfDay(local.AddDate(0, 0, -int(local.Weekday())), loc)
}

// StartOfMonth returns midnight of the first day of t's month in loc.
func StartOfMonth(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
}
