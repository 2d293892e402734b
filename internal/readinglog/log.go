package readinglog

import (
	"sort"
	"time"
)

// Log is a sparse mapping from calendar day to pages read on that day. Keys
// are normalized to midnight UTC so that two timestamps on the same calendar
// day always collide. Log is not safe for concurrent use; the owning session
// serializes access.
type Log struct {
	pages map[time.Time]float64
}

// New returns an empty reading log.
func New() *Log {
	return &Log{pages: make(map[time.Time]float64)}
}

// Day truncates a timestamp to its calendar day in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RecordPages logs pages read on a day. A second record for the same day is
// added to the stored value, never overwritten. Negative page counts are the
// caller's responsibility to reject; the log itself only accumulates.
func (l *Log) RecordPages(date time.Time, pages float64) {
	l.pages[Day(date)] += pages
}

// Has reports whether any pages were logged on the given day.
func (l *Log) Has(date time.Time) bool {
	_, ok := l.pages[Day(date)]
	return ok
}

// PagesOn returns the pages logged on the given day, 0 when none.
func (l *Log) PagesOn(date time.Time) float64 {
	return l.pages[Day(date)]
}

// Len returns the number of distinct days with a logged entry.
func (l *Log) Len() int {
	return len(l.pages)
}

// Dates returns every logged day in ascending order.
func (l *Log) Dates() []time.Time {
	dates := make([]time.Time, 0, len(l.pages))
	for d := range l.pages {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Earliest returns the first logged day. The second result is false when the
// log is empty.
func (l *Log) Earliest() (time.Time, bool) {
	var earliest time.Time
	found := false
	for d := range l.pages {
		if !found || d.Before(earliest) {
			earliest = d
			found = true
		}
	}
	return earliest, found
}

// TotalPages returns the sum of every logged value.
func (l *Log) TotalPages() float64 {
	var total float64
	for _, p := range l.pages {
		total += p
	}
	return total
}

// PagesInYear returns the sum of pages logged in the given calendar year.
func (l *Log) PagesInYear(year int) float64 {
	var total float64
	for d, p := range l.pages {
		if d.Year() == year {
			total += p
		}
	}
	return total
}

// PagesInMonth returns the sum of pages logged in the given month of the
// given year.
func (l *Log) PagesInMonth(year int, month time.Month) float64 {
	var total float64
	for d, p := range l.pages {
		if d.Year() == year && d.Month() == month {
			total += p
		}
	}
	return total
}

// CurrentStreak counts the consecutive days with a logged entry ending at
// today. A day without an entry breaks the streak; when today itself has no
// entry the streak is 0.
func (l *Log) CurrentStreak(today time.Time) int {
	streak := 0
	for d := Day(today); l.Has(d); d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// AveragePagesPerDayOverall divides the total pages logged by the calendar
// days elapsed between the earliest logged day and today. Days without an
// entry still count as elapsed. The second result is false when the log is
// empty or the elapsed span is zero days.
func (l *Log) AveragePagesPerDayOverall(today time.Time) (float64, bool) {
	earliest, ok := l.Earliest()
	if !ok {
		return 0, false
	}
	days := int(Day(today).Sub(earliest).Hours() / 24)
	if days <= 0 {
		return 0, false
	}
	return l.TotalPages() / float64(days), true
}
