// Package stats derives summary statistics from a book collection and a
// reading log. Every function borrows its inputs read-only; computations
// whose preconditions are unmet report an explicit unavailable result
// instead of faulting.
package stats

import (
	"time"

	"github.com/mpetrov/bookshelf/internal/library"
	"github.com/mpetrov/bookshelf/internal/readinglog"
)

// General holds the headline figures shown on the statistics page.
type General struct {
	TotalBooks        int     `json:"total_books"`
	AvgBookLength     float64 `json:"avg_book_length"`
	TotalPagesRead    float64 `json:"total_pages_read"`
	CurrentStreak     int     `json:"current_streak"`
	AvgPagesPerDay    float64 `json:"avg_pages_per_day"`
	AvgPagesPerDaySet bool    `json:"avg_pages_per_day_set"`
}

// Snapshot holds the figures for the period containing today.
type Snapshot struct {
	BooksThisMonth int     `json:"books_this_month"`
	PagesThisMonth float64 `json:"pages_this_month"`
	BooksThisYear  int     `json:"books_this_year"`
	PagesToday     float64 `json:"pages_today"`
	PagesThisYear  float64 `json:"pages_this_year"`
}

// Rankings positions one book against the rest of the collection.
// AvgPagesPerDay is -1 when DaysToRead is unknown or zero.
type Rankings struct {
	PageRank       int     `json:"page_rank"`
	WordRank       int     `json:"word_rank"`
	OutOf          int     `json:"out_of"`
	DaysToRead     int     `json:"days_to_read"`
	AvgPagesPerDay float64 `json:"avg_pages_per_day"`
}

// GeneralStats computes the overall figures for a collection and log.
// AvgBookLength averages only books with a positive page count.
func GeneralStats(col *library.Collection, log *readinglog.Log, today time.Time) General {
	g := General{TotalBooks: col.Size()}

	var pageSum, counted int
	for _, b := range col.All() {
		if b.Pages > 0 {
			pageSum += b.Pages
			counted++
		}
	}
	if counted > 0 {
		g.AvgBookLength = float64(pageSum) / float64(counted)
	}

	g.TotalPagesRead = log.TotalPages()
	g.CurrentStreak = log.CurrentStreak(today)
	g.AvgPagesPerDay, g.AvgPagesPerDaySet = log.AveragePagesPerDayOverall(today)
	return g
}

// DayOfWeekAverages buckets every calendar day from the earliest logged day
// through today by weekday and averages the pages read per bucket. Days
// without an entry contribute zero pages but still count, so the result is
// the true average per weekday, not the average over reading days only.
// The second result is false when the log is empty.
func DayOfWeekAverages(log *readinglog.Log, today time.Time) (map[time.Weekday]float64, bool) {
	earliest, ok := log.Earliest()
	if !ok {
		return nil, false
	}

	sums := make(map[time.Weekday]float64, 7)
	counts := make(map[time.Weekday]int, 7)
	end := readinglog.Day(today)
	for d := earliest; !d.After(end); d = d.AddDate(0, 0, 1) {
		sums[d.Weekday()] += log.PagesOn(d)
		counts[d.Weekday()]++
	}

	averages := make(map[time.Weekday]float64, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if counts[wd] > 0 {
			averages[wd] = sums[wd] / float64(counts[wd])
		} else {
			averages[wd] = 0
		}
	}
	return averages, true
}

// MonthlyBookCounts counts finished books per calendar month, folding all
// years together. Books without an end date are skipped.
func MonthlyBookCounts(col *library.Collection) [12]int {
	var counts [12]int
	for _, b := range col.All() {
		if end, ok := library.ParseDate(b.EndDate); ok {
			counts[int(end.Month())-1]++
		}
	}
	return counts
}

// CurrentPeriodSnapshot gathers the month-to-date and year-to-date figures
// for the period containing today.
func CurrentPeriodSnapshot(col *library.Collection, log *readinglog.Log, today time.Time) Snapshot {
	var s Snapshot
	for _, b := range col.All() {
		end, ok := library.ParseDate(b.EndDate)
		if !ok {
			continue
		}
		if end.Year() == today.Year() {
			s.BooksThisYear++
			if end.Month() == today.Month() {
				s.BooksThisMonth++
			}
		}
	}

	s.PagesToday = log.PagesOn(today)
	s.PagesThisMonth = log.PagesInMonth(today.Year(), today.Month())
	s.PagesThisYear = log.PagesInYear(today.Year())
	return s
}

// BookRankings ranks a book within the collection by page and word count.
// Rank 1 is the longest; ties share a rank. DaysToRead is -1 when either
// reading date is absent, and AvgPagesPerDay is -1 whenever the day count
// cannot be divided by.
func BookRankings(col *library.Collection, b library.Book) Rankings {
	r := Rankings{PageRank: 1, WordRank: 1, OutOf: col.Size()}
	for _, other := range col.All() {
		if other.Pages > b.Pages {
			r.PageRank++
		}
		if other.Words > b.Words {
			r.WordRank++
		}
	}

	r.DaysToRead = col.TimeToRead(b)
	if r.DaysToRead > 0 {
		r.AvgPagesPerDay = float64(b.Pages) / float64(r.DaysToRead)
	} else {
		r.AvgPagesPerDay = -1
	}
	return r
}
