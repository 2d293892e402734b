package library

import (
	"strings"
	"time"
)

// NoDate is the marker used for an intentionally absent date, and for an
// absent series name. It is stored verbatim in the data file.
const NoDate = "NA"

// WordsUnknown marks a book whose word count was never provided.
const WordsUnknown = -1

// dateLayout is the ISO calendar date format used for start/end dates.
const dateLayout = "2006-01-02"

// Book is a single record in the reading log. Dates are kept as ISO
// "YYYY-MM-DD" strings (or NoDate) rather than time.Time so that the
// absent-value marker survives round trips through the data file unchanged.
type Book struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Series    string `json:"series"`
	Pages     int    `json:"pages"`
	Words     int    `json:"words"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// SameBook reports whether two books share the same identity: the
// case-insensitive (title, author, series) triple. Books carry no surrogate
// ID; this triple is what removal and deduplication compare.
func (b Book) SameBook(other Book) bool {
	return strings.EqualFold(b.Title, other.Title) &&
		strings.EqualFold(b.Author, other.Author) &&
		strings.EqualFold(b.Series, other.Series)
}

// IsEmpty reports whether the book is the empty sentinel used as the
// not-found result from lookups. A book without a title or author is empty.
func (b Book) IsEmpty() bool {
	return b.Title == "" || b.Author == ""
}

// CopyFrom overwrites every field with the values from other.
func (b *Book) CopyFrom(other Book) {
	b.Title = other.Title
	b.Author = other.Author
	b.Series = other.Series
	b.Pages = other.Pages
	b.Words = other.Words
	b.StartDate = other.StartDate
	b.EndDate = other.EndDate
}

// ParseDate parses an ISO calendar date field. The second result is false
// when the field holds NoDate or does not parse.
func ParseDate(s string) (time.Time, bool) {
	if strings.EqualFold(s, NoDate) {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a date the way the data file stores it.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
