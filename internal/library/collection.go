package library

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// AuthorSortKey extracts the string a book is ordered by when sorting the
// collection by author. The default picks the second whitespace-separated
// token of the author name, falling back to the full name for single-token
// authors.
type AuthorSortKey func(Book) string

// DefaultAuthorSortKey sorts by the author's second name token.
func DefaultAuthorSortKey(b Book) string {
	fields := strings.Fields(b.Author)
	if len(fields) > 1 {
		return fields[1]
	}
	return b.Author
}

// Collection is an ordered, in-memory container of books. Ordering carries no
// meaning beyond what the last sort produced; the store re-sorts by title
// before every save. Collection is not safe for concurrent use; the owning
// session serializes access.
type Collection struct {
	books     []Book
	authorKey AuthorSortKey
}

// NewCollection returns an empty collection using the default author sort key.
func NewCollection() *Collection {
	return &Collection{authorKey: DefaultAuthorSortKey}
}

// SetAuthorSortKey replaces the author ordering policy.
func (c *Collection) SetAuthorSortKey(key AuthorSortKey) {
	if key != nil {
		c.authorKey = key
	}
}

// Add appends a book unconditionally. Duplicate identities are allowed here;
// AddValidated is the gate for user input.
func (c *Collection) Add(b Book) {
	c.books = append(c.books, b)
}

// AddAll appends every book in the slice.
func (c *Collection) AddAll(books []Book) {
	c.books = append(c.books, books...)
}

// AddValidated builds a book from raw string input, validates it and appends
// it. Title, author and page count are required; series defaults to NA,
// word count to unknown, dates to NA. The collection is untouched when an
// error is returned.
func (c *Collection) AddValidated(title, author, series, pages, words, start, end string) (Book, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(author) == "" || strings.TrimSpace(pages) == "" {
		return Book{}, fmt.Errorf("book title, author and page count are required")
	}

	pageCount, err := strconv.Atoi(strings.TrimSpace(pages))
	if err != nil {
		return Book{}, fmt.Errorf("page count %q is not a number", pages)
	}
	if pageCount < 0 {
		return Book{}, fmt.Errorf("page count must not be negative")
	}

	wordCount := WordsUnknown
	if strings.TrimSpace(words) != "" {
		wordCount, err = strconv.Atoi(strings.TrimSpace(words))
		if err != nil {
			return Book{}, fmt.Errorf("word count %q is not a number", words)
		}
	}

	if strings.TrimSpace(series) == "" {
		series = NoDate
	}
	if strings.TrimSpace(start) == "" {
		start = NoDate
	}
	if strings.TrimSpace(end) == "" {
		end = NoDate
	}

	b := Book{
		Title:     title,
		Author:    author,
		Series:    series,
		Pages:     pageCount,
		Words:     wordCount,
		StartDate: start,
		EndDate:   end,
	}
	c.books = append(c.books, b)
	return b, nil
}

// Get returns the book at a 0-based position. The caller is responsible for
// range-checking the index against Size.
func (c *Collection) Get(i int) Book {
	return c.books[i]
}

// Size returns the number of books.
func (c *Collection) Size() int {
	return len(c.books)
}

// All returns the underlying slice. Callers must treat it as read-only.
func (c *Collection) All() []Book {
	return c.books
}

// Remove deletes the first book whose identity triple matches b. It is a
// no-op when no book matches.
func (c *Collection) Remove(b Book) {
	for i := range c.books {
		if c.books[i].SameBook(b) {
			c.books = append(c.books[:i], c.books[i+1:]...)
			return
		}
	}
}

// SearchTitle returns the first book with the given title, compared
// case-insensitively, or the empty sentinel when no book matches.
func (c *Collection) SearchTitle(title string) Book {
	for _, b := range c.books {
		if strings.EqualFold(b.Title, title) {
			return b
		}
	}
	return Book{}
}

// SearchAuthor returns every book by the given author, in collection order.
func (c *Collection) SearchAuthor(author string) []Book {
	var out []Book
	for _, b := range c.books {
		if strings.EqualFold(b.Author, author) {
			out = append(out, b)
		}
	}
	return out
}

// SearchSeries returns every book in the given series, in collection order.
func (c *Collection) SearchSeries(series string) []Book {
	var out []Book
	for _, b := range c.books {
		if strings.EqualFold(b.Series, series) {
			out = append(out, b)
		}
	}
	return out
}

// SortByTitle orders books by title, case-insensitively, keeping the relative
// order of equal titles.
func (c *Collection) SortByTitle() {
	sort.SliceStable(c.books, func(i, j int) bool {
		return lessFold(c.books[i].Title, c.books[j].Title)
	})
}

// SortByAuthor orders books using the configured author sort key.
func (c *Collection) SortByAuthor() {
	sort.SliceStable(c.books, func(i, j int) bool {
		return lessFold(c.authorKey(c.books[i]), c.authorKey(c.books[j]))
	})
}

// SortBySeries orders books by series name, case-insensitively.
func (c *Collection) SortBySeries() {
	sort.SliceStable(c.books, func(i, j int) bool {
		return lessFold(c.books[i].Series, c.books[j].Series)
	})
}

// SortByPages orders books by page count, ascending.
func (c *Collection) SortByPages() {
	sort.SliceStable(c.books, func(i, j int) bool {
		return c.books[i].Pages < c.books[j].Pages
	})
}

// SortByWords orders books by word count, ascending. Unknown counts (-1)
// naturally sort first.
func (c *Collection) SortByWords() {
	sort.SliceStable(c.books, func(i, j int) bool {
		return c.books[i].Words < c.books[j].Words
	})
}

// SortByEndDate orders books by finish date, ascending. Books that were
// never finished (NA end date) sort after every dated book.
func (c *Collection) SortByEndDate() {
	sort.SliceStable(c.books, func(i, j int) bool {
		di, iOK := ParseDate(c.books[i].EndDate)
		dj, jOK := ParseDate(c.books[j].EndDate)
		switch {
		case iOK && jOK:
			return di.Before(dj)
		case iOK:
			return true
		default:
			return false
		}
	})
}

// TimeToRead returns the number of days between a book's start and end
// dates, or -1 when either date is absent or malformed.
func (c *Collection) TimeToRead(b Book) int {
	start, ok := ParseDate(b.StartDate)
	if !ok {
		return -1
	}
	end, ok := ParseDate(b.EndDate)
	if !ok {
		return -1
	}
	return int(end.Sub(start).Hours() / 24)
}

func lessFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
