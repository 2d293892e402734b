// Package store persists the book collection and reading log as two flat
// text files and owns the session context that the presentation layer works
// against. A save fully overwrites the backing file; there are no partial
// writes and no versioning.
package store

import (
	"fmt"
	"log"
	"os"

	"github.com/mpetrov/bookshelf/internal/codec"
	"github.com/mpetrov/bookshelf/internal/library"
	"github.com/mpetrov/bookshelf/internal/readinglog"
)

// Store knows where the two data files live.
type Store struct {
	BooksPath   string
	ReadingPath string
}

// New returns a store over the given file paths.
func New(booksPath, readingPath string) *Store {
	return &Store{BooksPath: booksPath, ReadingPath: readingPath}
}

// LoadBooks reads the book data file. A missing file is a first run and
// yields an empty collection with no error. A malformed file yields the
// records parsed before the bad line together with the decode error, so the
// caller can keep running on partial data.
func (s *Store) LoadBooks() (*library.Collection, error) {
	f, err := os.Open(s.BooksPath)
	if os.IsNotExist(err) {
		log.Printf("store: %s not found, starting with an empty collection", s.BooksPath)
		return library.NewCollection(), nil
	}
	if err != nil {
		return library.NewCollection(), fmt.Errorf("opening %s: %w", s.BooksPath, err)
	}
	defer f.Close()

	col, err := codec.DecodeBooks(f)
	if err != nil {
		return col, fmt.Errorf("decoding %s: %w", s.BooksPath, err)
	}
	return col, nil
}

// LoadReadingLog reads the reading data file with the same missing-file and
// partial-decode behavior as LoadBooks. Repeated dates merge additively.
func (s *Store) LoadReadingLog() (*readinglog.Log, error) {
	f, err := os.Open(s.ReadingPath)
	if os.IsNotExist(err) {
		log.Printf("store: %s not found, starting with an empty reading log", s.ReadingPath)
		return readinglog.New(), nil
	}
	if err != nil {
		return readinglog.New(), fmt.Errorf("opening %s: %w", s.ReadingPath, err)
	}
	defer f.Close()

	rl, err := codec.DecodeReadingLog(f)
	if err != nil {
		return rl, fmt.Errorf("decoding %s: %w", s.ReadingPath, err)
	}
	return rl, nil
}

// SaveBooks overwrites the book data file with the collection, sorted by
// title first. Insertion order is not meaningful state, so normalizing it
// here keeps the file diff-friendly.
func (s *Store) SaveBooks(col *library.Collection) error {
	col.SortByTitle()

	f, err := os.Create(s.BooksPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", s.BooksPath, err)
	}
	if err := codec.EncodeBooks(f, col); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", s.BooksPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", s.BooksPath, err)
	}
	return nil
}

// SaveReadingLog overwrites the reading data file with the log in date order.
func (s *Store) SaveReadingLog(rl *readinglog.Log) error {
	f, err := os.Create(s.ReadingPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", s.ReadingPath, err)
	}
	if err := codec.EncodeReadingLog(f, rl); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", s.ReadingPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", s.ReadingPath, err)
	}
	return nil
}
