package store

import (
	"log"
	"sync"

	"github.com/mpetrov/bookshelf/internal/library"
	"github.com/mpetrov/bookshelf/internal/readinglog"
)

// Session owns one loaded book collection and one reading log for the
// lifetime of an editing session. Every consumer mutates through the
// session, never through a shared ambient reference, and flushes back to the
// store after each mutation. The mutex exists for the HTTP consumer; the
// core structures themselves are single-threaded.
type Session struct {
	mu      sync.Mutex
	store   *Store
	Books   *library.Collection
	Reading *readinglog.Log
}

// Open loads both data files into a fresh session. Decode failures are
// logged and the session keeps whatever was parsed, per the
// usable-if-incomplete policy; only the error from opening an existing but
// unreadable file would have been fatal upstream.
func Open(s *Store) *Session {
	books, err := s.LoadBooks()
	if err != nil {
		log.Printf("store: loading books: %v (continuing with %d parsed)", err, books.Size())
	}
	reading, err := s.LoadReadingLog()
	if err != nil {
		log.Printf("store: loading reading log: %v (continuing with %d parsed)", err, reading.Len())
	}
	return &Session{store: s, Books: books, Reading: reading}
}

// Lock serializes access for a multi-request consumer. Unlock with the
// returned function.
func (sess *Session) Lock() func() {
	sess.mu.Lock()
	return sess.mu.Unlock
}

// FlushBooks writes the collection back to disk. The in-memory state stays
// valid and editable even when the write fails.
func (sess *Session) FlushBooks() error {
	return sess.store.SaveBooks(sess.Books)
}

// FlushReading writes the reading log back to disk.
func (sess *Session) FlushReading() error {
	return sess.store.SaveReadingLog(sess.Reading)
}
