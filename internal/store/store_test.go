package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrov/bookshelf/internal/library"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return New(filepath.Join(dir, "bookData"), filepath.Join(dir, "ReadingData"))
}

func TestStore_LoadBooks(t *testing.T) {
	t.Run("missing file is a first run, not an error", func(t *testing.T) {
		s := newTestStore(t)

		col, err := s.LoadBooks()
		require.NoError(t, err)
		assert.Equal(t, 0, col.Size())
	})

	t.Run("reads an existing file", func(t *testing.T) {
		s := newTestStore(t)
		content := "Dune@!@Frank Herbert@!@Dune@!@412@!@187000@!@NA@!@NA\n"
		require.NoError(t, os.WriteFile(s.BooksPath, []byte(content), 0644))

		col, err := s.LoadBooks()
		require.NoError(t, err)
		require.Equal(t, 1, col.Size())
		assert.Equal(t, "Dune", col.Get(0).Title)
	})

	t.Run("keeps the parsed prefix of a corrupt file", func(t *testing.T) {
		s := newTestStore(t)
		content := "Dune@!@Frank Herbert@!@Dune@!@412@!@187000@!@NA@!@NA\n" +
			"broken\n"
		require.NoError(t, os.WriteFile(s.BooksPath, []byte(content), 0644))

		col, err := s.LoadBooks()
		require.Error(t, err)
		assert.Equal(t, 1, col.Size())
	})
}

func TestStore_SaveBooks(t *testing.T) {
	t.Run("round trips the collection", func(t *testing.T) {
		s := newTestStore(t)

		col := library.NewCollection()
		col.Add(library.Book{Title: "Dune", Author: "Frank Herbert", Series: "Dune", Pages: 412, Words: 187000, StartDate: "2024-01-01", EndDate: "2024-01-20"})
		col.Add(library.Book{Title: "Hyperion", Author: "Dan Simmons", Series: "NA", Pages: 482, Words: -1, StartDate: "NA", EndDate: "NA"})
		require.NoError(t, s.SaveBooks(col))

		loaded, err := s.LoadBooks()
		require.NoError(t, err)
		require.Equal(t, 2, loaded.Size())
		assert.Equal(t, col.Get(0), loaded.Get(0))
		assert.Equal(t, col.Get(1), loaded.Get(1))
	})

	t.Run("normalizes file order by title", func(t *testing.T) {
		s := newTestStore(t)

		col := library.NewCollection()
		col.Add(library.Book{Title: "Zebra", Author: "X", Series: "NA", Pages: 1, Words: -1, StartDate: "NA", EndDate: "NA"})
		col.Add(library.Book{Title: "Apple", Author: "X", Series: "NA", Pages: 1, Words: -1, StartDate: "NA", EndDate: "NA"})
		require.NoError(t, s.SaveBooks(col))

		data, err := os.ReadFile(s.BooksPath)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "Apple@!@"))
		assert.True(t, strings.HasPrefix(lines[1], "Zebra@!@"))
	})
}

func TestStore_ReadingLog(t *testing.T) {
	t.Run("missing file yields an empty log", func(t *testing.T) {
		s := newTestStore(t)

		rl, err := s.LoadReadingLog()
		require.NoError(t, err)
		assert.Equal(t, 0, rl.Len())
	})

	t.Run("round trips the log", func(t *testing.T) {
		s := newTestStore(t)

		session := Open(s)
		session.Reading.RecordPages(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), 42.5)
		require.NoError(t, session.FlushReading())

		reloaded := Open(s)
		assert.Equal(t, 1, reloaded.Reading.Len())
		assert.Equal(t, 42.5, reloaded.Reading.PagesOn(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)))
	})
}

func TestSession(t *testing.T) {
	t.Run("opens with empty structures on a first run", func(t *testing.T) {
		session := Open(newTestStore(t))

		assert.Equal(t, 0, session.Books.Size())
		assert.Equal(t, 0, session.Reading.Len())
	})

	t.Run("survives a corrupt data file with partial state", func(t *testing.T) {
		s := newTestStore(t)
		content := "Dune@!@Frank Herbert@!@Dune@!@412@!@187000@!@NA@!@NA\n" +
			"broken\n"
		require.NoError(t, os.WriteFile(s.BooksPath, []byte(content), 0644))

		session := Open(s)
		assert.Equal(t, 1, session.Books.Size())
	})

	t.Run("mutations flush back to disk", func(t *testing.T) {
		s := newTestStore(t)
		session := Open(s)

		unlock := session.Lock()
		_, err := session.Books.AddValidated("Dune", "Frank Herbert", "Dune", "412", "", "", "")
		require.NoError(t, err)
		require.NoError(t, session.FlushBooks())
		unlock()

		reloaded := Open(s)
		require.Equal(t, 1, reloaded.Books.Size())
		assert.Equal(t, "Dune", reloaded.Books.Get(0).Title)
	})
}
