package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunNow(t *testing.T) {
	t.Run("copies every source into a timestamped snapshot", func(t *testing.T) {
		srcDir := t.TempDir()
		backupDir := filepath.Join(t.TempDir(), "backups")

		booksPath := filepath.Join(srcDir, "bookData")
		readingPath := filepath.Join(srcDir, "ReadingData")
		require.NoError(t, os.WriteFile(booksPath, []byte("books\n"), 0644))
		require.NoError(t, os.WriteFile(readingPath, []byte("reading\n"), 0644))

		s := NewScheduler(backupDir, "0 3 * * *", booksPath, readingPath)
		require.NoError(t, s.RunNow())

		entries, err := os.ReadDir(backupDir)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		for _, entry := range entries {
			data, err := os.ReadFile(filepath.Join(backupDir, entry.Name()))
			require.NoError(t, err)
			assert.NotEmpty(t, data)
			assert.Contains(t, entry.Name(), ".bak")
		}
	})

	t.Run("skips sources that do not exist yet", func(t *testing.T) {
		backupDir := filepath.Join(t.TempDir(), "backups")
		missing := filepath.Join(t.TempDir(), "bookData")

		s := NewScheduler(backupDir, "0 3 * * *", missing)
		require.NoError(t, s.RunNow())

		entries, err := os.ReadDir(backupDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestScheduler_StartStop(t *testing.T) {
	t.Run("tracks running state", func(t *testing.T) {
		s := NewScheduler(t.TempDir(), "0 3 * * *")

		assert.False(t, s.IsRunning())
		assert.Nil(t, s.GetNextRunTime())

		require.NoError(t, s.Start())
		assert.True(t, s.IsRunning())
		require.NotNil(t, s.GetNextRunTime())

		s.Stop()
		assert.False(t, s.IsRunning())
	})

	t.Run("rejects an invalid schedule", func(t *testing.T) {
		s := NewScheduler(t.TempDir(), "not a schedule")

		err := s.Start()
		assert.Error(t, err)
		assert.False(t, s.IsRunning())
	})

	t.Run("start twice is a no-op", func(t *testing.T) {
		s := NewScheduler(t.TempDir(), "0 3 * * *")

		require.NoError(t, s.Start())
		require.NoError(t, s.Start())
		assert.True(t, s.IsRunning())
		s.Stop()
	})
}
