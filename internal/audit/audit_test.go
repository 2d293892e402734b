package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditor_SaveMutation(t *testing.T) {
	t.Run("writes a JSON receipt with a uuid filename", func(t *testing.T) {
		dir := t.TempDir()
		a := NewAuditor(dir)

		filename, err := a.SaveMutation("book_added", map[string]string{"title": "Dune"})
		require.NoError(t, err)
		assert.Contains(t, filename, ".json")

		data, err := os.ReadFile(filepath.Join(dir, filename))
		require.NoError(t, err)

		var record Record
		require.NoError(t, json.Unmarshal(data, &record))
		assert.Equal(t, "book_added", record.Action)
		assert.False(t, record.RecordedAt.IsZero())

		payload, ok := record.Payload.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Dune", payload["title"])
	})

	t.Run("creates the audit directory on first use", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "audit")
		a := NewAuditor(dir)

		_, err := a.SaveMutation("reading_logged", nil)
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("distinct mutations get distinct files", func(t *testing.T) {
		dir := t.TempDir()
		a := NewAuditor(dir)

		first, err := a.SaveMutation("book_added", nil)
		require.NoError(t, err)
		second, err := a.SaveMutation("book_deleted", nil)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}
