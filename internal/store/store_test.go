package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeview/internal/resume"
)

const doc = `
workExp:
  title: Work Experience
  entries:
    - title: Engineer
project:
  title: Projects
`

func setupTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "resumes.db")
	s, err := Open(t.Context(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestPutGet(t *testing.T) {
	s, _ := setupTestStore(t)

	require.NoError(t, s.Put(t.Context(), "ada", []byte(doc)))

	got, err := s.Get(t.Context(), "ada")
	require.NoError(t, err)
	require.Contains(t, got, "workExp")
	assert.Equal(t, "Work Experience", got["workExp"].Title)
	assert.Equal(t, "Engineer", got["workExp"].Entries[0].Title)
}

func TestPut_ReplacesExisting(t *testing.T) {
	s, _ := setupTestStore(t)

	require.NoError(t, s.Put(t.Context(), "ada", []byte(doc)))
	require.NoError(t, s.Put(t.Context(), "ada", []byte("summary:\n  title: Summary\n")))

	got, err := s.Get(t.Context(), "ada")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Contains(t, got, "summary")

	entries, err := s.List(t.Context())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPut_Rejects(t *testing.T) {
	s, _ := setupTestStore(t)

	assert.ErrorIs(t, s.Put(t.Context(), "  ", []byte(doc)), ErrEmptyName)
	assert.ErrorIs(t, s.Put(t.Context(), "empty", []byte("")), resume.ErrEmptyDocument)
	assert.Error(t, s.Put(t.Context(), "bad", []byte("workExp: [")))

	entries, err := s.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, entries, "invalid documents are never stored")
}

func TestGet_NotFound(t *testing.T) {
	s, _ := setupTestStore(t)

	_, err := s.Get(t.Context(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_OrderedByName(t *testing.T) {
	s, _ := setupTestStore(t)

	for _, name := range []string{"zed", "ada", "max"} {
		require.NoError(t, s.Put(t.Context(), name, []byte(doc)))
	}

	entries, err := s.List(t.Context())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "ada", entries[0].Name)
	assert.Equal(t, "max", entries[1].Name)
	assert.Equal(t, "zed", entries[2].Name)
	assert.False(t, entries[0].UpdatedAt.IsZero())
}

func TestDelete(t *testing.T) {
	s, _ := setupTestStore(t)
	require.NoError(t, s.Put(t.Context(), "ada", []byte(doc)))

	require.NoError(t, s.Delete(t.Context(), "ada"))
	assert.ErrorIs(t, s.Delete(t.Context(), "ada"), ErrNotFound)
	_, err := s.Get(t.Context(), "ada")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPersistsAcrossReopen(t *testing.T) {
	s, path := setupTestStore(t)
	require.NoError(t, s.Put(t.Context(), "ada", []byte(doc)))
	require.NoError(t, s.Close())

	reopened, err := Open(t.Context(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	raw, err := reopened.Raw(t.Context(), "ada")
	require.NoError(t, err)
	assert.Equal(t, doc, string(raw))
}

func TestPragmasApplyToEveryConnection(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := t.Context()

	// Closing idle connections forces the next query onto a fresh one.
	s.db.SetMaxIdleConns(0)
	require.NoError(t, s.Put(ctx, "ada", []byte(doc)))

	var timeout int
	require.NoError(t, s.db.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout))
	assert.Equal(t, 5000, timeout)

	var mode string
	require.NoError(t, s.db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}
