package linestore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todos/internal/model"
)

func newTestStore(t *testing.T) (*Store, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	path := filepath.Join(t.TempDir(), DefaultFileName)
	return New(path, WithLogger(NewLogger(&logs))), &logs
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	tasks, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSaveThenLoad_PreservesOrder(t *testing.T) {
	s, _ := newTestStore(t)
	want := []model.Task{
		{ID: 5, Text: "five"},
		{ID: 2, Done: true, Text: "two|with pipe"},
		{ID: 9, Text: "multi\nline\r\ntext \\ slash"},
	}

	require.NoError(t, s.Save(want))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_FileFormat(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Save([]model.Task{{ID: 1, Text: "Buy milk"}, {ID: 2, Done: true, Text: `a|b\c`}}))

	b, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "1|0|Buy milk\n2|1|a\\pb\\\\c\n", string(b))
}

func TestSave_EmptyListWritesEmptyFile(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Save(nil))

	b, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Empty(t, b)

	tasks, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Save([]model.Task{{ID: 1, Text: "a"}}))
	require.NoError(t, s.Save([]model.Task{{ID: 1, Text: "b"}}))

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, DefaultFileName, entries[0].Name())
}

func TestSave_Permissions(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Save([]model.Task{{ID: 1, Text: "a"}}))
	fi, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), fi.Mode().Perm())

	require.NoError(t, os.Chmod(s.Path(), 0o600))
	require.NoError(t, s.Save([]model.Task{{ID: 1, Text: "b"}}))
	fi, err = os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
}

func TestSave_FailsWhenDirectoryMissing(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope", DefaultFileName))
	assert.Error(t, s.Save([]model.Task{{ID: 1, Text: "x"}}))
}

func TestLoad_SkipsBlankAndMalformedLines(t *testing.T) {
	s, logs := newTestStore(t)
	data := "1|0|first\n\n   \nnot a record\n2|7|bad flag\r\n3|1|third\r\n\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(data), 0o644))

	tasks, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []model.Task{
		{ID: 1, Text: "first"},
		{ID: 3, Done: true, Text: "third"},
	}, tasks)

	out := logs.String()
	assert.Contains(t, out, "couldn't parse line")
	assert.Contains(t, out, "not a record")
	assert.Contains(t, out, "bad flag")
}

func TestLoad_LastLineWithoutNewline(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("1|0|a\n2|0|b"), 0o644))

	tasks, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestLoad_UnreadableIsError(t *testing.T) {
	dir := t.TempDir()
	s := New(dir) // a directory cannot be read as a store file
	_, err := s.Load()
	assert.Error(t, err)
}

func TestRemove(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Remove(), "missing file")

	require.NoError(t, s.Save([]model.Task{{ID: 1, Text: "x"}}))
	require.NoError(t, s.Remove())
	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))
}
