package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoad_Missing(t *testing.T) {
	got, err := Load[item](filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	want := []item{{"a", 1}, {"b", 2}, {"c", 3}}

	require.NoError(t, Save(path, want))

	got, err := Load[item](path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_NilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, Save[item](path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestSave_Indented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, Save(path, []item{{"a", 1}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[\n    {\n        \"name\": \"a\",\n        \"count\": 1\n    }\n]\n", string(data))
}

func TestSave_CreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "items.json")
	require.NoError(t, Save(path, []item{{"a", 1}}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.json")
	require.NoError(t, Save(path, []item{{"a", 1}}))
	require.NoError(t, Save(path, []item{{"b", 2}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "items.json", entries[0].Name())
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load[item](path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)

	// The broken file is left alone.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestLoad_WrongShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"a"}`), 0o644))

	_, err := Load[item](path)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestSave_UnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := Save(filepath.Join(blocker, "items.json"), []item{{"a", 1}})
	require.Error(t, err)
}
