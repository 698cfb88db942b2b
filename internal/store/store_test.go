package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestCollection_MissingFileIsEmpty(t *testing.T) {
	col := NewCollection[record](t.TempDir(), "things")

	records, err := col.ReadAll()
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestCollection_Roundtrip(t *testing.T) {
	col := NewCollection[record](t.TempDir(), "things")

	in := []record{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}
	require.NoError(t, col.WriteAll(in))

	out, err := col.ReadAll()
	assert.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCollection_FileShape(t *testing.T) {
	dir := t.TempDir()
	col := NewCollection[record](dir, "things")
	require.NoError(t, col.WriteAll([]record{{ID: "1", Name: "first"}}))

	data, err := os.ReadFile(filepath.Join(dir, "things.json"))
	require.NoError(t, err)

	// The document is keyed by the collection name
	var doc map[string][]record
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc["things"], 1)
	assert.Equal(t, "first", doc["things"][0].Name)
}

func TestCollection_CorruptFileFailsClosed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "things.json"), []byte("{not json"), 0o644))

	col := NewCollection[record](dir, "things")
	_, err := col.ReadAll()
	assert.Error(t, err)
}

func TestCollection_Update(t *testing.T) {
	col := NewCollection[record](t.TempDir(), "things")
	require.NoError(t, col.WriteAll([]record{{ID: "1", Name: "first"}}))

	err := col.Update(func(records []record) ([]record, error) {
		return append(records, record{ID: "2", Name: "second"}), nil
	})
	assert.NoError(t, err)

	out, err := col.ReadAll()
	assert.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestCollection_UpdateErrorLeavesFileUntouched(t *testing.T) {
	col := NewCollection[record](t.TempDir(), "things")
	require.NoError(t, col.WriteAll([]record{{ID: "1", Name: "first"}}))

	err := col.Update(func(records []record) ([]record, error) {
		return nil, assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	out, err := col.ReadAll()
	assert.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestCollection_NilWritesEmptyArray(t *testing.T) {
	dir := t.TempDir()
	col := NewCollection[record](dir, "things")
	require.NoError(t, col.WriteAll(nil))

	data, err := os.ReadFile(filepath.Join(dir, "things.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"things": []`)
}
