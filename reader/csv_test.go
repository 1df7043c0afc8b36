package reader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_CSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "people.csv",
		"Name, City ,AGE\n"+
			"asha, Hyderabad ,34\n"+
			"bala,Chennai,28\n")

	tbl, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "people", tbl.Name)
	assert.Equal(t, []string{"name", "city", "age"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, map[string]string{"name": "asha", "city": "Hyderabad", "age": "34"}, tbl.Rows[0])
	assert.Equal(t, map[string]string{"name": "bala", "city": "Chennai", "age": "28"}, tbl.Rows[1])
}

func TestLoad_BareNameFindsCSV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "people.csv", "name\nasha\n")

	tbl, err := Load(filepath.Join(dir, "people"))
	require.NoError(t, err)
	assert.Equal(t, "people", tbl.Name)
	require.Len(t, tbl.Rows, 1)
}

func TestLoad_NotFound(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing.csv")

	_, err := Load(name)
	require.Error(t, err)

	var nfErr *NotFoundError
	require.True(t, errors.As(err, &nfErr))
	assert.Equal(t, "CSV file '"+name+"' not found.", err.Error())
}

func TestLoad_RaggedRows(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sparse.csv",
		"name,occupation,city\n"+
			"asha,Chef\n"+
			"bala,Doctor,Chennai,extra\n")

	tbl, err := Load(path)
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "", tbl.Rows[0]["city"], "missing trailing cell becomes empty")
	assert.Equal(t, "Chennai", tbl.Rows[1]["city"], "extra cells are ignored")
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.csv", "")

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, tbl.Columns)
	assert.Empty(t, tbl.Rows)
}

func TestLoad_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "header.csv", "name,city\n")

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "city"}, tbl.Columns)
	assert.Empty(t, tbl.Rows)
}

func TestLoad_QuotedFields(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "quoted.csv",
		"name,notes\n"+
			"asha,\"likes cooking, mostly\"\n")

	tbl, err := Load(path)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "likes cooking, mostly", tbl.Rows[0]["notes"])
}
