package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string `parquet:"name"`
	City string `parquet:"city"`
	Age  int64  `parquet:"age"`
}

func writeParquet(t *testing.T, dir string, people []person) string {
	t.Helper()
	path := filepath.Join(dir, "people.parquet")

	file, err := os.Create(path)
	require.NoError(t, err)

	w := parquet.NewGenericWriter[person](file)
	_, err = w.Write(people)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, file.Close())

	return path
}

func TestLoad_Parquet(t *testing.T) {
	path := writeParquet(t, t.TempDir(), []person{
		{Name: "asha", City: "Hyderabad", Age: 34},
		{Name: "bala", City: "Chennai", Age: 28},
	})

	tbl, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "people", tbl.Name)
	assert.Equal(t, []string{"name", "city", "age"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, map[string]string{"name": "asha", "city": "Hyderabad", "age": "34"}, tbl.Rows[0])
	assert.Equal(t, map[string]string{"name": "bala", "city": "Chennai", "age": "28"}, tbl.Rows[1])
}

func TestLoad_ParquetNotFound(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing.parquet")

	_, err := Load(name)
	require.Error(t, err)
	assert.Equal(t, "Parquet file '"+name+"' not found.", err.Error())
}
