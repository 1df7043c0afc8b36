package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func peopleTable() *Table {
	return &Table{
		Name:    "people",
		Columns: []string{"name", "occupation", "city", "age"},
		Rows: []map[string]string{
			{"name": "asha", "occupation": "Chef", "city": "Hyderabad", "age": "34"},
			{"name": "bala", "occupation": "Chef", "city": "Chennai", "age": "28"},
			{"name": "chitra", "occupation": "Doctor", "city": "Hyderabad", "age": "45"},
		},
	}
}

func mustParse(t *testing.T, text string) *Query {
	t.Helper()
	q, err := Parse(text)
	require.NoError(t, err)
	return q
}

func TestExecute_SelectStarRoundTrip(t *testing.T) {
	tbl := peopleTable()

	res, err := Execute(mustParse(t, "select * from people"), tbl)
	require.NoError(t, err)

	assert.False(t, res.IsCount)
	assert.Equal(t, tbl.Columns, res.Columns)
	assert.Equal(t, tbl.Rows, res.Rows)
}

func TestExecute_ProjectionOrder(t *testing.T) {
	tbl := peopleTable()

	res, err := Execute(mustParse(t, "select city, name from people"), tbl)
	require.NoError(t, err)

	assert.Equal(t, []string{"city", "name"}, res.Columns)
	require.Len(t, res.Rows, 3)
	assert.Equal(t, map[string]string{"city": "Hyderabad", "name": "asha"}, res.Rows[0])
	assert.Equal(t, map[string]string{"city": "Chennai", "name": "bala"}, res.Rows[1])
}

func TestExecute_FilterCaseInsensitive(t *testing.T) {
	tbl := peopleTable()

	for _, text := range []string{
		`select name from people where city = "hyderabad"`,
		`select name from people where city = "HYDERABAD"`,
	} {
		res, err := Execute(mustParse(t, text), tbl)
		require.NoError(t, err, text)
		require.Len(t, res.Rows, 2, text)
		assert.Equal(t, "asha", res.Rows[0]["name"])
		assert.Equal(t, "chitra", res.Rows[1]["name"])
	}
}

func TestExecute_FilterTrimsStoredValues(t *testing.T) {
	tbl := &Table{
		Name:    "people",
		Columns: []string{"name", "city"},
		Rows: []map[string]string{
			{"name": "bala", "city": " Chennai "},
		},
	}

	res, err := Execute(mustParse(t, `select name from people where city = "Chennai"`), tbl)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
}

func TestExecute_ChainGroupsLeftToRight(t *testing.T) {
	// (occupation = "Chef" OR occupation = "Doctor") AND city = "Hyderabad"
	// per the documented left-to-right grouping. Hand-computed: asha
	// (Chef, Hyderabad) and chitra (Doctor, Hyderabad) match; bala
	// (Chef, Chennai) fails the trailing AND. Conventional precedence
	// would instead keep bala too.
	tbl := peopleTable()

	res, err := Execute(mustParse(t,
		`select name from people where occupation = "Chef" OR occupation = "Doctor" AND city = "Hyderabad"`), tbl)
	require.NoError(t, err)

	require.Len(t, res.Rows, 2)
	assert.Equal(t, "asha", res.Rows[0]["name"])
	assert.Equal(t, "chitra", res.Rows[1]["name"])
}

func TestExecute_NumericComparison(t *testing.T) {
	tbl := peopleTable()

	res, err := Execute(mustParse(t, "select name from people where age > 30"), tbl)
	require.NoError(t, err)

	require.Len(t, res.Rows, 2)
	assert.Equal(t, "asha", res.Rows[0]["name"])
	assert.Equal(t, "chitra", res.Rows[1]["name"])
}

func TestExecute_CountStarVsColumn(t *testing.T) {
	tbl := &Table{
		Name:    "people",
		Columns: []string{"name", "occupation"},
		Rows: []map[string]string{
			{"name": "asha", "occupation": "Chef"},
			{"name": "bala", "occupation": ""},
			{"name": "chitra", "occupation": "Doctor"},
		},
	}

	star, err := Execute(mustParse(t, "select count(*) from people"), tbl)
	require.NoError(t, err)
	assert.True(t, star.IsCount)
	assert.Equal(t, int64(3), star.Count)
	assert.Equal(t, "COUNT(*)", star.Label)
	assert.Nil(t, star.Rows)

	col, err := Execute(mustParse(t, "select count(occupation) from people"), tbl)
	require.NoError(t, err)
	assert.Equal(t, int64(2), col.Count)
	assert.Equal(t, "COUNT(occupation)", col.Label)
}

func TestExecute_CountAfterFilter(t *testing.T) {
	tbl := peopleTable()

	res, err := Execute(mustParse(t, `select count(*) from people where city = "Hyderabad"`), tbl)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Count)
}

func TestExecute_UnknownColumn(t *testing.T) {
	tbl := peopleTable()

	tests := []struct {
		name  string
		query string
		col   string
	}{
		{name: "in projection", query: "select ghost from people", col: "ghost"},
		{name: "in filter", query: `select name from people where ghost = "x"`, col: "ghost"},
		{name: "in count", query: "select count(ghost) from people", col: "ghost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Execute(mustParse(t, tt.query), tbl)
			require.Error(t, err)

			var colErr *UnknownColumnError
			require.True(t, errors.As(err, &colErr))
			assert.Equal(t, tt.col, colErr.Column)
			assert.Equal(t, "Column 'ghost' not found.", err.Error())
		})
	}
}

func TestExecute_TableCheck(t *testing.T) {
	tbl := peopleTable()

	_, err := Execute(mustParse(t, "select * from employees"), tbl)
	var tblErr *UnknownTableError
	require.True(t, errors.As(err, &tblErr))
	assert.Equal(t, "employees", tblErr.Table)

	// Extension and case variants address the same table
	for _, text := range []string{
		"select * from people",
		"select * from people.csv",
		"select * from PEOPLE",
	} {
		_, err := Execute(mustParse(t, text), tbl)
		assert.NoError(t, err, text)
	}
}

func TestExecute_Idempotent(t *testing.T) {
	tbl := peopleTable()
	snapshot := peopleTable()
	q := mustParse(t, `select name from people where occupation = "Chef"`)

	first, err := Execute(q, tbl)
	require.NoError(t, err)
	second, err := Execute(q, tbl)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot.Rows, tbl.Rows, "execution must not mutate input rows")
}

func TestExecute_NoMatches(t *testing.T) {
	tbl := peopleTable()

	res, err := Execute(mustParse(t, `select * from people where city = "Mumbai"`), tbl)
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
	assert.Equal(t, tbl.Columns, res.Columns)
}
