package cleaner

import (
	"math"
	"testing"
	"time"

	"github.com/Rana718/mockdb/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.FromColumns("people",
		&table.Column{Name: "Name", Values: []any{" Ann ", "bob", nil, "bob", nil}},
		&table.Column{Name: "Age", Values: []any{int64(30), int64(40), nil, int64(40), nil}},
		&table.Column{Name: "Score", Values: []any{1.5, math.Inf(1), 3.0, math.Inf(1), nil}},
	)
	require.NoError(t, err)
	return tbl
}

func values(t *testing.T, tbl *table.Table, name string) []any {
	t.Helper()
	v, err := tbl.Values(name)
	require.NoError(t, err)
	return v
}

func TestDropRows(t *testing.T) {
	c := New(nil)

	tbl := sample(t)
	op := c.DropRowsWithNull(tbl)
	assert.Equal(t, 2, op.Affected)
	assert.Equal(t, 3, tbl.Len())

	tbl = sample(t)
	op = c.DropRowsAllNull(tbl)
	assert.Equal(t, 1, op.Affected)
	assert.Equal(t, 4, tbl.Len())

	assert.Len(t, c.History(), 2)
	assert.Equal(t, "drop_rows_all_null", c.History()[1].Name)
}

func TestRemoveDuplicates(t *testing.T) {
	tbl := sample(t)
	op := New(nil).RemoveDuplicates(tbl)
	assert.Equal(t, 1, op.Affected)
	assert.Equal(t, []any{" Ann ", "bob", nil, nil}, values(t, tbl, "Name"))
}

func TestFillNull(t *testing.T) {
	c := New(nil)

	tbl := sample(t)
	op := c.FillNullWithZero(tbl)
	assert.Equal(t, 5, op.Affected)
	assert.Equal(t, int64(0), values(t, tbl, "Age")[2])

	tbl = sample(t)
	op, err := c.FillNull(tbl, "Name", "unknown")
	require.NoError(t, err)
	assert.Equal(t, 2, op.Affected)
	assert.Equal(t, "unknown", values(t, tbl, "Name")[4])

	_, err = c.FillNull(tbl, "Missing", "x")
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}

func TestFillNullWithMean(t *testing.T) {
	c := New(nil)
	tbl := sample(t)

	op, err := c.FillNullWithMean(tbl, "Age")
	require.NoError(t, err)
	assert.Equal(t, 2, op.Affected)
	assert.InDelta(t, 36.6667, values(t, tbl, "Age")[2], 0.001)

	_, err = c.FillNullWithMean(tbl, "Name")
	assert.ErrorIs(t, err, ErrNotNumeric)

	empty, err := table.FromColumns("empty", &table.Column{Name: "X", Values: []any{nil, nil}})
	require.NoError(t, err)
	_, err = c.FillNullWithMean(empty, "X")
	assert.Error(t, err)
}

func TestConvertType(t *testing.T) {
	c := New(nil)
	tbl, err := table.FromColumns("raw",
		&table.Column{Name: "N", Values: []any{"12", "3.7", nil}},
		&table.Column{Name: "D", Values: []any{"2024-02-01", nil, "01/15/2023"}},
		&table.Column{Name: "B", Values: []any{"yes", "0", "maybe"}},
	)
	require.NoError(t, err)

	op, err := c.ConvertType(tbl, "N", table.KindInt)
	require.NoError(t, err)
	assert.Equal(t, 2, op.Affected)
	assert.Equal(t, []any{int64(12), int64(3), nil}, values(t, tbl, "N"))

	_, err = c.ConvertType(tbl, "D", table.KindDate)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC), values(t, tbl, "D")[2])

	_, err = c.ConvertType(tbl, "B", table.KindBool)
	assert.ErrorIs(t, err, ErrConversion)
	assert.Equal(t, "yes", values(t, tbl, "B")[0], "failed conversion leaves the column untouched")

	_, err = c.ConvertType(tbl, "N", table.KindString)
	require.NoError(t, err)
	assert.Equal(t, "12", values(t, tbl, "N")[0])
}

func TestConvert(t *testing.T) {
	tests := []struct {
		in   any
		kind table.Kind
		want any
	}{
		{int64(5), table.KindFloat, 5.0},
		{2.9, table.KindInt, int64(2)},
		{true, table.KindInt, int64(1)},
		{"on", table.KindBool, true},
		{int64(0), table.KindBool, false},
		{1.25, table.KindString, "1.25"},
		{nil, table.KindInt, nil},
	}
	for _, tt := range tests {
		got, err := Convert(tt.in, tt.kind)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := Convert("abc", table.KindFloat)
	assert.ErrorIs(t, err, ErrConversion)
}

func TestRenameAndReplaceInf(t *testing.T) {
	c := New(nil)
	tbl := sample(t)

	_, err := c.RenameColumn(tbl, "Score", "Points")
	require.NoError(t, err)
	assert.True(t, tbl.Has("Points"))

	_, err = c.RenameColumn(tbl, "Name", "Age")
	assert.ErrorIs(t, err, table.ErrColumnExists)

	op := c.ReplaceInf(tbl, 0.0)
	assert.Equal(t, 2, op.Affected)
	assert.Equal(t, 0.0, values(t, tbl, "Points")[1])
}

func TestStringOps(t *testing.T) {
	c := New(nil)
	tbl := sample(t)

	op, err := c.TrimSpace(tbl, "Name")
	require.NoError(t, err)
	assert.Equal(t, 1, op.Affected)
	assert.Equal(t, "Ann", values(t, tbl, "Name")[0])

	_, err = c.Upper(tbl, "Name")
	require.NoError(t, err)
	_, err = c.Lower(tbl, "Name")
	require.NoError(t, err)
	assert.Equal(t, []any{"ann", "bob", nil, "bob", nil}, values(t, tbl, "Name"))

	_, err = c.TrimSpace(tbl, "Age")
	assert.ErrorIs(t, err, ErrNotString)
}

func TestRemoveOutliers(t *testing.T) {
	c := New(nil)
	tbl := sample(t)

	op, err := c.RemoveOutliers(tbl, "Age", 35, 50)
	require.NoError(t, err)
	assert.Equal(t, 3, op.Affected)
	assert.Equal(t, []any{int64(40), int64(40)}, values(t, tbl, "Age"))
	assert.Equal(t, []any{"bob", "bob"}, values(t, tbl, "Name"))

	_, err = c.RemoveOutliers(tbl, "Name", 0, 1)
	assert.ErrorIs(t, err, ErrNotNumeric)

	assert.Contains(t, op.String(), "remove_outliers on people.Age: 3 affected")
}
