package stats

import (
	"testing"

	"github.com/Rana718/mockdb/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *Statistics {
	t.Helper()
	tbl, err := table.FromColumns("accounts",
		&table.Column{Name: "Status", Values: []any{"ACTIVE", "CLOSED", "ACTIVE", nil, "HISTORY", "ACTIVE"}},
		&table.Column{Name: "Amount", Values: []any{int64(1), int64(2), nil, int64(3), int64(4), nil}},
		&table.Column{Name: "Mixed", Values: []any{"a", int64(1), nil, nil, nil, nil}},
	)
	require.NoError(t, err)
	return New(tbl)
}

func TestUniqueValues(t *testing.T) {
	s := sample(t)
	got, err := s.UniqueValues("Status")
	require.NoError(t, err)
	assert.Equal(t, []any{"ACTIVE", "CLOSED", nil, "HISTORY"}, got)

	_, err = s.UniqueValues("Missing")
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}

func TestCounts(t *testing.T) {
	s := sample(t)

	listed, err := s.CountListed([]string{"ACTIVE", "CLOSED", "PENDING"}, "Status")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"ACTIVE": 3, "CLOSED": 1, "PENDING": 0}, listed)

	counts, err := s.ValueCounts("Status")
	require.NoError(t, err)
	assert.Equal(t, []ValueCount{
		{Value: "ACTIVE", Count: 3},
		{Value: "CLOSED", Count: 1},
		{Value: "HISTORY", Count: 1},
	}, counts)

	n, err := s.NullCount("Amount")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, map[string]int{"Status": 1, "Amount": 2, "Mixed": 4}, s.NullCounts())
}

func TestDescribe(t *testing.T) {
	infos, err := sample(t).Describe()
	require.NoError(t, err)
	require.Len(t, infos, 3)

	status := infos[0]
	assert.Equal(t, "string", status.Kind)
	assert.Equal(t, 5, status.NonNull)
	assert.Equal(t, 3, status.Unique)
	assert.Nil(t, status.Numeric)

	amount := infos[1]
	assert.Equal(t, "int", amount.Kind)
	require.NotNil(t, amount.Numeric)
	assert.Equal(t, 4, amount.Numeric.Count)
	assert.InDelta(t, 2.5, amount.Numeric.Mean, 1e-9)
	assert.InDelta(t, 2.5, amount.Numeric.Median, 1e-9)
	assert.InDelta(t, 1.5, amount.Numeric.Q1, 1e-9)
	assert.InDelta(t, 3.5, amount.Numeric.Q3, 1e-9)
	assert.InDelta(t, 1.2910, amount.Numeric.StdDev, 1e-3)
	assert.Equal(t, 1.0, amount.Numeric.Min)
	assert.Equal(t, 4.0, amount.Numeric.Max)

	assert.Equal(t, "mixed", infos[2].Kind)
	assert.Nil(t, infos[2].Numeric)
}
