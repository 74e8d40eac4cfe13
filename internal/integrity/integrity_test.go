package integrity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/Rana718/mockdb/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func build(t *testing.T, cols ...*table.Column) *table.Table {
	t.Helper()
	tbl, err := table.FromColumns("accounts", cols...)
	require.NoError(t, err)
	return tbl
}

func statusTable(t *testing.T, active, closed int) *table.Table {
	t.Helper()
	ids := make([]any, 0, active+closed)
	statuses := make([]any, 0, active+closed)
	for i := 0; i < active+closed; i++ {
		ids = append(ids, int64(1000+i))
		if i < active {
			statuses = append(statuses, "ACTIVE")
		} else {
			statuses = append(statuses, "closed")
		}
	}
	return build(t, &table.Column{Name: "ID", Values: ids}, &table.Column{Name: "Status", Values: statuses})
}

func TestIDThresholds(t *testing.T) {
	tbl := build(t, &table.Column{Name: "ID", Values: []any{int64(1), int64(2), int64(2), int64(3)}})
	c := New(tbl)

	res, err := c.IDThresholds("ID", DefaultThresholds())
	require.NoError(t, err)
	assert.False(t, res.Passed)
	assert.Equal(t, 3, res.Counts["distinct_ids"])
	assert.Equal(t, 4, res.Counts["rows"])
	assert.Len(t, res.Warnings, 2)

	res, err = c.IDThresholds("ID", Thresholds{MinIDs: 1, MaxIDs: 3, MinRows: 1, MaxRows: 4})
	require.NoError(t, err)
	assert.True(t, res.Passed)

	_, err = c.IDThresholds("Missing", DefaultThresholds())
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}

func TestActiveIDs(t *testing.T) {
	tests := []struct {
		name     string
		active   int
		closed   int
		ratio    float64
		passed   bool
		warnings int
	}{
		{"healthy split", 80, 20, 0.5, true, 0},
		{"active ratio too high a bar", 80, 20, 0.9, false, 1},
		{"no closed accounts", 50, 0, 0.5, false, 1},
		{"too few active", 5, 20, 0.1, false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := DefaultActiveThresholds()
			th.ActiveRatio = tt.ratio

			res, err := New(statusTable(t, tt.active, tt.closed)).ActiveIDs("ID", "Status", th)
			require.NoError(t, err)
			assert.Equal(t, tt.passed, res.Passed, res.Warnings)
			assert.Len(t, res.Warnings, tt.warnings)
			assert.Equal(t, tt.active, res.Counts["active"])
			assert.Equal(t, tt.closed, res.Counts["closed"])
		})
	}
}

func TestNulls(t *testing.T) {
	tbl := build(t,
		&table.Column{Name: "A", Values: []any{nil, nil, nil}},
		&table.Column{Name: "B", Values: []any{"x", nil, nil}},
		&table.Column{Name: "C", Values: []any{"x", "", "z"}},
	)

	res := New(tbl).Nulls(1)
	assert.False(t, res.Passed)
	assert.Equal(t, []string{"A"}, res.Invalid)
	assert.Equal(t, 2, res.Counts["B"])
	assert.NotContains(t, res.Counts, "C")
	assert.Len(t, res.Warnings, 2)

	assert.Len(t, New(tbl).Nulls(5).Warnings, 1)
}

func TestDuplicateRows(t *testing.T) {
	tbl := build(t,
		&table.Column{Name: "A", Values: []any{"x", "y", "x", "x"}},
		&table.Column{Name: "B", Values: []any{int64(1), int64(1), int64(1), int64(2)}},
	)
	res := New(tbl).DuplicateRows()
	assert.False(t, res.Passed)
	assert.Equal(t, []int{2}, res.Rows)
}

func TestTypes(t *testing.T) {
	tbl := build(t,
		&table.Column{Name: "Mixed", Values: []any{"a", int64(1), nil}},
		&table.Column{Name: "Ints", Values: []any{int64(1), int64(2), nil}},
		&table.Column{Name: "Text", Values: []any{"a", "b", "c"}},
	)
	c := New(tbl)

	res := c.MultipleTypes()
	assert.Equal(t, []string{"Mixed"}, res.Invalid)
	assert.Contains(t, res.Warnings[0], "int, string")

	res, err := c.ExplicitTypes(map[string]table.Kind{"Ints": table.KindInt, "Text": table.KindInt})
	require.NoError(t, err)
	assert.Equal(t, []string{"Text"}, res.Invalid)

	_, err = c.ExplicitTypes(map[string]table.Kind{"Missing": table.KindInt})
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}

func TestLengthRange(t *testing.T) {
	tbl := build(t, &table.Column{Name: "Code", Values: []any{"ab", "abcd", "abcdef"}})

	res, err := New(tbl).LengthRange("Code", 2, 4)
	require.NoError(t, err)
	assert.False(t, res.Passed)
	assert.Equal(t, 2, res.Counts["min_length"])
	assert.Equal(t, 6, res.Counts["max_length"])
	assert.Equal(t, 1, res.Counts["outside"])

	res, err = New(tbl).LengthRange("Code", 0, 100)
	require.NoError(t, err)
	assert.True(t, res.Passed)
}

func TestFormatChecks(t *testing.T) {
	tbl := build(t,
		&table.Column{Name: "Email", Values: []any{"doe.john@fakemail.com", "doe.johnfakemail.com", "", nil}},
		&table.Column{Name: "Street", Values: []any{"123 Main Street", "Main Street", "9 Elm", nil}},
		&table.Column{Name: "Zip", Values: []any{"12345", "12345-6789", "1234", ""}},
		&table.Column{Name: "IP", Values: []any{"10.0.0.1", "10.0.0", "256.1.1.1", nil}},
		&table.Column{Name: "Domain", Values: []any{"https://www.example.com", "example", "abc123.com", nil}},
	)
	c := New(tbl)

	tests := []struct {
		name    string
		check   func(string) (*Result, error)
		column  string
		invalid []string
	}{
		{"email", c.Email, "Email", []string{"doe.johnfakemail.com"}},
		{"street", c.StreetAddress, "Street", []string{"Main Street"}},
		{"zip", c.ZipCode, "Zip", []string{"1234"}},
		{"ip", c.IPAddress, "IP", []string{"10.0.0"}},
		{"domain", c.DomainName, "Domain", []string{"example"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.check(tt.column)
			require.NoError(t, err)
			assert.False(t, res.Passed)
			assert.Equal(t, tt.invalid, res.Invalid)
		})
	}

	res, err := c.Email("Email")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Counts["checked"])
}

func TestReference(t *testing.T) {
	tbl := build(t, &table.Column{Name: "Country", Values: []any{"US", "GER", "XX", "XX", nil}})

	res, err := New(tbl).Reference("Country", []string{"US", "GER"})
	require.NoError(t, err)
	assert.Equal(t, []string{"XX"}, res.Invalid)
	assert.False(t, res.Passed)

	res, err = New(tbl).Reference("Country", []string{"US", "GER", "XX"})
	require.NoError(t, err)
	assert.True(t, res.Passed)
}

func TestAuditAndRender(t *testing.T) {
	tbl := statusTable(t, 80, 20)
	emails := make([]any, tbl.Len())
	for i := range emails {
		emails[i] = fmt.Sprintf("user%d@fakemail.com", i)
	}
	emails[3] = "broken"
	require.NoError(t, tbl.Append("Email", emails))

	spec := DefaultAuditSpec()
	spec.IDColumn = "ID"
	spec.StatusColumn = "Status"
	spec.EmailColumn = "Email"

	report, err := Audit(tbl, spec)
	require.NoError(t, err)
	require.Len(t, report.Results, 6)
	assert.False(t, report.Passed)
	assert.Equal(t, 1, report.Warnings())

	var text bytes.Buffer
	require.NoError(t, report.Render(&text, OutputText, true))
	assert.Contains(t, text.String(), "id_thresholds [ID]: Passed")
	assert.Contains(t, text.String(), "- broken")

	var js bytes.Buffer
	require.NoError(t, report.Render(&js, OutputJSON, false))
	var decoded Report
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, "accounts", decoded.Table)
	assert.Len(t, decoded.Results, 6)

	var ym bytes.Buffer
	require.NoError(t, report.Render(&ym, OutputYAML, false))
	var fromYAML Report
	require.NoError(t, yaml.Unmarshal(ym.Bytes(), &fromYAML))
	assert.Equal(t, 100, fromYAML.Rows)

	assert.Error(t, report.Render(&text, "xml", false))

	spec.ZipColumn = "Zip"
	_, err = Audit(tbl, spec)
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}
