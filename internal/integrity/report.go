package integrity

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Rana718/mockdb/internal/table"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Render.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Report collects the results of the checks run against one table.
type Report struct {
	Table   string    `json:"table" yaml:"table"`
	Rows    int       `json:"rows" yaml:"rows"`
	Passed  bool      `json:"passed" yaml:"passed"`
	Results []*Result `json:"results" yaml:"results"`
}

func NewReport(t *table.Table) *Report {
	return &Report{Table: t.Name, Rows: t.Len(), Passed: true}
}

func (r *Report) Add(results ...*Result) {
	for _, res := range results {
		r.Results = append(r.Results, res)
		if !res.Passed {
			r.Passed = false
		}
	}
}

// Warnings counts the warnings across all results.
func (r *Report) Warnings() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Warnings)
	}
	return n
}

// Render writes the report. With listInvalid, text output also prints offending values.
func (r *Report) Render(w io.Writer, format string, listInvalid bool) error {
	switch strings.ToLower(format) {
	case "", OutputText:
		r.renderText(w, listInvalid)
		return nil
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(r)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func (r *Report) renderText(w io.Writer, listInvalid bool) {
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	cyan.Fprintf(w, "🔍 Checking %s (%d rows)\n", r.Table, r.Rows)
	for _, res := range r.Results {
		label := res.Check
		if res.Column != "" {
			label = fmt.Sprintf("%s [%s]", res.Check, res.Column)
		}
		if res.Passed {
			green.Fprintf(w, "  ✅ %s: Passed\n", label)
			continue
		}
		yellow.Fprintf(w, "  ⚠️  %s: %d warning(s)\n", label, len(res.Warnings))
		for _, warning := range res.Warnings {
			fmt.Fprintf(w, "     Warning: %s\n", warning)
		}
		if listInvalid {
			for _, v := range res.Invalid {
				fmt.Fprintf(w, "       - %s\n", v)
			}
		}
	}

	if r.Passed {
		green.Fprintln(w, "✅ All checks passed")
	} else {
		yellow.Fprintf(w, "⚠️  %d warning(s) triggered\n", r.Warnings())
	}
}

// AuditSpec names the columns the standard battery checks. Empty names skip a check.
type AuditSpec struct {
	IDColumn      string
	StatusColumn  string
	EmailColumn   string
	StreetColumn  string
	ZipColumn     string
	IPColumn      string
	DomainColumn  string
	NullThreshold int
	Thresholds    Thresholds
	Active        ActiveThresholds
}

// DefaultAuditSpec uses the default thresholds and no column checks.
func DefaultAuditSpec() AuditSpec {
	return AuditSpec{
		NullThreshold: DefaultNullThreshold,
		Thresholds:    DefaultThresholds(),
		Active:        DefaultActiveThresholds(),
	}
}

// Audit runs the standard battery against t: id thresholds and active ratios when the
// columns are named, null, duplicate and mixed-type checks always, then each named
// format check.
func Audit(t *table.Table, spec AuditSpec) (*Report, error) {
	c := New(t)
	report := NewReport(t)

	if spec.IDColumn != "" {
		res, err := c.IDThresholds(spec.IDColumn, spec.Thresholds)
		if err != nil {
			return nil, err
		}
		report.Add(res)

		if spec.StatusColumn != "" {
			res, err := c.ActiveIDs(spec.IDColumn, spec.StatusColumn, spec.Active)
			if err != nil {
				return nil, err
			}
			report.Add(res)
		}
	}

	report.Add(c.Nulls(spec.NullThreshold), c.DuplicateRows(), c.MultipleTypes())

	formats := []struct {
		column string
		check  func(string) (*Result, error)
	}{
		{spec.EmailColumn, c.Email},
		{spec.StreetColumn, c.StreetAddress},
		{spec.ZipColumn, c.ZipCode},
		{spec.IPColumn, c.IPAddress},
		{spec.DomainColumn, c.DomainName},
	}
	for _, f := range formats {
		if f.column == "" {
			continue
		}
		res, err := f.check(f.column)
		if err != nil {
			return nil, err
		}
		report.Add(res)
	}
	return report, nil
}
