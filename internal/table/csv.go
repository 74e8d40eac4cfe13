package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

type ReadOptions struct {
	// InferTypes converts a field to int, float or date only when the
	// converted value formats back to the identical text.
	InferTypes bool
}

// WriteCSV writes a header line followed by one line per row. No index column is written.
func WriteCSV(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns()); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", t.Name, err)
	}

	record := make([]string, t.Width())
	for i := 0; i < t.Len(); i++ {
		for j, c := range t.columns {
			record[j] = Format(c.Values[i])
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i, t.Name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadCSV loads a table from CSV. Empty fields load as nil.
func ReadCSV(r io.Reader, name string, opts ReadOptions) (*Table, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv %s: %w", name, err)
	}
	if len(records) == 0 {
		return New(name), nil
	}

	header := records[0]
	rows := records[1:]
	t := New(name)
	for j, col := range header {
		values := make([]any, len(rows))
		for i, rec := range rows {
			if j >= len(rec) || rec[j] == "" {
				continue
			}
			if opts.InferTypes {
				values[i] = infer(rec[j])
			} else {
				values[i] = rec[j]
			}
		}
		if err := t.Append(col, values); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func SaveCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file for %s: %w", t.Name, err)
	}
	defer f.Close()

	if err := WriteCSV(f, t); err != nil {
		return err
	}
	return f.Close()
}

func LoadCSV(path, name string, opts ReadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f, name, opts)
}

func infer(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(n, 10) == s {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && strconv.FormatFloat(f, 'f', -1, 64) == s {
		return f
	}
	if d, err := time.Parse(DateLayout, s); err == nil && d.Format(DateLayout) == s {
		return d
	}
	return s
}
