package table

import (
	"errors"
	"fmt"
)

var (
	ErrColumnNotFound  = errors.New("column not found")
	ErrColumnExists    = errors.New("column already exists")
	ErrLengthMismatch  = errors.New("column length mismatch")
	ErrInvalidPosition = errors.New("invalid column position")
)

type Column struct {
	Name   string
	Values []any
}

// Table is a column-oriented record set. Rows are identified by position only
// and every column holds exactly Len() values.
type Table struct {
	Name    string
	columns []*Column
}

func New(name string) *Table {
	return &Table{Name: name}
}

// FromColumns builds a table from columns in the given order.
func FromColumns(name string, cols ...*Column) (*Table, error) {
	t := New(name)
	for _, c := range cols {
		if err := t.Append(c.Name, c.Values); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) Len() int {
	if len(t.columns) == 0 {
		return 0
	}
	return len(t.columns[0].Values)
}

func (t *Table) Columns() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

func (t *Table) Width() int {
	return len(t.columns)
}

func (t *Table) Has(name string) bool {
	return t.indexOf(name) >= 0
}

func (t *Table) Column(name string) (*Column, error) {
	i := t.indexOf(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q not in table %q", ErrColumnNotFound, name, t.Name)
	}
	return t.columns[i], nil
}

// Values returns the live value slice of a column. Writes through it mutate the table.
func (t *Table) Values(name string) ([]any, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	return c.Values, nil
}

func (t *Table) Append(name string, values []any) error {
	return t.Insert(len(t.columns), name, values)
}

// Insert places a new column at zero-based position pos.
func (t *Table) Insert(pos int, name string, values []any) error {
	if t.Has(name) {
		return fmt.Errorf("%w: %q in table %q", ErrColumnExists, name, t.Name)
	}
	if pos < 0 || pos > len(t.columns) {
		return fmt.Errorf("%w: %d (table %q has %d columns)", ErrInvalidPosition, pos, t.Name, len(t.columns))
	}
	if len(t.columns) > 0 && len(values) != t.Len() {
		return fmt.Errorf("%w: column %q has %d values, table %q has %d rows",
			ErrLengthMismatch, name, len(values), t.Name, t.Len())
	}
	col := &Column{Name: name, Values: values}
	t.columns = append(t.columns, nil)
	copy(t.columns[pos+1:], t.columns[pos:])
	t.columns[pos] = col
	return nil
}

func (t *Table) Drop(name string) error {
	i := t.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %q not in table %q", ErrColumnNotFound, name, t.Name)
	}
	t.columns = append(t.columns[:i], t.columns[i+1:]...)
	return nil
}

func (t *Table) Rename(oldName, newName string) error {
	c, err := t.Column(oldName)
	if err != nil {
		return err
	}
	if oldName != newName && t.Has(newName) {
		return fmt.Errorf("%w: %q in table %q", ErrColumnExists, newName, t.Name)
	}
	c.Name = newName
	return nil
}

// Row returns the values of one record in column order.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.columns))
	for j, c := range t.columns {
		row[j] = c.Values[i]
	}
	return row
}

// Filter keeps only the rows for which keep returns true and reports how many were removed.
func (t *Table) Filter(keep func(row int) bool) int {
	n := t.Len()
	kept := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if keep(i) {
			kept = append(kept, i)
		}
	}
	for _, c := range t.columns {
		values := make([]any, len(kept))
		for j, i := range kept {
			values[j] = c.Values[i]
		}
		c.Values = values
	}
	return n - len(kept)
}

func (t *Table) Clone() *Table {
	out := New(t.Name)
	out.columns = make([]*Column, len(t.columns))
	for i, c := range t.columns {
		values := make([]any, len(c.Values))
		copy(values, c.Values)
		out.columns[i] = &Column{Name: c.Name, Values: values}
	}
	return out
}

func (t *Table) indexOf(name string) int {
	for i, c := range t.columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}
