package table

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// WriteJSON writes the table as an array of row objects, keys in column order.
func WriteJSON(w io.Writer, t *Table) error {
	var buf bytes.Buffer
	buf.WriteString("[")
	names := t.Columns()
	for i := 0; i < t.Len(); i++ {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  {")
		for j, c := range t.columns {
			if j > 0 {
				buf.WriteString(", ")
			}
			key, err := json.Marshal(names[j])
			if err != nil {
				return err
			}
			val, err := json.Marshal(jsonValue(c.Values[i]))
			if err != nil {
				return fmt.Errorf("failed to encode %s row %d: %w", names[j], i, err)
			}
			buf.Write(key)
			buf.WriteString(": ")
			buf.Write(val)
		}
		buf.WriteString("}")
	}
	buf.WriteString("\n]\n")
	_, err := w.Write(buf.Bytes())
	return err
}

// ReadJSON loads an array of row objects. Column order follows the keys of the first object.
func ReadJSON(r io.Reader, name string) (*Table, error) {
	var raws []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, fmt.Errorf("failed to decode json %s: %w", name, err)
	}

	t := New(name)
	if len(raws) == 0 {
		return t, nil
	}

	order, err := objectKeys(raws[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", name, err)
	}

	rows := make([]map[string]any, len(raws))
	for i, raw := range raws {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&rows[i]); err != nil {
			return nil, fmt.Errorf("failed to decode row %d of %s: %w", i, name, err)
		}
	}

	for _, col := range order {
		values := make([]any, len(rows))
		for i, row := range rows {
			values[i] = fromJSON(row[col])
		}
		if err := t.Append(col, values); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func SaveJSON(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSON file for %s: %w", t.Name, err)
	}
	defer f.Close()

	if err := WriteJSON(f, t); err != nil {
		return err
	}
	return f.Close()
}

func jsonValue(v any) any {
	if d, ok := v.(time.Time); ok {
		return d.Format(DateLayout)
	}
	if IsInf(v) {
		return Format(v)
	}
	return v
}

func fromJSON(v any) any {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case string:
		if x == "" {
			return nil
		}
		return x
	case bool, nil:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func objectKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}
