package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind names the semantic type of a cell value.
type Kind string

const (
	KindNull   Kind = "null"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindString Kind = "string"
	KindDate   Kind = "date"
	KindBool   Kind = "bool"
)

const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

func IsNull(v any) bool {
	return v == nil
}

// IsBlank reports nil or an empty string.
func IsBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case int, int32, int64:
		return KindInt
	case float32, float64:
		return KindFloat
	case bool:
		return KindBool
	case time.Time:
		return KindDate
	default:
		return KindString
	}
}

// ParseKind accepts the names used on the command line and in plans.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int", "integer", "int64":
		return KindInt, nil
	case "float", "float64", "double", "numeric":
		return KindFloat, nil
	case "string", "str", "text":
		return KindString, nil
	case "date", "datetime", "time":
		return KindDate, nil
	case "bool", "boolean":
		return KindBool, nil
	}
	return "", fmt.Errorf("unknown kind %q", s)
}

// Format renders a value the way it is persisted. Nil renders as "".
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(DateLayout)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// AsTime converts dates and date-like strings. Blank values report false.
func AsTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// AsFloat converts numeric values and numeric strings.
func AsFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	}
	return 0, false
}

func IsNumeric(v any) bool {
	k := KindOf(v)
	return k == KindInt || k == KindFloat
}

func IsInf(v any) bool {
	f, ok := v.(float64)
	return ok && math.IsInf(f, 0)
}

// Equal compares two cells by kind and value. Dates compare by instant.
func Equal(a, b any) bool {
	ta, aok := a.(time.Time)
	tb, bok := b.(time.Time)
	if aok || bok {
		return aok && bok && ta.Equal(tb)
	}
	if KindOf(a) != KindOf(b) {
		return false
	}
	return Format(a) == Format(b)
}

// Key returns a comparable identity for a cell, used for distinct and duplicate detection.
func Key(v any) string {
	return string(KindOf(v)) + "\x00" + Format(v)
}

// RowKey joins the cell keys of a row.
func RowKey(row []any) string {
	var b strings.Builder
	for i, v := range row {
		if i > 0 {
			b.WriteByte('\x1f')
		}
		b.WriteString(Key(v))
	}
	return b.String()
}
