package cleaner

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rana718/mockdb/internal/table"
)

var ErrConversion = errors.New("value cannot be converted")

// Convert returns v as a value of kind. Null stays null; converting to null is an error.
func Convert(v any, kind table.Kind) (any, error) {
	if table.IsNull(v) {
		return nil, nil
	}

	switch kind {
	case table.KindString:
		return table.Format(v), nil
	case table.KindInt:
		return toInt(v)
	case table.KindFloat:
		return toFloat(v)
	case table.KindBool:
		return toBool(v)
	case table.KindDate:
		t, ok := table.AsTime(v)
		if !ok {
			return nil, fmt.Errorf("%w: %q to date", ErrConversion, table.Format(v))
		}
		return t.UTC(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported target kind %q", ErrConversion, kind)
	}
}

// toInt truncates floats toward zero.
func toInt(v any) (any, error) {
	switch x := v.(type) {
	case bool:
		if x {
			return int64(1), nil
		}
		return int64(0), nil
	case string:
		s := strings.TrimSpace(x)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
	}
	f, ok := table.AsFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %q to int", ErrConversion, table.Format(v))
	}
	return int64(f), nil
}

func toFloat(v any) (any, error) {
	if b, ok := v.(bool); ok {
		if b {
			return 1.0, nil
		}
		return 0.0, nil
	}
	f, ok := table.AsFloat(v)
	if !ok {
		return nil, fmt.Errorf("%w: %q to float", ErrConversion, table.Format(v))
	}
	return f, nil
}

func toBool(v any) (any, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case int64:
		return x != 0, nil
	case int:
		return x != 0, nil
	case float64:
		return x != 0, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "t", "yes", "y", "1", "on":
			return true, nil
		case "false", "f", "no", "n", "0", "off", "":
			return false, nil
		}
	}
	return nil, fmt.Errorf("%w: %q to bool", ErrConversion, table.Format(v))
}
