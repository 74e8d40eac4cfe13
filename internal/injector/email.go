package injector

import (
	"regexp"
	"strings"

	"github.com/Rana718/mockdb/internal/table"
)

var CanonicalEmail = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CorruptEmailFormat breaks rowPct% of the well-formed email values using one of four
// corruptions: dropping ".com" (or every dot of the domain), dropping "@", keeping only
// the local part, or keeping only the domain. An unset percentage defaults to a fresh
// draw from 10-20.
func (inj *Injector) CorruptEmailFormat(t *table.Table, column string, rowPct Percent) (*table.Table, error) {
	values, err := t.Values(column)
	if err != nil {
		return nil, err
	}
	p, err := inj.resolve("row coverage percentage", rowPct, 10, 20)
	if err != nil {
		return nil, err
	}

	var candidates []int
	for i, v := range values {
		if s, ok := v.(string); ok && CanonicalEmail.MatchString(s) {
			candidates = append(candidates, i)
		}
	}

	rows := inj.choose(candidates, p)
	for _, row := range rows {
		values[row] = corruptEmail(values[row].(string), inj.rng.IntBetween(1, 4))
	}

	inj.logApplied("corrupt_email_format", t, column, p, len(candidates), len(rows))
	return t, nil
}

func corruptEmail(email string, mode int) string {
	at := strings.LastIndex(email, "@")
	switch mode {
	case 1:
		s := strings.ReplaceAll(email, ".com", "")
		if CanonicalEmail.MatchString(s) {
			at = strings.LastIndex(s, "@")
			s = s[:at+1] + strings.ReplaceAll(s[at+1:], ".", "")
		}
		return s
	case 2:
		return strings.ReplaceAll(email, "@", "")
	case 3:
		return email[:at]
	default:
		return email[at+1:]
	}
}
