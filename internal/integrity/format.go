package integrity

import (
	"regexp"

	"github.com/Rana718/mockdb/internal/table"
)

var (
	EmailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	StreetPattern = regexp.MustCompile(`^\d+\s[A-Za-z]+(\s[A-Za-z]+)?`)
	ZipPattern    = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	IPPattern     = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)
	DomainPattern = regexp.MustCompile(`^(https?://)?(www\.)?[a-zA-Z0-9-]+\.[a-zA-Z]{2,}$`)
)

// Format checks a column against pattern. Null and empty values are skipped.
// Invalid holds the offending values in row order.
func (c *Checker) Format(check, column string, pattern *regexp.Regexp) (*Result, error) {
	values, err := c.values(column)
	if err != nil {
		return nil, err
	}

	r := newResult(check, column)
	checked := 0
	for _, v := range values {
		if table.IsBlank(v) {
			continue
		}
		checked++
		if s := table.Format(v); !pattern.MatchString(s) {
			r.Invalid = append(r.Invalid, s)
		}
	}
	r.Counts["checked"] = checked
	if len(r.Invalid) > 0 {
		r.Counts["invalid"] = len(r.Invalid)
		r.warn("%d values in %q flagged as wrong format", len(r.Invalid), column)
	}
	return r.done(), nil
}

func (c *Checker) Email(column string) (*Result, error) {
	return c.Format("email_format", column, EmailPattern)
}

func (c *Checker) StreetAddress(column string) (*Result, error) {
	return c.Format("street_address_format", column, StreetPattern)
}

func (c *Checker) ZipCode(column string) (*Result, error) {
	return c.Format("zip_code_format", column, ZipPattern)
}

func (c *Checker) IPAddress(column string) (*Result, error) {
	return c.Format("ip_address_format", column, IPPattern)
}

func (c *Checker) DomainName(column string) (*Result, error) {
	return c.Format("domain_name_format", column, DomainPattern)
}

// Reference checks that every non-null value of column, compared as text, is in reference.
// Invalid lists each missing value once.
func (c *Checker) Reference(column string, reference []string) (*Result, error) {
	values, err := c.values(column)
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]bool, len(reference))
	for _, v := range reference {
		allowed[v] = true
	}

	r := newResult("reference", column)
	reported := make(map[string]bool)
	for _, v := range values {
		if table.IsNull(v) {
			continue
		}
		s := table.Format(v)
		if allowed[s] || reported[s] {
			continue
		}
		reported[s] = true
		r.Invalid = append(r.Invalid, s)
	}
	if len(r.Invalid) > 0 {
		r.warn("reference data issue in column %q: %d values not in the reference set", column, len(r.Invalid))
	}
	return r.done(), nil
}
