package injector

import (
	"regexp"
	"strings"

	"github.com/Rana718/mockdb/internal/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Abbreviation maps a street term to its short forms. The first short form is preferred.
type Abbreviation struct {
	Full  string
	Short []string
}

var StreetAbbreviations = []Abbreviation{
	{Full: "Road", Short: []string{"Rd"}},
	{Full: "Street", Short: []string{"Str", "St"}},
	{Full: "Avenue", Short: []string{"Ave"}},
	{Full: "Boulevard", Short: []string{"Blvd"}},
	{Full: "Drive", Short: []string{"Dr"}},
	{Full: "Court", Short: []string{"Ct"}},
	{Full: "Lane", Short: []string{"Ln"}},
	{Full: "Terrace", Short: []string{"Ter"}},
	{Full: "Place", Short: []string{"Pl"}},
	{Full: "Square", Short: []string{"Sq"}},
	{Full: "Trail", Short: []string{"Trl"}},
	{Full: "Parkway", Short: []string{"Pkwy"}},
	{Full: "Alley", Short: []string{"Aly"}},
	{Full: "Center", Short: []string{"Ctr"}},
	{Full: "Crossing", Short: []string{"Xing"}},
	{Full: "Loop", Short: []string{"Lp"}},
}

var (
	// basicStreet selects values that look like "<number> <words>".
	basicStreet = regexp.MustCompile(`^\d+\s[A-Za-z\s]+$`)
	// CanonicalStreet is a well-formed street line with a house number of two or more digits.
	CanonicalStreet = regexp.MustCompile(`^\d{2,}\s[A-Za-z]+(\s[A-Za-z]+)*$`)

	houseNumber = regexp.MustCompile(`^\d+`)
	houseLead   = regexp.MustCompile(`^\d+\s*`)

	abbreviationTerms []*regexp.Regexp
)

func init() {
	for _, a := range StreetAbbreviations {
		abbreviationTerms = append(abbreviationTerms, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(a.Full)+`\b`))
	}
}

// AbbreviateAddressTerms rewrites rowPct% of the rows containing a full street term,
// replacing every such term with its short form and title-casing the result. An unset
// percentage defaults to a fresh draw from 10-20.
func (inj *Injector) AbbreviateAddressTerms(t *table.Table, column string, rowPct Percent) (*table.Table, error) {
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
		s, ok := v.(string)
		if !ok {
			continue
		}
		for _, re := range abbreviationTerms {
			if re.MatchString(s) {
				candidates = append(candidates, i)
				break
			}
		}
	}

	rows := inj.choose(candidates, p)
	for _, row := range rows {
		values[row] = Abbreviate(values[row].(string))
	}

	inj.logApplied("abbreviate_address_terms", t, column, p, len(candidates), len(rows))
	return t, nil
}

// Abbreviate shortens every full street term in s and title-cases the result.
func Abbreviate(s string) string {
	s = strings.ToLower(s)
	for i, re := range abbreviationTerms {
		s = re.ReplaceAllLiteralString(s, strings.ToLower(StreetAbbreviations[i].Short[0]))
	}
	return cases.Title(language.English).String(s)
}

// CorruptAddressFormat breaks rowPct% of the well-shaped street values, either cutting
// the house number to its first digit or removing it. Single-digit house numbers are
// always removed. An unset percentage defaults to a fresh draw from 10-20.
func (inj *Injector) CorruptAddressFormat(t *table.Table, column string, rowPct Percent) (*table.Table, error) {
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
		if s, ok := v.(string); ok && basicStreet.MatchString(s) {
			candidates = append(candidates, i)
		}
	}

	rows := inj.choose(candidates, p)
	for _, row := range rows {
		s := values[row].(string)
		number := houseNumber.FindString(s)
		if inj.rng.IntBetween(1, 2) == 1 && len(number) > 1 {
			values[row] = number[:1] + s[len(number):]
		} else {
			values[row] = houseLead.ReplaceAllLiteralString(s, "")
		}
	}

	inj.logApplied("corrupt_address_format", t, column, p, len(candidates), len(rows))
	return t, nil
}
