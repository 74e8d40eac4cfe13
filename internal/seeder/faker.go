package seeder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Rana718/mockdb/internal/random"
)

const hostnameChars = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	historyStart = time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	ledgerStart  = time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// DataGenerator produces whole columns of synthetic values. Every method returns one
// value per requested row.
type DataGenerator struct {
	rng *random.Source
	now func() time.Time
}

func NewDataGenerator(rng *random.Source, now func() time.Time) *DataGenerator {
	if now == nil {
		now = time.Now
	}
	return &DataGenerator{
		rng: rng,
		now: now,
	}
}

func (g *DataGenerator) today() time.Time {
	return random.Day(g.now())
}

// UniqueIDs returns start..start+n-1 in random order.
func (g *DataGenerator) UniqueIDs(n int, start int64) []any {
	ids := make([]any, n)
	for i, v := range g.rng.Permutation(n) {
		ids[i] = start + int64(v) - 1
	}
	return ids
}

// PaddedAccounts left-pads each id with zeros to the digit count of the row count.
func (g *DataGenerator) PaddedAccounts(ids []any) []any {
	width := len(strconv.Itoa(len(ids)))
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = fmt.Sprintf("%0*d", width, id)
	}
	return out
}

// Digits returns integers with exactly width digits.
func (g *DataGenerator) Digits(n, width int) []any {
	lo, _ := strconv.ParseInt("1"+strings.Repeat("0", width-1), 10, 64)
	hi, _ := strconv.ParseInt(strings.Repeat("9", width), 10, 64)
	out := make([]any, n)
	for i := range out {
		out[i] = g.rng.Int64Between(lo, hi)
	}
	return out
}

func (g *DataGenerator) Ints(n, lo, hi int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = int64(g.rng.IntBetween(lo, hi))
	}
	return out
}

// PrefixedIDs returns prefix plus a number in [1, max] padded to the width of max.
func (g *DataGenerator) PrefixedIDs(n int, prefix string, max int) []any {
	width := len(strconv.Itoa(max))
	out := make([]any, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%0*d", prefix, width, g.rng.IntBetween(1, max))
	}
	return out
}

// Branches returns a digit followed by three uppercase letters.
func (g *DataGenerator) Branches(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = strconv.Itoa(g.rng.IntBetween(0, 9)) + g.rng.Letters(3)
	}
	return out
}

func (g *DataGenerator) Choice(n int, values []string) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = values[g.rng.Pick(len(values))]
	}
	return out
}

func (g *DataGenerator) Weighted(n int, values []string, weights []float64) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = values[g.rng.Weighted(weights)]
	}
	return out
}

// Prioritized picks from values with weight wPri for priority and wOth for the rest.
func (g *DataGenerator) Prioritized(n int, values []string, priority string, wPri, wOth float64) []any {
	weights := make([]float64, len(values))
	for i, v := range values {
		weights[i] = wOth
		if v == priority {
			weights[i] = wPri
		}
	}
	return g.Weighted(n, values, weights)
}

// CodePool draws pool random letter codes and assigns one of them to each row.
func (g *DataGenerator) CodePool(n, pool, letters int) []any {
	codes := make([]string, pool)
	for i := range codes {
		codes[i] = g.rng.Letters(letters)
	}
	return g.Choice(n, codes)
}

func (g *DataGenerator) CompanyNames(n int) []any {
	out := make([]any, n)
	for i := range out {
		adjective := companyAdjectives[g.rng.Pick(len(companyAdjectives))]
		noun := companyNouns[g.rng.Pick(len(companyNouns))]
		keyword := companyKeywords[g.rng.Pick(len(companyKeywords))]
		out[i] = fmt.Sprintf("%s %s %s", adjective, keyword, noun)
	}
	return out
}

func (g *DataGenerator) date(lo, hi time.Time) time.Time {
	d, err := g.rng.Date(lo, hi)
	if err != nil {
		return random.Day(lo)
	}
	return d
}

// Dates returns dates between from and today.
func (g *DataGenerator) Dates(n int, from time.Time) []any {
	today := g.today()
	out := make([]any, n)
	for i := range out {
		out[i] = g.date(from, today)
	}
	return out
}

// DatesAfter returns, per row, a date between from[row] and today.
func (g *DataGenerator) DatesAfter(from []any) []any {
	today := g.today()
	out := make([]any, len(from))
	for i, v := range from {
		lo, ok := v.(time.Time)
		if !ok {
			continue
		}
		out[i] = g.date(lo, today)
	}
	return out
}

// DatesWhen is DatesAfter for rows whose status is one of statuses; other rows stay null.
func (g *DataGenerator) DatesWhen(status, from []any, statuses ...string) []any {
	today := g.today()
	out := make([]any, len(from))
	for i, v := range from {
		lo, ok := v.(time.Time)
		if !ok || !matchesAny(status[i], statuses) {
			continue
		}
		out[i] = g.date(lo, today)
	}
	return out
}

func matchesAny(v any, values []string) bool {
	s, _ := v.(string)
	for _, candidate := range values {
		if s == candidate {
			return true
		}
	}
	return false
}

// LegalFirms returns "<surname> & <other surname> <term>" with two distinct surnames.
func (g *DataGenerator) LegalFirms(n int) []any {
	out := make([]any, n)
	for i := range out {
		picked := g.rng.Sample(len(legalSurnames), 2)
		term := legalTerms[g.rng.Pick(len(legalTerms))]
		out[i] = fmt.Sprintf("%s & %s %s", legalSurnames[picked[0]], legalSurnames[picked[1]], term)
	}
	return out
}

// Definitions picks a catalog entry per row and returns its codes and descriptions.
func (g *DataGenerator) Definitions(n int, catalog []Definition) ([]any, []any) {
	codes := make([]any, n)
	texts := make([]any, n)
	for i := range codes {
		d := catalog[g.rng.Pick(len(catalog))]
		codes[i] = d.Code
		texts[i] = d.Text
	}
	return codes, texts
}

// Addresses returns the street line, city, state and zip code columns.
func (g *DataGenerator) Addresses(n int) (street, city, state, zip []any) {
	street = make([]any, n)
	city = make([]any, n)
	state = make([]any, n)
	zip = make([]any, n)
	for i := 0; i < n; i++ {
		street[i] = fmt.Sprintf("%d %s %s",
			g.rng.IntBetween(100, 9999),
			streetNames[g.rng.Pick(len(streetNames))],
			streetTypes[g.rng.Pick(len(streetTypes))],
		)
		city[i] = cityNames[g.rng.Pick(len(cityNames))]
		state[i] = stateNames[g.rng.Pick(len(stateNames))]
		if g.rng.IntBetween(1, 2) == 1 {
			zip[i] = strconv.Itoa(g.rng.IntBetween(10000, 99999))
		} else {
			zip[i] = fmt.Sprintf("%d-%d", g.rng.IntBetween(10000, 99999), g.rng.IntBetween(1000, 9999))
		}
	}
	return street, city, state, zip
}

// PhoneNumbers repeats one digit ten times so no real number is produced.
func (g *DataGenerator) PhoneNumbers(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = strings.Repeat(strconv.Itoa(g.rng.IntBetween(1, 9)), 10)
	}
	return out
}

func (g *DataGenerator) Emails(first, last []any) []any {
	out := make([]any, len(first))
	for i := range out {
		out[i] = fmt.Sprintf("%v.%v@fakemail.com", last[i], first[i])
	}
	return out
}

func (g *DataGenerator) JobTitles(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = jobTitles[g.rng.Pick(len(jobTitles))].Title
	}
	return out
}

// Managers returns manager first names, last names and positions. A manager never
// shares a first or last name with the employee, and the position fits the job title.
func (g *DataGenerator) Managers(first, last, titles []any) (mFirst, mLast, positions []any) {
	n := len(first)
	mFirst = make([]any, n)
	mLast = make([]any, n)
	positions = make([]any, n)
	for i := 0; i < n; i++ {
		mFirst[i] = g.pickOther(firstNames, first[i])
		mLast[i] = g.pickOther(lastNames, last[i])
		positions[i] = g.managerPosition(titles[i])
	}
	return mFirst, mLast, positions
}

func (g *DataGenerator) pickOther(values []string, avoid any) string {
	for {
		v := values[g.rng.Pick(len(values))]
		if v != avoid {
			return v
		}
	}
}

func (g *DataGenerator) managerPosition(title any) any {
	for _, job := range jobTitles {
		if job.Title == title {
			return job.Managers[g.rng.Pick(len(job.Managers))]
		}
	}
	return nil
}

func (g *DataGenerator) IPAddresses(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = fmt.Sprintf("%d.%d.%d.%d",
			g.rng.IntBetween(0, 255), g.rng.IntBetween(0, 255),
			g.rng.IntBetween(0, 255), g.rng.IntBetween(0, 255))
	}
	return out
}

// Hostnames returns 7 to 15 lowercase letters and digits followed by ".com".
func (g *DataGenerator) Hostnames(n int) []any {
	out := make([]any, n)
	for i := range out {
		b := make([]byte, g.rng.IntBetween(7, 15))
		for j := range b {
			b[j] = hostnameChars[g.rng.Pick(len(hostnameChars))]
		}
		out[i] = string(b) + ".com"
	}
	return out
}

func codes(catalog []Definition) []string {
	out := make([]string, len(catalog))
	for i, d := range catalog {
		out[i] = d.Code
	}
	return out
}

// LogStatuses picks a non-issue status for NORMAL and INFO levels and an issue status otherwise.
func (g *DataGenerator) LogStatuses(levels []any) []any {
	out := make([]any, len(levels))
	for i, level := range levels {
		catalog := logStatusesIssue
		if level == severityNormal || level == severityInfo {
			catalog = logStatusesNonIssue
		}
		out[i] = catalog[g.rng.Pick(len(catalog))].Code
	}
	return out
}

func (g *DataGenerator) FinanceDescriptions(n int) ([]any, []any) {
	categories := make([]any, n)
	descriptions := make([]any, n)
	for i := range categories {
		c := financeCategories[g.rng.Pick(len(financeCategories))]
		categories[i] = c.Name
		descriptions[i] = c.Descriptions[g.rng.Pick(len(c.Descriptions))]
	}
	return categories, descriptions
}

// FinanceAmounts draws salary-sized amounts for the Employee category and smaller ones otherwise.
func (g *DataGenerator) FinanceAmounts(categories []any) []any {
	out := make([]any, len(categories))
	for i, c := range categories {
		if c == "Employee" {
			out[i] = int64(g.rng.IntBetween(50000, 150000))
		} else {
			out[i] = int64(g.rng.IntBetween(100, 10000))
		}
	}
	return out
}

func (g *DataGenerator) Constant(n int, v any) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = v
	}
	return out
}
