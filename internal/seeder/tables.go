package seeder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Rana718/mockdb/internal/table"
)

const (
	IDColumn = "ID_Record"
	firstID  = 1000
)

var ErrUnknownKind = errors.New("unknown table kind")

// Kind selects the column layout of a generated table.
type Kind string

const (
	KindBusiness       Kind = "business"
	KindLegal          Kind = "legal"
	KindAddress        Kind = "address"
	KindTax            Kind = "tax"
	KindFinance        Kind = "finance"
	KindEmployee       Kind = "employee"
	KindLogGeneral     Kind = "log_general"
	KindLogDataChange  Kind = "log_datachange"
	KindLogFileChange  Kind = "log_filechange"
	KindLogSecurity    Kind = "log_security"
	KindLogUserWeb     Kind = "log_user_web"
	KindLogUserServer  Kind = "log_user_server"
	KindLogUserAccount Kind = "log_user_account"
	KindLogErrors      Kind = "log_errors"
	KindLogErrorCodes  Kind = "log_error_codes"
)

type assembler func(g *DataGenerator, c *columns, n int)

var assemblers = map[Kind]assembler{
	KindBusiness: business,
	KindLegal:    legal,
	KindAddress:  address,
	KindTax:      tax,
	KindFinance:  finance,
	KindEmployee: employee,
}

type logVariant struct {
	event       string
	description string
	catalog     []Definition
	values      bool
}

var logVariants = map[Kind]logVariant{
	KindLogGeneral:     {"Log Event", "Log Event Description", logEvents, false},
	KindLogDataChange:  {"Log Data Change", "Log Data Change Description", logDataChanges, true},
	KindLogFileChange:  {"Log File Change", "Log File Change Description", logFileChanges, true},
	KindLogSecurity:    {"Log Security", "Log Security Description", logSecurity, false},
	KindLogUserWeb:     {"Log User Activity", "Log User Description", logUserWeb, false},
	KindLogUserServer:  {"Log User Activity", "Log User Description", logUserServer, false},
	KindLogUserAccount: {"Log User Activity", "Log User Description", logUserAccount, false},
	KindLogErrors:      {"Log Errors", "Log Error Description", logErrors, false},
	KindLogErrorCodes:  {"Log Error Code", "Log Error Code Description", logErrorCodes, false},
}

func init() {
	for kind, variant := range logVariants {
		v := variant
		assemblers[kind] = func(g *DataGenerator, c *columns, n int) {
			logTable(g, c, n, v)
		}
	}
}

// Kinds lists every table kind in name order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(assemblers))
	for k := range assemblers {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// columns appends generated columns and keeps the first failure.
type columns struct {
	t   *table.Table
	err error
}

func (c *columns) add(name string, values []any) {
	if c.err != nil {
		return
	}
	c.err = c.t.Append(name, values)
}

func (c *columns) get(name string) []any {
	values, _ := c.t.Values(name)
	return values
}

// Build generates a table of the given kind. The first column is always ID_Record.
func (g *DataGenerator) Build(kind Kind, name string, rows int) (*table.Table, error) {
	assemble, ok := assemblers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if rows < 0 {
		return nil, fmt.Errorf("table %q: row count %d is negative", name, rows)
	}

	c := &columns{t: table.New(name)}
	c.add(IDColumn, g.UniqueIDs(rows, firstID))
	assemble(g, c, rows)
	if c.err != nil {
		return nil, fmt.Errorf("build %s table %q: %w", kind, name, c.err)
	}
	return c.t, nil
}

func business(g *DataGenerator, c *columns, n int) {
	c.add("Account", g.PaddedAccounts(c.get(IDColumn)))
	c.add("Branch", g.Branches(n))

	accounts, branches := c.get("Account"), c.get("Branch")
	external := make([]any, n)
	for i := range external {
		external[i] = fmt.Sprintf("%v%v", branches[i], accounts[i])
	}
	c.add("External ID", external)

	c.add("Business Status", g.Weighted(n, []string{StatusActive, StatusClosed, StatusHistory}, []float64{60, 10, 10}))
	c.add("Company Name", g.CompanyNames(n))
	c.add("Account Type", g.CodePool(n, 9, 4))
	c.add("Creation Date", g.Dates(n, historyStart))
	c.add("Modified Date", g.DatesAfter(c.get("Creation Date")))
	c.add("Closed Date", g.DatesWhen(c.get("Business Status"), c.get("Modified Date"), StatusClosed, StatusHistory))
	c.add("Business TAG", g.CodePool(n, 3, 3))
	c.add("Security Category", g.Ints(n, 0, 5))
}

func legal(g *DataGenerator, c *columns, n int) {
	c.add("Legal Account", g.Digits(n, 8))
	c.add("Legal Firm", g.LegalFirms(n))
	types, defs := g.Definitions(n, legalTypes)
	c.add("Legal Type", types)
	c.add("Legal Type Def", defs)
	c.add("Legal Status", g.Weighted(n, []string{StatusActive, StatusClosed, StatusHistory}, []float64{60, 10, 10}))
	c.add("LE Creation Date", g.Dates(n, historyStart))
	c.add("LE Modified Date", g.DatesAfter(c.get("LE Creation Date")))
	c.add("LE Closed Date", g.DatesWhen(c.get("Legal Status"), c.get("LE Modified Date"), StatusClosed, StatusHistory))
	c.add("Legal Tax Category", g.Choice(n, legalTaxCategories))
	c.add("IRS TIN ID", g.Digits(n, 7))
	c.add("MPID", g.Digits(n, 6))
	c.add("GIIN ID", g.Digits(n, 6))
	c.add("FACTA ID", g.Digits(n, 9))
	c.add("WCIS ID", g.Digits(n, 5))
	c.add("TEFRA ID", g.Digits(n, 7))
}

func address(g *DataGenerator, c *columns, n int) {
	c.add("Address ID", g.Digits(n, 8))
	street, city, state, zip := g.Addresses(n)
	c.add("Address Street", street)
	c.add("City", city)
	c.add("State", state)
	c.add("Zip Code", zip)
	c.add("Registered Country", g.Constant(n, "US"))
	c.add("Original Country", g.Prioritized(n, countryCodes, "US", 20, 1))
}

func tax(g *DataGenerator, c *columns, n int) {
	c.add("Tax Account", g.Digits(n, 8))
	c.add("Sec ID", g.Ints(n, 100000, 9999999))
	c.add("CUSIP", g.Digits(n, 7))
	c.add("Entry CD", g.Choice(n, entryCodes))
	c.add("Currency", g.Prioritized(n, currencies, "USD", 10, 1))
	c.add("Net Amount", g.Ints(n, 1, 99999))
	c.add("Withholding Amount", g.Ints(n, 1, 9999))
	c.add("Credit and Debit", g.Choice(n, debitAndCredit))
	types, defs := g.Definitions(n, taxTypes)
	c.add("Tax Type", types)
	c.add("Tax Type Definition", defs)
	c.add("Transaction Date", g.Dates(n, ledgerStart))
}

func finance(g *DataGenerator, c *columns, n int) {
	c.add("Finance Account", g.Digits(n, 7))
	c.add("Transaction ID", g.PrefixedIDs(n, "T", 100000))
	c.add("Financial Date", g.Dates(n, ledgerStart))
	categories, descriptions := g.FinanceDescriptions(n)
	c.add("Category", categories)
	c.add("Description", descriptions)
	c.add("Amount", g.FinanceAmounts(categories))
	c.add("Amount Type", g.Choice(n, financeAccountTypes))
	c.add("Client Name", g.CompanyNames(n))
	c.add("Payment Method", g.Choice(n, financePaymentMethods))
	c.add("Currency", g.Prioritized(n, currencies, "USD", 10, 1))
	c.add("Balance", g.Ints(n, 1000, 100000))
	c.add("Budget Code", g.PrefixedIDs(n, "B", 100000))
	c.add("Approval Status", g.Weighted(n, financeApprovalStatuses, []float64{10, 1, 1}))
	c.add("Reference Number", g.PrefixedIDs(n, "R", 100000))
	c.add("Comments", g.Choice(n, financeComments))
}

func employee(g *DataGenerator, c *columns, n int) {
	c.add("Employee ID", g.Digits(n, 7))
	c.add("Emp First Name", g.Choice(n, firstNames))
	c.add("Emp Last Name", g.Choice(n, lastNames))
	c.add("Emp Phone Number", g.PhoneNumbers(n))
	c.add("Job Title", g.JobTitles(n))

	first, last := c.get("Emp First Name"), c.get("Emp Last Name")
	c.add("Employee Email", g.Emails(first, last))
	c.add("Employee Status", g.Weighted(n, []string{EmployeeEmployed, EmployeeTerminated}, []float64{90, 10}))
	c.add("Hire Date", g.Dates(n, historyStart))
	c.add("Termination Date", g.DatesWhen(c.get("Employee Status"), c.get("Hire Date"), EmployeeTerminated))

	mFirst, mLast, positions := g.Managers(first, last, c.get("Job Title"))
	c.add("Manager First Name", mFirst)
	c.add("Manager Last Name", mLast)
	c.add("Manager Position", positions)
	c.add("Security Clearance", g.Ints(n, 1, 5))
}

func logTable(g *DataGenerator, c *columns, n int, v logVariant) {
	c.add("Log ID", g.Digits(n, 9))
	c.add("Time Stamp", g.Dates(n, ledgerStart))
	c.add("User ID", g.PrefixedIDs(n, "U", 100000))
	c.add("IP Address", g.IPAddresses(n))
	c.add("Hostname", g.Hostnames(n))
	c.add("Log Level", g.Prioritized(n, codes(logSeverities), severityNormal, 10, 1))
	c.add("Status", g.LogStatuses(c.get("Log Level")))
	c.add("Reference ID", g.PrefixedIDs(n, "R", 100000))
	c.add("Source", g.Choice(n, codes(logSources)))

	events, descriptions := g.Definitions(n, v.catalog)
	c.add(v.event, events)
	c.add(v.description, descriptions)
	if v.values {
		c.add("Old Value", g.Constant(n, "--Old value--"))
		c.add("New Value", g.Constant(n, "--New value--"))
	}
}
