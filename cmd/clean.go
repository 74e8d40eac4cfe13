package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Rana718/mockdb/internal/cleaner"
	"github.com/Rana718/mockdb/internal/table"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type cleanOptions struct {
	out        string
	rename     []string
	dropEmpty  bool
	dropNull   bool
	fill       []string
	fillMean   []string
	fillZero   bool
	trim       []string
	lower      []string
	upper      []string
	convert    []string
	replaceInf bool
	outliers   []string
	dedupe     bool
}

var cleanOpts cleanOptions

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Apply cleaning operations to a table",
	Long: `
Load a CSV or JSON table, apply the requested cleaning operations and write the
result to --out. Operations run in this order: rename, drop empty rows, drop rows
with nulls, fill, fill with mean, fill with zero, trim, lower, upper, convert,
replace infinities, remove outliers, remove duplicates.

Examples:
  mockdb clean "business data.csv" --out clean.csv --dedupe --trim "Company Name"
  mockdb clean "finance data.csv" --out finance.json --fill-mean "Finance Amount"
  mockdb clean data.csv --out data.csv --convert Age=int --outliers Age=18:65`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, err := loadConfig()
		if err != nil {
			return err
		}
		defer log.Sync()

		t, err := table.LoadFile(args[0], table.ReadOptions{InferTypes: true})
		if err != nil {
			return err
		}

		c := cleaner.New(log)
		if err := applyCleaning(c, t, cleanOpts); err != nil {
			return err
		}

		for _, op := range c.History() {
			color.White("   • %s", op)
		}

		if err := saveTable(cleanOpts.out, t); err != nil {
			return err
		}
		log.Info("cleaned table written", zap.String("path", cleanOpts.out), zap.Int("rows", t.Len()))
		color.Green("✅ Applied %d operation(s), wrote %d rows to %s", len(c.History()), t.Len(), cleanOpts.out)
		return nil
	},
}

func applyCleaning(c *cleaner.Cleaner, t *table.Table, o cleanOptions) error {
	for _, pair := range o.rename {
		oldName, newName, err := splitPair(pair, "--rename")
		if err != nil {
			return err
		}
		if _, err := c.RenameColumn(t, oldName, newName); err != nil {
			return err
		}
	}
	if o.dropEmpty {
		c.DropRowsAllNull(t)
	}
	if o.dropNull {
		c.DropRowsWithNull(t)
	}
	for _, pair := range o.fill {
		column, value, err := splitPair(pair, "--fill")
		if err != nil {
			return err
		}
		if _, err := c.FillNull(t, column, parseValue(value)); err != nil {
			return err
		}
	}
	for _, column := range o.fillMean {
		if _, err := c.FillNullWithMean(t, column); err != nil {
			return err
		}
	}
	if o.fillZero {
		c.FillNullWithZero(t)
	}

	stringOps := []struct {
		columns []string
		apply   func(*table.Table, string) (cleaner.Operation, error)
	}{
		{o.trim, c.TrimSpace},
		{o.lower, c.Lower},
		{o.upper, c.Upper},
	}
	for _, op := range stringOps {
		for _, column := range op.columns {
			if _, err := op.apply(t, column); err != nil {
				return err
			}
		}
	}

	for _, pair := range o.convert {
		column, kindName, err := splitPair(pair, "--convert")
		if err != nil {
			return err
		}
		kind, err := table.ParseKind(kindName)
		if err != nil {
			return err
		}
		if _, err := c.ConvertType(t, column, kind); err != nil {
			return err
		}
	}
	if o.replaceInf {
		c.ReplaceInf(t, nil)
	}
	for _, pair := range o.outliers {
		column, bounds, err := splitPair(pair, "--outliers")
		if err != nil {
			return err
		}
		lo, hi, err := parseBounds(bounds)
		if err != nil {
			return err
		}
		if _, err := c.RemoveOutliers(t, column, lo, hi); err != nil {
			return err
		}
	}
	if o.dedupe {
		c.RemoveDuplicates(t)
	}
	return nil
}

func splitPair(pair, flag string) (string, string, error) {
	key, value, ok := strings.Cut(pair, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("%s expects column=value, got %q", flag, pair)
	}
	return key, value, nil
}

func parseBounds(s string) (float64, float64, error) {
	loText, hiText, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("--outliers expects column=low:high, got %q", s)
	}
	lo, err := strconv.ParseFloat(loText, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid lower bound %q: %w", loText, err)
	}
	hi, err := strconv.ParseFloat(hiText, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid upper bound %q: %w", hiText, err)
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("lower bound %v is above upper bound %v", lo, hi)
	}
	return lo, hi, nil
}

// parseValue reads a fill value as an integer or float when it is one, otherwise as text.
func parseValue(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func saveTable(path string, t *table.Table) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return table.SaveJSON(path, t)
	}
	return table.SaveCSV(path, t)
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	f := cleanCmd.Flags()
	f.StringVar(&cleanOpts.out, "out", "", "output file (.csv or .json)")
	f.StringArrayVar(&cleanOpts.rename, "rename", nil, "rename a column: old=new")
	f.BoolVar(&cleanOpts.dropEmpty, "drop-empty-rows", false, "drop rows where every value is null")
	f.BoolVar(&cleanOpts.dropNull, "drop-null", false, "drop rows holding any null")
	f.StringArrayVar(&cleanOpts.fill, "fill", nil, "fill nulls of a column: column=value")
	f.StringArrayVar(&cleanOpts.fillMean, "fill-mean", nil, "fill nulls of a numeric column with its mean")
	f.BoolVar(&cleanOpts.fillZero, "fill-zero", false, "fill every remaining null with 0")
	f.StringArrayVar(&cleanOpts.trim, "trim", nil, "trim surrounding spaces in a string column")
	f.StringArrayVar(&cleanOpts.lower, "lower", nil, "lowercase a string column")
	f.StringArrayVar(&cleanOpts.upper, "upper", nil, "uppercase a string column")
	f.StringArrayVar(&cleanOpts.convert, "convert", nil, "convert a column: column=int|float|string|date|bool")
	f.BoolVar(&cleanOpts.replaceInf, "replace-inf", false, "replace infinite values with null")
	f.StringArrayVar(&cleanOpts.outliers, "outliers", nil, "keep rows inside a range: column=low:high")
	f.BoolVar(&cleanOpts.dedupe, "dedupe", false, "remove duplicate rows")
	cleanCmd.MarkFlagRequired("out")
}
