package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/Rana718/mockdb/internal/stats"
	"github.com/Rana718/mockdb/internal/table"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type columnReport struct {
	Table  string             `json:"table" yaml:"table"`
	Column string             `json:"column" yaml:"column"`
	Nulls  int                `json:"nulls" yaml:"nulls"`
	Unique int                `json:"unique" yaml:"unique"`
	Counts []stats.ValueCount `json:"counts,omitempty" yaml:"counts,omitempty"`
	Listed map[string]int     `json:"listed,omitempty" yaml:"listed,omitempty"`
}

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Summarize the columns of a table",
	Long: `
Without --column, describe every column: kind, non-null and null counts, distinct
values and a numeric summary (mean, standard deviation, quartiles) where the column
is numeric. With --column, list the value counts of that column; --count restricts
the counts to the given values.

Examples:
  mockdb stats "data_archive/finance data.csv"
  mockdb stats "business data.csv" --column "Business Status" --count ACTIVE --count CLOSED`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := table.LoadFile(args[0], table.ReadOptions{InferTypes: true})
		if err != nil {
			return err
		}
		s := stats.New(t)

		column, _ := cmd.Flags().GetString("column")
		listed, _ := cmd.Flags().GetStringArray("count")
		top, _ := cmd.Flags().GetInt("top")
		output, _ := cmd.Flags().GetString("output")

		if column == "" {
			infos, err := s.Describe()
			if err != nil {
				return err
			}
			if output == "text" {
				color.Cyan("📊 %s (%d rows, %d columns)", t.Name, t.Len(), t.Width())
				return writeDescribe(os.Stdout, infos)
			}
			return encode(os.Stdout, output, infos)
		}

		report, err := describeColumn(s, t.Name, column, listed)
		if err != nil {
			return err
		}
		if top > 0 && len(report.Counts) > top {
			report.Counts = report.Counts[:top]
		}
		if output == "text" {
			color.Cyan("📊 %s [%s]: %d distinct, %d null", t.Name, column, report.Unique, report.Nulls)
			return writeCounts(os.Stdout, report)
		}
		return encode(os.Stdout, output, report)
	},
}

func describeColumn(s *stats.Statistics, tableName, column string, listed []string) (*columnReport, error) {
	nulls, err := s.NullCount(column)
	if err != nil {
		return nil, err
	}
	unique, err := s.UniqueValues(column)
	if err != nil {
		return nil, err
	}
	report := &columnReport{Table: tableName, Column: column, Nulls: nulls, Unique: len(unique)}
	if nulls > 0 {
		report.Unique--
	}

	if len(listed) > 0 {
		report.Listed, err = s.CountListed(listed, column)
		return report, err
	}
	report.Counts, err = s.ValueCounts(column)
	return report, err
}

func writeDescribe(w io.Writer, infos []stats.ColumnInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COLUMN\tKIND\tNON-NULL\tNULLS\tUNIQUE\tMEAN\tSTD\tMIN\tQ1\tMEDIAN\tQ3\tMAX")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d", info.Name, info.Kind, info.NonNull, info.Nulls, info.Unique)
		if n := info.Numeric; n != nil {
			fmt.Fprintf(tw, "\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\n", n.Mean, n.StdDev, n.Min, n.Q1, n.Median, n.Q3, n.Max)
		} else {
			fmt.Fprintln(tw, "\t-\t-\t-\t-\t-\t-\t-")
		}
	}
	return tw.Flush()
}

func writeCounts(w io.Writer, report *columnReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VALUE\tCOUNT")
	if report.Listed != nil {
		for _, v := range sortedKeys(report.Listed) {
			fmt.Fprintf(tw, "%s\t%d\n", v, report.Listed[v])
		}
	} else {
		for _, vc := range report.Counts {
			fmt.Fprintf(tw, "%s\t%d\n", table.Format(vc.Value), vc.Count)
		}
	}
	return tw.Flush()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().String("column", "", "report value counts of one column")
	statsCmd.Flags().StringArray("count", nil, "with --column, only count these values")
	statsCmd.Flags().Int("top", 0, "with --column, show only the most frequent values")
	statsCmd.Flags().StringP("output", "o", "text", "output format: text, json or yaml")
}
