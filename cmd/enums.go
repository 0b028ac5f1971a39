package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/go-e621/e621"
)

type enumValue struct {
	value string
	label string
}

func codeValues[T interface {
	~int
	Label() (string, bool)
}](codes []T) []enumValue {
	out := make([]enumValue, len(codes))
	for i, c := range codes {
		label, _ := c.Label()
		out[i] = enumValue{value: fmt.Sprint(int(c)), label: label}
	}
	return out
}

func stringValues[T ~string](values []T) []enumValue {
	out := make([]enumValue, len(values))
	for i, v := range values {
		out[i] = enumValue{value: string(v)}
	}
	return out
}

var enumTables = map[string][]enumValue{
	"tag-categories":      codeValues(e621.TagCategories()),
	"report-reasons":      codeValues(e621.ReportReasons()),
	"forum-categories":    codeValues(e621.ForumCategories()),
	"account-levels":      codeValues(e621.AccountLevels()),
	"flag-reasons":        stringValues(e621.FlagReasons()),
	"pool-categories":     stringValues(e621.PoolCategories()),
	"feedback-categories": stringValues(e621.FeedbackCategories()),
	"alias-statuses":      stringValues(e621.AliasStatuses()),
	"alias-orders":        stringValues(e621.AliasOrders()),
	"tag-orders":          stringValues(e621.TagOrders()),
	"ratings":             {{"s", "safe"}, {"q", "questionable"}, {"e", "explicit"}},
}

var enumsCmd = &cobra.Command{
	Use:         "enums [table]",
	Short:       "Print the values accepted by enumerated parameters",
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{skipInit: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		names := make([]string, 0, len(enumTables))
		for name := range enumTables {
			names = append(names, name)
		}
		sort.Strings(names)

		if len(args) == 1 {
			if _, ok := enumTables[args[0]]; !ok {
				return fmt.Errorf("unknown table %q (one of %s)", args[0], strings.Join(names, ", "))
			}
			names = args
		}

		for _, name := range names {
			printEnum(cmd.OutOrStdout(), name, enumTables[name])
		}
		return nil
	},
}

func printEnum(w io.Writer, name string, values []enumValue) {
	fmt.Fprintf(w, "%s:\n", name)
	for _, v := range values {
		if v.label != "" {
			fmt.Fprintf(w, "  %-12s %s\n", v.value, v.label)
		} else {
			fmt.Fprintf(w, "  %s\n", v.value)
		}
	}
}

func init() {
	rootCmd.AddCommand(enumsCmd)
}
