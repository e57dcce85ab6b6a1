package cmd

import (
	"fmt"
	"strings"

	"stock-terminal/core/query"

	"github.com/spf13/cobra"
)

// queryCmd prints how search text is parsed.
var queryCmd = &cobra.Command{
	Use:   "query <search text>",
	Short: "Show how search text is parsed",
	Long: `Parses search text the way the terminal does and prints the resulting
groups and terms.

Syntax:
  a b      both terms must match
  a | b    either group may match
  -a, !a   negation
  @mod     mod id or mod name
  #text    tooltip
  $tag     tag (alternate id)
  *id, &id registry id
  "a b"    quoted term with spaces

Examples:
  query 'iron -nugget | @thermal'
  query '"iron ingot" $forge:ingots'`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw := strings.Join(args, " ")
		q := query.Parse(raw)
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Input:      %q\n", raw)
		fmt.Fprintf(out, "Normalized: %q\n", query.Normalize(raw))
		if q.MatchAll {
			fmt.Fprintln(out, "Matches everything")
			return
		}
		fmt.Fprintf(out, "Query:      %s\n", q)
		for i, g := range q.Groups {
			fmt.Fprintf(out, "Group %d:\n", i+1)
			for _, t := range g {
				neg := ""
				if t.Negated {
					neg = " (negated)"
				}
				fmt.Fprintf(out, "  %-12s %q%s\n", t.Field, t.Text, neg)
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(queryCmd)
}
