package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/similigh/simili-rank/internal/core/ranking"
)

var criterionRules = map[ranking.Criterion]string{
	ranking.CriterionCreated:        "creation time, chronological across time zones (not ISO text order), unset last",
	ranking.CriterionUpdated:        "last update time, chronological across time zones (not ISO text order), unset last",
	ranking.CriterionResolutionDate: "resolution time, chronological across time zones (not ISO text order), unresolved last",
	ranking.CriterionPriority:       "priority id (lower id is more urgent)",
	ranking.CriterionKey:            "project prefix, then issue number",
	ranking.CriterionStatus:         "to do, in progress, done",
	ranking.CriterionIssueType:      "issue type name",
}

var criteriaCmd = &cobra.Command{
	Use:   "criteria",
	Short: "List the criteria accepted by --rank-by",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CRITERION\tORDER")
		for _, c := range ranking.Criteria() {
			fmt.Fprintf(w, "%s\t%s\n", c, criterionRules[c])
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(criteriaCmd)
}
