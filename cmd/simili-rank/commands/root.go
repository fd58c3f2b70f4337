// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-02-15

// Package commands implements the simili-rank command tree.
package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/similigh/simili-rank/internal/core/ranking"
)

var (
	cfgFile  string
	verbose  bool
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "simili-rank",
	Short: "Rank the child issues of a parent issue",
	Long: `simili-rank fetches the children of a parent issue from Jira or GitHub,
sorts them by one or more criteria and writes the new order back to the tracker.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .simili-rank.yaml or .github/simili-rank.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// DescribeError formats an error for the terminal. A partial reorder also
// lists the keys already in place and the ones never attempted.
func DescribeError(err error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %v", err)

	var partial *ranking.PartialFailureError
	if errors.As(err, &partial) {
		fmt.Fprintf(&b, "\nApplied (%d/%d moves): %s", partial.Moved, partial.Total, strings.Join(partial.Ordered, ", "))
		if len(partial.Remaining) > 0 {
			fmt.Fprintf(&b, "\nNot attempted: %s", strings.Join(partial.Remaining, ", "))
		}
		b.WriteString("\nRe-running the command is safe.")
	}
	return b.String()
}
