// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-15
// Last Modified: 2026-02-15

package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/similigh/simili-rank/internal/core/config"
	"github.com/similigh/simili-rank/internal/core/pipeline"
	"github.com/similigh/simili-rank/internal/core/ranking"
	"github.com/similigh/simili-rank/internal/integrations/github"
	"github.com/similigh/simili-rank/internal/integrations/jira"
	"github.com/similigh/simili-rank/internal/logger"
	"github.com/similigh/simili-rank/internal/metrics"
)

var (
	rankParent      string
	rankBy          []string
	rankOrder       []string
	rankDryRun      bool
	rankDebug       bool
	rankWorkflow    string
	rankNoTUI       bool
	rankMetricsFile string
)

// rankCmd represents the rank command
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Sort the children of a parent issue and apply the new order",
	Long: `Fetch the children of a parent issue, sort them by one or more criteria
and move each issue after its predecessor on the tracker.

A single --order value applies to every criterion. Otherwise give one
order per criterion. Issues without a timestamp always sort last.

Examples:
  simili-rank rank --parent PROJ-100 --rank-by status,priority
  simili-rank rank --parent PROJ-100 --rank-by priority,created --order desc,asc --dry-run
  simili-rank rank --parent acme/web#12 --rank-by priority --config .github/simili-rank.yaml`,
	RunE: runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringVar(&rankParent, "parent", "", "Parent issue key (PROJ-1, or owner/repo#1 for GitHub) (required)")
	rankCmd.Flags().StringSliceVar(&rankBy, "rank-by", nil, "Comma-separated rank criteria (see 'simili-rank criteria')")
	rankCmd.Flags().StringSliceVar(&rankOrder, "order", nil, "Comma-separated orders, asc or desc (default asc)")
	rankCmd.Flags().BoolVar(&rankDryRun, "dry-run", false, "Show the proposed order without changing the tracker")
	rankCmd.Flags().BoolVar(&rankDebug, "debug", false, "Log every comparison decision")
	rankCmd.Flags().StringVar(&rankWorkflow, "workflow", "", "Workflow preset to run: rank or preview")
	rankCmd.Flags().BoolVar(&rankNoTUI, "no-tui", false, "Disable the interactive progress view")
	rankCmd.Flags().StringVar(&rankMetricsFile, "metrics-file", "", "Write run metrics to this file in Prometheus text format")

	if err := rankCmd.MarkFlagRequired("parent"); err != nil {
		fmt.Printf("Warning: Failed to mark parent flag as required: %v\n", err)
	}
}

func runRank(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	started := time.Now()

	// 1. Configuration and rank spec, both before touching the tracker
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	spec, err := buildSpec(cfg)
	if err != nil {
		return err
	}

	workflow := rankWorkflow
	if workflow == "" {
		workflow = cfg.Defaults.Workflow
	}
	stepNames, err := pipeline.ResolveSteps(workflow)
	if err != nil {
		return &ranking.ConfigurationError{Reason: err.Error()}
	}

	if err := cfg.Validate(); err != nil {
		return &ranking.ConfigurationError{Reason: err.Error()}
	}

	// 2. Logging and metrics
	log, err := newLogger(cfg)
	if err != nil {
		return &ranking.ConfigurationError{Reason: err.Error()}
	}
	rec := metrics.New(metrics.WithConstLabels(map[string]string{"tracker": cfg.Tracker}))

	// 3. Tracker
	tracker, err := newTracker(ctx, cfg, log)
	if err != nil {
		return err
	}

	deps := &pipeline.Dependencies{
		Tracker: tracker,
		DryRun:  rankDryRun,
		Logger:  log,
		Metrics: rec,
	}

	log.Info().
		Str("parent", rankParent).
		Str("tracker", tracker.Name()).
		Str("rank_by", spec.String()).
		Str("workflow", workflow).
		Bool("dry_run", rankDryRun).
		Msg("starting ranking run")

	// 4. Run
	pCtx := pipeline.NewContext(ctx, rankParent, spec, cfg)
	if useTUI() {
		err = runWithTUI(deps, stepNames, pCtx)
	} else {
		err = runPlain(cmd.OutOrStdout(), deps, stepNames, pCtx)
	}

	rec.RunFinished(runOutcome(pCtx.Result, err), time.Since(started))
	if path := metricsPath(cfg); path != "" {
		if werr := rec.WriteTextfile(path); werr != nil {
			log.Warn().Err(werr).Str("path", path).Msg("failed to write metrics")
		}
	}
	return err
}

// loadConfig finds and loads the configuration, resolving 'extends' through GitHub.
func loadConfig(ctx context.Context) (*config.Config, error) {
	fetcher := func(ref string) ([]byte, error) {
		// Parse ref: org/repo@branch:path
		org, repo, branch, path, err := config.ParseExtendsRef(ref)
		if err != nil {
			return nil, err
		}

		token := os.Getenv("GITHUB_TOKEN")
		if token == "" {
			return nil, fmt.Errorf("GITHUB_TOKEN required to fetch remote config %s", ref)
		}

		ghClient := github.NewClient(ctx, token)
		return ghClient.GetFileContent(ctx, org, repo, path, branch)
	}

	cfgPath := config.FindConfigPath(cfgFile)
	if cfgFile != "" && cfgPath == "" {
		return nil, &ranking.ConfigurationError{Reason: fmt.Sprintf("config file %s not found", cfgFile)}
	}
	if cfgPath == "" {
		if verbose {
			fmt.Fprintln(os.Stderr, "No configuration file found. Using defaults and environment variables.")
		}
		return config.Default(), nil
	}

	cfg, err := config.LoadWithInheritance(cfgPath, fetcher)
	if err != nil {
		return nil, &ranking.ConfigurationError{Reason: err.Error()}
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded config from %s\n", cfgPath)
	}
	return cfg, nil
}

// buildSpec combines flags with configured defaults. Flags win.
func buildSpec(cfg *config.Config) (ranking.Spec, error) {
	criteria := rankBy
	if len(criteria) == 0 {
		criteria = cfg.Defaults.RankBy
	}
	orders := rankOrder
	if len(orders) == 0 {
		orders = cfg.Defaults.Order
	}
	return ranking.NewSpec(criteria, orders)
}

func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	if rankDebug || verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:  level,
		Format: cfg.Logging.Format,
		Out:    os.Stderr,
	})
}

// newTracker creates the client for the configured tracker.
func newTracker(ctx context.Context, cfg *config.Config, log zerolog.Logger) (pipeline.Tracker, error) {
	switch cfg.Tracker {
	case config.TrackerJira:
		client, err := jira.NewClient(ctx, cfg.Jira.Server, cfg.Jira.Token,
			jira.WithPageSize(cfg.Jira.PageSize),
			jira.WithLogger(log.With().Str("tracker", "jira").Logger()),
		)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.TrackerGitHub:
		return github.NewClient(ctx, cfg.GitHub.Token,
			github.WithLabels(github.Labels{
				Priority:   cfg.GitHub.PriorityLabels,
				InProgress: cfg.GitHub.InProgressLabels,
				Type:       cfg.GitHub.TypeLabels,
			}),
			github.WithLogger(log.With().Str("tracker", "github").Logger()),
		), nil
	default:
		return nil, &ranking.ConfigurationError{Reason: fmt.Sprintf("unknown tracker %q", cfg.Tracker)}
	}
}

func metricsPath(cfg *config.Config) string {
	if rankMetricsFile != "" {
		return rankMetricsFile
	}
	return cfg.Metrics.Textfile
}

// useTUI reports whether the interactive view should be shown.
func useTUI() bool {
	if rankNoTUI {
		return false
	}
	return os.Getenv("CI") != "true" && os.Getenv("GITHUB_ACTIONS") != "true"
}
