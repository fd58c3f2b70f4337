// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-15
// Last Modified: 2026-02-15

// Package steps contains the pipeline steps of a ranking run.
// Each step implements the pipeline.Step interface.
package steps

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/similigh/simili-rank/internal/core/pipeline"
	"github.com/similigh/simili-rank/internal/metrics"
)

var errNoTracker = errors.New("no tracker configured")

// ChildFetcher loads the children of the parent issue in their current rank order.
type ChildFetcher struct {
	tracker pipeline.Tracker
	log     zerolog.Logger
	metrics *metrics.Recorder
}

// NewChildFetcher creates a new child fetcher step.
func NewChildFetcher(deps *pipeline.Dependencies) (*ChildFetcher, error) {
	if deps.Tracker == nil {
		return nil, errNoTracker
	}
	return &ChildFetcher{
		tracker: deps.Tracker,
		log:     deps.Logger.With().Str("step", "fetch_children").Logger(),
		metrics: deps.Metrics,
	}, nil
}

// Name returns the step name.
func (s *ChildFetcher) Name() string {
	return "fetch_children"
}

// Run fetches the child issues.
func (s *ChildFetcher) Run(ctx *pipeline.Context) error {
	ctx.Result.Tracker = s.tracker.Name()

	s.log.Info().Str("parent", ctx.Parent).Str("tracker", s.tracker.Name()).Msg("fetching child issues")
	issues, err := s.tracker.Children(ctx.Ctx, ctx.Parent)
	if err != nil {
		return err
	}

	ctx.Issues = issues
	ctx.Result.Fetched = len(issues)
	if s.metrics != nil {
		s.metrics.IssuesFetched(len(issues))
	}

	if len(issues) == 0 {
		s.log.Info().Msg("no child issues to rank")
		return ctx.Skip("no child issues found")
	}

	s.log.Info().Int("count", len(issues)).Msg("found child issues")
	return nil
}
