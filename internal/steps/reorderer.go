// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-15
// Last Modified: 2026-02-15

package steps

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/similigh/simili-rank/internal/core/pipeline"
	"github.com/similigh/simili-rank/internal/core/ranking"
	"github.com/similigh/simili-rank/internal/metrics"
)

// Reorderer applies the proposed order to the tracker.
type Reorderer struct {
	tracker pipeline.Tracker
	dryRun  bool
	log     zerolog.Logger
	metrics *metrics.Recorder
	onMove  func(ranking.MoveEvent)
}

// NewReorderer creates a new reorder step.
func NewReorderer(deps *pipeline.Dependencies) (*Reorderer, error) {
	if deps.Tracker == nil {
		return nil, errNoTracker
	}
	return &Reorderer{
		tracker: deps.Tracker,
		dryRun:  deps.DryRun,
		log:     deps.Logger.With().Str("step", "reorder").Logger(),
		metrics: deps.Metrics,
		onMove:  deps.OnMove,
	}, nil
}

// Name returns the step name.
func (s *Reorderer) Name() string {
	return "reorder"
}

// Run moves every issue after its predecessor in the proposed order.
func (s *Reorderer) Run(ctx *pipeline.Context) error {
	if ctx.Proposal == nil {
		return errNoProposal
	}
	if !ctx.Proposal.Changed {
		return ctx.Skip("issues are already in the desired order")
	}
	if s.dryRun {
		ctx.Result.DryRun = true
		return ctx.Skip("dry run")
	}

	s.log.Info().Int("moves", len(ctx.Proposal.Proposed)-1).Msg("reordering issues on the tracker")

	res, err := ranking.Apply(ctx.Ctx, ctx.Proposal.Proposed, s.tracker, ranking.WithObserver(s.observe))
	ctx.Result.Moved = res.Moved
	ctx.Result.TotalMoves = res.Total

	var partial *ranking.PartialFailureError
	if errors.As(err, &partial) {
		ctx.Result.FailedKey = partial.Failed.Key
		s.log.Error().
			Err(partial.Err).
			Str("key", partial.Failed.Key).
			Str("after", partial.Failed.After).
			Int("moved", partial.Moved).
			Strs("not_attempted", partial.Remaining).
			Msg("reorder stopped; the order was partially applied and it is safe to run again")
		return err
	}
	if err != nil {
		return err
	}

	s.log.Info().Int("moved", res.Moved).Msg("reorder completed")
	return nil
}

func (s *Reorderer) observe(e ranking.MoveEvent) {
	if s.metrics != nil {
		s.metrics.Move(e.Err)
	}
	if e.Err == nil {
		s.log.Debug().Int("step", e.Step).Int("total", e.Total).Str("key", e.Key).Str("after", e.After).Msg("moved issue")
	}
	if s.onMove != nil {
		s.onMove(e)
	}
}
