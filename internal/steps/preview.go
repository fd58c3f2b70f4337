// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-15
// Last Modified: 2026-02-15

package steps

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/similigh/simili-rank/internal/core/pipeline"
)

var errNoProposal = errors.New("no proposed order; the sort step must run first")

// Preview reports the proposed order and ends dry runs.
type Preview struct {
	dryRun bool
	log    zerolog.Logger
}

// NewPreview creates a new preview step.
func NewPreview(deps *pipeline.Dependencies) *Preview {
	return &Preview{
		dryRun: deps.DryRun,
		log:    deps.Logger.With().Str("step", "preview").Logger(),
	}
}

// Name returns the step name.
func (s *Preview) Name() string {
	return "preview"
}

// Run logs the proposed order.
func (s *Preview) Run(ctx *pipeline.Context) error {
	if ctx.Proposal == nil {
		return errNoProposal
	}

	for i, issue := range ctx.Proposal.Issues {
		rank := issue.Rank
		if rank == "" {
			rank = "N/A"
		}
		s.log.Info().Int("position", i+1).Str("key", issue.Key).Str("rank", rank).Msg("proposed order")
	}

	if s.dryRun {
		ctx.Result.DryRun = true
		s.log.Info().Msg("dry run: no changes will be applied")
		return ctx.Skip("dry run")
	}
	return nil
}
