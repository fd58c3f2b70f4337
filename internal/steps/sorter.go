// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-15
// Last Modified: 2026-02-15

package steps

import (
	"github.com/rs/zerolog"

	"github.com/similigh/simili-rank/internal/core/pipeline"
	"github.com/similigh/simili-rank/internal/core/ranking"
)

// Sorter computes the target order and stops the run when nothing would change.
type Sorter struct {
	log zerolog.Logger
}

// NewSorter creates a new sorter step.
func NewSorter(deps *pipeline.Dependencies) *Sorter {
	return &Sorter{
		log: deps.Logger.With().Str("step", "sort").Logger(),
	}
}

// Name returns the step name.
func (s *Sorter) Name() string {
	return "sort"
}

// Run ranks the fetched issues.
func (s *Sorter) Run(ctx *pipeline.Context) error {
	proposal, err := ranking.Rank(ctx.Issues, ctx.Spec, ranking.WithLogger(s.log))
	if err != nil {
		return err
	}

	ctx.Proposal = proposal
	ctx.Result.Changed = proposal.Changed
	ctx.Result.Proposed = proposal.Proposed

	if !proposal.Changed {
		s.log.Info().Str("spec", ctx.Spec.String()).Msg("issues are already in the desired order")
		return ctx.Skip("issues are already in the desired order")
	}

	s.log.Info().Str("spec", ctx.Spec.String()).Msg("issues sorted")
	return nil
}
