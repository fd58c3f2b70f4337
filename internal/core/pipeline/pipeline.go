// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-02-15

// Package pipeline provides the step engine that drives a ranking run.
// It defines the Step interface and the Context passed between steps.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/similigh/simili-rank/internal/core/config"
	"github.com/similigh/simili-rank/internal/core/ranking"
)

// ErrSkipPipeline indicates that the pipeline should stop gracefully.
// This is not an error condition, just an early exit (e.g., nothing to move, dry run).
var ErrSkipPipeline = errors.New("skip remaining pipeline steps")

// Step defines the interface that all pipeline steps must implement.
type Step interface {
	// Name returns the unique identifier for this step.
	Name() string

	// Run executes the step's logic.
	// It should return ErrSkipPipeline to stop the pipeline gracefully,
	// or any other error to indicate failure.
	Run(ctx *Context) error
}

// Result holds the accumulated results from pipeline execution.
type Result struct {
	Parent     string   `json:"parent"`
	Tracker    string   `json:"tracker"`
	Spec       string   `json:"spec"`
	Fetched    int      `json:"fetched"`
	Changed    bool     `json:"changed"`
	Proposed   []string `json:"proposed,omitempty"`
	DryRun     bool     `json:"dry_run"`
	Moved      int      `json:"moved"`
	TotalMoves int      `json:"total_moves"`
	FailedKey  string   `json:"failed_key,omitempty"`
	Skipped    bool     `json:"skipped"`
	SkipReason string   `json:"skip_reason,omitempty"`
}

// Context carries data through the pipeline steps.
type Context struct {
	// Ctx is the Go context for cancellation and timeouts.
	Ctx context.Context

	// Parent is the key of the issue whose children are ranked.
	Parent string

	// Spec holds the validated rank criteria and orders.
	Spec ranking.Spec

	// Config is the loaded configuration.
	Config *config.Config

	// Issues holds the children in the tracker's current order.
	Issues []ranking.Issue

	// Proposal is set by the sort step.
	Proposal *ranking.Proposal

	// Result accumulates the processing results.
	Result *Result
}

// NewContext creates a new pipeline context for a parent issue.
func NewContext(ctx context.Context, parent string, spec ranking.Spec, cfg *config.Config) *Context {
	return &Context{
		Ctx:      ctx,
		Parent:   parent,
		Spec:     spec,
		Config:   cfg,
		Result:   &Result{Parent: parent, Spec: spec.String()},
	}
}

// Skip marks the result as skipped and returns ErrSkipPipeline.
func (c *Context) Skip(reason string) error {
	c.Result.Skipped = true
	c.Result.SkipReason = reason
	return ErrSkipPipeline
}

// Pipeline executes a sequence of steps.
type Pipeline struct {
	steps []Step
}

// New creates a new pipeline with the given steps.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Run executes all steps in order.
// Stops on the first error (unless it's ErrSkipPipeline, which is graceful).
func (p *Pipeline) Run(ctx *Context) error {
	for _, step := range p.steps {
		if err := step.Run(ctx); err != nil {
			if errors.Is(err, ErrSkipPipeline) {
				// Graceful early exit
				return nil
			}
			return fmt.Errorf("step '%s' failed: %w", step.Name(), err)
		}
	}
	return nil
}

// Steps returns the list of steps (for introspection).
func (p *Pipeline) Steps() []Step {
	return p.steps
}
