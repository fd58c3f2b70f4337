// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-02-02
// Last Modified: 2026-02-15

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/similigh/simili-rank/internal/core/pipeline"
	"github.com/similigh/simili-rank/internal/core/ranking"
	"github.com/similigh/simili-rank/internal/steps"
	"github.com/similigh/simili-rank/internal/tui"
)

// Wrapper step to send status updates
type statusReportingStep struct {
	inner      pipeline.Step
	statusChan chan<- tea.Msg
}

func (s *statusReportingStep) Name() string {
	return s.inner.Name()
}

func (s *statusReportingStep) Run(ctx *pipeline.Context) error {
	s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: "started", Message: "Starting..."}

	err := s.inner.Run(ctx)

	if err != nil {
		if errors.Is(err, pipeline.ErrSkipPipeline) {
			s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: "skipped", Message: ctx.Result.SkipReason}
			return err
		}
		s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: "error", Message: err.Error()}
		return err
	}

	s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: "success", Message: "Completed"}
	return nil
}

// buildPipeline creates the named steps, optionally wrapping each one.
func buildPipeline(deps *pipeline.Dependencies, stepNames []string, wrap func(pipeline.Step) pipeline.Step) (*pipeline.Pipeline, error) {
	registry := pipeline.NewRegistry()
	steps.RegisterAll(registry)

	built, err := registry.BuildFromNames(stepNames, deps)
	if err != nil {
		return nil, err
	}
	if wrap == nil {
		return built, nil
	}

	var wrapped []pipeline.Step
	for _, step := range built.Steps() {
		wrapped = append(wrapped, wrap(step))
	}
	return pipeline.New(wrapped...), nil
}

// runPlain runs the pipeline without a terminal UI and writes the outcome to out.
func runPlain(out io.Writer, deps *pipeline.Dependencies, stepNames []string, pCtx *pipeline.Context) error {
	p, err := buildPipeline(deps, stepNames, nil)
	if err != nil {
		return err
	}

	err = p.Run(pCtx)
	fmt.Fprintln(out, renderOutcome(pCtx))
	return err
}

// runWithTUI runs the pipeline behind the interactive progress view.
// Quitting the view does not stop a reorder already in progress; the
// outcome is then printed once the pipeline finishes.
func runWithTUI(deps *pipeline.Dependencies, stepNames []string, pCtx *pipeline.Context) error {
	activity := make(chan tea.Msg)
	program := tea.NewProgram(tui.NewModel(stepNames, activity), tea.WithOutput(os.Stderr))

	// Moves share the status channel so each one restarts the view's wait.
	deps.OnMove = func(e ranking.MoveEvent) {
		activity <- tui.MoveMsg{Step: e.Step, Total: e.Total, Key: e.Key, After: e.After, Err: e.Err}
	}

	p, err := buildPipeline(deps, stepNames, func(s pipeline.Step) pipeline.Step {
		return &statusReportingStep{inner: s, statusChan: activity}
	})
	if err != nil {
		return err
	}

	var runErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		runErr = runPipeline(p, pCtx, activity)
	}()

	final, uiErr := program.Run()

	// Keep the pipeline unblocked if the view was closed early.
	go func() {
		for range activity {
		}
	}()
	<-done

	if m, ok := final.(tui.Model); uiErr != nil || !ok || !m.Reported() {
		fmt.Println(renderOutcome(pCtx))
	}
	if uiErr != nil && runErr == nil {
		return fmt.Errorf("terminal UI failed: %w", uiErr)
	}
	return runErr
}

func runPipeline(p *pipeline.Pipeline, pCtx *pipeline.Context, activity chan<- tea.Msg) error {
	defer close(activity)

	err := p.Run(pCtx)
	activity <- tui.ResultMsg{Success: err == nil, Output: renderOutcome(pCtx)}
	return err
}

// renderOutcome renders the proposed order table followed by a summary line.
func renderOutcome(pCtx *pipeline.Context) string {
	var b strings.Builder
	if pCtx.Proposal != nil && len(pCtx.Proposal.Issues) > 0 {
		b.WriteString(tui.OrderTable(pCtx.Proposal))
		b.WriteString("\n")
	}
	b.WriteString(summarize(pCtx.Result))
	return b.String()
}

func summarize(r *pipeline.Result) string {
	planned := len(r.Proposed) - 1
	switch {
	case r.Fetched == 0:
		return fmt.Sprintf("%s has no child issues.", r.Parent)
	case !r.Changed:
		return fmt.Sprintf("The %d children of %s are already ordered by %s.", r.Fetched, r.Parent, r.Spec)
	case r.DryRun:
		return fmt.Sprintf("Dry run: %d moves would reorder %s by %s. Nothing was changed.", planned, r.Parent, r.Spec)
	case r.FailedKey != "":
		return fmt.Sprintf("Reorder of %s stopped at %s after %d of %d moves.", r.Parent, r.FailedKey, r.Moved, r.TotalMoves)
	case r.TotalMoves == 0:
		return fmt.Sprintf("Preview: %d moves would reorder %s by %s.", planned, r.Parent, r.Spec)
	default:
		return fmt.Sprintf("Reordered %s by %s with %d moves.", r.Parent, r.Spec, r.Moved)
	}
}

// runOutcome classifies a finished run for the runs_total metric.
func runOutcome(r *pipeline.Result, err error) string {
	switch {
	case err != nil:
		return "error"
	case r.Fetched == 0:
		return "empty"
	case !r.Changed:
		return "unchanged"
	case r.TotalMoves == 0:
		return "dry_run"
	default:
		return "applied"
	}
}
