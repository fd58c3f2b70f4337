// Package pipeline provides step registration and preset workflow building.
package pipeline

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/similigh/simili-rank/internal/core/ranking"
	"github.com/similigh/simili-rank/internal/metrics"
)

// Registry holds registered step factories.
// Step factories create Step instances, allowing for dependency injection.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]StepFactory
}

// StepFactory is a function that creates a Step.
// It receives dependencies (like clients, config) as parameters.
type StepFactory func(deps *Dependencies) (Step, error)

// Dependencies holds the dependencies that can be injected into steps.
type Dependencies struct {
	Tracker Tracker
	DryRun  bool
	Logger  zerolog.Logger
	Metrics *metrics.Recorder

	// OnMove, if set, is called after every attempted rank move.
	OnMove func(ranking.MoveEvent)
}

// NewRegistry creates a new step registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]StepFactory),
	}
}

// Register adds a step factory to the registry.
func (r *Registry) Register(name string, factory StepFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get retrieves a step factory by name.
func (r *Registry) Get(name string) (StepFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[name]
	return factory, ok
}

// BuildFromNames creates a pipeline from a list of step names.
func (r *Registry) BuildFromNames(names []string, deps *Dependencies) (*Pipeline, error) {
	var steps []Step
	for _, name := range names {
		factory, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown step: %s", name)
		}
		step, err := factory(deps)
		if err != nil {
			return nil, fmt.Errorf("failed to create step '%s': %w", name, err)
		}
		steps = append(steps, step)
	}
	return New(steps...), nil
}

// Presets defines the built-in workflow presets.
var Presets = map[string][]string{
	// rank: fetch, sort and apply the new order (honours --dry-run)
	"rank": {
		"fetch_children",
		"sort",
		"preview",
		"reorder",
	},

	// preview: never touches the tracker
	"preview": {
		"fetch_children",
		"sort",
		"preview",
	},
}

// GetPreset returns the step names for a preset workflow.
func GetPreset(name string) ([]string, bool) {
	steps, ok := Presets[name]
	return steps, ok
}

// ResolveSteps returns the steps of a workflow preset. An empty name
// selects rank; an unknown name is an error so a typo never applies moves.
func ResolveSteps(workflow string) ([]string, error) {
	if workflow == "" {
		workflow = "rank"
	}
	preset, ok := GetPreset(workflow)
	if !ok {
		return nil, fmt.Errorf("unknown workflow %q (expected rank or preview)", workflow)
	}
	return preset, nil
}
