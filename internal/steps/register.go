// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-02-15

package steps

import (
	"github.com/similigh/simili-rank/internal/core/pipeline"
)

// RegisterAll registers all built-in steps with the registry.
func RegisterAll(r *pipeline.Registry) {
	r.Register("fetch_children", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		step, err := NewChildFetcher(deps)
		if err != nil {
			return nil, err
		}
		return step, nil
	})

	r.Register("sort", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewSorter(deps), nil
	})

	r.Register("preview", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewPreview(deps), nil
	})

	r.Register("reorder", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		step, err := NewReorderer(deps)
		if err != nil {
			return nil, err
		}
		return step, nil
	})
}
