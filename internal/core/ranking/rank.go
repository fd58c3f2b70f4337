// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-14
// Last Modified: 2026-02-14

package ranking

import (
	"slices"

	"github.com/rs/zerolog"
)

// Proposal is the outcome of ranking a set of issues.
type Proposal struct {
	// Current holds the keys in input order.
	Current []string
	// Proposed holds the keys in target order.
	Proposed []string
	// Issues are the input issues in target order.
	Issues []Issue
	// Changed is false when the target order equals the input order.
	Changed bool
}

// Option configures Rank.
type Option func(*comparator)

// WithLogger traces every deciding comparison at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(c *comparator) {
		c.log = log
	}
}

// Rank stably sorts issues under spec. Issues that tie on every criterion
// keep their input order, so the tracker's existing rank breaks the tie.
// The spec is validated before any value is extracted and a missing field on
// any issue aborts the whole ranking.
func Rank(issues []Issue, spec Spec, opts ...Option) (*Proposal, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	c := comparator{spec: spec, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&c)
	}

	entries := make([]entry, len(issues))
	for i, issue := range issues {
		values, err := extractAll(issue, spec)
		if err != nil {
			return nil, err
		}
		entries[i] = entry{issue: issue, values: values}
	}

	slices.SortStableFunc(entries, c.compare)

	sorted := make([]Issue, len(entries))
	for i, e := range entries {
		sorted[i] = e.issue
	}

	p := &Proposal{
		Current:  Keys(issues),
		Proposed: Keys(sorted),
		Issues:   sorted,
	}
	p.Changed = !slices.Equal(p.Current, p.Proposed)
	return p, nil
}
