// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-14
// Last Modified: 2026-02-14

package ranking

import (
	"fmt"
	"strings"
)

// Spec is an ordered list of criteria with their directions. A single
// direction applies to every criterion; otherwise there is one per criterion.
type Spec struct {
	Criteria   []Criterion
	Directions []Direction
}

// NewSpec parses criterion and direction tokens into a validated Spec.
// No directions means ascending.
func NewSpec(criteria, directions []string) (Spec, error) {
	var spec Spec
	for _, token := range criteria {
		c, err := ParseCriterion(token)
		if err != nil {
			return Spec{}, err
		}
		spec.Criteria = append(spec.Criteria, c)
	}
	if len(directions) == 0 {
		directions = []string{string(Ascending)}
	}
	for _, token := range directions {
		d, err := ParseDirection(token)
		if err != nil {
			return Spec{}, err
		}
		spec.Directions = append(spec.Directions, d)
	}
	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// Validate checks that s can drive a comparison.
func (s Spec) Validate() error {
	if len(s.Criteria) == 0 {
		return &ConfigurationError{Reason: "at least one rank criterion is required"}
	}
	for _, c := range s.Criteria {
		if _, ok := extractors[c]; !ok {
			return &ConfigurationError{Reason: "invalid rank criterion '" + string(c) + "'"}
		}
	}
	for _, d := range s.Directions {
		if d != Ascending && d != Descending {
			return &ConfigurationError{Reason: "invalid order '" + string(d) + "' (expected asc or desc)"}
		}
	}
	if len(s.Directions) != 1 && len(s.Directions) != len(s.Criteria) {
		return &ConfigurationError{Reason: fmt.Sprintf(
			"the number of rank criteria (%d) does not match the number of orders (%d)",
			len(s.Criteria), len(s.Directions))}
	}
	return nil
}

// Direction returns the direction of the i-th criterion.
func (s Spec) Direction(i int) Direction {
	if len(s.Directions) == 1 {
		return s.Directions[0]
	}
	return s.Directions[i]
}

func (s Spec) String() string {
	parts := make([]string, len(s.Criteria))
	for i, c := range s.Criteria {
		parts[i] = string(c) + " " + string(s.Direction(i))
	}
	return strings.Join(parts, ", ")
}
