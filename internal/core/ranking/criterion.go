// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-14
// Last Modified: 2026-02-14

// Package ranking computes a multi-criteria total order over tracker issues
// and translates it into a chain of remote "move after" instructions.
package ranking

import (
	"sort"
	"strings"
)

// Criterion names a field an ordering can be computed from.
type Criterion string

const (
	CriterionCreated        Criterion = "created"
	CriterionUpdated        Criterion = "updated"
	CriterionResolutionDate Criterion = "resolutiondate"
	CriterionPriority       Criterion = "priority"
	CriterionKey            Criterion = "key"
	CriterionStatus         Criterion = "status"
	CriterionIssueType      Criterion = "issuetype"
)

// Direction is the sort direction applied to a single criterion.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Criteria returns every supported criterion, sorted by name.
func Criteria() []Criterion {
	out := make([]Criterion, 0, len(extractors))
	for c := range extractors {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseCriterion resolves a user supplied criterion token.
func ParseCriterion(s string) (Criterion, error) {
	c := Criterion(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := extractors[c]; !ok {
		names := make([]string, 0, len(extractors))
		for _, known := range Criteria() {
			names = append(names, string(known))
		}
		return "", &ConfigurationError{
			Reason: "invalid rank criterion '" + s + "' (valid: " + strings.Join(names, ", ") + ")",
		}
	}
	return c, nil
}

// ParseDirection resolves a user supplied direction token.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Ascending, Descending:
		return d, nil
	default:
		return "", &ConfigurationError{Reason: "invalid order '" + s + "' (expected asc or desc)"}
	}
}

// apply orients a natural comparison result according to the direction.
func (d Direction) apply(natural int) int {
	if d == Descending {
		return -natural
	}
	return natural
}
