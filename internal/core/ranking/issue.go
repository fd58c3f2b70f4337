// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-14
// Last Modified: 2026-02-14

package ranking

import "time"

// Status category ids as reported by the tracker.
const (
	StatusCategoryToDo       = 2
	StatusCategoryDone       = 3
	StatusCategoryInProgress = 4
)

// Issue is a tracker item being ranked. Optional fields are nil when unset.
type Issue struct {
	Key            string
	Summary        string
	Priority       *Priority
	Status         *Status
	IssueType      *IssueType
	Created        *time.Time
	Updated        *time.Time
	ResolutionDate *time.Time

	// Rank is the tracker's current rank value, for display only.
	Rank string
}

// Priority is an ordered priority level.
type Priority struct {
	ID   int
	Name string

	// RawID holds a tracker id that is not an integer. Such a priority
	// cannot be ranked.
	RawID string
}

// Status is a workflow status and the category it belongs to.
type Status struct {
	Name       string
	CategoryID int
}

// IssueType is the kind of an issue.
type IssueType struct {
	Name string
}

// Keys returns the keys of issues in order.
func Keys(issues []Issue) []string {
	keys := make([]string, len(issues))
	for i, issue := range issues {
		keys[i] = issue.Key
	}
	return keys
}
