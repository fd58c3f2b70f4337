// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-15
// Last Modified: 2026-02-15

package jira

import (
	"fmt"
	"strconv"
	"time"

	gojira "github.com/andygrunwald/go-jira"

	"github.com/similigh/simili-rank/internal/core/ranking"
)

// toIssue converts a Jira issue into a ranking issue. Fields Jira did not
// return stay nil so the ranking can tell unset from empty.
func toIssue(i gojira.Issue, rankField string) ranking.Issue {
	out := ranking.Issue{Key: i.Key}
	f := i.Fields
	if f == nil {
		return out
	}

	out.Summary = f.Summary
	if f.Priority != nil {
		out.Priority = &ranking.Priority{Name: f.Priority.Name}
		if id, err := strconv.Atoi(f.Priority.ID); err == nil {
			out.Priority.ID = id
		} else {
			out.Priority.RawID = f.Priority.ID
		}
	}
	if f.Status != nil {
		out.Status = &ranking.Status{Name: f.Status.Name, CategoryID: f.Status.StatusCategory.ID}
	}
	if f.Type.Name != "" {
		out.IssueType = &ranking.IssueType{Name: f.Type.Name}
	}
	out.Created = timePtr(f.Created)
	out.Updated = timePtr(f.Updated)
	out.ResolutionDate = timePtr(f.Resolutiondate)

	if rankField != "" {
		if v, ok := f.Unknowns[rankField]; ok && v != nil {
			out.Rank = fmt.Sprint(v)
		}
	}
	return out
}

func timePtr(t gojira.Time) *time.Time {
	tt := time.Time(t)
	if tt.IsZero() {
		return nil
	}
	return &tt
}
