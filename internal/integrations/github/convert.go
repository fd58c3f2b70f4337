// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-15
// Last Modified: 2026-02-15

package github

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/google/go-github/v60/github"

	"github.com/similigh/simili-rank/internal/core/ranking"
)

const defaultIssueType = "Issue"

// toIssue converts a sub-issue at position pos into a ranking issue.
func toIssue(gi *github.Issue, repo string, labels Labels, pos int) ranking.Issue {
	names := make([]string, 0, len(gi.Labels))
	for _, l := range gi.Labels {
		names = append(names, l.GetName())
	}

	issue := ranking.Issue{
		Key:            fmt.Sprintf("%s-%d", repo, gi.GetNumber()),
		Summary:        gi.GetTitle(),
		Status:         status(gi.GetState(), names, labels.InProgress),
		IssueType:      &ranking.IssueType{Name: defaultIssueType},
		Created:        timestamp(gi.CreatedAt),
		Updated:        timestamp(gi.UpdatedAt),
		ResolutionDate: timestamp(gi.ClosedAt),
		Rank:           strconv.Itoa(pos + 1),
	}

	for i, p := range labels.Priority {
		if slices.Contains(names, p) {
			issue.Priority = &ranking.Priority{ID: i + 1, Name: p}
			break
		}
	}
	for _, t := range labels.Type {
		if slices.Contains(names, t) {
			issue.IssueType = &ranking.IssueType{Name: t}
			break
		}
	}
	return issue
}

func status(state string, names, inProgress []string) *ranking.Status {
	if state == "closed" {
		return &ranking.Status{Name: "closed", CategoryID: ranking.StatusCategoryDone}
	}
	for _, l := range inProgress {
		if slices.Contains(names, l) {
			return &ranking.Status{Name: l, CategoryID: ranking.StatusCategoryInProgress}
		}
	}
	return &ranking.Status{Name: "open", CategoryID: ranking.StatusCategoryToDo}
}

func timestamp(ts *github.Timestamp) *time.Time {
	if ts == nil || ts.IsZero() {
		return nil
	}
	t := ts.Time
	return &t
}
