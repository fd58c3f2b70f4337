// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-02-15

// Package github treats the sub-issues of a GitHub issue as rankable children.
package github

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"

	"github.com/similigh/simili-rank/internal/core/ranking"
)

const subIssuesPerPage = 100

// Labels maps issue labels onto the fields GitHub issues do not carry.
type Labels struct {
	// Priority lists priority labels from most to least urgent.
	Priority []string
	// InProgress marks open issues as in progress.
	InProgress []string
	// Type lists labels used as the issue type.
	Type []string
}

// Client wraps the GitHub API client.
type Client struct {
	client *github.Client
	labels Labels
	log    zerolog.Logger

	// parent and ids are filled by Children and used by MoveAfter.
	parent *ParentRef
	ids    map[string]int64
}

// Option configures a Client.
type Option func(*Client)

// WithLabels sets the label mapping.
func WithLabels(l Labels) Option {
	return func(c *Client) {
		c.labels = l
	}
}

// WithLogger sets the client logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// ParentRef identifies a parent issue as owner/repo#number.
type ParentRef struct {
	Owner  string
	Repo   string
	Number int
}

func (p ParentRef) String() string {
	return fmt.Sprintf("%s/%s#%d", p.Owner, p.Repo, p.Number)
}

// ParseParent parses an "owner/repo#number" reference.
func ParseParent(ref string) (ParentRef, error) {
	repoPart, num, ok := strings.Cut(strings.TrimSpace(ref), "#")
	if !ok {
		return ParentRef{}, fmt.Errorf("invalid parent %q: expected owner/repo#number", ref)
	}
	parts := strings.Split(repoPart, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ParentRef{}, fmt.Errorf("invalid parent %q: expected owner/repo#number", ref)
	}
	n, err := strconv.Atoi(num)
	if err != nil || n <= 0 {
		return ParentRef{}, fmt.Errorf("invalid parent %q: issue number must be a positive integer", ref)
	}
	return ParentRef{Owner: parts[0], Repo: parts[1], Number: n}, nil
}

// Name returns the tracker name.
func (c *Client) Name() string {
	return "github"
}

// Children lists the sub-issues of parent in their current order.
func (c *Client) Children(ctx context.Context, parent string) ([]ranking.Issue, error) {
	ref, err := ParseParent(parent)
	if err != nil {
		return nil, &ranking.ConfigurationError{Reason: err.Error()}
	}

	var issues []ranking.Issue
	page := 1
	for {
		u := fmt.Sprintf("repos/%v/%v/issues/%d/sub_issues?per_page=%d&page=%d",
			ref.Owner, ref.Repo, ref.Number, subIssuesPerPage, page)
		req, err := c.client.NewRequest("GET", u, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		var batch []*github.Issue
		resp, err := c.client.Do(ctx, req, &batch)
		if err != nil {
			return nil, &ranking.RemoteError{Op: "list sub-issues of " + ref.String(), Err: err}
		}

		for _, gi := range batch {
			issue := toIssue(gi, repoName(gi, ref.Repo), c.labels, len(issues))
			c.ids[issue.Key] = gi.GetID()
			issues = append(issues, issue)
		}

		if resp.NextPage == 0 {
			break
		}
		page = resp.NextPage
	}

	c.parent = &ref
	c.log.Debug().Str("parent", ref.String()).Int("count", len(issues)).Msg("listed sub-issues")
	return issues, nil
}

type priorityRequest struct {
	SubIssueID int64 `json:"sub_issue_id"`
	AfterID    int64 `json:"after_id"`
}

// MoveAfter places the sub-issue key directly after the sub-issue after.
// Both keys must come from a previous call to Children.
func (c *Client) MoveAfter(ctx context.Context, key, after string) error {
	if c.parent == nil {
		return fmt.Errorf("no parent loaded; list children before moving %s", key)
	}
	id, ok := c.ids[key]
	if !ok {
		return fmt.Errorf("unknown sub-issue %s", key)
	}
	afterID, ok := c.ids[after]
	if !ok {
		return fmt.Errorf("unknown sub-issue %s", after)
	}

	u := fmt.Sprintf("repos/%v/%v/issues/%d/sub_issues/priority", c.parent.Owner, c.parent.Repo, c.parent.Number)
	req, err := c.client.NewRequest("PATCH", u, priorityRequest{SubIssueID: id, AfterID: afterID})
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if _, err := c.client.Do(ctx, req, nil); err != nil {
		return fmt.Errorf("failed to move %s after %s: %w", key, after, err)
	}
	return nil
}

// GetFileContent fetches the raw content of a file in a repository.
func (c *Client) GetFileContent(ctx context.Context, org, repo, path, ref string) ([]byte, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}
	file, _, _, err := c.client.Repositories.GetContents(ctx, org, repo, path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s from %s/%s: %w", path, org, repo, err)
	}
	if file == nil {
		return nil, fmt.Errorf("%s in %s/%s is a directory", path, org, repo)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return []byte(content), nil
}

// repoName returns the repository a sub-issue lives in. Sub-issues can
// belong to other repositories of the same owner.
func repoName(i *github.Issue, fallback string) string {
	if u := i.GetRepositoryURL(); u != "" {
		if idx := strings.LastIndex(u, "/"); idx >= 0 && idx < len(u)-1 {
			return u[idx+1:]
		}
	}
	return fallback
}
