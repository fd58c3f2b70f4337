// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-15
// Last Modified: 2026-02-15

// Package jira lists the children of a Jira issue and reorders them with
// the Jira Software rank API.
package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	gojira "github.com/andygrunwald/go-jira"
	"github.com/rs/zerolog"

	"github.com/similigh/simili-rank/internal/core/ranking"
)

const (
	rankEndpoint  = "rest/agile/1.0/issue/rank"
	rankFieldName = "Rank"
)

// epicTypes are the parent issue types whose children are linked with 'Epic Link'.
var epicTypes = map[string]bool{"Epic": true, "Épico": true}

// childFields are fetched for every child regardless of the rank criteria.
var childFields = []string{"summary", "priority", "status", "issuetype", "created", "updated", "resolutiondate"}

// Client wraps the Jira API client.
type Client struct {
	client   *gojira.Client
	pageSize int
	log      zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithPageSize sets the search page size.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithLogger sets the logger used for non-fatal warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a Jira client for server authenticated with a bearer token.
func NewClient(ctx context.Context, server, token string, opts ...Option) (*Client, error) {
	jc, err := gojira.NewClient(newHTTPClient(ctx, token), server)
	if err != nil {
		return nil, fmt.Errorf("failed to create jira client: %w", err)
	}

	c := &Client{
		client:   jc,
		pageSize: 100,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Name returns the tracker name.
func (c *Client) Name() string {
	return "jira"
}

// ParentType returns the issue type name of the parent issue.
func (c *Client) ParentType(ctx context.Context, key string) (string, error) {
	issue, _, err := c.client.Issue.GetWithContext(ctx, key, &gojira.GetQueryOptions{Fields: "issuetype"})
	if err != nil {
		return "", &ranking.RemoteError{Op: "could not find parent issue " + key, Err: err}
	}
	if issue.Fields == nil {
		return "", nil
	}
	return issue.Fields.Type.Name, nil
}

// RankFieldID discovers the id of the custom field named "Rank".
// It returns an empty id when the instance has no such field.
func (c *Client) RankFieldID(ctx context.Context) (string, error) {
	fields, _, err := c.client.Field.GetListWithContext(ctx)
	if err != nil {
		return "", &ranking.RemoteError{Op: "list fields", Err: err}
	}
	for _, f := range fields {
		if f.Name == rankFieldName {
			return f.ID, nil
		}
	}
	return "", nil
}

// ChildJQL returns the query selecting the children of parent in rank order.
func ChildJQL(parent, parentType string) string {
	if epicTypes[parentType] {
		return fmt.Sprintf("'Epic Link' = '%s' ORDER BY Rank ASC", parent)
	}
	return fmt.Sprintf("parent = '%s' ORDER BY Rank ASC", parent)
}

// Children returns the children of parent in their current rank order.
func (c *Client) Children(ctx context.Context, parent string) ([]ranking.Issue, error) {
	parentType, err := c.ParentType(ctx, parent)
	if err != nil {
		return nil, err
	}
	c.log.Debug().Str("parent", parent).Str("type", parentType).Msg("found parent issue")

	// Without the rank field the current rank is shown as N/A.
	rankField, err := c.RankFieldID(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("could not discover the Rank field; current rank will not be shown")
	}

	fields := append([]string(nil), childFields...)
	if rankField != "" {
		fields = append(fields, rankField)
	}

	jql := ChildJQL(parent, parentType)
	c.log.Debug().Str("jql", jql).Msg("searching child issues")

	var issues []ranking.Issue
	err = c.client.Issue.SearchPagesWithContext(ctx, jql, &gojira.SearchOptions{
		MaxResults: c.pageSize,
		Fields:     fields,
	}, func(i gojira.Issue) error {
		issues = append(issues, toIssue(i, rankField))
		return nil
	})
	if err != nil {
		return nil, &ranking.RemoteError{Op: "search child issues of " + parent, Err: err}
	}
	return issues, nil
}

type rankRequest struct {
	Issues         []string `json:"issues"`
	RankAfterIssue string   `json:"rankAfterIssue"`
}

type rankResponse struct {
	Entries []struct {
		IssueKey string   `json:"issueKey"`
		Status   int      `json:"status"`
		Errors   []string `json:"errors"`
	} `json:"entries"`
}

// MoveAfter ranks key immediately after the issue after.
func (c *Client) MoveAfter(ctx context.Context, key, after string) error {
	req, err := c.client.NewRequestWithContext(ctx, http.MethodPut, rankEndpoint, rankRequest{
		Issues:         []string{key},
		RankAfterIssue: after,
	})
	if err != nil {
		return fmt.Errorf("failed to create rank request: %w", err)
	}

	resp, err := c.client.Do(req, nil)
	if resp != nil && resp.Response != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return gojira.NewJiraError(resp, err)
	}

	// 207 means some issues in the request could not be ranked.
	if resp.StatusCode == http.StatusMultiStatus {
		return rankFailure(resp.Body, key)
	}
	return nil
}

func rankFailure(body io.Reader, key string) error {
	var out rankResponse
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		return fmt.Errorf("rank of %s partially failed: %w", key, err)
	}
	for _, e := range out.Entries {
		if e.Status >= http.StatusMultipleChoices {
			return fmt.Errorf("rank of %s failed with status %d: %s", e.IssueKey, e.Status, strings.Join(e.Errors, "; "))
		}
	}
	return nil
}
