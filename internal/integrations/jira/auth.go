// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-15
// Last Modified: 2026-02-15

package jira

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// newHTTPClient returns an HTTP client sending the token as a bearer token.
// If token is empty, it returns an unauthenticated client.
func newHTTPClient(ctx context.Context, token string) *http.Client {
	if token == "" {
		return http.DefaultClient
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	return oauth2.NewClient(ctx, ts)
}
