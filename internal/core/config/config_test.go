// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-02-15

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestConfigDefaults verifies that default values are applied correctly.
func TestConfigDefaults(t *testing.T) {
	t.Setenv("JIRA_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")

	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Tracker != TrackerJira {
		t.Errorf("Expected Tracker to be 'jira', got %s", cfg.Tracker)
	}
	if cfg.Jira.PageSize != 100 {
		t.Errorf("Expected Jira.PageSize to be 100, got %d", cfg.Jira.PageSize)
	}
	if len(cfg.Defaults.Order) != 1 || cfg.Defaults.Order[0] != "asc" {
		t.Errorf("Expected Defaults.Order to be [asc], got %v", cfg.Defaults.Order)
	}
	if cfg.Defaults.Workflow != "rank" {
		t.Errorf("Expected Defaults.Workflow to be 'rank', got %s", cfg.Defaults.Workflow)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("Unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestConfigDefaultsReadTokensFromEnv(t *testing.T) {
	t.Setenv("JIRA_TOKEN", "jira-secret")
	t.Setenv("JIRA_SERVER", "https://jira.example.com")
	t.Setenv("GITHUB_TOKEN", "gh-secret")

	cfg := Default()
	if cfg.Jira.Token != "jira-secret" || cfg.Jira.Server != "https://jira.example.com" {
		t.Errorf("Expected Jira settings from env, got %+v", cfg.Jira)
	}
	if cfg.GitHub.Token != "gh-secret" {
		t.Errorf("Expected GitHub token from env, got %q", cfg.GitHub.Token)
	}
}

func TestParseRawExpandsEnv(t *testing.T) {
	t.Setenv("TEST_RANK_TOKEN", "expanded-token")

	yamlContent := `
tracker: jira
jira:
  server: https://jira.example.com
  token: ${TEST_RANK_TOKEN}
defaults:
  rank_by: [status, priority]
  order: [asc, desc]
github:
  priority_labels: [P0, P1, P2]
`
	cfg, err := parseRaw([]byte(yamlContent))
	if err != nil {
		t.Fatalf("Failed to parse YAML: %v", err)
	}
	if cfg.Jira.Token != "expanded-token" {
		t.Errorf("Expected expanded token, got %q", cfg.Jira.Token)
	}
	if len(cfg.Defaults.RankBy) != 2 || cfg.Defaults.Order[1] != "desc" {
		t.Errorf("Unexpected defaults: %+v", cfg.Defaults)
	}
	if len(cfg.GitHub.PriorityLabels) != 3 {
		t.Errorf("Expected 3 priority labels, got %v", cfg.GitHub.PriorityLabels)
	}
}

func TestLoadWithInheritanceKeepsParentValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "child.yaml")
	child := `
extends: org/repo@main
defaults:
  rank_by: [key]
`
	if err := os.WriteFile(path, []byte(child), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	parent := `
tracker: github
github:
  token: parent-token
  priority_labels: [P0, P1]
defaults:
  order: [desc]
`
	var fetched string
	cfg, err := LoadWithInheritance(path, func(ref string) ([]byte, error) {
		fetched = ref
		return []byte(parent), nil
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fetched != "org/repo@main" {
		t.Errorf("Expected fetcher to receive the extends ref, got %q", fetched)
	}
	if cfg.Tracker != TrackerGitHub {
		t.Errorf("Expected parent tracker github, got %s", cfg.Tracker)
	}
	if cfg.GitHub.Token != "parent-token" {
		t.Errorf("Expected parent token, got %q", cfg.GitHub.Token)
	}
	if len(cfg.Defaults.RankBy) != 1 || cfg.Defaults.RankBy[0] != "key" {
		t.Errorf("Expected child rank_by, got %v", cfg.Defaults.RankBy)
	}
	if cfg.Defaults.Order[0] != "desc" {
		t.Errorf("Expected parent order, got %v", cfg.Defaults.Order)
	}
}

func TestLoadWithInheritanceFetchError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "child.yaml")
	if err := os.WriteFile(path, []byte("extends: org/repo@main\n"), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := LoadWithInheritance(path, func(string) ([]byte, error) {
		return nil, errors.New("no token")
	})
	if err == nil || !strings.Contains(err.Error(), "org/repo@main") {
		t.Errorf("Expected fetch error mentioning the ref, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid jira",
			cfg:  Config{Tracker: TrackerJira, Jira: JiraConfig{Server: "https://jira", Token: "t"}, Logging: LoggingConfig{Format: "console"}},
		},
		{
			name: "valid github",
			cfg:  Config{Tracker: TrackerGitHub, GitHub: GitHubConfig{Token: "t"}, Logging: LoggingConfig{Format: "json"}},
		},
		{
			name:    "missing server",
			cfg:     Config{Tracker: TrackerJira, Jira: JiraConfig{Token: "t"}},
			wantErr: "jira.server",
		},
		{
			name:    "placeholder token",
			cfg:     Config{Tracker: TrackerJira, Jira: JiraConfig{Server: "https://jira", Token: "YOUR_JIRA_API_TOKEN"}},
			wantErr: "placeholder",
		},
		{
			name:    "missing github token",
			cfg:     Config{Tracker: TrackerGitHub},
			wantErr: "github.token",
		},
		{
			name:    "unknown tracker",
			cfg:     Config{Tracker: "linear"},
			wantErr: "unknown tracker",
		},
		{
			name:    "unknown log format",
			cfg:     Config{Tracker: TrackerGitHub, GitHub: GitHubConfig{Token: "t"}, Logging: LoggingConfig{Format: "xml"}},
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestParseExtendsRef verifies extends reference parsing.
func TestParseExtendsRef(t *testing.T) {
	tests := []struct {
		name        string
		ref         string
		wantOrg     string
		wantRepo    string
		wantBranch  string
		wantPath    string
		expectError bool
	}{
		{
			name:       "valid ref with default path",
			ref:        "org/repo@main",
			wantOrg:    "org",
			wantRepo:   "repo",
			wantBranch: "main",
			wantPath:   ".github/simili-rank.yaml",
		},
		{
			name:       "valid ref with custom path",
			ref:        "org/repo@main:custom/path.yaml",
			wantOrg:    "org",
			wantRepo:   "repo",
			wantBranch: "main",
			wantPath:   "custom/path.yaml",
		},
		{
			name:        "invalid ref missing branch",
			ref:         "org/repo",
			expectError: true,
		},
		{
			name:        "invalid ref missing repo",
			ref:         "org@main",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			org, repo, branch, path, err := ParseExtendsRef(tt.ref)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for ref %s, got nil", tt.ref)
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if org != tt.wantOrg {
				t.Errorf("Expected org %s, got %s", tt.wantOrg, org)
			}
			if repo != tt.wantRepo {
				t.Errorf("Expected repo %s, got %s", tt.wantRepo, repo)
			}
			if branch != tt.wantBranch {
				t.Errorf("Expected branch %s, got %s", tt.wantBranch, branch)
			}
			if path != tt.wantPath {
				t.Errorf("Expected path %s, got %s", tt.wantPath, path)
			}
		})
	}
}
