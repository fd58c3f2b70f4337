// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-02-15

// Package config handles loading and merging simili-rank configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported tracker backends.
const (
	TrackerJira   = "jira"
	TrackerGitHub = "github"
)

// tokenPlaceholders are sample values shipped in example configs.
var tokenPlaceholders = []string{"YOUR_JIRA_API_TOKEN", "YOUR_GITHUB_TOKEN"}

// Config is the root configuration structure.
type Config struct {
	// Extends allows inheriting from a remote config (e.g., "org/repo@branch").
	Extends string `yaml:"extends,omitempty"`

	// Tracker selects the issue tracker backend: "jira" or "github".
	Tracker string `yaml:"tracker"`

	// Jira configures the Jira connection.
	Jira JiraConfig `yaml:"jira"`

	// GitHub configures the GitHub connection and label mapping.
	GitHub GitHubConfig `yaml:"github"`

	// Defaults contains default ranking settings.
	Defaults DefaultsConfig `yaml:"defaults"`

	// Logging configures log output.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics configures the run metrics export.
	Metrics MetricsConfig `yaml:"metrics"`
}

// JiraConfig holds Jira connection settings.
type JiraConfig struct {
	Server   string `yaml:"server"`
	Token    string `yaml:"token"`
	PageSize int    `yaml:"page_size,omitempty"`
}

// GitHubConfig holds GitHub settings. Labels stand in for the fields
// GitHub issues do not have.
type GitHubConfig struct {
	Token            string   `yaml:"token"`
	PriorityLabels   []string `yaml:"priority_labels,omitempty"`
	InProgressLabels []string `yaml:"in_progress_labels,omitempty"`
	TypeLabels       []string `yaml:"type_labels,omitempty"`
}

// DefaultsConfig holds default ranking settings used when flags are omitted.
type DefaultsConfig struct {
	RankBy   []string `yaml:"rank_by,omitempty"`
	Order    []string `yaml:"order,omitempty"`
	Workflow string   `yaml:"workflow,omitempty"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	// Textfile is a path the run metrics are written to in Prometheus text format.
	Textfile string `yaml:"textfile,omitempty"`
}

func readRaw(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return parseRaw(data)
}

// parseRaw expands environment variables and unmarshals YAML without defaults.
func parseRaw(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// LoadWithInheritance loads a config and resolves the 'extends' reference.
// The fetcher function is used to retrieve remote configs. Defaults are
// applied after merging so they never mask parent values.
func LoadWithInheritance(path string, fetcher func(ref string) ([]byte, error)) (*Config, error) {
	cfg, err := readRaw(path)
	if err != nil {
		return nil, err
	}

	if cfg.Extends == "" {
		cfg.applyDefaults()
		return cfg, nil
	}

	parentData, err := fetcher(cfg.Extends)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parent config '%s': %w", cfg.Extends, err)
	}

	parentCfg, err := parseRaw(parentData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse parent config: %w", err)
	}

	// Merge: child overrides parent
	merged := mergeConfigs(parentCfg, cfg)
	merged.applyDefaults()

	return merged, nil
}

// FindConfigPath searches for a config file in standard locations.
func FindConfigPath(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	candidates := []string{
		".simili-rank.yaml",
		".simili-rank.yml",
		".github/simili-rank.yaml",
		".github/simili-rank.yml",
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			abs, _ := filepath.Abs(c)
			return abs
		}
	}

	return ""
}

// Default returns a config with only defaults and environment fallbacks applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults sets default values for unset fields.
func (c *Config) applyDefaults() {
	if c.Tracker == "" {
		c.Tracker = TrackerJira
	}
	if c.Jira.Token == "" {
		c.Jira.Token = os.Getenv("JIRA_TOKEN")
	}
	if c.Jira.Server == "" {
		c.Jira.Server = os.Getenv("JIRA_SERVER")
	}
	if c.Jira.PageSize == 0 {
		c.Jira.PageSize = 100
	}
	if c.GitHub.Token == "" {
		c.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	}
	if len(c.Defaults.Order) == 0 {
		c.Defaults.Order = []string{"asc"}
	}
	if c.Defaults.Workflow == "" {
		c.Defaults.Workflow = "rank"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}

// Validate checks the settings needed to talk to the selected tracker.
func (c *Config) Validate() error {
	switch c.Tracker {
	case TrackerJira:
		if c.Jira.Server == "" {
			return fmt.Errorf("jira.server is required")
		}
		if err := checkToken("jira.token", c.Jira.Token); err != nil {
			return err
		}
	case TrackerGitHub:
		if err := checkToken("github.token", c.GitHub.Token); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown tracker %q (expected %s or %s)", c.Tracker, TrackerJira, TrackerGitHub)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown logging.format %q (expected console or json)", c.Logging.Format)
	}
	return nil
}

func checkToken(name, token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("%s is not set", name)
	}
	for _, p := range tokenPlaceholders {
		if strings.Contains(token, p) {
			return fmt.Errorf("%s still contains the placeholder %s", name, p)
		}
	}
	return nil
}

// mergeConfigs merges a child config onto a parent config.
// Non-zero values in child override parent.
func mergeConfigs(parent, child *Config) *Config {
	result := *parent

	if child.Tracker != "" {
		result.Tracker = child.Tracker
	}

	// Jira: override if any field is set
	if child.Jira.Server != "" {
		result.Jira.Server = child.Jira.Server
	}
	if child.Jira.Token != "" {
		result.Jira.Token = child.Jira.Token
	}
	if child.Jira.PageSize != 0 {
		result.Jira.PageSize = child.Jira.PageSize
	}

	// GitHub: label lists are replaced, never appended
	if child.GitHub.Token != "" {
		result.GitHub.Token = child.GitHub.Token
	}
	if len(child.GitHub.PriorityLabels) > 0 {
		result.GitHub.PriorityLabels = child.GitHub.PriorityLabels
	}
	if len(child.GitHub.InProgressLabels) > 0 {
		result.GitHub.InProgressLabels = child.GitHub.InProgressLabels
	}
	if len(child.GitHub.TypeLabels) > 0 {
		result.GitHub.TypeLabels = child.GitHub.TypeLabels
	}

	if len(child.Defaults.RankBy) > 0 {
		result.Defaults.RankBy = child.Defaults.RankBy
	}
	if len(child.Defaults.Order) > 0 {
		result.Defaults.Order = child.Defaults.Order
	}
	if child.Defaults.Workflow != "" {
		result.Defaults.Workflow = child.Defaults.Workflow
	}

	if child.Logging.Level != "" {
		result.Logging.Level = child.Logging.Level
	}
	if child.Logging.Format != "" {
		result.Logging.Format = child.Logging.Format
	}
	if child.Metrics.Textfile != "" {
		result.Metrics.Textfile = child.Metrics.Textfile
	}

	return &result
}

// ParseExtendsRef parses "org/repo@branch" into components.
func ParseExtendsRef(ref string) (org, repo, branch, path string, err error) {
	// Format: org/repo@branch or org/repo@branch:path
	parts := strings.SplitN(ref, "@", 2)
	if len(parts) != 2 {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo@branch)", ref)
	}

	orgRepo := strings.SplitN(parts[0], "/", 2)
	if len(orgRepo) != 2 {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo)", ref)
	}

	org = orgRepo[0]
	repo = orgRepo[1]

	branchPath := strings.SplitN(parts[1], ":", 2)
	branch = branchPath[0]
	if len(branchPath) == 2 {
		path = branchPath[1]
	} else {
		path = ".github/simili-rank.yaml" // default path
	}

	return org, repo, branch, path, nil
}
