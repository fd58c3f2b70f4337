package ranking

import (
	"errors"
	"testing"
)

func TestNewSpecBroadcastsSingleDirection(t *testing.T) {
	spec := mustSpec(t, []string{"status", "priority", "key"}, []string{"desc"})

	for i := range spec.Criteria {
		if got := spec.Direction(i); got != Descending {
			t.Errorf("Expected criterion %d to be desc, got %s", i, got)
		}
	}
}

func TestNewSpecDefaultsToAscending(t *testing.T) {
	spec := mustSpec(t, []string{"key"}, nil)
	if spec.Direction(0) != Ascending {
		t.Errorf("Expected default direction asc, got %s", spec.Direction(0))
	}
}

func TestNewSpecNormalisesTokens(t *testing.T) {
	spec := mustSpec(t, []string{" Priority ", "STATUS"}, []string{"ASC", " desc"})
	if spec.Criteria[0] != CriterionPriority || spec.Criteria[1] != CriterionStatus {
		t.Errorf("Unexpected criteria: %v", spec.Criteria)
	}
	if spec.Direction(1) != Descending {
		t.Errorf("Expected second direction desc, got %s", spec.Direction(1))
	}
}

func TestNewSpecRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		criteria   []string
		directions []string
	}{
		{"no criteria", nil, []string{"asc"}},
		{"unknown criterion", []string{"assignee"}, []string{"asc"}},
		{"unknown direction", []string{"key"}, []string{"up"}},
		{"two directions for three criteria", []string{"key", "status", "priority"}, []string{"asc", "desc"}},
		{"more directions than criteria", []string{"key"}, []string{"asc", "desc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSpec(tt.criteria, tt.directions)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("Expected ConfigurationError, got %v", err)
			}
		})
	}
}

func TestSpecString(t *testing.T) {
	spec := mustSpec(t, []string{"status", "priority"}, []string{"asc"})
	if got := spec.String(); got != "status asc, priority asc" {
		t.Errorf("Unexpected spec string %q", got)
	}
}

func TestCriteriaListsEverySupportedName(t *testing.T) {
	want := []string{"created", "issuetype", "key", "priority", "resolutiondate", "status", "updated"}
	got := Criteria()
	if len(got) != len(want) {
		t.Fatalf("Expected %d criteria, got %d", len(want), len(got))
	}
	for i := range want {
		if string(got[i]) != want[i] {
			t.Errorf("Expected criterion %d to be %s, got %s", i, want[i], got[i])
		}
	}
}
