package ranking

import (
	"errors"
	"testing"
)

func TestRankPriorityDescending(t *testing.T) {
	// Priority ordinals 3, 1, 2: descending puts the highest ordinal first.
	issues := []Issue{
		issueWithPriority("P-1", 3),
		issueWithPriority("P-2", 1),
		issueWithPriority("P-3", 2),
	}

	p, err := Rank(issues, mustSpec(t, []string{"priority"}, []string{"desc"}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []string{"P-1", "P-3", "P-2"}
	if !equalKeys(p.Proposed, want) {
		t.Errorf("Expected %v, got %v", want, p.Proposed)
	}
	if !p.Changed {
		t.Error("Expected order to be changed")
	}
}

func TestRankStatusThenPriority(t *testing.T) {
	issues := []Issue{
		{Key: "S-1", Status: &Status{CategoryID: StatusCategoryDone}, Priority: &Priority{ID: 1}},
		{Key: "S-2", Status: &Status{CategoryID: StatusCategoryToDo}, Priority: &Priority{ID: 4}},
		{Key: "S-3", Status: &Status{CategoryID: StatusCategoryToDo}, Priority: &Priority{ID: 2}},
		{Key: "S-4", Status: &Status{CategoryID: StatusCategoryInProgress}, Priority: &Priority{ID: 5}},
	}

	p, err := Rank(issues, mustSpec(t, []string{"status", "priority"}, []string{"asc"}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []string{"S-3", "S-2", "S-4", "S-1"}
	if !equalKeys(p.Proposed, want) {
		t.Errorf("Expected %v, got %v", want, p.Proposed)
	}
}

func TestRankKeyUsesNumericSuffix(t *testing.T) {
	issues := []Issue{{Key: "PROJ-10"}, {Key: "PROJ-2"}, {Key: "PROJ-1"}}

	p, err := Rank(issues, mustSpec(t, []string{"key"}, []string{"asc"}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []string{"PROJ-1", "PROJ-2", "PROJ-10"}
	if !equalKeys(p.Proposed, want) {
		t.Errorf("Expected %v, got %v", want, p.Proposed)
	}
}

func TestRankIndependentDirections(t *testing.T) {
	issues := []Issue{
		{Key: "E-1", Priority: &Priority{ID: 2}, Status: &Status{CategoryID: StatusCategoryToDo}},
		{Key: "E-2", Priority: &Priority{ID: 1}, Status: &Status{CategoryID: StatusCategoryToDo}},
		{Key: "E-3", Priority: &Priority{ID: 1}, Status: &Status{CategoryID: StatusCategoryDone}},
		{Key: "E-4", Priority: &Priority{ID: 2}, Status: &Status{CategoryID: StatusCategoryInProgress}},
	}

	p, err := Rank(issues, mustSpec(t, []string{"priority", "status"}, []string{"asc", "desc"}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []string{"E-3", "E-2", "E-4", "E-1"}
	if !equalKeys(p.Proposed, want) {
		t.Errorf("Expected %v, got %v", want, p.Proposed)
	}
}

func TestRankIsStableOnFullTies(t *testing.T) {
	issues := []Issue{
		{Key: "T-9", Priority: &Priority{ID: 3}},
		{Key: "T-2", Priority: &Priority{ID: 3}},
		{Key: "T-5", Priority: &Priority{ID: 3}},
		{Key: "T-1", Priority: &Priority{ID: 3}},
	}

	for _, dir := range []string{"asc", "desc"} {
		p, err := Rank(issues, mustSpec(t, []string{"priority", "resolutiondate"}, []string{dir}))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !equalKeys(p.Proposed, Keys(issues)) {
			t.Errorf("%s: expected input order %v, got %v", dir, Keys(issues), p.Proposed)
		}
		if p.Changed {
			t.Errorf("%s: expected no change", dir)
		}
	}
}

func TestRankNullsLast(t *testing.T) {
	issues := []Issue{
		{Key: "N-1"},
		{Key: "N-2", ResolutionDate: at(4)},
		{Key: "N-3"},
		{Key: "N-4", ResolutionDate: at(2)},
	}

	tests := []struct {
		dir  string
		want []string
	}{
		{"asc", []string{"N-4", "N-2", "N-1", "N-3"}},
		{"desc", []string{"N-2", "N-4", "N-1", "N-3"}},
	}
	for _, tt := range tests {
		p, err := Rank(issues, mustSpec(t, []string{"resolutiondate"}, []string{tt.dir}))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !equalKeys(p.Proposed, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.dir, tt.want, p.Proposed)
		}
	}
}

func TestRankValidatesBeforeExtracting(t *testing.T) {
	// No issue has a priority, so any extraction would fail with MissingFieldError.
	issues := []Issue{{Key: "V-1"}, {Key: "V-2"}}
	spec := Spec{
		Criteria:   []Criterion{CriterionPriority, CriterionStatus, CriterionKey},
		Directions: []Direction{Ascending, Descending},
	}

	_, err := Rank(issues, spec)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected ConfigurationError, got %v", err)
	}
}

func TestRankMissingFieldAborts(t *testing.T) {
	issues := []Issue{issueWithPriority("M-1", 2), {Key: "M-2"}}

	p, err := Rank(issues, mustSpec(t, []string{"priority"}, []string{"asc"}))
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingFieldError, got %v", err)
	}
	if missing.Key != "M-2" {
		t.Errorf("Expected M-2 to be reported, got %s", missing.Key)
	}
	if p != nil {
		t.Error("Expected no proposal on failure")
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	issues := []Issue{{Key: "X-3"}, {Key: "X-1"}, {Key: "X-2"}}

	p, err := Rank(issues, mustSpec(t, []string{"key"}, nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !equalKeys(Keys(issues), []string{"X-3", "X-1", "X-2"}) {
		t.Errorf("Input was reordered: %v", Keys(issues))
	}
	if !equalKeys(p.Current, []string{"X-3", "X-1", "X-2"}) {
		t.Errorf("Unexpected current order %v", p.Current)
	}
	if p.Issues[0].Key != "X-1" {
		t.Errorf("Expected sorted issues to start with X-1, got %s", p.Issues[0].Key)
	}
}

func TestRankAlreadyOrdered(t *testing.T) {
	issues := []Issue{{Key: "O-1"}, {Key: "O-2"}, {Key: "O-3"}}
	p, err := Rank(issues, mustSpec(t, []string{"key"}, []string{"asc"}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if p.Changed {
		t.Errorf("Expected unchanged order, got %v", p.Proposed)
	}
}
