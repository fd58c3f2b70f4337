package ranking

import "testing"

func TestCompareNullsSortLastInBothDirections(t *testing.T) {
	resolved := Issue{Key: "A-1", ResolutionDate: at(5)}
	open := Issue{Key: "A-2"}

	for _, dir := range []string{"asc", "desc"} {
		spec := mustSpec(t, []string{"resolutiondate"}, []string{dir})

		got, err := Compare(resolved, open, spec)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got != -1 {
			t.Errorf("%s: expected resolved issue first, got %d", dir, got)
		}

		got, _ = Compare(open, resolved, spec)
		if got != 1 {
			t.Errorf("%s: expected unresolved issue last, got %d", dir, got)
		}
	}
}

func TestCompareBothNullFallsThrough(t *testing.T) {
	a := Issue{Key: "A-1", Priority: &Priority{ID: 1}}
	b := Issue{Key: "A-2", Priority: &Priority{ID: 2}}
	spec := mustSpec(t, []string{"resolutiondate", "priority"}, []string{"asc"})

	got, err := Compare(a, b, spec)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != -1 {
		t.Errorf("Expected priority to decide, got %d", got)
	}
}

func TestCompareDirectionInvertsSign(t *testing.T) {
	a := issueWithPriority("A-1", 1)
	b := issueWithPriority("A-2", 2)

	asc, _ := Compare(a, b, mustSpec(t, []string{"priority"}, []string{"asc"}))
	desc, _ := Compare(a, b, mustSpec(t, []string{"priority"}, []string{"desc"}))
	if asc != -1 || desc != 1 {
		t.Errorf("Expected asc=-1 desc=1, got asc=%d desc=%d", asc, desc)
	}
}

func TestCompareTiesReturnZero(t *testing.T) {
	a := Issue{Key: "A-1", Priority: &Priority{ID: 3}, Status: &Status{CategoryID: 2}}
	b := Issue{Key: "A-2", Priority: &Priority{ID: 3}, Status: &Status{CategoryID: 2}}
	got, err := Compare(a, b, mustSpec(t, []string{"priority", "status"}, []string{"desc"}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("Expected tie, got %d", got)
	}
}

func TestCompareTimestampsChronologically(t *testing.T) {
	older := Issue{Key: "A-1", Created: at(1)}
	newer := Issue{Key: "A-2", Created: at(20)}
	got, _ := Compare(older, newer, mustSpec(t, []string{"created"}, []string{"asc"}))
	if got != -1 {
		t.Errorf("Expected older issue first, got %d", got)
	}
}
