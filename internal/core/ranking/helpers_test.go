package ranking

import (
	"testing"
	"time"
)

func issueWithPriority(key string, id int) Issue {
	return Issue{Key: key, Priority: &Priority{ID: id}}
}

func at(day int) *time.Time {
	t := time.Date(2026, 1, day, 9, 0, 0, 0, time.UTC)
	return &t
}

func mustSpec(t *testing.T, criteria, directions []string) Spec {
	t.Helper()
	spec, err := NewSpec(criteria, directions)
	if err != nil {
		t.Fatalf("NewSpec(%v, %v) failed: %v", criteria, directions, err)
	}
	return spec
}

func equalKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
