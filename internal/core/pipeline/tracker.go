// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-15
// Last Modified: 2026-02-15

package pipeline

import (
	"context"

	"github.com/similigh/simili-rank/internal/core/ranking"
)

// Tracker is an issue tracker whose child issues can be listed and reordered.
type Tracker interface {
	// Name identifies the backend in logs and results.
	Name() string

	// Children returns the child issues of parent in the tracker's current rank order.
	Children(ctx context.Context, parent string) ([]ranking.Issue, error)

	// MoveAfter places key immediately after the issue after.
	MoveAfter(ctx context.Context, key, after string) error
}
