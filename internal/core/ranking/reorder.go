// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-14
// Last Modified: 2026-02-14

package ranking

import "context"

// Mover places an issue immediately after another one on the tracker.
type Mover interface {
	MoveAfter(ctx context.Context, key, after string) error
}

// MoverFunc adapts a function to Mover.
type MoverFunc func(ctx context.Context, key, after string) error

// MoveAfter calls f.
func (f MoverFunc) MoveAfter(ctx context.Context, key, after string) error {
	return f(ctx, key, after)
}

// Move is one reorder instruction. Step is 1-based.
type Move struct {
	Step  int
	Key   string
	After string
}

// MoveEvent is reported once a move has been attempted.
type MoveEvent struct {
	Move
	Total int
	Err   error
}

// ApplyResult summarises a completed reorder chain.
type ApplyResult struct {
	Moved int
	Total int
}

type applyOptions struct {
	observe func(MoveEvent)
}

// ApplyOption configures Apply.
type ApplyOption func(*applyOptions)

// WithObserver is called after every attempted move.
func WithObserver(fn func(MoveEvent)) ApplyOption {
	return func(o *applyOptions) {
		o.observe = fn
	}
}

// Plan returns the instructions that put the tracker in the given order.
// The first key is the anchor and never moves; every other key is placed
// right after its predecessor in the target order.
func Plan(proposed []string) []Move {
	if len(proposed) < 2 {
		return nil
	}
	moves := make([]Move, 0, len(proposed)-1)
	for i := 1; i < len(proposed); i++ {
		moves = append(moves, Move{Step: i, Key: proposed[i], After: proposed[i-1]})
	}
	return moves
}

// Apply issues the moves of Plan one at a time, each after the previous one
// completed, since every placement depends on the one before it. The chain
// stops at the first failure and is never retried; the returned
// PartialFailureError tells which prefix is already ordered. Cancelling ctx
// does not interrupt a chain that has started.
func Apply(ctx context.Context, proposed []string, m Mover, opts ...ApplyOption) (*ApplyResult, error) {
	o := applyOptions{observe: func(MoveEvent) {}}
	for _, opt := range opts {
		opt(&o)
	}

	ctx = context.WithoutCancel(ctx)
	moves := Plan(proposed)
	result := &ApplyResult{Total: len(moves)}

	for _, mv := range moves {
		err := m.MoveAfter(ctx, mv.Key, mv.After)
		o.observe(MoveEvent{Move: mv, Total: len(moves), Err: err})
		if err != nil {
			return result, &PartialFailureError{
				Failed:    mv,
				Total:     len(moves),
				Moved:     result.Moved,
				Ordered:   append([]string(nil), proposed[:mv.Step]...),
				Remaining: append([]string(nil), proposed[mv.Step+1:]...),
				Err:       err,
			}
		}
		result.Moved++
	}
	return result, nil
}
