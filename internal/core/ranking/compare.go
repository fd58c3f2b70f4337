// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-14
// Last Modified: 2026-02-14

package ranking

import "github.com/rs/zerolog"

// Compare orders two issues under spec: -1 if a sorts first, 1 if b does,
// 0 if they tie on every criterion.
func Compare(a, b Issue, spec Spec) (int, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}
	left, err := extractAll(a, spec)
	if err != nil {
		return 0, err
	}
	right, err := extractAll(b, spec)
	if err != nil {
		return 0, err
	}
	c := comparator{spec: spec, log: zerolog.Nop()}
	return c.compare(entry{issue: a, values: left}, entry{issue: b, values: right}), nil
}

// entry is an issue with its values pre-extracted in spec order.
type entry struct {
	issue  Issue
	values []Value
}

func extractAll(issue Issue, spec Spec) ([]Value, error) {
	values := make([]Value, len(spec.Criteria))
	for i, c := range spec.Criteria {
		v, err := Extract(issue, c)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

type comparator struct {
	spec Spec
	log  zerolog.Logger
}

func (c comparator) compare(a, b entry) int {
	for i, criterion := range c.spec.Criteria {
		left, right := a.values[i], b.values[i]
		dir := c.spec.Direction(i)

		var result int
		switch {
		case left.IsNull() && right.IsNull():
			continue
		case left.IsNull():
			// Unset values go last whatever the direction.
			result = 1
		case right.IsNull():
			result = -1
		default:
			natural := left.compare(right)
			if natural == 0 {
				continue
			}
			result = dir.apply(natural)
		}

		c.log.Debug().
			Str("left", a.issue.Key).
			Str("right", b.issue.Key).
			Str("criterion", string(criterion)).
			Str("order", string(dir)).
			Stringer("left_value", left).
			Stringer("right_value", right).
			Int("result", result).
			Msg("compared issues")
		return result
	}

	c.log.Debug().Str("left", a.issue.Key).Str("right", b.issue.Key).Msg("issues tie on every criterion")
	return 0
}
