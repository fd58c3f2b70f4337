// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-14
// Last Modified: 2026-02-14

package ranking

import (
	"cmp"
	"fmt"
	"strconv"
	"time"
)

type valueKind uint8

const (
	kindNull valueKind = iota
	kindInt
	kindText
	kindKey
	kindTime
)

// Value is a comparable value extracted for one criterion. Values produced
// for the same criterion always share a kind.
type Value struct {
	kind valueKind
	text string
	num  int
	at   time.Time
}

// Null is the value of an unset field.
func Null() Value { return Value{} }

// IntValue wraps an integer ordinal.
func IntValue(n int) Value { return Value{kind: kindInt, num: n} }

// TextValue wraps a string compared lexicographically.
func TextValue(s string) Value { return Value{kind: kindText, text: s} }

// KeyValue wraps an issue key split into prefix and number.
func KeyValue(prefix string, n int) Value { return Value{kind: kindKey, text: prefix, num: n} }

// TimeValue wraps a timestamp compared chronologically.
func TimeValue(t time.Time) Value { return Value{kind: kindTime, at: t} }

// IsNull reports whether the value is unset.
func (v Value) IsNull() bool { return v.kind == kindNull }

// compare orders two non-null values of the same kind.
func (v Value) compare(o Value) int {
	switch v.kind {
	case kindInt:
		return cmp.Compare(v.num, o.num)
	case kindText:
		return cmp.Compare(v.text, o.text)
	case kindKey:
		if c := cmp.Compare(v.text, o.text); c != 0 {
			return c
		}
		return cmp.Compare(v.num, o.num)
	case kindTime:
		return v.at.Compare(o.at)
	}
	return 0
}

func (v Value) String() string {
	switch v.kind {
	case kindInt:
		return strconv.Itoa(v.num)
	case kindText:
		return v.text
	case kindKey:
		return fmt.Sprintf("(%s, %d)", v.text, v.num)
	case kindTime:
		return v.at.Format(time.RFC3339)
	}
	return "null"
}
