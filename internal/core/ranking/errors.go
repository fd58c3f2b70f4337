// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-14
// Last Modified: 2026-02-14

package ranking

import (
	"fmt"
	"strings"
)

// ConfigurationError reports unusable rank criteria, orders or settings.
// It is always raised before anything is fetched or moved.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// MissingFieldError reports an issue that lacks a field required by a criterion.
type MissingFieldError struct {
	Key       string
	Criterion Criterion
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("issue %s has no %s field", e.Key, e.Criterion)
}

// InvalidFieldError reports a field whose value cannot be compared.
type InvalidFieldError struct {
	Key       string
	Criterion Criterion
	Value     string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("issue %s has an invalid %s value %q", e.Key, e.Criterion, e.Value)
}

// RemoteError wraps a tracker failure with the operation that produced it.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// PartialFailureError reports a reorder chain that stopped at a failed move.
// Ordered is the prefix that is already in the target order on the tracker.
type PartialFailureError struct {
	Failed    Move
	Total     int
	Moved     int
	Ordered   []string
	Remaining []string
	Err       error
}

func (e *PartialFailureError) Error() string {
	msg := fmt.Sprintf("moving %s after %s failed at step %d/%d (%d moves applied",
		e.Failed.Key, e.Failed.After, e.Failed.Step, e.Total, e.Moved)
	if len(e.Remaining) > 0 {
		msg += ", not attempted: " + strings.Join(e.Remaining, ", ")
	}
	return msg + "): " + e.Err.Error()
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}
