// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-14
// Last Modified: 2026-02-14

package ranking

import (
	"strconv"
	"strings"
	"time"
)

// unmappedStatusOrder sorts unknown status categories after every known one.
const unmappedStatusOrder = 99

// statusCategoryOrder places "to do" before "in progress" before "done".
var statusCategoryOrder = map[int]int{
	StatusCategoryToDo:       0,
	StatusCategoryInProgress: 1,
	StatusCategoryDone:       2,
}

type extractor func(Issue) (Value, error)

var extractors = map[Criterion]extractor{
	CriterionKey:            extractKey,
	CriterionPriority:       extractPriority,
	CriterionStatus:         extractStatus,
	CriterionIssueType:      extractIssueType,
	CriterionCreated:        timestamp(func(i Issue) *time.Time { return i.Created }),
	CriterionUpdated:        timestamp(func(i Issue) *time.Time { return i.Updated }),
	CriterionResolutionDate: timestamp(func(i Issue) *time.Time { return i.ResolutionDate }),
}

// Extract returns the comparable value of an issue for one criterion.
func Extract(issue Issue, c Criterion) (Value, error) {
	fn, ok := extractors[c]
	if !ok {
		return Null(), &ConfigurationError{Reason: "invalid rank criterion '" + string(c) + "'"}
	}
	return fn(issue)
}

// extractKey splits PROJ-123 into ("PROJ", 123). Keys that do not parse
// sort by the whole key with number 0.
func extractKey(i Issue) (Value, error) {
	idx := strings.LastIndex(i.Key, "-")
	if idx < 0 {
		return KeyValue(i.Key, 0), nil
	}
	n, err := strconv.Atoi(i.Key[idx+1:])
	if err != nil {
		return KeyValue(i.Key, 0), nil
	}
	return KeyValue(i.Key[:idx], n), nil
}

func extractPriority(i Issue) (Value, error) {
	if i.Priority == nil {
		return Null(), &MissingFieldError{Key: i.Key, Criterion: CriterionPriority}
	}
	if i.Priority.RawID != "" {
		return Null(), &InvalidFieldError{Key: i.Key, Criterion: CriterionPriority, Value: i.Priority.RawID}
	}
	return IntValue(i.Priority.ID), nil
}

func extractStatus(i Issue) (Value, error) {
	if i.Status == nil {
		return Null(), &MissingFieldError{Key: i.Key, Criterion: CriterionStatus}
	}
	order, ok := statusCategoryOrder[i.Status.CategoryID]
	if !ok {
		order = unmappedStatusOrder
	}
	return IntValue(order), nil
}

func extractIssueType(i Issue) (Value, error) {
	if i.IssueType == nil {
		return Null(), &MissingFieldError{Key: i.Key, Criterion: CriterionIssueType}
	}
	return TextValue(i.IssueType.Name), nil
}

func timestamp(field func(Issue) *time.Time) extractor {
	return func(i Issue) (Value, error) {
		t := field(i)
		if t == nil {
			return Null(), nil
		}
		return TimeValue(*t), nil
	}
}
