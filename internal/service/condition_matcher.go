package service

import (
	"context"

	"dancenavi/internal/model"
	"dancenavi/internal/repository"
)

// ConditionContext carries the resolved values a Result's conditions are
// evaluated against. Nil pointer fields mean the entity was not resolved.
type ConditionContext struct {
	CampusSlug string
	GenreSlug  *string
	Q2Label    string
	CourseSlug *string
}

// ConditionMatcher picks one authored Result row for the request
type ConditionMatcher struct {
	resultRepo repository.ResultRepo
}

func NewConditionMatcher(resultRepo repository.ResultRepo) *ConditionMatcher {
	return &ConditionMatcher{resultRepo: resultRepo}
}

// Select evaluates candidates in (priority DESC, sortOrder ASC) order and
// returns the first whose conditions all match. When none match it falls back
// to the first fallback-flagged row, then to the first row outright.
func (m *ConditionMatcher) Select(ctx context.Context, schoolID string, cond ConditionContext) (*model.Result, error) {
	candidates, err := m.resultRepo.ListActive(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, errNoMatchedResult()
	}

	for _, candidate := range candidates {
		if conditionsMatch(candidate.Conditions, cond) {
			return candidate, nil
		}
	}

	for _, candidate := range candidates {
		if candidate.IsFallback {
			return candidate, nil
		}
	}

	return candidates[0], nil
}

// conditionsMatch ANDs the four dimensions. An empty condition array is a
// wildcard; a non-empty one requires the context value to be present and
// contained.
func conditionsMatch(c model.ResultConditions, cond ConditionContext) bool {
	if !matchValue(c.Campus, cond.CampusSlug) {
		return false
	}
	if !matchOptional(c.Genre, cond.GenreSlug) {
		return false
	}
	if !matchValue(c.Q2Tags, cond.Q2Label) {
		return false
	}
	if !matchOptional(c.CourseSlug, cond.CourseSlug) {
		return false
	}
	return true
}

func matchValue(condition []string, value string) bool {
	if len(condition) == 0 {
		return true
	}
	if value == "" {
		return false
	}
	return containsString(condition, value)
}

func matchOptional(condition []string, value *string) bool {
	if len(condition) == 0 {
		return true
	}
	if value == nil {
		return false
	}
	return containsString(condition, *value)
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
