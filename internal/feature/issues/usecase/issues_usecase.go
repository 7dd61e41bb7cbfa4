// Package usecase normalizes the upcoming issue calendar.
package usecase

import (
	"context"
	"fmt"

	"market_relay/internal/feature/issues/domain/entity"
	"market_relay/internal/shared/apperr"
	"market_relay/internal/shared/batch"
)

// All selects every IssueTypes entry.
const All = "all"

// IssueType pairs a request key with the upstream type code.
type IssueType struct {
	Key  string
	Code int
}

// IssueTypes is the fetch order of "all".
var IssueTypes = []IssueType{
	{Key: "ipo", Code: 1},
	{Key: "right", Code: 3},
	{Key: "fpo", Code: 2},
	{Key: "local", Code: 5},
	{Key: "debenture", Code: 7},
	{Key: "migrant", Code: 8},
}

// IssueSource returns the raw entries of one type code.
type IssueSource interface {
	ExistingIssues(ctx context.Context, typeCode, limit int) ([]entity.RawIssue, error)
}

// IssuesUsecase builds the issue lists.
type IssuesUsecase struct {
	src         IssueSource
	parallelism int
}

// NewIssuesUsecase creates an IssuesUsecase.
func NewIssuesUsecase(src IssueSource) *IssuesUsecase {
	return &IssuesUsecase{src: src, parallelism: batch.DefaultParallelism}
}

// Types expands kind into the ordered issue types to fetch.
func Types(kind string) ([]IssueType, error) {
	if kind == All {
		return IssueTypes, nil
	}
	for _, t := range IssueTypes {
		if t.Key == kind {
			return []IssueType{t}, nil
		}
	}
	return nil, fmt.Errorf("%w: type %q", apperr.ErrValidation, kind)
}

// UpcomingIssues returns the normalized issues of kind, each tagged with its type key.
func (u *IssuesUsecase) UpcomingIssues(ctx context.Context, kind string, limit int) ([]entity.Issue, []batch.Failure, error) {
	types, err := Types(kind)
	if err != nil {
		return nil, nil, err
	}

	codes := make(map[string]int, len(types))
	keys := make([]string, len(types))
	for i, t := range types {
		keys[i] = t.Key
		codes[t.Key] = t.Code
	}

	out, failures := batch.Collect(ctx, keys, u.parallelism, func(ctx context.Context, key string) ([]entity.Issue, error) {
		raws, err := u.src.ExistingIssues(ctx, codes[key], limit)
		if err != nil {
			return nil, err
		}
		issues := make([]entity.Issue, 0, len(raws))
		for _, raw := range raws {
			issue := Normalize(raw)
			issue.IssueType = key
			issues = append(issues, issue)
		}
		return issues, nil
	})
	return out, failures, batch.Outcome(keys, failures)
}
