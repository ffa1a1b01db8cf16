package filter

import (
	"github.com/samber/lo"
)

// Report records what happened to every line of one source. Lines are
// numbered from 1.
type Report struct {
	Source string

	Matched   []int
	Unmatched []int

	Failed map[int]error
}

func (r *Report) RecordDecision(lineNumber int, matched bool) {
	if matched {
		r.RecordMatched(lineNumber)
	} else {
		r.RecordUnmatched(lineNumber)
	}
}

// RecordMatched records that a line matched the expression
func (r *Report) RecordMatched(lineNumber int) {
	r.Matched = append(r.Matched, lineNumber)
}

// RecordUnmatched records that a line didn't match the expression
func (r *Report) RecordUnmatched(lineNumber int) {
	r.Unmatched = append(r.Unmatched, lineNumber)
}

func (r *Report) RecordFailure(lineNumber int, err error) {
	if r.Failed == nil {
		r.Failed = make(map[int]error)
	}
	r.Failed[lineNumber] = err
}

func (r *Report) HasMatches() bool {
	return len(r.Matched) > 0
}

func (r *Report) HasFailures() bool {
	return len(r.Failed) > 0
}

// Total is the number of lines read.
func (r *Report) Total() int {
	return len(r.Matched) + len(r.Unmatched) + len(r.Failed)
}

// AnyMatches reports whether any of the reports has a matching line.
func AnyMatches(reports []*Report) bool {
	return lo.SomeBy(reports, func(r *Report) bool {
		return r.HasMatches()
	})
}

// FailedLines returns the number of failed lines over all reports.
func FailedLines(reports []*Report) int {
	return lo.SumBy(reports, func(r *Report) int {
		return len(r.Failed)
	})
}
