package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordDecision(t *testing.T) {
	report := &Report{}
	report.RecordDecision(1, true)
	report.RecordDecision(2, false)
	report.RecordDecision(3, true)

	assert.Equal(t, []int{1, 3}, report.Matched)
	assert.Equal(t, []int{2}, report.Unmatched)
	assert.True(t, report.HasMatches())
	assert.False(t, report.HasFailures())
	assert.Equal(t, 3, report.Total())
}

func TestRecordFailure(t *testing.T) {
	err := errors.New("boom")

	report := &Report{}
	report.RecordFailure(7, err)

	assert.Equal(t, map[int]error{7: err}, report.Failed)
	assert.True(t, report.HasFailures())
	assert.False(t, report.HasMatches())
	assert.Equal(t, 1, report.Total())
}

func TestAnyMatches(t *testing.T) {
	assert.False(t, AnyMatches(nil))
	assert.False(t, AnyMatches([]*Report{{Unmatched: []int{1}}}))
	assert.True(t, AnyMatches([]*Report{{Unmatched: []int{1}}, {Matched: []int{2}}}))
}

func TestFailedLines(t *testing.T) {
	reports := []*Report{
		{Failed: map[int]error{1: errors.New("a"), 2: errors.New("b")}},
		{},
		{Failed: map[int]error{9: errors.New("c")}},
	}

	assert.Equal(t, 3, FailedLines(reports))
}
