// Package validation checks a timeline for overlaps, gaps and contradictory presses.
// It never modifies the timeline and never blocks parsing or mapping.
package validation

import (
	"fmt"

	"github.com/younwookim/framepad/internal/domain/input"
)

// IssueKind classifies a validation issue
type IssueKind int

const (
	IssueEmpty IssueKind = iota
	IssueOverlap
	IssueOppositeDirections
	IssueGap
)

func (k IssueKind) String() string {
	switch k {
	case IssueEmpty:
		return "empty"
	case IssueOverlap:
		return "overlap"
	case IssueOppositeDirections:
		return "opposite-directions"
	case IssueGap:
		return "gap"
	}
	return "unknown"
}

// Issue is a single finding
type Issue struct {
	Kind    IssueKind
	Message string
	Ranges  []input.FrameRange
}

func (i Issue) String() string {
	return i.Message
}

// Result holds the outcome of a validation run
type Result struct {
	Valid    bool
	Errors   []Issue
	Warnings []Issue
}

// Validate checks the timeline.
// An empty timeline is reported on its own and no further checks run.
func Validate(tl *input.Timeline) Result {
	result := Result{Valid: true}
	ranges := tl.Ranges()

	if len(ranges) == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, Issue{
			Kind:    IssueEmpty,
			Message: "no frame inputs",
		})
		return result
	}

	checkOverlaps(ranges, &result)
	checkOppositeDirections(ranges, &result)
	checkGaps(ranges, &result)

	return result
}

// checkOverlaps reports each overlapping pair once
func checkOverlaps(ranges []input.FrameRange, result *Result) {
	for i := range ranges {
		for j := i + 1; j < len(ranges); j++ {
			if !ranges[i].Overlaps(ranges[j]) {
				continue
			}
			result.Valid = false
			result.Errors = append(result.Errors, Issue{
				Kind:    IssueOverlap,
				Message: fmt.Sprintf("frame ranges overlap: %s and %s", ranges[i], ranges[j]),
				Ranges:  []input.FrameRange{ranges[i], ranges[j]},
			})
		}
	}
}

func checkOppositeDirections(ranges []input.FrameRange, result *Result) {
	for _, r := range ranges {
		if r.Buttons.IsPressed(input.Left) && r.Buttons.IsPressed(input.Right) {
			result.Warnings = append(result.Warnings, Issue{
				Kind:    IssueOppositeDirections,
				Message: fmt.Sprintf("left and right pressed together: %s", r),
				Ranges:  []input.FrameRange{r},
			})
		}
		if r.Buttons.IsPressed(input.Up) && r.Buttons.IsPressed(input.Down) {
			result.Warnings = append(result.Warnings, Issue{
				Kind:    IssueOppositeDirections,
				Message: fmt.Sprintf("up and down pressed together: %s", r),
				Ranges:  []input.FrameRange{r},
			})
		}
	}
}

// checkGaps compares neighbours in start order
func checkGaps(ranges []input.FrameRange, result *Result) {
	for i := 1; i < len(ranges); i++ {
		prev, cur := ranges[i-1], ranges[i]
		if prev.End+1 < cur.Start {
			result.Warnings = append(result.Warnings, Issue{
				Kind:    IssueGap,
				Message: fmt.Sprintf("frames %d to %d have no input", prev.End+1, cur.Start-1),
				Ranges:  []input.FrameRange{prev, cur},
			})
		}
	}
}
