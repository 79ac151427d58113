package input

import (
	"cmp"
	"slices"
	"strings"
)

// Timeline is the ordered collection of frame ranges that makes up an input script.
// Ranges are kept sorted by start frame. Overlaps are allowed here; lookups
// resolve them by taking the first range in start order.
type Timeline struct {
	ranges []FrameRange
}

// NewTimeline creates a timeline from the given ranges
func NewTimeline(ranges ...FrameRange) *Timeline {
	t := &Timeline{ranges: slices.Clone(ranges)}
	t.sort()
	return t
}

// Add inserts a range and re-sorts
func (t *Timeline) Add(r FrameRange) {
	t.ranges = append(t.ranges, r)
	t.sort()
}

// Remove deletes the range at index. Out of range indexes are ignored.
func (t *Timeline) Remove(index int) {
	if index < 0 || index >= len(t.ranges) {
		return
	}
	t.ranges = slices.Delete(t.ranges, index, index+1)
}

// Ranges returns a copy of the ranges in start order
func (t *Timeline) Ranges() []FrameRange {
	return slices.Clone(t.ranges)
}

// Len returns the number of ranges
func (t *Timeline) Len() int {
	return len(t.ranges)
}

// ButtonsAt returns the buttons of the first range containing frame,
// or the empty combination when no range covers it
func (t *Timeline) ButtonsAt(frame int) Combination {
	for _, r := range t.ranges {
		if r.Start > frame {
			break
		}
		if r.Contains(frame) {
			return r.Buttons
		}
	}
	return Combination(0)
}

// MaxFrame returns the largest end frame, or 0 for an empty timeline
func (t *Timeline) MaxFrame() int {
	maxFrame := 0
	for _, r := range t.ranges {
		maxFrame = max(maxFrame, r.End)
	}
	return maxFrame
}

// String renders one range per line
func (t *Timeline) String() string {
	lines := make([]string, len(t.ranges))
	for i, r := range t.ranges {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

func (t *Timeline) sort() {
	slices.SortStableFunc(t.ranges, func(a, b FrameRange) int {
		return cmp.Compare(a.Start, b.Start)
	})
}
