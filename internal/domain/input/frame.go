package input

import "fmt"

// FrameRange applies one button combination to an inclusive span of frames
type FrameRange struct {
	Start   int
	End     int
	Buttons Combination
}

// NewFrameRange creates a range. An end before the start is coerced to the start.
func NewFrameRange(start, end int, buttons Combination) FrameRange {
	if end < start {
		end = start
	}
	return FrameRange{Start: start, End: end, Buttons: buttons}
}

// Contains reports whether frame lies in [Start, End]
func (r FrameRange) Contains(frame int) bool {
	return frame >= r.Start && frame <= r.End
}

// Duration returns the number of frames covered
func (r FrameRange) Duration() int {
	return r.End - r.Start + 1
}

// Overlaps reports whether the two inclusive intervals share a frame
func (r FrameRange) Overlaps(other FrameRange) bool {
	return r.Start <= other.End && other.Start <= r.End
}

// String renders the range as "start[-end]: buttons"
func (r FrameRange) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d: %s", r.Start, r.Buttons)
	}
	return fmt.Sprintf("%d-%d: %s", r.Start, r.End, r.Buttons)
}
