package mapper

import "github.com/younwookim/framepad/internal/domain/input"

// NES controller bits as read from the joypad shift register
const (
	NESButtonA      uint8 = 0x01
	NESButtonB      uint8 = 0x02
	NESButtonSelect uint8 = 0x04
	NESButtonStart  uint8 = 0x08
	NESButtonUp     uint8 = 0x10
	NESButtonDown   uint8 = 0x20
	NESButtonLeft   uint8 = 0x40
	NESButtonRight  uint8 = 0x80
)

// nesBits is the single source of truth for Button <-> bit translation.
// SELECT and START have no Button and are never produced.
var nesBits = map[input.Button]uint8{
	input.A:     NESButtonA,
	input.B:     NESButtonB,
	input.Up:    NESButtonUp,
	input.Down:  NESButtonDown,
	input.Left:  NESButtonLeft,
	input.Right: NESButtonRight,
}

// NESFrameInput is the controller state for a single frame
type NESFrameInput struct {
	Frame   int   `json:"frame"`
	Buttons uint8 `json:"buttons"`
}

// NESInputData is the dense per-frame table, one entry per frame without gaps
type NESInputData struct {
	Frames []NESFrameInput `json:"frameInputs"`
}

// NESMapper maps timelines to NES controller data
type NESMapper struct{}

var _ Mapper[NESInputData] = (*NESMapper)(nil)

// NewNESMapper creates a new NES mapper
func NewNESMapper() *NESMapper {
	return &NESMapper{}
}

// Name returns the console name
func (m *NESMapper) Name() string {
	return "NES"
}

// MapFromFormat expands the timeline into one entry per frame from 0 through MaxFrame
func (m *NESMapper) MapFromFormat(tl *input.Timeline) NESInputData {
	maxFrame := tl.MaxFrame()
	data := NESInputData{
		Frames: make([]NESFrameInput, 0, maxFrame+1),
	}

	for frame := 0; frame <= maxFrame; frame++ {
		data.Frames = append(data.Frames, NESFrameInput{
			Frame:   frame,
			Buttons: ToNESButtons(tl.ButtonsAt(frame)),
		})
	}

	return data
}

// MapToFormat collapses runs of identical controller bytes into ranges.
// Frames are expected to be contiguous and ascending; this is not checked.
func (m *NESMapper) MapToFormat(data NESInputData) *input.Timeline {
	tl := input.NewTimeline()
	if len(data.Frames) == 0 {
		return tl
	}

	current := data.Frames[0].Buttons
	start := data.Frames[0].Frame

	for i := 1; i < len(data.Frames); i++ {
		fi := data.Frames[i]
		if fi.Buttons == current {
			continue
		}

		tl.Add(input.NewFrameRange(start, data.Frames[i-1].Frame, FromNESButtons(current)))
		current = fi.Buttons
		start = fi.Frame
	}

	last := data.Frames[len(data.Frames)-1]
	tl.Add(input.NewFrameRange(start, last.Frame, FromNESButtons(current)))

	return tl
}

// ToNESButtons returns the controller byte for a combination
func ToNESButtons(c input.Combination) uint8 {
	var bits uint8
	for b, bit := range nesBits {
		if c.IsPressed(b) {
			bits |= bit
		}
	}
	return bits
}

// FromNESButtons decodes a controller byte. Bits without a Button are ignored.
func FromNESButtons(bits uint8) input.Combination {
	var c input.Combination
	for b, bit := range nesBits {
		if bits&bit != 0 {
			c.Add(b)
		}
	}
	return c
}
