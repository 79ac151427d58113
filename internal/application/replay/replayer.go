package replay

import (
	"fmt"
	"os"

	"github.com/younwookim/framepad/internal/application/compiler"
	"github.com/younwookim/framepad/internal/application/mapper"
	"github.com/younwookim/framepad/internal/domain/input"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  mapper.NESInputData
	frame int
}

// NewReplayer creates a new replayer from controller data
func NewReplayer(data mapper.NESInputData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads controller data from a binary file
func LoadReplay(filename string) (*mapper.NESInputData, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	data, err := compiler.NewNESCompiler(nil).FromBinary(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (input.Combination, bool) {
	if r.frame >= len(r.data.Frames) {
		return input.Combination(0), false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return mapper.FromNESButtons(fi.Buttons), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
