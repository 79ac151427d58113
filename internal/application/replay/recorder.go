package replay

import (
	"fmt"
	"os"
	"time"

	"github.com/younwookim/framepad/internal/application/compiler"
	"github.com/younwookim/framepad/internal/application/mapper"
	"github.com/younwookim/framepad/internal/domain/input"
)

// Recorder captures one controller state per frame
type Recorder struct {
	data      mapper.NESInputData
	compiler  *compiler.NESCompiler
	mapper    *mapper.NESMapper
	recording bool
	frame     int
}

// NewRecorder creates a new recorder
func NewRecorder() *Recorder {
	return &Recorder{
		data: mapper.NESInputData{
			Frames: make([]mapper.NESFrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		compiler:  compiler.NewNESCompiler(nil),
		mapper:    mapper.NewNESMapper(),
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(buttons input.Combination) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, mapper.NESFrameInput{
		Frame:   r.frame,
		Buttons: mapper.ToNESButtons(buttons),
	})
	r.frame++
}

// Save writes the recording to a file in the NES binary format
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	if err := os.WriteFile(filename, r.compiler.ToBinary(r.data), 0o644); err != nil {
		return fmt.Errorf("failed to write recording: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded per-frame table
func (r *Recorder) Data() mapper.NESInputData {
	return r.data
}

// Timeline collapses the recording into frame ranges
func (r *Recorder) Timeline() *input.Timeline {
	return r.mapper.MapToFormat(r.data)
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("recording_%s.nesin", time.Now().Format("20060102_150405"))
}
