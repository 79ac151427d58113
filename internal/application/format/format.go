// Package format renders timelines for people and spreadsheets.
package format

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/younwookim/framepad/internal/domain/input"
)

// TextHeader is the comment written above a formatted script
const TextHeader = "# frame input script"

// Text renders the script, optionally preceded by a header comment
func Text(tl *input.Timeline, header bool) string {
	var lines []string
	if header {
		lines = append(lines, TextHeader, "")
	}
	for _, r := range tl.Ranges() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}

// CSV renders one row per range: start_frame,end_frame,buttons
func CSV(tl *input.Timeline, header bool) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if header {
		if err := w.Write([]string{"start_frame", "end_frame", "buttons"}); err != nil {
			return "", fmt.Errorf("failed to write csv header: %w", err)
		}
	}
	for _, r := range tl.Ranges() {
		row := []string{strconv.Itoa(r.Start), strconv.Itoa(r.End), r.Buttons.String()}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// RangeJSON is the JSON shape of a single range
type RangeJSON struct {
	StartFrame int    `json:"startFrame"`
	EndFrame   int    `json:"endFrame"`
	Buttons    string `json:"buttons"`
}

// TimelineJSON is the JSON document produced by JSON
type TimelineJSON struct {
	FrameInputs []RangeJSON `json:"frameInputs"`
}

// JSON renders the ranges as a JSON document
func JSON(tl *input.Timeline, pretty bool) (string, error) {
	doc := TimelineJSON{FrameInputs: []RangeJSON{}}
	for _, r := range tl.Ranges() {
		doc.FrameInputs = append(doc.FrameInputs, RangeJSON{
			StartFrame: r.Start,
			EndFrame:   r.End,
			Buttons:    r.Buttons.String(),
		})
	}

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode timeline: %w", err)
	}
	return string(data), nil
}

// Visualize draws one row per frame with a column per button.
// A negative maxFrame uses the timeline's last frame.
func Visualize(tl *input.Timeline, maxFrame int) string {
	if maxFrame < 0 {
		maxFrame = tl.MaxFrame()
	}

	var sb strings.Builder
	sb.WriteString("frame  | ")
	for _, b := range input.AllButtons {
		sb.WriteRune(b.Glyph())
		sb.WriteByte(' ')
	}
	header := sb.String()

	lines := []string{header, strings.Repeat("-", len([]rune(header)))}
	for frame := 0; frame <= maxFrame; frame++ {
		lines = append(lines, VisualizeFrame(frame, tl.ButtonsAt(frame)))
	}
	return strings.Join(lines, "\n")
}

// VisualizeFrame renders a single row of Visualize
func VisualizeFrame(frame int, c input.Combination) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%6d | ", frame)
	for _, b := range input.AllButtons {
		if c.IsPressed(b) {
			sb.WriteString("○ ")
		} else {
			sb.WriteString("- ")
		}
	}
	return sb.String()
}
