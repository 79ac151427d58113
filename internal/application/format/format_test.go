package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/framepad/internal/domain/input"
)

func sampleTimeline() *input.Timeline {
	return input.NewTimeline(
		input.NewFrameRange(0, 1, input.NewCombination(input.Right, input.B)),
		input.NewFrameRange(2, 2, input.NewCombination(input.Right, input.B, input.A)),
		input.NewFrameRange(3, 4, input.NewCombination()),
	)
}

func TestText(t *testing.T) {
	tl := sampleTimeline()

	assert.Equal(t, "0-1: →B\n2: →BA\n3-4: -", Text(tl, false))
	assert.Equal(t, TextHeader+"\n\n0-1: →B\n2: →BA\n3-4: -", Text(tl, true))
}

func TestCSV(t *testing.T) {
	out, err := CSV(sampleTimeline(), true)
	require.NoError(t, err)

	expected := "start_frame,end_frame,buttons\n0,1,→B\n2,2,→BA\n3,4,-"
	assert.Equal(t, expected, out)

	out, err = CSV(sampleTimeline(), false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "0,1,"))
}

func TestJSON(t *testing.T) {
	out, err := JSON(sampleTimeline(), false)
	require.NoError(t, err)

	var doc TimelineJSON
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.FrameInputs, 3)
	assert.Equal(t, RangeJSON{StartFrame: 2, EndFrame: 2, Buttons: "→BA"}, doc.FrameInputs[1])
	assert.NotContains(t, out, "\n")
}

func TestJSON_PrettyEmpty(t *testing.T) {
	out, err := JSON(input.NewTimeline(), true)
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"frameInputs\": []\n}", out)
}

func TestVisualize(t *testing.T) {
	out := Visualize(sampleTimeline(), 2)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "frame  | ← → ↑ ↓ A B ", lines[0])
	assert.Equal(t, "     0 | - ○ - - - ○ ", lines[2])
	assert.Equal(t, "     2 | - ○ - - ○ ○ ", lines[4])
}

func TestVisualize_DefaultsToMaxFrame(t *testing.T) {
	out := Visualize(sampleTimeline(), -1)

	// header, rule and frames 0..4
	assert.Len(t, strings.Split(out, "\n"), 7)
}
