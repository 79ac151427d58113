package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/framepad/internal/application/mapper"
)

func TestNESCompiler_ToBinary_Layout(t *testing.T) {
	c := newTestCompiler()
	data := mapper.NESInputData{Frames: []mapper.NESFrameInput{
		{Frame: 0, Buttons: 0x82},
		{Frame: 0x01020304, Buttons: 0x83},
	}}

	buf := c.ToBinary(data)

	expected := []byte{
		0x4E, 0x45, 0x53, 0x01,
		0x00, 0x00, 0x00, 0x00, 0x82,
		0x01, 0x02, 0x03, 0x04, 0x83,
	}
	assert.Equal(t, expected, buf)
}

func TestNESCompiler_ToBinary_Empty(t *testing.T) {
	c := newTestCompiler()

	assert.Equal(t, []byte{'N', 'E', 'S', 0x01}, c.ToBinary(mapper.NESInputData{}))
}

func TestNESCompiler_BinaryRoundTrip(t *testing.T) {
	c := newTestCompiler()
	data := c.Compile(sampleScript)
	// reserved bits must survive the binary form untouched
	data.Frames[5].Buttons |= mapper.NESButtonSelect | mapper.NESButtonStart

	buf := c.ToBinary(data)
	require.Len(t, buf, HeaderSize+RecordSize*len(data.Frames))

	decoded, err := c.FromBinary(buf)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestNESCompiler_FromBinary_DoesNotValidateOrder(t *testing.T) {
	c := newTestCompiler()
	data := mapper.NESInputData{Frames: []mapper.NESFrameInput{
		{Frame: 9, Buttons: 1},
		{Frame: 3, Buttons: 2},
	}}

	decoded, err := c.FromBinary(c.ToBinary(data))

	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestNESCompiler_FromBinary_IgnoresPartialRecord(t *testing.T) {
	c := newTestCompiler()
	buf := append(c.ToBinary(mapper.NESInputData{Frames: []mapper.NESFrameInput{{Frame: 1, Buttons: 0x10}}}), 0x00, 0x00)

	decoded, err := c.FromBinary(buf)

	require.NoError(t, err)
	require.Len(t, decoded.Frames, 1)
	assert.Equal(t, mapper.NESFrameInput{Frame: 1, Buttons: 0x10}, decoded.Frames[0])
}

func TestNESCompiler_FromBinary_Errors(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		err  error
	}{
		{"nil", nil, ErrTruncated},
		{"short", []byte{'N', 'E', 'S'}, ErrTruncated},
		{"bad magic", []byte{'S', 'N', 'E', 0x01, 0, 0, 0, 0, 0}, ErrInvalidHeader},
		{"bad magic last byte", []byte{'N', 'E', 'X', 0x01}, ErrInvalidHeader},
		{"version 2", []byte{'N', 'E', 'S', 0x02}, ErrUnsupportedVersion},
		{"version 0", []byte{'N', 'E', 'S', 0x00, 0, 0, 0, 1, 1}, ErrUnsupportedVersion},
	}

	c := newTestCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := c.FromBinary(tt.buf)

			require.ErrorIs(t, err, tt.err)
			assert.Empty(t, data.Frames)
		})
	}
}

func TestNESCompiler_FromBinary_ErrorsAreDistinct(t *testing.T) {
	c := newTestCompiler()

	_, err := c.FromBinary([]byte{'N', 'E', 'S', 0x02})

	assert.ErrorIs(t, err, ErrUnsupportedVersion)
	assert.NotErrorIs(t, err, ErrInvalidHeader)
	assert.NotErrorIs(t, err, ErrTruncated)
	assert.Contains(t, err.Error(), "2")
}

func TestNESCompiler_CompileOversizedFrame(t *testing.T) {
	c := newTestCompiler()

	var data mapper.NESInputData
	require.NotPanics(t, func() { data = c.Compile("9223372036854775807: A\n0-1: B") })
	require.Len(t, data.Frames, 2)

	back, err := c.FromBinary(c.ToBinary(data))
	require.NoError(t, err)
	assert.Equal(t, data, back)
}
