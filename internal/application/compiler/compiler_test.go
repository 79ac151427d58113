package compiler

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScript = "0-59: →B\n60: →BA\n61-100: →B\n101-120: -"

func newTestCompiler() *NESCompiler {
	return NewNESCompiler(log.New(&bytes.Buffer{}, "", 0))
}

func TestNESCompiler_Name(t *testing.T) {
	assert.Equal(t, "NES compiler", newTestCompiler().Name())
}

func TestNESCompiler_Compile(t *testing.T) {
	c := newTestCompiler()

	data := c.Compile(sampleScript)

	require.Len(t, data.Frames, 121)
	assert.Equal(t, uint8(0x83), data.Frames[60].Buttons)
	assert.Equal(t, uint8(0x00), data.Frames[110].Buttons)
}

func TestNESCompiler_Decompile(t *testing.T) {
	c := newTestCompiler()

	text := c.Decompile(c.Compile("# comment\n0-59: →B\n\n60: →BA\n61-100: →B\n101-120: -"))

	assert.Equal(t, sampleScript, text)
}

func TestNESCompiler_DecompileFillsGapsWithNoInput(t *testing.T) {
	c := newTestCompiler()

	text := c.Decompile(c.Compile("5-6: A"))

	assert.Equal(t, "0-4: -\n5-6: A", text)
}
