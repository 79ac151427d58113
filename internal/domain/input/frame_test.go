package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameRange_Contains(t *testing.T) {
	r := NewFrameRange(10, 20, NewCombination(A))

	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(15))
	assert.True(t, r.Contains(20))
	assert.False(t, r.Contains(9))
	assert.False(t, r.Contains(21))
	assert.Equal(t, 11, r.Duration())
}

func TestNewFrameRange_CoercesEnd(t *testing.T) {
	r := NewFrameRange(30, 5, NewCombination())

	assert.Equal(t, 30, r.Start)
	assert.Equal(t, 30, r.End)
	assert.Equal(t, 1, r.Duration())
}

func TestFrameRange_String(t *testing.T) {
	assert.Equal(t, "60: →BA", NewFrameRange(60, 60, NewCombination(Right, B, A)).String())
	assert.Equal(t, "0-59: →B", NewFrameRange(0, 59, NewCombination(Right, B)).String())
	assert.Equal(t, "101-120: -", NewFrameRange(101, 120, NewCombination()).String())
}

func TestFrameRange_Overlaps(t *testing.T) {
	a := NewFrameRange(0, 10, 0)
	b := NewFrameRange(5, 15, 0)
	c := NewFrameRange(11, 15, 0)

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c))
}
