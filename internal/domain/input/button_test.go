package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButton_Glyph(t *testing.T) {
	tests := []struct {
		button Button
		glyph  rune
	}{
		{Left, '←'},
		{Right, '→'},
		{Up, '↑'},
		{Down, '↓'},
		{A, 'A'},
		{B, 'B'},
	}

	for _, tt := range tests {
		t.Run(tt.button.String(), func(t *testing.T) {
			assert.Equal(t, tt.glyph, tt.button.Glyph())

			b, ok := ButtonFromGlyph(tt.glyph)
			require.True(t, ok)
			assert.Equal(t, tt.button, b)
		})
	}
}

func TestButtonFromName(t *testing.T) {
	b, ok := ButtonFromName("right")
	require.True(t, ok)
	assert.Equal(t, Right, b)

	_, ok = ButtonFromName("select")
	assert.False(t, ok)
}

func TestCombination_Empty(t *testing.T) {
	c := NewCombination()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, "-", c.String())
	assert.Empty(t, c.Buttons())
}

func TestCombination_CanonicalOrder(t *testing.T) {
	c := NewCombination(A, B, Right)
	assert.Equal(t, "→BA", c.String())

	c = NewCombination(Down, Up, Right, Left)
	assert.Equal(t, "←→↑↓", c.String())
}

func TestCombination_SetEquality(t *testing.T) {
	assert.Equal(t, NewCombination(A, Right), NewCombination(Right, A))
	assert.Equal(t, NewCombination(A, A), NewCombination(A))
	assert.NotEqual(t, NewCombination(A), NewCombination(B))
}

func TestCombination_AddRemove(t *testing.T) {
	var c Combination
	c.Add(Up)
	c.Add(B)
	assert.True(t, c.IsPressed(Up))
	assert.True(t, c.IsPressed(B))

	c.Remove(Up)
	assert.False(t, c.IsPressed(Up))
	assert.Equal(t, "B", c.String())
}

func TestParseCombination_IgnoresUnknown(t *testing.T) {
	c := ParseCombination("x→ B?A")
	assert.Equal(t, NewCombination(Right, B, A), c)
}

func TestCombination_StringRoundTrip(t *testing.T) {
	// every subset of the six buttons
	for mask := 0; mask < 1<<len(AllButtons); mask++ {
		var c Combination
		for i, b := range AllButtons {
			if mask&(1<<i) != 0 {
				c.Add(b)
			}
		}

		s := c.String()
		if c.IsEmpty() {
			assert.Equal(t, NoInput, s)
			assert.True(t, ParseCombination(s).IsEmpty())
			continue
		}
		assert.Equal(t, c, ParseCombination(s), "round trip of %q", s)
	}
}

func TestCombination_Normalize(t *testing.T) {
	raw := Combination(0xC1)

	assert.NotEqual(t, NewCombination(Left), raw)
	assert.Equal(t, NewCombination(Left), raw.Normalize())
	assert.Equal(t, raw.String(), raw.Normalize().String())

	// built values never carry stray bits
	all := NewCombination(AllButtons...)
	assert.Equal(t, all, all.Normalize())
}
