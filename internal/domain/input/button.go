package input

import "strings"

// Button is a digital controller button
type Button uint8

// Buttons in the vocabulary. The order is the bit index inside a Combination.
const (
	Left Button = iota
	Right
	Up
	Down
	A
	B
	numButtons
)

var glyphs = [numButtons]rune{
	Left:  '←',
	Right: '→',
	Up:    '↑',
	Down:  '↓',
	A:     'A',
	B:     'B',
}

var names = [numButtons]string{
	Left:  "LEFT",
	Right: "RIGHT",
	Up:    "UP",
	Down:  "DOWN",
	A:     "A",
	B:     "B",
}

// DisplayOrder is the canonical ordering used when rendering a combination:
// directions first, then B before A.
var DisplayOrder = []Button{Left, Right, Up, Down, B, A}

// AllButtons lists the vocabulary in declaration order
var AllButtons = []Button{Left, Right, Up, Down, A, B}

// Glyph returns the character used for the button in the text format
func (b Button) Glyph() rune {
	if b >= numButtons {
		return '?'
	}
	return glyphs[b]
}

// String returns the button name
func (b Button) String() string {
	if b >= numButtons {
		return "UNKNOWN"
	}
	return names[b]
}

// ButtonFromGlyph looks up a button by its text glyph
func ButtonFromGlyph(r rune) (Button, bool) {
	for b, g := range glyphs {
		if g == r {
			return Button(b), true
		}
	}
	return 0, false
}

// ButtonFromName looks up a button by name, case insensitive
func ButtonFromName(name string) (Button, bool) {
	for b, n := range names {
		if strings.EqualFold(n, name) {
			return Button(b), true
		}
	}
	return 0, false
}

// NoInput is the glyph written for an empty combination
const NoInput = "-"

// Combination is a set of simultaneously pressed buttons.
// The zero value is the empty combination (no input).
// Only the low six bits are used; values built with NewCombination,
// ParseCombination or Add always satisfy this, so == is set equality.
// Convert raw bytes with Normalize before comparing.
type Combination uint8

// buttonMask covers every bit a Combination may hold
const buttonMask Combination = 1<<numButtons - 1

// Normalize clears bits that do not belong to any button
func (c Combination) Normalize() Combination {
	return c & buttonMask
}

// NewCombination creates a combination from a button list
func NewCombination(buttons ...Button) Combination {
	var c Combination
	for _, b := range buttons {
		c.Add(b)
	}
	return c
}

// ParseCombination builds a combination from glyphs such as "→BA".
// Characters that are not button glyphs are ignored.
func ParseCombination(s string) Combination {
	var c Combination
	for _, r := range s {
		if b, ok := ButtonFromGlyph(r); ok {
			c.Add(b)
		}
	}
	return c
}

// IsPressed reports whether the button is part of the combination
func (c Combination) IsPressed(b Button) bool {
	return b < numButtons && c&(1<<b) != 0
}

// Add presses a button
func (c *Combination) Add(b Button) {
	if b < numButtons {
		*c |= 1 << b
	}
}

// Remove releases a button
func (c *Combination) Remove(b Button) {
	if b < numButtons {
		*c &^= 1 << b
	}
}

// IsEmpty reports whether no button is pressed
func (c Combination) IsEmpty() bool {
	return c == 0
}

// Buttons returns the pressed buttons in display order
func (c Combination) Buttons() []Button {
	var out []Button
	for _, b := range DisplayOrder {
		if c.IsPressed(b) {
			out = append(out, b)
		}
	}
	return out
}

// String renders the combination in canonical order, or "-" when empty
func (c Combination) String() string {
	if c.IsEmpty() {
		return NoInput
	}
	var sb strings.Builder
	for _, b := range c.Buttons() {
		sb.WriteRune(b.Glyph())
	}
	return sb.String()
}
