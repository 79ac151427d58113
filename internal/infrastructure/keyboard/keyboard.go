// Package keyboard turns ebiten key state into button combinations.
package keyboard

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/framepad/internal/domain/input"
)

// KeyPressedFunc reports whether a key is held down
type KeyPressedFunc func(ebiten.Key) bool

// Bindings maps each button to the keys that press it
type Bindings map[input.Button][]ebiten.Key

// ParseBindings converts button names and ebiten key names (e.g. "ArrowLeft") to bindings
func ParseBindings(names map[string][]string) (Bindings, error) {
	bindings := make(Bindings, len(names))

	// sorted so errors are reported deterministically
	buttonNames := make([]string, 0, len(names))
	for name := range names {
		buttonNames = append(buttonNames, name)
	}
	sort.Strings(buttonNames)

	for _, name := range buttonNames {
		button, ok := input.ButtonFromName(name)
		if !ok {
			return nil, fmt.Errorf("unknown button %q", name)
		}
		for _, keyName := range names[name] {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(keyName)); err != nil {
				return nil, fmt.Errorf("button %s: %w", button, err)
			}
			bindings[button] = append(bindings[button], key)
		}
	}

	return bindings, nil
}

// Source polls the keyboard once per frame
type Source struct {
	bindings Bindings
	pressed  KeyPressedFunc
}

// NewSource creates a source reading ebiten's keyboard state
func NewSource(bindings Bindings) *Source {
	return NewSourceWithFunc(bindings, ebiten.IsKeyPressed)
}

// NewSourceWithFunc creates a source using a custom key state reader
func NewSourceWithFunc(bindings Bindings, pressed KeyPressedFunc) *Source {
	return &Source{
		bindings: bindings,
		pressed:  pressed,
	}
}

// Poll returns the buttons whose bound keys are currently held
func (s *Source) Poll() input.Combination {
	var c input.Combination
	for button, keys := range s.bindings {
		for _, key := range keys {
			if s.pressed(key) {
				c.Add(button)
				break
			}
		}
	}
	return c
}
