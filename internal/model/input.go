package model

import (
	"fmt"
	"slices"
)

// Key names follow the browser KeyboardEvent.code values the renderer sends.
type Key string

const (
	KeyQueen  Key = "KeyQ"
	KeyRook   Key = "KeyR"
	KeyKnight Key = "KeyN"
	KeyBishop Key = "KeyB"
	KeyReset  Key = "Escape"
)

// promotionKeys is checked in order; the first key pressed wins.
var promotionKeys = []struct {
	key Key
	to  PieceType
}{
	{KeyQueen, Queen},
	{KeyRook, Rook},
	{KeyKnight, Knight},
	{KeyBishop, Bishop},
}

func ParseKey(s string) (Key, error) {
	k := Key(s)
	if k == KeyReset {
		return k, nil
	}
	for _, pk := range promotionKeys {
		if pk.key == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKey, s)
}

// InputFrame is everything the renderer samples for one tick. Pointer is
// nil when the cursor is outside the window.
type InputFrame struct {
	Pointer     *Vec2 `json:"pointer"`
	Pressed     bool  `json:"pressed"`
	Released    bool  `json:"released"`
	KeysPressed []Key `json:"keysPressed"`
	KeysHeld    []Key `json:"keysHeld"`
}

func (f InputFrame) JustPressed(k Key) bool {
	return slices.Contains(f.KeysPressed, k)
}

func (f InputFrame) Held(k Key) bool {
	return slices.Contains(f.KeysHeld, k)
}

func (f InputFrame) wantsReset() bool {
	return f.JustPressed(KeyReset) || f.Held(KeyReset)
}

// promotionChoice returns the kind selected by this frame's key edges.
func (f InputFrame) promotionChoice() (PieceType, bool) {
	for _, pk := range promotionKeys {
		if f.JustPressed(pk.key) {
			return pk.to, true
		}
	}
	return "", false
}

// KnownKeys returns f with every key the engine does not bind removed.
// Pointer and button edges are kept as they are.
func (f InputFrame) KnownKeys() InputFrame {
	f.KeysPressed = knownKeys(f.KeysPressed)
	f.KeysHeld = knownKeys(f.KeysHeld)
	return f
}

func knownKeys(keys []Key) []Key {
	var out []Key
	for _, k := range keys {
		if _, err := ParseKey(string(k)); err == nil {
			out = append(out, k)
		}
	}
	return out
}
