// SPDX-License-Identifier: MIT
// Package: strokeviz/stroke
//
// parse.go — Key-Code Parser.
//
// Contract:
//   • The matcher is anchored at both ends: the whole stroke must match.
//   • Each group is optional and appears only in canonical order, so every
//     capture is either its expected letter/symbol or "".
//   • Duplicate letters (R, P, T, S) resolve left-first; a "-" or a vowel
//     moves the following letters to the right hand.

package stroke

import (
	"fmt"
	"regexp"
)

// keyPattern lists the per-slot groups. Its group order is the Slot order.
const keyPattern = `^(#?)(S?)(T?)(K?)(P?)(W?)(H?)(R?)(A?)(O?)([-*]?)(E?)(U?)(F?)(R?)(P?)(B?)(L?)(G?)(T?)(S?)(D?)(Z?)$`

var keyMatcher = regexp.MustCompile(keyPattern)

// Parse matches stroke against the fixed key layout.
// Returns ErrNotFound (wrapped) if any character is outside the layout or out
// of canonical order.
//
// Complexity: O(len(stroke)).
func Parse(stroke string) (Parts, error) {
	var p Parts
	m := keyMatcher.FindStringSubmatch(stroke)
	if m == nil {
		return p, fmt.Errorf("parse %q: %w", stroke, ErrNotFound)
	}
	copy(p[:], m[1:])

	return p, nil
}
