// SPDX-License-Identifier: MIT

// Package stroke renders a chorded-keyboard stroke as a small ASCII diagram
// of the engaged keys: the left hand, the right hand and the central
// star / number-bar key.
//
// 🚀 What does it do?
//
//	Given a key such as ["STR*Z", "KPWR-FPL"] (a trigger stroke followed by
//	the stroke to show), Lookup returns:
//
//	  - - p - -  - f p l - -
//	  - k w r -  - - - - - -
//	        - -  - -
//
// ✨ Pipeline:
//   - Parse     — anchored, fixed-order match of the 23 key slots
//   - Assemble  — split slots into Hands (top/middle/base rows) and the star
//   - Classify  — pick one of five Forms from per-hand Clusters
//   - Render    — build the framed rows for the chosen Form
//
// Layout (fixed, canonical steno order):
//
//	# S T K P W H R A O [-*] E U F R P B L G T S D Z
//
//	left  top    # T P H      right top    F P L T D
//	left  middle S K W R      right middle R B G S Z
//	left  base   A O          right base   E U
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strokeviz/stroke"
//
//	out, err := stroke.Lookup([]string{"STR*Z", "KA"})
//	if errors.Is(err, stroke.ErrNotFound) {
//	  // not a visual-stroke key
//	}
//
//	// Force the three-row diagram for every stroke:
//	tr := stroke.New(stroke.WithAlwaysFullForm(true))
//	out, err = tr.Lookup(key)
//
// Everything here is pure: no I/O, no logging, no shared mutable state.
// A Translator is immutable after New and safe for concurrent use.
package stroke
