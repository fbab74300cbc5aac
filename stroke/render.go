// SPDX-License-Identifier: MIT
// Package: strokeviz/stroke
//
// render.go — Row Renderer.
//
// Every template returns its rows framed as "\n"+row each, plus one trailing
// "\n". Full, LeftFull and RightFull read normalized hands; the consonant
// forms read raw rows and never show the star or the vowels.

package stroke

import (
	"fmt"
	"strings"
)

const (
	newline = "\n"
	gap     = space + space
)

// indent aligns the vowel row under the inner consonant columns.
var indent = strings.Repeat(gap, 3)

// Render builds the diagram for h in form f. An empty star renders as the
// filler glyph. Panics on a Form outside the five declared values.
func Render(h Hands, star string, f Form) string {
	if star == "" {
		star = filler
	}

	switch f {
	case Full:
		return renderFull(h.Left.Normalize(), h.Right.Normalize(), star)
	case LeftFull:
		return renderLeftFull(h.Left.Normalize(), star)
	case RightFull:
		return renderRightFull(h.Right.Normalize(), star)
	case LeftConsonants:
		return renderConsonants(h.Left.Raw())
	case RightConsonants:
		return renderConsonants(h.Right.Raw())
	}
	panic(fmt.Sprintf("stroke: Render with invalid form %v", f))
}

func renderFull(left, right JoinedHand, star string) string {
	gutter := space + star + gap + star + space

	return frame(
		left.Top+gutter+right.Top,
		left.Middle+gutter+right.Middle,
		indent+left.Base+gap+right.Base,
	)
}

func renderLeftFull(left JoinedHand, star string) string {
	gutter := space + star

	return frame(
		left.Top+gutter,
		left.Middle+gutter,
		indent+left.Base,
	)
}

func renderRightFull(right JoinedHand, star string) string {
	gutter := star + space

	return frame(
		gutter+right.Top,
		gutter+right.Middle,
		right.Base,
	)
}

func renderConsonants(hand JoinedHand) string {
	return frame(hand.Top, hand.Middle)
}

func frame(rows ...string) string {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(newline)
		sb.WriteString(row)
	}
	sb.WriteString(newline)

	return sb.String()
}
