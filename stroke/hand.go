// SPDX-License-Identifier: MIT
// Package: strokeviz/stroke
//
// hand.go — Hand Assembler and per-hand row views.

package stroke

import "strings"

const (
	filler    = "-" // glyph for an unengaged key
	space     = " "
	separator = space // between slots of a normalized row
)

// Assemble partitions parsed parts into the two hands and the raw star value.
// Rows are freshly allocated; p is not retained.
func Assemble(p Parts) (Hands, string) {
	left := Hand{
		Top:    []string{p[SlotNumber], p[SlotT1], p[SlotP1], p[SlotH]},
		Middle: []string{p[SlotS1], p[SlotK], p[SlotW], p[SlotR1]},
		Base:   []string{p[SlotA], p[SlotO]},
	}
	right := Hand{
		Top:    []string{p[SlotF], p[SlotP2], p[SlotL], p[SlotT2], p[SlotD]},
		Middle: []string{p[SlotR2], p[SlotB], p[SlotG], p[SlotS2], p[SlotZ]},
		Base:   []string{p[SlotE], p[SlotU]},
	}

	return Hands{Left: left, Right: right}, p[SlotStar]
}

// Clusters computes the consonant/vowel summary of h.
func (h Hand) Clusters() Clusters {
	return Clusters{
		Consonants: engaged(h.Top) || engaged(h.Middle),
		Vowels:     engaged(h.Base),
	}
}

// Normalize returns the padded display form of h: every empty slot becomes
// the filler glyph, slots are joined by a single space, text is lowercased.
// h itself is not modified.
func (h Hand) Normalize() JoinedHand {
	return JoinedHand{
		Top:    normalizeRow(h.Top),
		Middle: normalizeRow(h.Middle),
		Base:   normalizeRow(h.Base),
	}
}

// Raw returns the rows of h concatenated as-is, without padding.
func (h Hand) Raw() JoinedHand {
	return JoinedHand{
		Top:    strings.Join(h.Top, ""),
		Middle: strings.Join(h.Middle, ""),
		Base:   strings.Join(h.Base, ""),
	}
}

func normalizeRow(row []string) string {
	cells := make([]string, len(row))
	for i, v := range row {
		if v == "" {
			v = filler
		}
		cells[i] = v
	}

	return strings.ToLower(strings.Join(cells, separator))
}

func engaged(row []string) bool {
	for _, v := range row {
		if v != "" {
			return true
		}
	}

	return false
}
