// SPDX-License-Identifier: MIT
// Package: strokeviz/stroke
//
// types.go — key slots, hands and the derived cluster summary.

package stroke

import "strings"

// Slot indexes one of the 23 key positions in canonical layout order.
type Slot int

// Canonical key slots. The order is fixed by the keyboard layout.
const (
	SlotNumber Slot = iota // #
	SlotS1                 // S-
	SlotT1                 // T-
	SlotK                  // K-
	SlotP1                 // P-
	SlotW                  // W-
	SlotH                  // H-
	SlotR1                 // R-
	SlotA                  // A
	SlotO                  // O
	SlotStar               // - or *
	SlotE                  // E
	SlotU                  // U
	SlotF                  // -F
	SlotR2                 // -R
	SlotP2                 // -P
	SlotB                  // -B
	SlotL                  // -L
	SlotG                  // -G
	SlotT2                 // -T
	SlotS2                 // -S
	SlotD                  // -D
	SlotZ                  // -Z

	// SlotCount is the number of key slots.
	SlotCount
)

// Fixed row widths of the modeled layout.
const (
	LeftRowWidth  = 4
	RightRowWidth = 5
	BaseRowWidth  = 2
)

// Parts holds one capture per Slot: the matched letter/symbol or "".
type Parts [SlotCount]string

// Keys returns the engaged keys in canonical order. The "-" separator in the
// star slot is not a key and is skipped.
func (p Parts) Keys() []string {
	keys := make([]string, 0, SlotCount)
	for i, v := range p {
		if v == "" || (Slot(i) == SlotStar && v == filler) {
			continue
		}
		keys = append(keys, v)
	}

	return keys
}

// String writes the parts back in steno notation. A "-" is inserted when
// right-hand keys are present with no vowel or star to disambiguate them.
func (p Parts) String() string {
	var sb strings.Builder
	for i, v := range p {
		s := Slot(i)
		if s == SlotStar && v == "" && p.needsSeparator() {
			v = filler
		}
		sb.WriteString(v)
	}

	return sb.String()
}

func (p Parts) needsSeparator() bool {
	for _, s := range []Slot{SlotA, SlotO, SlotE, SlotU} {
		if p[s] != "" {
			return false
		}
	}
	for s := SlotF; s < SlotCount; s++ {
		if p[s] != "" {
			return true
		}
	}

	return false
}

// Hand groups a hand's slots into its three physical rows.
// Top and Middle are consonant rows, Base holds the vowels.
type Hand struct {
	Top    []string
	Middle []string
	Base   []string
}

// Hands is the left/right pair assembled from one stroke.
type Hands struct {
	Left  Hand
	Right Hand
}

// Clusters summarizes which kinds of rows of a Hand carry any key.
type Clusters struct {
	Consonants bool // Top or Middle has a non-empty value
	Vowels     bool // Base has a non-empty value
}

// Any reports whether the hand has any engaged key.
func (c Clusters) Any() bool { return c.Consonants || c.Vowels }

// Complete reports whether the hand has both consonants and vowels.
func (c Clusters) Complete() bool { return c.Consonants && c.Vowels }

// JoinedHand is a Hand with every row flattened to display text.
type JoinedHand struct {
	Top    string
	Middle string
	Base   string
}
