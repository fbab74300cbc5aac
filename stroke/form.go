// SPDX-License-Identifier: MIT
// Package: strokeviz/stroke
//
// form.go — Shape Classifier.
//
// Precedence (first match wins):
//  1. left consonants only              → LeftConsonants
//  2. right consonants only             → RightConsonants
//  3. left complete, right untouched    → LeftFull
//  4. right complete, left untouched    → RightFull
//  5. everything else                   → Full
//
// Case 5 also absorbs strokes where one hand holds only vowels. That
// grouping is kept as-is.

package stroke

import "fmt"

// Form selects the rendering template for a stroke.
type Form int

const (
	// Full draws both hands on three rows with the star gutter between them.
	Full Form = iota + 1
	// LeftFull draws the left hand on three rows followed by the star.
	LeftFull
	// RightFull draws the star followed by the right hand on three rows.
	RightFull
	// LeftConsonants draws the raw left consonant rows only.
	LeftConsonants
	// RightConsonants draws the raw right consonant rows only.
	RightConsonants
)

var formNames = map[Form]string{
	Full:            "full",
	LeftFull:        "left_full",
	RightFull:       "right_full",
	LeftConsonants:  "left_consonants",
	RightConsonants: "right_consonants",
}

// String returns the snake_case name of f.
func (f Form) String() string {
	if name, ok := formNames[f]; ok {
		return name
	}

	return fmt.Sprintf("Form(%d)", int(f))
}

// ParseForm maps a snake_case name back to its Form.
func ParseForm(name string) (Form, error) {
	for f, n := range formNames {
		if n == name {
			return f, nil
		}
	}

	return 0, fmt.Errorf("stroke: unknown form %q", name)
}

// Classify picks the Form for h. alwaysFull forces Full.
func Classify(h Hands, alwaysFull bool) Form {
	if alwaysFull {
		return Full
	}

	return ClassifyClusters(h.Left.Clusters(), h.Right.Clusters())
}

// ClassifyClusters applies the precedence rules to the per-hand summaries.
func ClassifyClusters(left, right Clusters) Form {
	anyVowels := left.Vowels || right.Vowels
	switch {
	case left.Consonants && !(right.Consonants || anyVowels):
		return LeftConsonants
	case right.Consonants && !(left.Consonants || anyVowels):
		return RightConsonants
	case left.Complete() && !right.Any():
		return LeftFull
	case right.Complete() && !left.Any():
		return RightFull
	default:
		return Full
	}
}
