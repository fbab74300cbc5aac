// SPDX-License-Identifier: MIT
// Package: strokeviz/stroke
//
// lookup.go — dictionary-style entry point.

package stroke

import "fmt"

// placeholder is returned for a key that holds only the trigger.
const placeholder = " "

// Translator turns keys into diagrams under a fixed configuration.
// The zero value is not usable; build one with New.
type Translator struct {
	cfg config
}

// New returns a Translator with opts applied over the defaults.
func New(opts ...Option) *Translator {
	return &Translator{cfg: newConfig(opts...)}
}

// Trigger returns the leading stroke this Translator answers to.
func (t *Translator) Trigger() string { return t.cfg.trigger }

// LongestKey returns the maximum key length accepted by Lookup.
func (t *Translator) LongestKey() int { return LongestKey }

// Lookup renders key, a sequence of strokes whose first element must be the
// trigger. A key of just the trigger yields a single space.
//
// Errors:
//   - ErrNotFound — empty key, wrong trigger, or an unparseable stroke.
//
// Panics if len(key) > LongestKey: hosts must not offer longer keys.
func (t *Translator) Lookup(key []string) (string, error) {
	if len(key) > LongestKey {
		panic(fmt.Sprintf("stroke: key length %d/%d", len(key), LongestKey))
	}
	if len(key) == 0 || key[0] != t.cfg.trigger {
		return "", ErrNotFound
	}
	if len(key) == 1 {
		return placeholder, nil
	}

	parts, err := Parse(key[1])
	if err != nil {
		return "", err
	}
	hands, star := Assemble(parts)
	form := Classify(hands, t.cfg.alwaysFull)

	return Render(hands, star, form), nil
}

// Explain returns the Form key[1] would be drawn with, plus the parsed parts.
// It applies the same trigger and length checks as Lookup but expects a
// stroke to be present.
func (t *Translator) Explain(key []string) (Form, Parts, error) {
	if len(key) > LongestKey {
		panic(fmt.Sprintf("stroke: key length %d/%d", len(key), LongestKey))
	}
	if len(key) < LongestKey || key[0] != t.cfg.trigger {
		return 0, Parts{}, ErrNotFound
	}
	parts, err := Parse(key[1])
	if err != nil {
		return 0, Parts{}, err
	}
	hands, _ := Assemble(parts)

	return Classify(hands, t.cfg.alwaysFull), parts, nil
}

// Lookup renders key with a Translator built from opts.
func Lookup(key []string, opts ...Option) (string, error) {
	return New(opts...).Lookup(key)
}
