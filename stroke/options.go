// SPDX-License-Identifier: MIT
// Package: strokeviz/stroke
//
// options.go — functional options and resolved configuration.
//
// Contract:
//   • Options mutate a private config before a Translator is built.
//   • Option constructors panic on meaningless input; lookups never do,
//     apart from the LongestKey assertion.
//   • No package-level toggles: every knob flows through config.

package stroke

// DefaultTrigger is the stroke that marks a visual-stroke key.
const DefaultTrigger = "STR*Z"

// LongestKey is the maximum number of strokes in a key: the trigger plus the
// stroke to draw.
const LongestKey = 2

// Option customizes a Translator.
type Option func(*config)

type config struct {
	trigger    string
	alwaysFull bool
}

func newConfig(opts ...Option) config {
	cfg := config{trigger: DefaultTrigger}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTrigger replaces the leading trigger stroke. Panics on "".
func WithTrigger(trigger string) Option {
	if trigger == "" {
		panic("stroke: WithTrigger(\"\")")
	}
	return func(c *config) {
		c.trigger = trigger
	}
}

// WithAlwaysFullForm forces the Full form for every stroke.
func WithAlwaysFullForm(on bool) Option {
	return func(c *config) {
		c.alwaysFull = on
	}
}
