// SPDX-License-Identifier: MIT
// Package: strokeviz/stroke
//
// errors.go — sentinel errors for the stroke package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failure site.
//   • A key longer than LongestKey is a caller defect and panics instead.

package stroke

import "errors"

// ErrNotFound reports a dictionary miss: the key does not start with the
// trigger stroke, or the stroke payload does not fully match the key layout.
// Hosts treat it as "no diagram for this key".
var ErrNotFound = errors.New("stroke: not found")
