// Package strokeviz draws steno strokes as ASCII key diagrams.
//
// 🚀 What is strokeviz?
//
//	A small toolkit that turns a chorded-keyboard stroke like KPWR-FPL
//	into a fixed-width picture of the engaged keys, ready to drop into a
//	tooltip or status line.
//
// Under the hood:
//
//	stroke/          — parser, hand assembler, form classifier, renderer, Lookup
//	internal/config/ — YAML settings and environment overrides for the CLI
//	cmd/strokeviz/   — command-line front end (render, explain, config init)
//	examples/        — host-dictionary style walkthrough
//
// Quick example:
//
//	out, _ := stroke.Lookup([]string{"STR*Z", "KA"})
//
//	- - - - -
//	- k - - -
//	      a -
//
//	go get github.com/katalvlaran/strokeviz/stroke
package strokeviz
