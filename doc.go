// Package tui provides terminal rendering primitives for Go.
//
// The package is organized around three ideas: a constraint-based layout
// engine (pkg/layout, re-exported here) that splits the screen into
// regions, a cell Buffer that widgets draw styled grapheme clusters into,
// and a Terminal that diffs consecutive frames and repaints only the
// cells that changed. Widgets such as Block, Paragraph, and Tabs are
// plain values implementing the Widget interface.
package tui
