// Package flexkit implements a CSS Flexbox Level 1 layout engine: given a
// tree of styled Nodes and a viewport size, it computes the final position
// and size of every node.
//
// The engine also covers the most commonly used parts of Box Alignment
// Level 3 (align-content/align-items/justify-content keyword extensions,
// safe/unsafe overflow alignment), CSS Sizing Level 3 (aspect-ratio,
// automatic minimum size) and writing-mode-aware axis resolution.
//
// Rendering, text shaping and CSS parsing are explicitly out of scope: the
// engine receives measured content sizes through a caller-supplied
// MeasureFunc, and styles are set through typed setters rather than parsed
// from a stylesheet.
package flexkit
