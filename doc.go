// Package overlay provides a retained-mode UI tree for in-game overlays.
//
// Nodes own a CSS-like box model (margin, border, padding, content), resolve
// their dimensions from mixed pixel/percentage specifications and are placed
// with one of five positioning modes (static, relative, sticky, absolute,
// fixed). A [Tree] owns every node in an arena; children refer to their
// parent through a [NodeID] handle rather than a pointer.
//
// Each frame, [Tree.Update] runs two top-down passes over the attached roots:
// a layout pass that re-measures only layout-dirty nodes, delegating sibling
// arrangement to a [LayoutStrategy], and a position pass that resolves screen
// rectangles for position-dirty nodes. Scroll and drag changes only dirty
// positions, so they never trigger a re-measure.
//
// The engine is single-threaded: mutate the tree and call Update from the
// same goroutine that drives the game loop.
package overlay
