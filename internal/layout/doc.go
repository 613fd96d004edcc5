// Package layout implements the box model and position resolution for overlay nodes.
//
// It provides pixel/percentage dimensions, screen anchors, the three nested
// rectangles of a node (outer, bounds, inner), min/max constraint resolution
// under both box-sizing modes, and the per-mode origin calculation used by the
// position pass. Everything here is free of tree state; the root overlay
// package owns the tree, the dirty flags, and the recompute passes.
// Types are re-exported through the root overlay package for public consumption.
package layout
