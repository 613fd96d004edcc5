// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package overlay

import "github.com/grindlemire/go-overlay/internal/layout"

// Dimension is a pixel length plus a fraction of the available extent.
type Dimension = layout.Dimension

// Anchor places a node along one axis of its reference frame.
type Anchor = layout.Anchor

// Vector2 is a 2D vector used for positions, sizes and offsets.
type Vector2 = layout.Vector2

// Rect is a rectangle described by its position and size.
type Rect = layout.Rect

// Edges holds a value per side; used for margin, padding and sticky offsets.
type Edges = layout.Edges

// Axis selects the horizontal or vertical component.
type Axis = layout.Axis

const (
	AxisX = layout.AxisX
	AxisY = layout.AxisY
)

// BoxSizing decides which rectangle the declared Width and Height describe.
type BoxSizing = layout.BoxSizing

const (
	BorderBox  = layout.BorderBox
	ContentBox = layout.ContentBox
)

// Positioning selects the reference frame used to place a node.
type Positioning = layout.Positioning

const (
	Static   = layout.Static
	Relative = layout.Relative
	Sticky   = layout.Sticky
	Absolute = layout.Absolute
	Fixed    = layout.Fixed
)

// StickyEdges is the set of edges a sticky node clamps against.
type StickyEdges = layout.StickyEdges

const (
	StickyNone   = layout.StickyNone
	StickyLeft   = layout.StickyLeft
	StickyTop    = layout.StickyTop
	StickyRight  = layout.StickyRight
	StickyBottom = layout.StickyBottom
)

// Constraints are the resolved min/max bounds of one axis.
type Constraints = layout.Constraints

// Px creates a Dimension of a fixed number of pixels.
func Px(n float32) Dimension {
	return layout.Px(n)
}

// Percent creates a Dimension that is a fraction (0-1) of the available extent.
func Percent(p float32) Dimension {
	return layout.Percent(p)
}

// Dim creates a Dimension combining pixels and a fraction of the available extent.
func Dim(pixels, percent float32) Dimension {
	return layout.Dim(pixels, percent)
}

// Fill creates a Dimension covering the whole available extent.
func Fill() Dimension {
	return layout.Fill()
}

// NoLimit creates the Dimension used for maximum constraints without a limit.
func NoLimit() Dimension {
	return layout.NoLimit()
}

// At creates an Anchor at a fixed pixel offset from the start edge.
func At(pixels float32) Anchor {
	return layout.At(pixels)
}

// AnchorCenter creates an Anchor that centers a node in its frame.
func AnchorCenter() Anchor {
	return layout.AnchorCenter()
}

// AnchorEnd creates an Anchor flush against the end edge, inset by pixels.
func AnchorEnd(pixels float32) Anchor {
	return layout.AnchorEnd(pixels)
}

// Vec creates a Vector2.
func Vec(x, y float32) Vector2 {
	return layout.Vec(x, y)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float32) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float32) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float32) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
