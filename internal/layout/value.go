package layout

import "math"

// Unbounded is the pixel amount used for maximum constraints that impose no limit.
const Unbounded = math.MaxFloat32

// Dimension is a length made of a fixed pixel part and a fraction of the
// available extent. Percent is on a 0-1 scale (0.5 = half of available).
type Dimension struct {
	Pixels  float32
	Percent float32
}

// Px returns a Dimension of a fixed number of pixels.
func Px(n float32) Dimension {
	return Dimension{Pixels: n}
}

// Percent returns a Dimension that is a fraction of the available extent.
func Percent(p float32) Dimension {
	return Dimension{Percent: p}
}

// Dim returns a Dimension combining pixels and a fraction of the available extent.
func Dim(pixels, percent float32) Dimension {
	return Dimension{Pixels: pixels, Percent: percent}
}

// Fill returns a Dimension covering all of the available extent.
func Fill() Dimension {
	return Dimension{Percent: 1}
}

// NoLimit returns the Dimension used for maximum constraints that impose no limit.
func NoLimit() Dimension {
	return Dimension{Pixels: Unbounded}
}

// CalculateSize resolves the dimension against the available extent.
func (d Dimension) CalculateSize(available float32) float32 {
	return d.Pixels + d.Percent*available
}

// IsRelative reports whether the dimension depends on the available extent.
func (d Dimension) IsRelative() bool {
	return d.Percent != 0
}

// Anchor places a node along one axis of its container.
// Alignment is the fraction of the node's own extent subtracted from the
// resolved point: 0 is flush to the start edge, 0.5 centered, 1 flush to the end.
type Anchor struct {
	Pixels    float32
	Percent   float32
	Alignment float32
}

// At returns an Anchor at a fixed pixel offset from the container start.
func At(pixels float32) Anchor {
	return Anchor{Pixels: pixels}
}

// AnchorCenter returns an Anchor that centers a node in its container.
func AnchorCenter() Anchor {
	return Anchor{Percent: 0.5, Alignment: 0.5}
}

// AnchorEnd returns an Anchor flush against the container end, inset by pixels.
func AnchorEnd(pixels float32) Anchor {
	return Anchor{Pixels: -pixels, Percent: 1, Alignment: 1}
}

// CalculatePosition resolves the anchor against the container extent and the
// node's own extent.
func (a Anchor) CalculatePosition(containerExtent, ownExtent float32) float32 {
	return a.Pixels + a.Percent*containerExtent - a.Alignment*ownExtent
}

// IsRelative reports whether the anchor depends on the container extent.
func (a Anchor) IsRelative() bool {
	return a.Percent != 0
}
