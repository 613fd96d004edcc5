package layout

import "strings"

// BoxSizing decides which rectangle the declared Width and Height describe.
type BoxSizing uint8

const (
	BorderBox  BoxSizing = iota // Declared size includes padding and border
	ContentBox                  // Declared size is the content box only
)

func (b BoxSizing) String() string {
	if b == ContentBox {
		return "content"
	}
	return "border"
}

// Positioning selects the reference frame used to place a node.
type Positioning uint8

const (
	Static   Positioning = iota // Placed only by the parent's arrangement
	Relative                    // Arrangement offset plus anchors and drag
	Sticky                      // Relative, then clamped to the unscrolled parent edges
	Absolute                    // Anchored to the parent's content box, out of flow
	Fixed                       // Anchored to the viewport, out of flow
)

var positioningNames = [...]string{
	Static:   "static",
	Relative: "relative",
	Sticky:   "sticky",
	Absolute: "absolute",
	Fixed:    "fixed",
}

func (p Positioning) String() string {
	if int(p) < len(positioningNames) {
		return positioningNames[p]
	}
	return "unknown"
}

// ParsePositioning maps a positioning name to its value.
func ParsePositioning(s string) (Positioning, bool) {
	for i, name := range positioningNames {
		if strings.EqualFold(s, name) {
			return Positioning(i), true
		}
	}
	return Static, false
}

// IsFree reports whether nodes in this mode are out of flow.
// Free nodes never take part in the parent's arrangement or content fitting.
func (p Positioning) IsFree() bool {
	return p == Absolute || p == Fixed
}

// IsFlow reports whether nodes in this mode take part in the parent's arrangement.
func (p Positioning) IsFlow() bool {
	return !p.IsFree()
}

// StickyEdges is the set of edges a sticky node clamps against.
type StickyEdges uint8

const (
	StickyLeft StickyEdges = 1 << iota
	StickyTop
	StickyRight
	StickyBottom

	StickyNone StickyEdges = 0
)

// Has reports whether all edges in flag are set.
func (s StickyEdges) Has(flag StickyEdges) bool {
	return s&flag == flag && flag != 0
}

// ParseStickyEdge maps an edge name (left, top, right, bottom) to its flag.
func ParseStickyEdge(s string) (StickyEdges, bool) {
	switch strings.ToLower(s) {
	case "left":
		return StickyLeft, true
	case "top":
		return StickyTop, true
	case "right":
		return StickyRight, true
	case "bottom":
		return StickyBottom, true
	default:
		return StickyNone, false
	}
}
