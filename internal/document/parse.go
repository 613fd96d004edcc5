package document

import (
	"fmt"
	"strconv"
	"strings"

	overlay "github.com/grindlemire/go-overlay"
	"github.com/grindlemire/go-overlay/internal/layout"
)

// ParseDimension parses "120", "120px", "50%", "10 + 50%" or "50% - 4".
// The empty string and "auto" report ok=false so the caller keeps its default.
func ParseDimension(s string) (d overlay.Dimension, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return overlay.Dimension{}, false, nil
	}
	pixels, percent, err := parseTerms(s)
	if err != nil {
		return overlay.Dimension{}, false, err
	}
	return overlay.Dim(pixels, percent), true, nil
}

// ParseAnchor parses an anchor offset with the dimension grammar plus the
// keywords "start", "center" and "end". align, when set, overrides the
// alignment fraction.
func ParseAnchor(s string, align *float64) (overlay.Anchor, error) {
	var a overlay.Anchor
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "start":
	case "center":
		a = overlay.AnchorCenter()
	case "end":
		a = overlay.AnchorEnd(0)
	default:
		pixels, percent, err := parseTerms(s)
		if err != nil {
			return overlay.Anchor{}, err
		}
		a.Pixels, a.Percent = pixels, percent
	}
	if align != nil {
		a.Alignment = float32(*align)
	}
	return a, nil
}

// parseTerms sums signed terms; a trailing % makes a term a percentage.
func parseTerms(s string) (pixels, percent float32, err error) {
	compact := strings.Join(strings.Fields(s), "")
	if compact == "" {
		return 0, 0, fmt.Errorf("empty value")
	}

	start := 0
	for i := 1; i <= len(compact); i++ {
		if i < len(compact) && compact[i] != '+' && compact[i] != '-' {
			continue
		}
		// A sign directly after an operator or exponent belongs to the number.
		if i < len(compact) && (compact[i-1] == '+' || compact[i-1] == '-' || compact[i-1] == 'e' || compact[i-1] == 'E') {
			continue
		}
		px, pct, err := parseTerm(compact[start:i])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid value %q: %w", s, err)
		}
		pixels += px
		percent += pct
		start = i
	}
	return pixels, percent, nil
}

func parseTerm(term string) (pixels, percent float32, err error) {
	raw := term
	negative := false
	for len(raw) > 0 && (raw[0] == '+' || raw[0] == '-') {
		negative = negative != (raw[0] == '-')
		raw = raw[1:]
	}
	isPercent := strings.HasSuffix(raw, "%")
	raw = strings.TrimSuffix(strings.TrimSuffix(raw, "%"), "px")
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("term %q is not a number", term)
	}
	if negative {
		v = -v
	}
	if isPercent {
		return 0, float32(v) / 100, nil
	}
	return float32(v), 0, nil
}

// ParseEdges follows the CSS shorthand: one value for every side, two for
// vertical and horizontal, three for top, horizontal and bottom, or four for
// top, right, bottom and left.
func ParseEdges(values []float64) (overlay.Edges, error) {
	v := make([]float32, len(values))
	for i, f := range values {
		v[i] = float32(f)
	}
	switch len(v) {
	case 0:
		return overlay.Edges{}, nil
	case 1:
		return overlay.EdgeAll(v[0]), nil
	case 2:
		return overlay.EdgeSymmetric(v[0], v[1]), nil
	case 3:
		return overlay.EdgeTRBL(v[0], v[1], v[2], v[1]), nil
	case 4:
		return overlay.EdgeTRBL(v[0], v[1], v[2], v[3]), nil
	default:
		return overlay.Edges{}, fmt.Errorf("expected 1 to 4 values, got %d", len(v))
	}
}

// ParseStickyOffsets reads sticky offsets in left, top, right, bottom order.
func ParseStickyOffsets(values []float64) (overlay.Edges, error) {
	switch len(values) {
	case 0:
		return overlay.Edges{}, nil
	case 4:
		return overlay.Edges{
			Left:   float32(values[0]),
			Top:    float32(values[1]),
			Right:  float32(values[2]),
			Bottom: float32(values[3]),
		}, nil
	default:
		return overlay.Edges{}, fmt.Errorf("expected 4 values (left, top, right, bottom), got %d", len(values))
	}
}

// ParseStickyEdges combines edge names into a set.
func ParseStickyEdges(names []string) (overlay.StickyEdges, error) {
	edges := overlay.StickyNone
	for _, name := range names {
		e, ok := layout.ParseStickyEdge(strings.TrimSpace(name))
		if !ok {
			return overlay.StickyNone, fmt.Errorf("unknown sticky edge %q", name)
		}
		edges |= e
	}
	return edges, nil
}

// ParsePositioning accepts the positioning names; empty means static.
func ParsePositioning(s string) (overlay.Positioning, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return overlay.Static, nil
	}
	p, ok := layout.ParsePositioning(s)
	if !ok {
		return overlay.Static, fmt.Errorf("unknown positioning %q", s)
	}
	return p, nil
}

// ParseBoxSizing accepts "border" (default) or "content", with or without a "-box" suffix.
func ParseBoxSizing(s string) (overlay.BoxSizing, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "-box") {
	case "", "border":
		return overlay.BorderBox, nil
	case "content":
		return overlay.ContentBox, nil
	default:
		return overlay.BorderBox, fmt.Errorf("unknown box sizing %q", s)
	}
}

// ParseStrategy maps a layout name to an arrangement strategy.
func ParseStrategy(layout string, gap float64) (overlay.LayoutStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(layout)) {
	case "", "none", "overlap":
		return overlay.Overlap{}, nil
	case "row":
		return overlay.Row(float32(gap)), nil
	case "column":
		return overlay.Column(float32(gap)), nil
	default:
		return nil, fmt.Errorf("unknown layout %q", layout)
	}
}

// ParseVector reads an optional [x, y] pair.
func ParseVector(values []float64) (overlay.Vector2, error) {
	switch len(values) {
	case 0:
		return overlay.Vector2{}, nil
	case 2:
		return overlay.Vec(float32(values[0]), float32(values[1])), nil
	default:
		return overlay.Vector2{}, fmt.Errorf("expected 2 values, got %d", len(values))
	}
}
