package layout

// Placement gathers everything needed to resolve a node's outer origin.
type Placement struct {
	Mode Positioning

	Left, Top Anchor

	// Size is the node's own outer size, already measured.
	Size Vector2

	// Parent is the parent's content box before scrolling is applied.
	// For a node without a parent it is the viewport rectangle.
	Parent Rect
	// Scroll is the parent's scroll offset.
	Scroll Vector2
	// Viewport is the scaled screen rectangle.
	Viewport Rect

	LayoutOffset Vector2
	DragOffset   Vector2

	StickyEdges StickyEdges
	Sticky      Edges
}

// ResolveOrigin returns the outer-rectangle origin for p.
// Unknown modes fall back to Static placement.
func ResolveOrigin(p Placement) Vector2 {
	switch p.Mode {
	case Fixed:
		return p.anchored(p.Viewport).Add(p.DragOffset)
	case Absolute:
		return p.anchored(p.Parent).Add(p.DragOffset)
	case Relative:
		return p.relative()
	case Sticky:
		return p.stick(p.relative())
	default:
		return p.Parent.Position.Add(p.Scroll).Add(p.LayoutOffset)
	}
}

func (p Placement) anchored(frame Rect) Vector2 {
	return Vector2{
		X: frame.Position.X + p.Left.CalculatePosition(frame.Size.X, p.Size.X),
		Y: frame.Position.Y + p.Top.CalculatePosition(frame.Size.Y, p.Size.Y),
	}
}

func (p Placement) relative() Vector2 {
	return p.anchored(p.Parent).
		Add(p.Scroll).
		Add(p.LayoutOffset).
		Add(p.DragOffset)
}

// stick clamps origin against the unscrolled parent edges. Left and Top
// clamp to a minimum, Right and Bottom to a maximum; Left and Top win when
// the parent is too small to honor both.
func (p Placement) stick(origin Vector2) Vector2 {
	if p.StickyEdges.Has(StickyRight) {
		origin.X = min(origin.X, p.Parent.Right()-p.Sticky.Right-p.Size.X)
	}
	if p.StickyEdges.Has(StickyBottom) {
		origin.Y = min(origin.Y, p.Parent.Bottom()-p.Sticky.Bottom-p.Size.Y)
	}
	if p.StickyEdges.Has(StickyLeft) {
		origin.X = max(origin.X, p.Parent.Position.X+p.Sticky.Left)
	}
	if p.StickyEdges.Has(StickyTop) {
		origin.Y = max(origin.Y, p.Parent.Position.Y+p.Sticky.Top)
	}
	return origin
}
