package overlay

// --- Box model accessors ---

// OuterBounds returns the rectangle including the margin.
func (n *Node) OuterBounds() Rect {
	return n.box.Outer
}

// Bounds returns the margin box: border, padding and content.
func (n *Node) Bounds() Rect {
	return n.box.Bounds
}

// InnerBounds returns the content box.
func (n *Node) InnerBounds() Rect {
	return n.box.Inner
}

// Constraints returns the resolved min/max bounds of axis from the last layout.
func (n *Node) Constraints(axis Axis) Constraints {
	return n.box.Constraints(axis)
}

// WidthValue returns the measured width in the box-sizing rectangle.
func (n *Node) WidthValue() float32 { return n.box.WidthValue() }

// HeightValue returns the measured height in the box-sizing rectangle.
func (n *Node) HeightValue() float32 { return n.box.HeightValue() }

// MinWidthValue returns the resolved minimum width.
func (n *Node) MinWidthValue() float32 { return n.box.MinWidthValue() }

// MaxWidthValue returns the resolved maximum width.
func (n *Node) MaxWidthValue() float32 { return n.box.MaxWidthValue() }

// MinHeightValue returns the resolved minimum height.
func (n *Node) MinHeightValue() float32 { return n.box.MinHeightValue() }

// MaxHeightValue returns the resolved maximum height.
func (n *Node) MaxHeightValue() float32 { return n.box.MaxHeightValue() }

// SetOuterBoundsWidth assigns the outer width and re-derives the nested widths.
// It is meant for arrangement strategies; it does not change any dirty flag.
func (n *Node) SetOuterBoundsWidth(v float32) { n.box.SetOuterBoundsWidth(v) }

// SetOuterBoundsHeight assigns the outer height and re-derives the nested heights.
func (n *Node) SetOuterBoundsHeight(v float32) { n.box.SetOuterBoundsHeight(v) }

// SetBoundsWidth assigns the margin-box width and re-derives the others.
func (n *Node) SetBoundsWidth(v float32) { n.box.SetBoundsWidth(v) }

// SetBoundsHeight assigns the margin-box height and re-derives the others.
func (n *Node) SetBoundsHeight(v float32) { n.box.SetBoundsHeight(v) }

// SetInnerBoundsWidth assigns the content width and re-derives the others.
func (n *Node) SetInnerBoundsWidth(v float32) { n.box.SetInnerBoundsWidth(v) }

// SetInnerBoundsHeight assigns the content height and re-derives the others.
func (n *Node) SetInnerBoundsHeight(v float32) { n.box.SetInnerBoundsHeight(v) }

// --- Declared sizing ---

// Width returns the declared width.
func (n *Node) Width() Dimension { return n.box.Width }

// SetWidth replaces the declared width and marks the node layout-dirty.
func (n *Node) SetWidth(d Dimension) {
	if n.box.Width == d {
		return
	}
	n.box.Width = d
	n.MarkLayoutDirty()
}

// Height returns the declared height.
func (n *Node) Height() Dimension { return n.box.Height }

// SetHeight replaces the declared height and marks the node layout-dirty.
func (n *Node) SetHeight(d Dimension) {
	if n.box.Height == d {
		return
	}
	n.box.Height = d
	n.MarkLayoutDirty()
}

// SetMinWidth replaces the minimum width.
func (n *Node) SetMinWidth(d Dimension) {
	if n.box.MinWidth == d {
		return
	}
	n.box.MinWidth = d
	n.MarkLayoutDirty()
}

// SetMaxWidth replaces the maximum width.
func (n *Node) SetMaxWidth(d Dimension) {
	if n.box.MaxWidth == d {
		return
	}
	n.box.MaxWidth = d
	n.MarkLayoutDirty()
}

// SetMinHeight replaces the minimum height.
func (n *Node) SetMinHeight(d Dimension) {
	if n.box.MinHeight == d {
		return
	}
	n.box.MinHeight = d
	n.MarkLayoutDirty()
}

// SetMaxHeight replaces the maximum height.
func (n *Node) SetMaxHeight(d Dimension) {
	if n.box.MaxHeight == d {
		return
	}
	n.box.MaxHeight = d
	n.MarkLayoutDirty()
}

// FitWidth reports whether the content width follows the children.
func (n *Node) FitWidth() bool { return n.box.FitWidth }

// SetFitWidth toggles content-driven width.
func (n *Node) SetFitWidth(fit bool) {
	if n.box.FitWidth == fit {
		return
	}
	n.box.FitWidth = fit
	n.MarkLayoutDirty()
}

// FitHeight reports whether the content height follows the children.
func (n *Node) FitHeight() bool { return n.box.FitHeight }

// SetFitHeight toggles content-driven height.
func (n *Node) SetFitHeight(fit bool) {
	if n.box.FitHeight == fit {
		return
	}
	n.box.FitHeight = fit
	n.MarkLayoutDirty()
}

// BoxSizing returns the box-sizing mode.
func (n *Node) BoxSizing() BoxSizing { return n.box.Sizing }

// SetBoxSizing changes which rectangle the declared size describes.
func (n *Node) SetBoxSizing(s BoxSizing) {
	if n.box.Sizing == s {
		return
	}
	n.box.Sizing = s
	n.MarkLayoutDirty()
}

// --- Spacing ---

// Margin returns the margin.
func (n *Node) Margin() Edges { return n.box.Margin }

// SetMargin replaces the margin; the nested rectangles are re-derived at once
// and the node is marked for re-layout.
func (n *Node) SetMargin(e Edges) {
	if n.box.Margin == e {
		return
	}
	n.box.SetMargin(e)
	n.MarkLayoutDirty()
}

// Padding returns the padding.
func (n *Node) Padding() Edges { return n.box.Padding }

// SetPadding replaces the padding.
func (n *Node) SetPadding(e Edges) {
	if n.box.Padding == e {
		return
	}
	n.box.SetPadding(e)
	n.MarkLayoutDirty()
}

// Border returns the uniform border thickness.
func (n *Node) Border() float32 { return n.box.Border }

// SetBorder replaces the border thickness.
func (n *Node) SetBorder(thickness float32) {
	if n.box.Border == thickness {
		return
	}
	n.box.SetBorder(thickness)
	n.MarkLayoutDirty()
}

// --- Positioning ---

// Positioning returns the positioning mode.
func (n *Node) Positioning() Positioning { return n.positioning }

// SetPositioning changes the positioning mode. Switching between flow and
// free modes also re-classifies the node in its parent and dirties layout.
func (n *Node) SetPositioning(p Positioning) {
	if n.positioning == p {
		return
	}
	flipped := n.positioning.IsFree() != p.IsFree()
	n.positioning = p
	n.MarkPositionDirty()
	if !flipped {
		return
	}
	if parent := n.Parent(); parent != nil {
		parent.invalidateChildren()
	}
	n.MarkLayoutDirty()
	if p.IsFree() {
		// MarkLayoutDirty only notifies for flow nodes; the parent still
		// lost a flow child.
		n.NotifyParentChildDirty()
	}
}

// Left returns the horizontal anchor.
func (n *Node) Left() Anchor { return n.left }

// SetLeft replaces the horizontal anchor.
func (n *Node) SetLeft(a Anchor) {
	if n.left == a {
		return
	}
	n.left = a
	n.MarkPositionDirty()
}

// Top returns the vertical anchor.
func (n *Node) Top() Anchor { return n.top }

// SetTop replaces the vertical anchor.
func (n *Node) SetTop(a Anchor) {
	if n.top == a {
		return
	}
	n.top = a
	n.MarkPositionDirty()
}

// StickyEdges returns the edges a sticky node clamps against.
func (n *Node) StickyEdges() StickyEdges { return n.stickyEdges }

// SetStickyEdges replaces the sticky edge set.
func (n *Node) SetStickyEdges(edges StickyEdges) {
	if n.stickyEdges == edges {
		return
	}
	n.stickyEdges = edges
	n.MarkPositionDirty()
}

// Sticky returns the per-edge sticky offsets.
func (n *Node) Sticky() Edges { return n.sticky }

// SetSticky replaces the per-edge sticky offsets.
func (n *Node) SetSticky(offsets Edges) {
	if n.sticky == offsets {
		return
	}
	n.sticky = offsets
	n.MarkPositionDirty()
}

// LayoutOffset returns the offset assigned by the parent's arrangement.
func (n *Node) LayoutOffset() Vector2 { return n.layoutOffset }

// SetLayoutOffset is called by arrangement strategies to place a flow child.
func (n *Node) SetLayoutOffset(offset Vector2) {
	if n.layoutOffset == offset {
		return
	}
	n.layoutOffset = offset
	n.MarkPositionDirty()
}

// DragOffset returns the user-driven offset.
func (n *Node) DragOffset() Vector2 { return n.dragOffset }

// SetDragOffset replaces the user-driven offset. Layout code never writes it.
func (n *Node) SetDragOffset(offset Vector2) {
	if n.dragOffset == offset {
		return
	}
	n.dragOffset = offset
	n.MarkPositionDirty()
}

// DragBy moves the node by delta on top of its resolved position.
func (n *Node) DragBy(delta Vector2) {
	n.SetDragOffset(n.dragOffset.Add(delta))
}

// ScrollOffset returns the offset applied to this node's children.
func (n *Node) ScrollOffset() Vector2 { return n.scrollOffset }

// SetScrollOffset replaces the scroll offset applied to the children.
// Only the children's positions are dirtied; nothing is re-measured.
func (n *Node) SetScrollOffset(offset Vector2) {
	if n.scrollOffset == offset {
		return
	}
	n.scrollOffset = offset
	for _, child := range n.visibleChildren() {
		child.MarkPositionDirty()
	}
}

// ScrollBy adds delta to the scroll offset.
func (n *Node) ScrollBy(delta Vector2) {
	n.SetScrollOffset(n.scrollOffset.Add(delta))
}

// --- Ordering and visibility ---

// ZIndex returns the draw order among siblings.
func (n *Node) ZIndex() int { return n.zIndex }

// SetZIndex changes the draw order among siblings.
func (n *Node) SetZIndex(z int) {
	if n.zIndex == z {
		return
	}
	n.zIndex = z
	if parent := n.Parent(); parent != nil {
		parent.drawOrderDirty = true
	}
}

// IsVisible reports whether the node takes part in layout, drawing and hit testing.
func (n *Node) IsVisible() bool { return n.visible }

// SetVisible shows or hides the node. Hidden nodes are excluded from the
// parent's cached child view.
func (n *Node) SetVisible(visible bool) {
	if n.visible == visible {
		return
	}
	n.visible = visible
	if parent := n.Parent(); parent != nil {
		parent.invalidateChildren()
	}
	n.MarkLayoutDirty()
}

// Strategy returns the arrangement used for flow children.
func (n *Node) Strategy() LayoutStrategy { return n.strategy }

// SetStrategy replaces the arrangement used for flow children.
func (n *Node) SetStrategy(s LayoutStrategy) {
	if s == nil {
		s = Overlap{}
	}
	n.strategy = s
	n.MarkLayoutDirty()
}
