package overlay

import "github.com/grindlemire/go-overlay/internal/debug"

// UpdateLayout runs the layout pass for the subtree rooted at n.
// Only layout-dirty nodes, and nodes whose available extent changed, are
// re-measured; the width axis is fully resolved before the height axis.
func (n *Node) UpdateLayout(frame Frame) {
	n.tree.frame = frame
	available := n.availableExtent(frame)
	n.layoutAxis(frame, AxisX, available.X)
	n.layoutAxis(frame, AxisY, available.Y)
	n.CleanupDirtyMark()
	n.cleanupFree()
}

// availableExtent returns the extent percentages resolve against: the
// parent's content box, or the viewport for roots and fixed nodes.
func (n *Node) availableExtent(frame Frame) Vector2 {
	if n.positioning == Fixed {
		return frame.Viewport
	}
	if parent := n.Parent(); parent != nil {
		return parent.box.Inner.Size
	}
	return frame.Viewport
}

// layoutAxis measures n along axis if needed, then lays out its children.
func (n *Node) layoutAxis(frame Frame, axis Axis, available float32) {
	remeasure := n.layoutDirty || !n.measured[axis] || n.lastAvailable[axis] != available
	if remeasure {
		n.measure(axis, available)
	}
	if axis == AxisX && (remeasure || n.childrenDirty) {
		n.PrepareChildren()
	}
	if len(n.children) == 0 {
		return
	}
	n.arrange(frame, axis, remeasure)
}

// measure resolves the constraints and the pre-arrangement size of axis.
func (n *Node) measure(axis Axis, available float32) {
	n.measured[axis] = true
	n.lastAvailable[axis] = available
	n.box.CalculateConstraints(axis, available)
	if n.box.Fit(axis) {
		n.box.FitPlaceholder(axis)
	} else {
		n.box.CalculateBounds(axis, available)
	}
	n.tree.stats.measured++
	debug.Log("measure", "node", n, "axis", axis, "available", available, "value", n.box.Value(axis))
}

// arrange lays out the children of n along axis: flow children first, then
// the arrangement strategy, then content fitting, then free children.
func (n *Node) arrange(frame Frame, axis Axis, remeasured bool) {
	before := n.box.Inner.Size.Axis(axis)

	changed := n.recalculateChildren(frame, axis)
	if remeasured || changed {
		n.resizeChildren(frame, axis)
	}

	if n.box.Inner.Size.Axis(axis) != before {
		n.invalidateFreeChildren(axis)
	}
	for _, child := range n.free {
		child.layoutAxis(frame, axis, child.availableExtent(frame).Axis(axis))
	}
}

// recalculateChildren lays out every flow child along axis against the
// current content box. It reports whether any child was dirty or changed
// its outer size.
func (n *Node) recalculateChildren(frame Frame, axis Axis) bool {
	inner := n.box.Inner.Size.Axis(axis)
	changed := false
	for _, child := range n.flow {
		size := child.box.Outer.Size.Axis(axis)
		dirty := child.layoutDirty
		child.layoutAxis(frame, axis, inner)
		if dirty || child.box.Outer.Size.Axis(axis) != size {
			changed = true
		}
	}
	return changed
}

// resizeChildren runs the arrangement strategy for axis and, when n fits
// its content, sizes the content box from the arranged children.
func (n *Node) resizeChildren(frame Frame, axis Axis) {
	content := n.arrangeFlow(axis)
	if !n.box.Fit(axis) {
		return
	}

	before := n.box.Inner.Size.Axis(axis)
	n.box.FitContent(axis, content)
	if n.box.Inner.Size.Axis(axis) == before {
		return
	}

	// Percentage-sized flow children resolve against the final content box.
	relative := false
	for _, child := range n.flow {
		if child.dependsOnParent(axis) {
			relative = true
			break
		}
	}
	if relative {
		n.recalculateChildren(frame, axis)
		n.arrangeFlow(axis)
	}
}

func (n *Node) arrangeFlow(axis Axis) float32 {
	if axis == AxisX {
		n.strategy.RecalculateWidth(n, n.flow)
	} else {
		n.strategy.RecalculateHeight(n, n.flow)
	}
	return n.strategy.UpdateChildrenLayoutOffset(n, n.flow, axis)
}

// invalidateFreeChildren re-dirties free children that depend on a
// percentage of the content box after it changed size.
func (n *Node) invalidateFreeChildren(axis Axis) {
	for _, child := range n.free {
		if child.positioning == Fixed {
			continue
		}
		if child.dependsOnParent(axis) {
			child.markLayoutDirtySelf()
		}
		if child.anchoredToParent(axis) {
			child.MarkPositionDirty()
		}
	}
}

// dependsOnParent reports whether the size along axis is a percentage of the parent.
func (n *Node) dependsOnParent(axis Axis) bool {
	if axis == AxisY {
		return n.box.Height.IsRelative() || n.box.MinHeight.IsRelative() || n.box.MaxHeight.IsRelative()
	}
	return n.box.Width.IsRelative() || n.box.MinWidth.IsRelative() || n.box.MaxWidth.IsRelative()
}

// anchoredToParent reports whether the anchor along axis is a percentage of the parent.
func (n *Node) anchoredToParent(axis Axis) bool {
	if axis == AxisY {
		return n.top.IsRelative()
	}
	return n.left.IsRelative()
}

// cleanupFree clears the layout flags of free descendants once the pass is done.
func (n *Node) cleanupFree() {
	for _, child := range n.free {
		child.CleanupDirtyMark()
		child.cleanupFree()
	}
	for _, child := range n.flow {
		child.cleanupFree()
	}
}

// --- Hooks called by the layout driver, in this order per group ---

// PrepareChildren rebuilds the free/flow partition of the visible children
// and lets the strategy prepare the flow children.
func (n *Node) PrepareChildren() {
	n.classifyChildren()
	n.strategy.PrepareChildren(n, n.flow)
}

// RecalculateChildrenWidth lays out the flow children along the width axis.
func (n *Node) RecalculateChildrenWidth() {
	n.recalculateChildren(n.tree.frame, AxisX)
}

// ResizeChildrenWidth runs the arrangement for the width axis and fits the content width.
func (n *Node) ResizeChildrenWidth() {
	n.resizeChildren(n.tree.frame, AxisX)
}

// RecalculateChildrenHeight lays out the flow children along the height axis.
func (n *Node) RecalculateChildrenHeight() {
	n.recalculateChildren(n.tree.frame, AxisY)
}

// ResizeChildrenHeight runs the arrangement for the height axis and fits the content height.
func (n *Node) ResizeChildrenHeight() {
	n.resizeChildren(n.tree.frame, AxisY)
}

// AssignSize lets a strategy set the size of axis in the box-sizing
// rectangle, clamped to the node's constraints. When the content box changes,
// the node's own children are laid out again along axis.
func (n *Node) AssignSize(axis Axis, v float32) {
	before := n.box.Inner.Size.Axis(axis)
	n.box.ApplySize(axis, v)
	if n.box.Inner.Size.Axis(axis) == before {
		return
	}
	n.MarkPositionDirty()
	if len(n.children) > 0 {
		n.arrange(n.tree.frame, axis, true)
	}
}
