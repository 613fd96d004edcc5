package overlay

// LayoutIsDirty reports whether the node must be re-measured.
func (n *Node) LayoutIsDirty() bool {
	return n.layoutDirty
}

// PositionIsDirty reports whether the node's screen position must be resolved again.
func (n *Node) PositionIsDirty() bool {
	return n.positionDirty
}

// MarkLayoutDirty marks the node for re-measurement, which always implies a
// new position. Flow nodes also notify their parent, because the parent's
// arrangement depends on their size.
func (n *Node) MarkLayoutDirty() {
	n.layoutDirty = true
	n.positionDirty = true
	if n.positioning.IsFlow() {
		n.NotifyParentChildDirty()
	}
}

// MarkPositionDirty marks only the position. The position pass always runs
// top-down from the roots, so nothing propagates.
func (n *Node) MarkPositionDirty() {
	n.positionDirty = true
}

// NotifyParentChildDirty tells the parent that one of its flow children
// changed. The parent re-arranges its children; the signal keeps travelling
// up only while the parent fits its content, since only then can its own
// size change.
func (n *Node) NotifyParentChildDirty() {
	for child := n; ; {
		parent := child.Parent()
		if parent == nil {
			return
		}
		parent.layoutDirty = true
		parent.positionDirty = true
		if !parent.fitsContent() || parent.positioning.IsFree() {
			return
		}
		child = parent
	}
}

// CleanupDirtyMark clears the layout flag after a layout pass, together with
// the flags of the flow children measured by the same pass. Free children
// are cleared when their own pass completes.
func (n *Node) CleanupDirtyMark() {
	n.layoutDirty = false
	for _, child := range n.flow {
		child.CleanupDirtyMark()
	}
}

// CleanupPositionDirtyMark clears the position flag after RecalculatePosition.
func (n *Node) CleanupPositionDirtyMark() {
	n.positionDirty = false
}

func (n *Node) fitsContent() bool {
	return n.box.FitWidth || n.box.FitHeight
}

// markLayoutDirtySelf dirties the node without notifying the parent. Used
// by the layout pass for children whose available extent changed.
func (n *Node) markLayoutDirtySelf() {
	n.layoutDirty = true
	n.positionDirty = true
}
