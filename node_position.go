package overlay

import (
	"github.com/grindlemire/go-overlay/internal/debug"
	"github.com/grindlemire/go-overlay/internal/layout"
)

// UpdatePosition runs the position pass for the subtree rooted at n,
// resolving screen rectangles for position-dirty nodes and for every node
// whose parent's content box moved or resized.
func (n *Node) UpdatePosition(frame Frame) {
	n.updatePosition(frame, false, false)
}

func (n *Node) updatePosition(frame Frame, force, viewportChanged bool) {
	if n.positionDirty || force || !n.positioned || (viewportChanged && n.positioning == Fixed) {
		n.RecalculatePosition(frame)
		n.CleanupPositionDirtyMark()
	}

	moved := n.box.Inner != n.lastInner
	n.lastInner = n.box.Inner
	for _, child := range n.visibleChildren() {
		child.updatePosition(frame, moved, viewportChanged)
	}
}

// RecalculatePosition resolves the outer origin for the current positioning
// mode and re-derives the bounds and content origins.
func (n *Node) RecalculatePosition(frame Frame) {
	p := layout.Placement{
		Mode:         n.positioning,
		Left:         n.left,
		Top:          n.top,
		Size:         n.box.Outer.Size,
		Parent:       frame.Rect(),
		Viewport:     frame.Rect(),
		LayoutOffset: n.layoutOffset,
		DragOffset:   n.dragOffset,
		StickyEdges:  n.stickyEdges,
		Sticky:       n.sticky,
	}
	if parent := n.Parent(); parent != nil {
		p.Parent = parent.box.Inner
		p.Scroll = parent.scrollOffset
	}

	n.box.SetOrigin(layout.ResolveOrigin(p))
	n.positioned = true
	if n.tree != nil {
		n.tree.stats.positioned++
	}
	debug.Log("position", "node", n, "mode", n.positioning, "outer", n.box.Outer)
}
