package overlay

import (
	"cmp"
	"slices"
)

// DrawOrder returns the visible children in draw order: ascending ZIndex,
// insertion order breaking ties. The result is cached until the children,
// their visibility or their ZIndex change.
func (n *Node) DrawOrder() []*Node {
	if !n.drawOrderDirty && !n.childrenDirty {
		return n.drawOrder
	}
	n.drawOrder = append(n.drawOrder[:0], n.visibleChildren()...)
	slices.SortStableFunc(n.drawOrder, func(a, b *Node) int {
		return cmp.Compare(a.zIndex, b.zIndex)
	})
	n.drawOrderDirty = false
	return n.drawOrder
}

// HitTest returns the topmost visible node in the subtree whose bounds
// contain p, or nil. Children are tested in reverse draw order before n.
func (n *Node) HitTest(p Vector2) *Node {
	if !n.visible {
		return nil
	}
	order := n.DrawOrder()
	for i := len(order) - 1; i >= 0; i-- {
		if hit := order[i].HitTest(p); hit != nil {
			return hit
		}
	}
	if p.In(n.box.Bounds) {
		return n
	}
	return nil
}

// Walk visits n and its visible descendants in draw order. Returning false
// from fn skips the node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.DrawOrder() {
		child.walk(fn, depth+1)
	}
}
