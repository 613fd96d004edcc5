package overlay

import "slices"

// --- Node's own API ---

// AddChild appends children to this node. A child owned by another group is
// removed from it first. Children from another tree, the node itself and its
// ancestors are ignored.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		n.InsertChild(len(n.children), child)
	}
}

// InsertChild inserts child before the child currently at index. An index
// outside [0, len(children)] is ignored without side effects. Moving a child
// within the same node places it before that same sibling.
func (n *Node) InsertChild(index int, child *Node) {
	if index < 0 || index > len(n.children) || !n.canAdopt(child) {
		return
	}

	if old := child.Parent(); old != nil {
		if old == n {
			if at := slices.Index(n.children, child.id); at < index {
				index--
			}
		}
		old.RemoveChild(child)
	} else if child.attached {
		n.tree.Detach(child)
	}

	child.parent = n.id
	child.setAttachedRecursive(n.attached)
	n.children = slices.Insert(n.children, index, child.id)
	n.invalidateChildren()

	child.markLayoutDirtySelf()
	n.MarkLayoutDirty()
}

func (n *Node) canAdopt(child *Node) bool {
	if child == nil || child.tree != n.tree || child.released || n.released {
		return false
	}
	for p := n; p != nil; p = p.Parent() {
		if p == child {
			return false
		}
	}
	return true
}

// RemoveChild removes a child from this node, clearing its parent reference
// and detaching its subtree. Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	if child == nil {
		return false
	}
	i := slices.Index(n.children, child.id)
	if i < 0 {
		return false
	}
	n.removeAt(i, child)
	return true
}

// RemoveChildAt removes the child at index. An out-of-range index is ignored.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	child := n.tree.Get(n.children[index])
	n.removeAt(index, child)
	return child
}

func (n *Node) removeAt(i int, child *Node) {
	n.children = slices.Delete(n.children, i, i+1)
	if child != nil {
		child.parent = NodeID{}
		child.setAttachedRecursive(false)
	}
	n.invalidateChildren()
	n.MarkLayoutDirty()
}

// RemoveAllChildren removes all children from this node.
func (n *Node) RemoveAllChildren() {
	if len(n.children) == 0 {
		return
	}
	for _, id := range n.children {
		if child := n.tree.Get(id); child != nil {
			child.parent = NodeID{}
			child.setAttachedRecursive(false)
		}
	}
	n.children = nil
	n.invalidateChildren()
	n.MarkLayoutDirty()
}

// Children returns the child nodes in insertion order, hidden ones included.
func (n *Node) Children() []*Node {
	result := make([]*Node, 0, len(n.children))
	for _, id := range n.children {
		if child := n.tree.Get(id); child != nil {
			result = append(result, child)
		}
	}
	return result
}

// ChildCount returns the number of children, hidden ones included.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Parent returns the parent node, or nil if this is a root or detached.
func (n *Node) Parent() *Node {
	if n.parent.IsZero() || n.tree == nil {
		return nil
	}
	return n.tree.Get(n.parent)
}

// invalidateChildren drops the cached child views.
func (n *Node) invalidateChildren() {
	n.childrenDirty = true
	n.drawOrderDirty = true
}

// visibleChildren returns the cached view of visible children in insertion order.
func (n *Node) visibleChildren() []*Node {
	if n.childrenDirty {
		n.classifyChildren()
	}
	return n.shown
}

// classifyChildren rebuilds the visible view and its flow/free partition.
func (n *Node) classifyChildren() {
	n.shown = n.shown[:0]
	n.flow = n.flow[:0]
	n.free = n.free[:0]
	for _, id := range n.children {
		child := n.tree.Get(id)
		if child == nil || !child.visible {
			continue
		}
		n.shown = append(n.shown, child)
		if child.positioning.IsFree() {
			n.free = append(n.free, child)
		} else {
			n.flow = append(n.flow, child)
		}
	}
	n.childrenDirty = false
}

// FlowChildren returns the visible children taking part in arrangement.
func (n *Node) FlowChildren() []*Node {
	n.visibleChildren()
	return n.flow
}

// FreeChildren returns the visible out-of-flow children.
func (n *Node) FreeChildren() []*Node {
	n.visibleChildren()
	return n.free
}
