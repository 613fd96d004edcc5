package overlay

import "github.com/grindlemire/go-overlay/internal/layout"

// Node is a box in the overlay tree. It owns its box model and positioning
// state; its parent and children are handles into the owning Tree.
type Node struct {
	tree     *Tree
	id       NodeID
	name     string
	released bool

	// Tree structure (handles resolved through tree)
	parent   NodeID
	children []NodeID
	attached bool
	visible  bool

	// Box model
	box layout.Box

	// Positioning
	positioning  Positioning
	left, top    Anchor
	stickyEdges  StickyEdges
	sticky       Edges
	layoutOffset Vector2
	dragOffset   Vector2
	scrollOffset Vector2
	zIndex       int

	strategy LayoutStrategy

	// Dirty flags
	layoutDirty   bool
	positionDirty bool

	// Child classification, rebuilt by PrepareChildren when childrenDirty
	childrenDirty bool
	shown         []*Node
	flow          []*Node
	free          []*Node

	drawOrderDirty bool
	drawOrder      []*Node

	// Measurement cache
	measured      [2]bool
	lastAvailable [2]float32
	lastInner     Rect
	positioned    bool
}

func newNode(t *Tree) *Node {
	return &Node{
		tree:           t,
		visible:        true,
		box:            layout.NewBox(),
		strategy:       Overlap{},
		layoutDirty:    true,
		positionDirty:  true,
		childrenDirty:  true,
		drawOrderDirty: true,
	}
}

// ID returns the node's handle in its tree.
func (n *Node) ID() NodeID {
	return n.id
}

// Tree returns the tree that owns this node.
func (n *Node) Tree() *Tree {
	return n.tree
}

// Name returns the debug name of the node.
func (n *Node) Name() string {
	return n.name
}

// SetName sets the debug name of the node.
func (n *Node) SetName(name string) {
	n.name = name
}

// IsAttached reports whether the node is part of an attached subtree.
func (n *Node) IsAttached() bool {
	return n.attached
}

// IsReleased reports whether the node has been freed from its tree.
func (n *Node) IsReleased() bool {
	return n.released
}

func (n *Node) String() string {
	if n.name != "" {
		return n.name
	}
	return "node"
}

func (n *Node) setAttachedRecursive(attached bool) {
	n.attached = attached
	for _, id := range n.children {
		if child := n.tree.Get(id); child != nil {
			child.setAttachedRecursive(attached)
		}
	}
}
