package overlay

import (
	"slices"

	"github.com/grindlemire/go-overlay/internal/debug"
)

// NodeID is a handle to a node owned by a Tree. The zero value refers to no node.
// Handles carry a generation, so a handle to a released node never resolves
// to a node that later reuses the same slot.
type NodeID struct {
	index      uint32
	generation uint32
}

// IsZero reports whether the handle refers to no node.
func (id NodeID) IsZero() bool {
	return id.index == 0
}

// Frame carries the per-recompute inputs from the environment.
// Viewport is the screen extent with the UI scale already applied.
type Frame struct {
	Viewport Vector2
}

// Rect returns the viewport rectangle anchored at the origin.
func (f Frame) Rect() Rect {
	return Rect{Size: f.Viewport}
}

type slot struct {
	node       *Node
	generation uint32
}

// passStats counts the work done by one recompute.
type passStats struct {
	measured   int
	positioned int
}

// Tree owns every node in an arena and the list of attached roots.
type Tree struct {
	slots []slot // index 0 is reserved for the zero NodeID
	free  []uint32
	roots []NodeID

	frame        Frame
	lastViewport Vector2
	updated      bool

	stats passStats
}

// NewTree creates an empty tree whose frame uses the given viewport until
// the first Update.
func NewTree(viewport Vector2) *Tree {
	return &Tree{
		slots: make([]slot, 1, 64),
		frame: Frame{Viewport: viewport},
	}
}

// New allocates a detached node in the tree.
// The node starts layout-dirty and position-dirty with border box sizing.
func (t *Tree) New(opts ...Option) *Node {
	n := newNode(t)

	var index uint32
	if len(t.free) > 0 {
		index = t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
	} else {
		t.slots = append(t.slots, slot{})
		index = uint32(len(t.slots) - 1)
	}
	t.slots[index].node = n
	n.id = NodeID{index: index, generation: t.slots[index].generation}

	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Get resolves a handle. It returns nil for the zero handle and for
// handles of released nodes.
func (t *Tree) Get(id NodeID) *Node {
	if id.IsZero() || int(id.index) >= len(t.slots) {
		return nil
	}
	s := t.slots[id.index]
	if s.generation != id.generation {
		return nil
	}
	return s.node
}

// Len returns the number of live nodes in the arena.
func (t *Tree) Len() int {
	return len(t.slots) - 1 - len(t.free)
}

// Release detaches n and frees it and its whole subtree from the arena.
// Handles to released nodes resolve to nil afterwards.
func (t *Tree) Release(n *Node) {
	if n == nil || n.tree != t || t.Get(n.id) != n {
		return
	}
	t.Detach(n)
	t.release(n)
}

func (t *Tree) release(n *Node) {
	for _, id := range n.children {
		if child := t.Get(id); child != nil {
			t.release(child)
		}
	}
	n.children = nil
	n.invalidateChildren()

	s := &t.slots[n.id.index]
	s.node = nil
	s.generation++
	t.free = append(t.free, n.id.index)
	n.released = true
}

// Attach makes n a root of the active tree and marks its subtree attached.
// A node owned by a group is removed from that group first.
func (t *Tree) Attach(n *Node) {
	if n == nil || n.tree != t || n.released {
		return
	}
	if parent := n.Parent(); parent != nil {
		parent.RemoveChild(n)
	}
	if !slices.Contains(t.roots, n.id) {
		t.roots = append(t.roots, n.id)
	}
	n.setAttachedRecursive(true)
	n.MarkLayoutDirty()
}

// Detach removes n from the active tree. A subtree root owned by a group is
// removed from that group, clearing its parent reference.
func (t *Tree) Detach(n *Node) {
	if n == nil || n.tree != t {
		return
	}
	if parent := n.Parent(); parent != nil {
		parent.RemoveChild(n)
		return
	}
	if i := slices.Index(t.roots, n.id); i >= 0 {
		t.roots = slices.Delete(t.roots, i, i+1)
	}
	n.setAttachedRecursive(false)
}

// Roots returns the attached root nodes in attach order.
func (t *Tree) Roots() []*Node {
	roots := make([]*Node, 0, len(t.roots))
	for _, id := range t.roots {
		if n := t.Get(id); n != nil {
			roots = append(roots, n)
		}
	}
	return roots
}

// Frame returns the frame of the current or most recent recompute.
func (t *Tree) Frame() Frame {
	return t.frame
}

// Update runs one recompute: the layout pass and then the position pass on
// every attached root.
func (t *Tree) Update(frame Frame) {
	viewportChanged := !t.updated || frame.Viewport != t.lastViewport
	t.frame = frame
	t.lastViewport = frame.Viewport
	t.updated = true
	t.stats = passStats{}

	roots := t.Roots()
	for _, root := range roots {
		root.UpdateLayout(frame)
	}
	for _, root := range roots {
		root.updatePosition(frame, viewportChanged, viewportChanged)
	}

	debug.Log("update",
		"roots", len(roots),
		"measured", t.stats.measured,
		"positioned", t.stats.positioned,
		"viewport", frame.Viewport,
	)
}

// HitTest returns the topmost visible node under p across all roots,
// later roots drawing above earlier ones.
func (t *Tree) HitTest(p Vector2) *Node {
	roots := t.Roots()
	for i := len(roots) - 1; i >= 0; i-- {
		if hit := roots[i].HitTest(p); hit != nil {
			return hit
		}
	}
	return nil
}
