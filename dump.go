package overlay

// NodeLayout is a snapshot of one node's resolved geometry.
type NodeLayout struct {
	Name        string
	Depth       int
	Positioning Positioning
	Outer       Rect
	Bounds      Rect
	Inner       Rect
}

// Dump returns the resolved geometry of n and its visible descendants in draw order.
func (n *Node) Dump() []NodeLayout {
	var out []NodeLayout
	n.Walk(func(node *Node, depth int) bool {
		out = append(out, NodeLayout{
			Name:        node.String(),
			Depth:       depth,
			Positioning: node.positioning,
			Outer:       node.box.Outer,
			Bounds:      node.box.Bounds,
			Inner:       node.box.Inner,
		})
		return true
	})
	return out
}
