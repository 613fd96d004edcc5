package overlay

// LayoutStrategy arranges the flow children of a group. The layout driver
// calls it once per group and axis, width before height:
//
//	PrepareChildren
//	RecalculateWidth, UpdateChildrenLayoutOffset(AxisX)
//	RecalculateHeight, UpdateChildrenLayoutOffset(AxisY)
//
// Each flow child has already been measured along the axis when the
// Recalculate hook runs. Strategies may resize children with
// [Node.AssignSize] and place them with [Node.SetLayoutOffset].
type LayoutStrategy interface {
	// PrepareChildren runs once per layout of the group, before either axis.
	PrepareChildren(group *Node, flow []*Node)

	// RecalculateWidth may assign widths to the flow children.
	RecalculateWidth(group *Node, flow []*Node)

	// RecalculateHeight may assign heights to the flow children.
	RecalculateHeight(group *Node, flow []*Node)

	// UpdateChildrenLayoutOffset finalizes each child's LayoutOffset along
	// axis and returns the content extent the children occupy, which sizes
	// groups that fit their content.
	UpdateChildrenLayoutOffset(group *Node, flow []*Node, axis Axis) float32
}

// Overlap is the default strategy: children keep their measured sizes and
// layout offsets and are stacked on top of each other. The content extent is
// the farthest outer edge of any child.
type Overlap struct{}

var _ LayoutStrategy = Overlap{}

func (Overlap) PrepareChildren(*Node, []*Node)   {}
func (Overlap) RecalculateWidth(*Node, []*Node)  {}
func (Overlap) RecalculateHeight(*Node, []*Node) {}

func (Overlap) UpdateChildrenLayoutOffset(_ *Node, flow []*Node, axis Axis) float32 {
	var extent float32
	for _, child := range flow {
		extent = max(extent, child.layoutOffset.Axis(axis)+child.box.Outer.Size.Axis(axis))
	}
	return extent
}

// Stack places flow children one after another along Direction, separated
// by Gap. On the cross axis every child starts at the content edge.
type Stack struct {
	Direction Axis
	Gap       float32
}

var _ LayoutStrategy = Stack{}

// Row returns a Stack laying children out left to right.
func Row(gap float32) Stack {
	return Stack{Direction: AxisX, Gap: gap}
}

// Column returns a Stack laying children out top to bottom.
func Column(gap float32) Stack {
	return Stack{Direction: AxisY, Gap: gap}
}

func (Stack) PrepareChildren(*Node, []*Node)   {}
func (Stack) RecalculateWidth(*Node, []*Node)  {}
func (Stack) RecalculateHeight(*Node, []*Node) {}

func (s Stack) UpdateChildrenLayoutOffset(_ *Node, flow []*Node, axis Axis) float32 {
	if axis != s.Direction {
		var extent float32
		for _, child := range flow {
			child.SetLayoutOffset(child.layoutOffset.WithAxis(axis, 0))
			extent = max(extent, child.box.Outer.Size.Axis(axis))
		}
		return extent
	}

	var cursor float32
	for i, child := range flow {
		if i > 0 {
			cursor += s.Gap
		}
		child.SetLayoutOffset(child.layoutOffset.WithAxis(axis, cursor))
		cursor += child.box.Outer.Size.Axis(axis)
	}
	return cursor
}
