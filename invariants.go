package overlay

import (
	"fmt"
	"math"
)

// tolerance absorbs float32 rounding when comparing derived extents.
const tolerance = 1e-3

// Violation describes a broken box-model or dirty-flag invariant.
type Violation struct {
	Node    string
	Message string
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Node, v.Message)
}

// CheckInvariants verifies the invariants that must hold after a recompute
// for n and its visible descendants.
func (n *Node) CheckInvariants() []Violation {
	var out []Violation
	n.Walk(func(node *Node, _ int) bool {
		out = append(out, node.checkSelf()...)
		return true
	})
	return out
}

func (n *Node) checkSelf() []Violation {
	var out []Violation
	report := func(format string, args ...any) {
		out = append(out, Violation{Node: n.String(), Message: fmt.Sprintf(format, args...)})
	}

	b := &n.box
	for _, axis := range []Axis{AxisX, AxisY} {
		outer := b.Outer.Size.Axis(axis)
		bounds := b.Bounds.Size.Axis(axis)
		inner := b.Inner.Size.Axis(axis)
		if !near(outer, bounds+b.Margin.Sum(axis)) {
			report("axis %v: outer %v != bounds %v + margin %v", axis, outer, bounds, b.Margin.Sum(axis))
		}
		if !near(bounds, inner+b.Chrome(axis)) {
			report("axis %v: bounds %v != inner %v + padding and border %v", axis, bounds, inner, b.Chrome(axis))
		}
		if !n.measured[axis] {
			continue
		}
		c := b.Constraints(axis)
		if v := b.Value(axis); v < c.Min-tolerance || v > c.Max+tolerance {
			report("axis %v: value %v outside [%v, %v]", axis, v, c.Min, c.Max)
		}
	}
	if n.layoutDirty && !n.positionDirty {
		report("layout-dirty without position-dirty")
	}
	return out
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tolerance
}
