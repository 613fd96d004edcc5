package overlay

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLayout_RootFillsViewport(t *testing.T) {
	tree := NewTree(testFrame.Viewport)
	root := tree.New()
	tree.Attach(root)

	tree.Update(testFrame)

	if diff := cmp.Diff(NewRect(0, 0, 800, 600), root.Bounds()); diff != "" {
		t.Errorf("Bounds() mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_BoxModel(t *testing.T) {
	tests := map[string]struct {
		opts      []Option
		wantOuter Rect
		wantBound Rect
		wantInner Rect
	}{
		"border box": {
			opts:      []Option{WithSize(100, 50), WithMargin(EdgeAll(5)), WithPadding(EdgeAll(4)), WithBorder(1)},
			wantOuter: NewRect(0, 0, 110, 60),
			wantBound: NewRect(5, 5, 100, 50),
			wantInner: NewRect(10, 10, 90, 40),
		},
		"content box": {
			opts:      []Option{WithSize(100, 50), WithBoxSizing(ContentBox), WithMargin(EdgeAll(5)), WithPadding(EdgeAll(4)), WithBorder(1)},
			wantOuter: NewRect(0, 0, 120, 70),
			wantBound: NewRect(5, 5, 110, 60),
			wantInner: NewRect(10, 10, 100, 50),
		},
		"border box never smaller than chrome": {
			opts:      []Option{WithSize(4, 4), WithPadding(EdgeAll(5))},
			wantOuter: NewRect(0, 0, 10, 10),
			wantBound: NewRect(0, 0, 10, 10),
			wantInner: NewRect(5, 5, 0, 0),
		},
		"percent against parent content": {
			opts:      []Option{WithWidth(Percent(0.5)), WithHeight(Dim(10, 0.25))},
			wantOuter: NewRect(0, 0, 100, 60),
			wantBound: NewRect(0, 0, 100, 60),
			wantInner: NewRect(0, 0, 100, 60),
		},
		"clamped to max": {
			opts:      []Option{WithMaxWidth(Px(50)), WithMaxHeight(Percent(0.1))},
			wantOuter: NewRect(0, 0, 50, 20),
			wantBound: NewRect(0, 0, 50, 20),
			wantInner: NewRect(0, 0, 50, 20),
		},
		"clamped to min": {
			opts:      []Option{WithSize(10, 10), WithMinWidth(Px(30)), WithMinHeight(Percent(0.5))},
			wantOuter: NewRect(0, 0, 30, 100),
			wantBound: NewRect(0, 0, 30, 100),
			wantInner: NewRect(0, 0, 30, 100),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree(testFrame.Viewport)
			child := tree.New(tc.opts...)
			root := tree.New(WithSize(200, 200), WithChildren(child))
			tree.Attach(root)

			tree.Update(testFrame)

			if diff := cmp.Diff(tc.wantOuter, child.OuterBounds()); diff != "" {
				t.Errorf("OuterBounds() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantBound, child.Bounds()); diff != "" {
				t.Errorf("Bounds() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantInner, child.InnerBounds()); diff != "" {
				t.Errorf("InnerBounds() mismatch (-want +got):\n%s", diff)
			}
			if v := child.CheckInvariants(); len(v) != 0 {
				t.Errorf("CheckInvariants() = %v", v)
			}
		})
	}
}

func TestLayout_ColumnFitsHeight(t *testing.T) {
	tree := NewTree(testFrame.Viewport)
	a := tree.New(WithName("a"), WithSize(100, 20))
	b := tree.New(WithName("b"), WithSize(50, 30), WithMargin(EdgeAll(2)))
	group := tree.New(
		WithStrategy(Column(10)),
		WithWidth(Px(200)),
		WithFitHeight(),
		WithPadding(EdgeAll(5)),
		WithChildren(a, b),
	)
	tree.Attach(group)

	tree.Update(testFrame)

	if diff := cmp.Diff(NewRect(0, 0, 200, 74), group.Bounds()); diff != "" {
		t.Errorf("group.Bounds() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewRect(5, 5, 100, 20), a.OuterBounds()); diff != "" {
		t.Errorf("a.OuterBounds() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewRect(5, 35, 54, 34), b.OuterBounds()); diff != "" {
		t.Errorf("b.OuterBounds() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewRect(7, 37, 50, 30), b.Bounds()); diff != "" {
		t.Errorf("b.Bounds() mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_RowFitsWidth(t *testing.T) {
	tree := NewTree(testFrame.Viewport)
	group := tree.New(
		WithStrategy(Row(4)),
		WithFitWidth(),
		WithFitHeight(),
		WithChildren(
			tree.New(WithSize(10, 30)),
			tree.New(WithSize(20, 10)),
			tree.New(WithSize(30, 20)),
		),
	)
	tree.Attach(group)

	tree.Update(testFrame)

	if diff := cmp.Diff(NewRect(0, 0, 68, 30), group.Bounds()); diff != "" {
		t.Errorf("group.Bounds() mismatch (-want +got):\n%s", diff)
	}
	var xs []float32
	for _, child := range group.Children() {
		xs = append(xs, child.Bounds().X())
	}
	if diff := cmp.Diff([]float32{0, 14, 38}, xs); diff != "" {
		t.Errorf("child X mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_FitGrowsWithChild(t *testing.T) {
	tree := NewTree(testFrame.Viewport)
	leaf := tree.New(WithSize(40, 20))
	middle := tree.New(WithFitWidth(), WithFitHeight(), WithBorder(1), WithChildren(leaf))
	root := tree.New(WithChildren(middle))
	tree.Attach(root)
	tree.Update(testFrame)

	if got := middle.Bounds().Size; got != Vec(42, 22) {
		t.Fatalf("middle size = %v, want 42x22", got)
	}

	leaf.SetWidth(Px(70))
	tree.Update(testFrame)

	if got := middle.Bounds().Size; got != Vec(72, 22) {
		t.Errorf("middle size after resize = %v, want 72x22", got)
	}
}

func TestLayout_FitRespectsMax(t *testing.T) {
	tree := NewTree(testFrame.Viewport)
	group := tree.New(
		WithFitWidth(),
		WithMaxWidth(Px(50)),
		WithChildren(tree.New(WithSize(120, 10))),
	)
	tree.Attach(group)

	tree.Update(testFrame)

	if got := group.Bounds().Width(); got != 50 {
		t.Errorf("width = %v, want 50", got)
	}
	if v := group.CheckInvariants(); len(v) != 0 {
		t.Errorf("CheckInvariants() = %v", v)
	}
}

func TestLayout_PercentChildOfFittingParent(t *testing.T) {
	tree := NewTree(testFrame.Viewport)
	half := tree.New(WithWidth(Percent(0.5)), WithHeight(Px(10)))
	group := tree.New(
		WithFitWidth(),
		WithChildren(tree.New(WithSize(120, 10)), half),
	)
	tree.Attach(group)

	tree.Update(testFrame)

	if got := group.Bounds().Width(); got != 120 {
		t.Errorf("group width = %v, want 120", got)
	}
	if got := half.Bounds().Width(); got != 60 {
		t.Errorf("percent child width = %v, want 60", got)
	}
}

func TestLayout_FreeChildFollowsParentResize(t *testing.T) {
	tree := NewTree(testFrame.Viewport)
	free := tree.New(
		WithPositioning(Absolute),
		WithWidth(Percent(0.5)),
		WithHeight(Px(10)),
		WithLeft(AnchorCenter()),
	)
	parent := tree.New(WithSize(200, 100), WithChildren(free))
	tree.Attach(parent)
	tree.Update(testFrame)

	if diff := cmp.Diff(NewRect(50, 0, 100, 10), free.Bounds()); diff != "" {
		t.Fatalf("Bounds() mismatch (-want +got):\n%s", diff)
	}

	parent.SetWidth(Px(400))
	tree.Update(testFrame)

	if diff := cmp.Diff(NewRect(100, 0, 200, 10), free.Bounds()); diff != "" {
		t.Errorf("Bounds() after parent resize mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_FreeChildDoesNotAffectFit(t *testing.T) {
	tree := NewTree(testFrame.Viewport)
	group := tree.New(
		WithFitWidth(),
		WithFitHeight(),
		WithChildren(
			tree.New(WithSize(30, 30)),
			tree.New(WithSize(300, 300), WithPositioning(Absolute)),
		),
	)
	tree.Attach(group)

	tree.Update(testFrame)

	if got := group.Bounds().Size; got != Vec(30, 30) {
		t.Errorf("group size = %v, want 30x30", got)
	}
}

func TestLayout_HiddenChildSkipped(t *testing.T) {
	tree := NewTree(testFrame.Viewport)
	a := tree.New(WithSize(10, 10))
	b := tree.New(WithSize(10, 10))
	c := tree.New(WithSize(10, 10))
	group := tree.New(WithStrategy(Column(0)), WithFitHeight(), WithChildren(a, b, c))
	tree.Attach(group)
	tree.Update(testFrame)

	if got := c.Bounds().Y(); got != 20 {
		t.Fatalf("c.Y = %v, want 20", got)
	}

	b.SetVisible(false)
	tree.Update(testFrame)

	if got := c.Bounds().Y(); got != 10 {
		t.Errorf("c.Y with b hidden = %v, want 10", got)
	}
	if got := group.Bounds().Height(); got != 20 {
		t.Errorf("group height = %v, want 20", got)
	}
}

func TestLayout_NegativeSizeClampsToZero(t *testing.T) {
	tree := NewTree(testFrame.Viewport)
	n := tree.New(WithWidth(Px(-50)), WithHeight(Dim(-10, 0)))
	tree.Attach(n)

	tree.Update(testFrame)

	if got := n.Bounds().Size; got != Vec(0, 0) {
		t.Errorf("size = %v, want 0x0", got)
	}
}

type fillStrategy struct{ Overlap }

// RecalculateWidth stretches every flow child to the group's content width.
func (fillStrategy) RecalculateWidth(group *Node, flow []*Node) {
	for _, child := range flow {
		child.AssignSize(AxisX, group.InnerBounds().Width())
	}
}

func TestLayout_StrategyAssignsSize(t *testing.T) {
	tree := NewTree(testFrame.Viewport)
	child := tree.New(WithSize(10, 10), WithMaxWidth(Px(150)))
	group := tree.New(WithSize(200, 50), WithStrategy(fillStrategy{}), WithChildren(child))
	tree.Attach(group)

	tree.Update(testFrame)

	if got := child.Bounds().Width(); got != 150 {
		t.Errorf("assigned width = %v, want 150 (clamped to max)", got)
	}
}
