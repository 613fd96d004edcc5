package overlay

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func overlapping() (tree *Tree, root, a, b, c *Node) {
	tree = NewTree(testFrame.Viewport)
	a = tree.New(WithName("a"), WithSize(100, 100))
	b = tree.New(WithName("b"), WithSize(100, 100), WithZIndex(1))
	c = tree.New(WithName("c"), WithSize(100, 100))
	root = tree.New(WithName("root"), WithSize(200, 200), WithChildren(a, b, c))
	tree.Attach(root)
	tree.Update(testFrame)
	return tree, root, a, b, c
}

func TestDrawOrder_SortsByZIndexStable(t *testing.T) {
	_, root, a, b, _ := overlapping()

	if diff := cmp.Diff([]string{"a", "c", "b"}, names(root.DrawOrder())); diff != "" {
		t.Errorf("DrawOrder() mismatch (-want +got):\n%s", diff)
	}

	a.SetZIndex(5)
	if diff := cmp.Diff([]string{"c", "b", "a"}, names(root.DrawOrder())); diff != "" {
		t.Errorf("DrawOrder() after SetZIndex mismatch (-want +got):\n%s", diff)
	}

	b.SetVisible(false)
	if diff := cmp.Diff([]string{"c", "a"}, names(root.DrawOrder())); diff != "" {
		t.Errorf("DrawOrder() with b hidden mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawOrder_InvalidatedByInsert(t *testing.T) {
	tree, root, _, _, _ := overlapping()
	root.DrawOrder()

	root.InsertChild(0, tree.New(WithName("d"), WithZIndex(-1)))

	if diff := cmp.Diff([]string{"d", "a", "c", "b"}, names(root.DrawOrder())); diff != "" {
		t.Errorf("DrawOrder() mismatch (-want +got):\n%s", diff)
	}
}

func TestHitTest(t *testing.T) {
	tests := map[string]struct {
		setup func(a, b, c *Node)
		p     Vector2
		want  string
	}{
		"highest z wins": {
			p:    Vec(10, 10),
			want: "b",
		},
		"last inserted wins among equal z": {
			setup: func(a, b, c *Node) { b.SetVisible(false) },
			p:     Vec(10, 10),
			want:  "c",
		},
		"raised node wins": {
			setup: func(a, b, c *Node) { a.SetZIndex(2) },
			p:     Vec(10, 10),
			want:  "a",
		},
		"falls through to parent": {
			p:    Vec(150, 150),
			want: "root",
		},
		"outside everything": {
			p:    Vec(500, 500),
			want: "",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, root, a, b, c := overlapping()
			if tc.setup != nil {
				tc.setup(a, b, c)
			}

			got := root.HitTest(tc.p)

			var gotName string
			if got != nil {
				gotName = got.Name()
			}
			if gotName != tc.want {
				t.Errorf("HitTest(%v) = %q, want %q", tc.p, gotName, tc.want)
			}
		})
	}
}

func TestHitTest_HiddenSubtreeIgnored(t *testing.T) {
	_, root, _, _, _ := overlapping()
	root.SetVisible(false)

	if got := root.HitTest(Vec(10, 10)); got != nil {
		t.Errorf("HitTest on hidden node = %v, want nil", got)
	}
}

func TestDump(t *testing.T) {
	tree := NewTree(testFrame.Viewport)
	leaf := tree.New(WithName("leaf"), WithSize(10, 10), WithMargin(EdgeAll(2)))
	panel := tree.New(WithName("panel"), WithSize(100, 50), WithPositioning(Absolute), WithLeft(At(5)), WithChildren(leaf))
	root := tree.New(WithName("root"), WithSize(200, 200), WithChildren(panel))
	tree.Attach(root)
	tree.Update(testFrame)

	want := []NodeLayout{
		{
			Name:   "root",
			Outer:  NewRect(0, 0, 200, 200),
			Bounds: NewRect(0, 0, 200, 200),
			Inner:  NewRect(0, 0, 200, 200),
		},
		{
			Name:        "panel",
			Depth:       1,
			Positioning: Absolute,
			Outer:       NewRect(5, 0, 100, 50),
			Bounds:      NewRect(5, 0, 100, 50),
			Inner:       NewRect(5, 0, 100, 50),
		},
		{
			Name:   "leaf",
			Depth:  2,
			Outer:  NewRect(5, 0, 14, 14),
			Bounds: NewRect(7, 2, 10, 10),
			Inner:  NewRect(7, 2, 10, 10),
		},
	}
	if diff := cmp.Diff(want, root.Dump()); diff != "" {
		t.Errorf("Dump() mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckInvariants(t *testing.T) {
	tree := NewTree(testFrame.Viewport)
	root := tree.New(
		WithStrategy(Column(3)),
		WithPadding(EdgeSymmetric(4, 8)),
		WithBorder(1),
		WithChildren(
			tree.New(WithSize(40, 10), WithMargin(EdgeAll(1))),
			tree.New(WithBoxSizing(ContentBox), WithWidth(Percent(0.3)), WithHeight(Px(12)), WithPadding(EdgeAll(2))),
			tree.New(WithFitWidth(), WithFitHeight(), WithChildren(tree.New(WithSize(5, 5)))),
		),
	)
	tree.Attach(root)
	tree.Update(testFrame)

	if v := root.CheckInvariants(); len(v) != 0 {
		t.Errorf("CheckInvariants() = %v", v)
	}

	root.SetWidth(Px(300))
	root.layoutDirty = true
	root.positionDirty = false
	v := root.CheckInvariants()
	if len(v) != 1 {
		t.Fatalf("CheckInvariants() = %v, want one violation", v)
	}
	if v[0].Node != "node" {
		t.Errorf("violation node = %q, want %q", v[0].Node, "node")
	}
}
