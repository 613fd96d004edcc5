package overlay

import "testing"

var testFrame = Frame{Viewport: Vec(800, 600)}

// threeLevels builds root > middle > leaf, attached and laid out.
func threeLevels(middleOpts ...Option) (tree *Tree, root, middle, leaf *Node) {
	tree = NewTree(testFrame.Viewport)
	leaf = tree.New(WithName("leaf"), WithSize(40, 20))
	middle = tree.New(append([]Option{WithName("middle"), WithChildren(leaf)}, middleOpts...)...)
	root = tree.New(WithName("root"), WithSize(400, 300), WithChildren(middle))
	tree.Attach(root)
	tree.Update(testFrame)
	return tree, root, middle, leaf
}

func assertClean(t *testing.T, nodes ...*Node) {
	t.Helper()
	for _, n := range nodes {
		if n.LayoutIsDirty() || n.PositionIsDirty() {
			t.Fatalf("%s should be clean after Update (layout=%v position=%v)",
				n, n.LayoutIsDirty(), n.PositionIsDirty())
		}
	}
}

func TestDirty_NewNodeStartsDirty(t *testing.T) {
	n := NewTree(testFrame.Viewport).New()
	if !n.LayoutIsDirty() || !n.PositionIsDirty() {
		t.Error("new node should be layout- and position-dirty")
	}
}

func TestDirty_Propagation(t *testing.T) {
	tests := map[string]struct {
		middle        []Option
		wantRootDirty bool
	}{
		"fit width middle propagates": {
			middle:        []Option{WithFitWidth()},
			wantRootDirty: true,
		},
		"fit height middle propagates": {
			middle:        []Option{WithFitHeight()},
			wantRootDirty: true,
		},
		"fixed size middle stops": {
			middle:        []Option{WithSize(200, 100)},
			wantRootDirty: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, root, middle, leaf := threeLevels(tc.middle...)
			assertClean(t, root, middle, leaf)

			leaf.MarkLayoutDirty()

			if !leaf.LayoutIsDirty() || !leaf.PositionIsDirty() {
				t.Error("leaf should be layout- and position-dirty")
			}
			if !middle.LayoutIsDirty() {
				t.Error("middle should be layout-dirty")
			}
			if root.LayoutIsDirty() != tc.wantRootDirty {
				t.Errorf("root.LayoutIsDirty() = %v, want %v", root.LayoutIsDirty(), tc.wantRootDirty)
			}
		})
	}
}

func TestDirty_FreeNodeDoesNotPropagate(t *testing.T) {
	_, root, middle, leaf := threeLevels(WithFitWidth())
	leaf.positioning = Absolute

	leaf.MarkLayoutDirty()

	if !leaf.LayoutIsDirty() {
		t.Error("leaf should be layout-dirty")
	}
	if middle.LayoutIsDirty() || root.LayoutIsDirty() {
		t.Error("a free node should not dirty its ancestors")
	}
}

func TestDirty_MarkPositionDirtyIsLocal(t *testing.T) {
	_, root, middle, leaf := threeLevels(WithFitWidth())

	leaf.MarkPositionDirty()

	if leaf.LayoutIsDirty() {
		t.Error("MarkPositionDirty should not set layout-dirty")
	}
	if !leaf.PositionIsDirty() {
		t.Error("leaf should be position-dirty")
	}
	if middle.PositionIsDirty() || root.PositionIsDirty() {
		t.Error("MarkPositionDirty should not propagate")
	}
}

func TestDirty_ScrollOnlyDirtiesChildPositions(t *testing.T) {
	tree := NewTree(testFrame.Viewport)
	a := tree.New(WithSize(10, 10))
	b := tree.New(WithSize(10, 10), WithPositioning(Absolute))
	parent := tree.New(WithSize(100, 100), WithChildren(a, b))
	tree.Attach(parent)
	tree.Update(testFrame)

	parent.SetScrollOffset(Vec(0, -25))

	for _, child := range []*Node{a, b} {
		if child.LayoutIsDirty() {
			t.Errorf("%s: scroll must not set layout-dirty", child)
		}
		if !child.PositionIsDirty() {
			t.Errorf("%s: scroll should set position-dirty", child)
		}
	}
	if parent.LayoutIsDirty() || parent.PositionIsDirty() {
		t.Error("scroll should not dirty the scrolled node itself")
	}
}

func TestDirty_DragOnlyDirtiesPosition(t *testing.T) {
	_, root, middle, leaf := threeLevels(WithFitWidth())

	leaf.DragBy(Vec(5, 5))

	if leaf.LayoutIsDirty() || middle.LayoutIsDirty() || root.LayoutIsDirty() {
		t.Error("drag must not set layout-dirty")
	}
	if !leaf.PositionIsDirty() {
		t.Error("drag should set position-dirty")
	}
}

func TestDirty_PositioningFlip(t *testing.T) {
	tests := map[string]struct {
		from, to        Positioning
		wantLayoutDirty bool
		wantParentDirty bool
	}{
		"static to relative": {from: Static, to: Relative},
		"relative to sticky": {from: Relative, to: Sticky},
		"static to absolute": {from: Static, to: Absolute, wantLayoutDirty: true, wantParentDirty: true},
		"absolute to static": {from: Absolute, to: Static, wantLayoutDirty: true, wantParentDirty: true},
		"absolute to fixed":  {from: Absolute, to: Fixed},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree(testFrame.Viewport)
			child := tree.New(WithSize(10, 10), WithPositioning(tc.from))
			parent := tree.New(WithSize(100, 100), WithChildren(child))
			tree.Attach(parent)
			tree.Update(testFrame)
			assertClean(t, parent, child)

			child.SetPositioning(tc.to)

			if !child.PositionIsDirty() {
				t.Error("positioning change should set position-dirty")
			}
			if child.LayoutIsDirty() != tc.wantLayoutDirty {
				t.Errorf("child.LayoutIsDirty() = %v, want %v", child.LayoutIsDirty(), tc.wantLayoutDirty)
			}
			if parent.LayoutIsDirty() != tc.wantParentDirty {
				t.Errorf("parent.LayoutIsDirty() = %v, want %v", parent.LayoutIsDirty(), tc.wantParentDirty)
			}
		})
	}
}

func TestDirty_SettersOnlyMarkOnChange(t *testing.T) {
	_, root, middle, leaf := threeLevels(WithSize(200, 100))

	leaf.SetWidth(Px(40))
	leaf.SetMargin(Edges{})
	leaf.SetLeft(Anchor{})
	if leaf.LayoutIsDirty() || leaf.PositionIsDirty() {
		t.Fatal("setting an unchanged value should not dirty the node")
	}

	leaf.SetWidth(Px(50))
	if !leaf.LayoutIsDirty() || !middle.LayoutIsDirty() {
		t.Error("SetWidth should dirty the leaf and its parent")
	}
	if root.LayoutIsDirty() {
		t.Error("a fixed size parent should stop propagation")
	}
}

func TestDirty_UpdateCleansEverything(t *testing.T) {
	tree := NewTree(testFrame.Viewport)
	free := tree.New(WithPositioning(Absolute), WithSize(10, 10))
	flow := tree.New(WithSize(10, 10))
	root := tree.New(WithChildren(flow, free))
	tree.Attach(root)

	tree.Update(testFrame)

	assertClean(t, root, flow, free)
}
