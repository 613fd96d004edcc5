package layout

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.X() != 5 {
		t.Errorf("NewRect().X() = %v, want 5", r.X())
	}
	if r.Y() != 10 {
		t.Errorf("NewRect().Y() = %v, want 10", r.Y())
	}
	if r.Width() != 20 {
		t.Errorf("NewRect().Width() = %v, want 20", r.Width())
	}
	if r.Height() != 15 {
		t.Errorf("NewRect().Height() = %v, want 15", r.Height())
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		x, y     float32
		expected bool
	}

	r := NewRect(10, 10, 20, 10)
	tests := map[string]tc{
		"top-left corner inside": {x: 10, y: 10, expected: true},
		"center inside":          {x: 20, y: 15, expected: true},
		"right edge outside":     {x: 30, y: 15, expected: false},
		"bottom edge outside":    {x: 20, y: 20, expected: false},
		"left of rect":           {x: 9.5, y: 15, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRect_InsetOutset(t *testing.T) {
	r := NewRect(0, 0, 100, 50)
	edges := EdgeTRBL(1, 2, 3, 4)

	inset := r.Inset(edges)
	if inset != NewRect(4, 1, 94, 46) {
		t.Errorf("Inset() = %+v, want {4 1 94 46}", inset)
	}
	if back := inset.Outset(edges); back != r {
		t.Errorf("Outset(Inset()) = %+v, want %+v", back, r)
	}
}

func TestRect_Intersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	if got := a.Intersect(b); got != NewRect(5, 5, 5, 5) {
		t.Errorf("Intersect() = %+v, want {5 5 5 5}", got)
	}
	if got := a.Intersect(NewRect(20, 20, 5, 5)); !got.IsEmpty() {
		t.Errorf("Intersect() of disjoint rects = %+v, want empty", got)
	}
}

func TestEdges_Sums(t *testing.T) {
	e := EdgeTRBL(1, 2, 3, 4)

	if e.Horizontal() != 6 {
		t.Errorf("Horizontal() = %v, want 6", e.Horizontal())
	}
	if e.Vertical() != 4 {
		t.Errorf("Vertical() = %v, want 4", e.Vertical())
	}
	if e.Sum(AxisX) != e.Horizontal() || e.Sum(AxisY) != e.Vertical() {
		t.Error("Sum(axis) should match Horizontal/Vertical")
	}
	if e.Start(AxisX) != 4 || e.Start(AxisY) != 1 {
		t.Errorf("Start() = %v/%v, want 4/1", e.Start(AxisX), e.Start(AxisY))
	}
	if e.End(AxisX) != 2 || e.End(AxisY) != 3 {
		t.Errorf("End() = %v/%v, want 2/3", e.End(AxisX), e.End(AxisY))
	}
	if !(Edges{}).IsZero() || e.IsZero() {
		t.Error("IsZero() mismatch")
	}
}

func TestPositioning_Parse(t *testing.T) {
	for _, p := range []Positioning{Static, Relative, Sticky, Absolute, Fixed} {
		got, ok := ParsePositioning(p.String())
		if !ok || got != p {
			t.Errorf("ParsePositioning(%q) = %v, %v; want %v, true", p.String(), got, ok, p)
		}
	}
	if _, ok := ParsePositioning("floating"); ok {
		t.Error("ParsePositioning(\"floating\") should fail")
	}
	if !Absolute.IsFree() || !Fixed.IsFree() {
		t.Error("Absolute and Fixed should be free")
	}
	if Static.IsFree() || Relative.IsFree() || Sticky.IsFree() {
		t.Error("Static, Relative and Sticky should be flow")
	}
}
