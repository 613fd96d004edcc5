package layout

// Rect is a rectangle described by its top-left position and its size.
// Fields are mutated in place by the box model because derived rectangles
// are kept in sync one axis at a time.
type Rect struct {
	Position Vector2
	Size     Vector2
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return Rect{Position: Vector2{X: x, Y: y}, Size: Vector2{X: width, Y: height}}
}

// X returns the x-coordinate of the left edge.
func (r Rect) X() float32 { return r.Position.X }

// Y returns the y-coordinate of the top edge.
func (r Rect) Y() float32 { return r.Position.Y }

// Width returns the horizontal extent.
func (r Rect) Width() float32 { return r.Size.X }

// Height returns the vertical extent.
func (r Rect) Height() float32 { return r.Size.Y }

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float32 {
	return r.Position.X + r.Size.X
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float32 {
	return r.Position.Y + r.Size.Y
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.Position.X && x < r.Right() && y >= r.Position.Y && y < r.Bottom()
}

// Inset returns a new Rect inset by the given Edges.
// Positive values shrink the rectangle; negative values expand it.
func (r Rect) Inset(edges Edges) Rect {
	return NewRect(
		r.Position.X+edges.Left,
		r.Position.Y+edges.Top,
		r.Size.X-edges.Horizontal(),
		r.Size.Y-edges.Vertical(),
	)
}

// Outset returns a new Rect expanded outward by the given Edges.
func (r Rect) Outset(edges Edges) Rect {
	return NewRect(
		r.Position.X-edges.Left,
		r.Position.Y-edges.Top,
		r.Size.X+edges.Horizontal(),
		r.Size.Y+edges.Vertical(),
	)
}

// Translate returns a new Rect moved by offset.
func (r Rect) Translate(offset Vector2) Rect {
	return Rect{Position: r.Position.Add(offset), Size: r.Size}
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.Position.X, other.Position.X)
	y := max(r.Position.Y, other.Position.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	if right-x <= 0 || bottom-y <= 0 {
		return Rect{}
	}
	return NewRect(x, y, right-x, bottom-y)
}
