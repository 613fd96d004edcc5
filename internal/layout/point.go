package layout

// Vector2 is a 2D vector used for positions, sizes and offsets.
type Vector2 struct {
	X, Y float32
}

// Vec returns a Vector2 with the given components.
func Vec(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns a new Vector2 offset by other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns a new Vector2 with other subtracted.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Axis returns the component along axis.
func (v Vector2) Axis(axis Axis) float32 {
	if axis == AxisY {
		return v.Y
	}
	return v.X
}

// WithAxis returns a copy of v with the component along axis replaced.
func (v Vector2) WithAxis(axis Axis, value float32) Vector2 {
	if axis == AxisY {
		v.Y = value
	} else {
		v.X = value
	}
	return v
}

// In returns true if the point is inside the given rectangle.
func (v Vector2) In(r Rect) bool {
	return r.Contains(v.X, v.Y)
}

// Axis selects the horizontal or vertical component of a vector.
type Axis uint8

const (
	AxisX Axis = iota // Horizontal (width, left/right)
	AxisY             // Vertical (height, top/bottom)
)

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == AxisY {
		return AxisX
	}
	return AxisY
}

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}
