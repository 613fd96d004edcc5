package layout

// Edges holds a value for each side of a box. It is used for margin,
// padding and sticky offsets, and is always replaced as a whole.
type Edges struct {
	Left, Top, Right, Bottom float32
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float32) Edges {
	return Edges{Left: n, Top: n, Right: n, Bottom: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float32) Edges {
	return Edges{Left: h, Top: v, Right: h, Bottom: v}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float32) Edges {
	return Edges{Left: l, Top: t, Right: r, Bottom: b}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float32 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float32 {
	return e.Top + e.Bottom
}

// Sum returns the sum of both edges along axis.
func (e Edges) Sum(axis Axis) float32 {
	if axis == AxisY {
		return e.Vertical()
	}
	return e.Horizontal()
}

// Start returns the leading edge along axis (Left or Top).
func (e Edges) Start(axis Axis) float32 {
	if axis == AxisY {
		return e.Top
	}
	return e.Left
}

// End returns the trailing edge along axis (Right or Bottom).
func (e Edges) End(axis Axis) float32 {
	if axis == AxisY {
		return e.Bottom
	}
	return e.Right
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e.Left == 0 && e.Top == 0 && e.Right == 0 && e.Bottom == 0
}
