package layout

// Constraints are the resolved min/max bounds of one axis.
// Min and Max are expressed in the rectangle selected by the box-sizing mode
// (Bounds for BorderBox, Inner for ContentBox). The Inner and Outer variants
// are the same bounds translated to the content box and the margin-inclusive box.
type Constraints struct {
	Min, Max           float32
	MinInner, MaxInner float32
	MinOuter, MaxOuter float32
}

// Box is the box model of a single node: three nested rectangles kept
// consistent through the margin, padding and border deltas.
//
//	Outer  = Bounds + Margin
//	Bounds = Inner + Padding + 2*Border
type Box struct {
	// Outer includes the margin.
	Outer Rect
	// Bounds excludes the margin and includes border and padding.
	Bounds Rect
	// Inner is the content box.
	Inner Rect

	Sizing BoxSizing

	Width, Height        Dimension
	MinWidth, MaxWidth   Dimension
	MinHeight, MaxHeight Dimension

	// FitWidth and FitHeight make the content box follow the children
	// instead of the declared Width/Height.
	FitWidth, FitHeight bool

	Margin  Edges
	Padding Edges
	Border  float32

	constraints [2]Constraints
	value       [2]float32
}

// NewBox returns a Box filling its available space with no maximum.
func NewBox() Box {
	return Box{
		Width:     Fill(),
		Height:    Fill(),
		MaxWidth:  NoLimit(),
		MaxHeight: NoLimit(),
	}
}

// Chrome returns padding plus both borders along axis.
func (b *Box) Chrome(axis Axis) float32 {
	return b.Padding.Sum(axis) + 2*b.Border
}

// Fit reports whether the content box along axis is driven by children.
func (b *Box) Fit(axis Axis) bool {
	if axis == AxisY {
		return b.FitHeight
	}
	return b.FitWidth
}

func (b *Box) dimensions(axis Axis) (size, lo, hi Dimension) {
	if axis == AxisY {
		return b.Height, b.MinHeight, b.MaxHeight
	}
	return b.Width, b.MinWidth, b.MaxWidth
}

// CalculateConstraints resolves the min/max bounds of axis against the available extent.
func (b *Box) CalculateConstraints(axis Axis, available float32) {
	_, loDim, hiDim := b.dimensions(axis)
	lo := loDim.CalculateSize(available)
	hi := hiDim.CalculateSize(available)
	chrome := b.Chrome(axis)
	margin := b.Margin.Sum(axis)

	var c Constraints
	switch b.Sizing {
	case ContentBox:
		c.Min = max(lo, 0)
		c.Max = max(hi, c.Min)
		c.MinInner = c.Min
		c.MaxInner = c.Max
		c.MinOuter = c.Min + chrome + margin
		c.MaxOuter = c.Max + chrome + margin
	default:
		// A border box never measures smaller than its own chrome.
		c.Min = max(lo, chrome)
		c.Max = max(hi, c.Min)
		c.MinInner = c.Min - chrome
		c.MaxInner = c.Max - chrome
		c.MinOuter = c.Min + margin
		c.MaxOuter = c.Max + margin
	}
	b.constraints[axis] = c
}

// CalculateWidthConstraints resolves the horizontal min/max bounds.
func (b *Box) CalculateWidthConstraints(availableWidth float32) {
	b.CalculateConstraints(AxisX, availableWidth)
}

// CalculateHeightConstraints resolves the vertical min/max bounds.
func (b *Box) CalculateHeightConstraints(availableHeight float32) {
	b.CalculateConstraints(AxisY, availableHeight)
}

// Constraints returns the last resolved bounds of axis.
func (b *Box) Constraints(axis Axis) Constraints {
	return b.constraints[axis]
}

// CalculateBounds resolves the declared size of axis, clamps it to the
// constraints and assigns it to the rectangle selected by the box-sizing mode.
// CalculateConstraints must have run for the same available extent.
func (b *Box) CalculateBounds(axis Axis, available float32) {
	size, _, _ := b.dimensions(axis)
	b.ApplySize(axis, size.CalculateSize(available))
}

// CalculateBoundsWidth resolves the declared width against availableWidth.
func (b *Box) CalculateBoundsWidth(availableWidth float32) {
	b.CalculateBounds(AxisX, availableWidth)
}

// CalculateBoundsHeight resolves the declared height against availableHeight.
func (b *Box) CalculateBoundsHeight(availableHeight float32) {
	b.CalculateBounds(AxisY, availableHeight)
}

// ApplySize clamps v to the constraints of axis and assigns it to the
// rectangle selected by the box-sizing mode.
func (b *Box) ApplySize(axis Axis, v float32) {
	c := b.constraints[axis]
	v = clamp(v, c.Min, c.Max)
	if b.Sizing == ContentBox {
		b.SetInnerSize(axis, v)
	} else {
		b.SetBoundsSize(axis, v)
	}
}

// FitPlaceholder sets the content box of a fitting axis to its smallest
// allowed extent until the children have been measured.
func (b *Box) FitPlaceholder(axis Axis) {
	c := b.constraints[axis]
	b.SetInnerSize(axis, clamp(0, c.MinInner, c.MaxInner))
}

// FitContent sets the content box of axis to the measured content extent,
// clamped to [max(0, MinInner), MaxInner].
func (b *Box) FitContent(axis Axis, content float32) {
	c := b.constraints[axis]
	b.SetInnerSize(axis, clamp(content, max(0, c.MinInner), c.MaxInner))
}

// SetOuterSize assigns the margin-inclusive extent of axis and re-derives the others.
func (b *Box) SetOuterSize(axis Axis, v float32) {
	b.Bounds.Size = b.Bounds.Size.WithAxis(axis, v-b.Margin.Sum(axis))
	b.deriveFromBounds(axis)
	b.deriveFromBounds(axis.Other())
}

// SetBoundsSize assigns the margin-box extent of axis and re-derives the others.
func (b *Box) SetBoundsSize(axis Axis, v float32) {
	b.Bounds.Size = b.Bounds.Size.WithAxis(axis, v)
	b.deriveFromBounds(axis)
	b.deriveFromBounds(axis.Other())
}

// SetInnerSize assigns the content extent of axis and re-derives the others.
func (b *Box) SetInnerSize(axis Axis, v float32) {
	b.Bounds.Size = b.Bounds.Size.WithAxis(axis, v+b.Chrome(axis))
	b.deriveFromBounds(axis)
	b.deriveFromBounds(axis.Other())
}

// deriveFromBounds recomputes the outer and inner extents of axis from Bounds.
func (b *Box) deriveFromBounds(axis Axis) {
	bounds := b.Bounds.Size.Axis(axis)
	b.Outer.Size = b.Outer.Size.WithAxis(axis, bounds+b.Margin.Sum(axis))
	b.Inner.Size = b.Inner.Size.WithAxis(axis, bounds-b.Chrome(axis))
	b.syncValue(axis)
}

// SetMargin replaces the margin and re-derives the nested rectangles.
func (b *Box) SetMargin(e Edges) {
	b.Margin = e
	b.Resync()
}

// SetPadding replaces the padding and re-derives the nested rectangles.
func (b *Box) SetPadding(e Edges) {
	b.Padding = e
	b.Resync()
}

// SetBorder replaces the border thickness and re-derives the nested rectangles.
func (b *Box) SetBorder(thickness float32) {
	b.Border = thickness
	b.Resync()
}

// SetOuterBoundsWidth assigns the outer width.
func (b *Box) SetOuterBoundsWidth(v float32) { b.SetOuterSize(AxisX, v) }

// SetOuterBoundsHeight assigns the outer height.
func (b *Box) SetOuterBoundsHeight(v float32) { b.SetOuterSize(AxisY, v) }

// SetBoundsWidth assigns the margin-box width.
func (b *Box) SetBoundsWidth(v float32) { b.SetBoundsSize(AxisX, v) }

// SetBoundsHeight assigns the margin-box height.
func (b *Box) SetBoundsHeight(v float32) { b.SetBoundsSize(AxisY, v) }

// SetInnerBoundsWidth assigns the content width.
func (b *Box) SetInnerBoundsWidth(v float32) { b.SetInnerSize(AxisX, v) }

// SetInnerBoundsHeight assigns the content height.
func (b *Box) SetInnerBoundsHeight(v float32) { b.SetInnerSize(AxisY, v) }

func (b *Box) syncValue(axis Axis) {
	if b.Sizing == ContentBox {
		b.value[axis] = b.Inner.Size.Axis(axis)
	} else {
		b.value[axis] = b.Bounds.Size.Axis(axis)
	}
}

// Resync re-derives Outer and Inner sizes from Bounds on both axes.
// Used after margin, padding or border change without a re-measure.
func (b *Box) Resync() {
	b.deriveFromBounds(AxisX)
	b.deriveFromBounds(AxisY)
}

// SetOrigin places the outer rectangle and derives the nested origins.
func (b *Box) SetOrigin(origin Vector2) {
	b.Outer.Position = origin
	b.Bounds.Position = origin.Add(Vector2{X: b.Margin.Left, Y: b.Margin.Top})
	b.Inner.Position = b.Bounds.Position.Add(Vector2{
		X: b.Border + b.Padding.Left,
		Y: b.Border + b.Padding.Top,
	})
}

// Value returns the measured size of axis in the box-sizing rectangle.
func (b *Box) Value(axis Axis) float32 { return b.value[axis] }

// WidthValue returns the measured width in the box-sizing rectangle.
func (b *Box) WidthValue() float32 { return b.value[AxisX] }

// HeightValue returns the measured height in the box-sizing rectangle.
func (b *Box) HeightValue() float32 { return b.value[AxisY] }

// MinWidthValue returns the resolved minimum width.
func (b *Box) MinWidthValue() float32 { return b.constraints[AxisX].Min }

// MaxWidthValue returns the resolved maximum width.
func (b *Box) MaxWidthValue() float32 { return b.constraints[AxisX].Max }

// MinHeightValue returns the resolved minimum height.
func (b *Box) MinHeightValue() float32 { return b.constraints[AxisY].Min }

// MaxHeightValue returns the resolved maximum height.
func (b *Box) MaxHeightValue() float32 { return b.constraints[AxisY].Max }

// MinInnerWidth returns the resolved minimum content width.
func (b *Box) MinInnerWidth() float32 { return b.constraints[AxisX].MinInner }

// MaxInnerWidth returns the resolved maximum content width.
func (b *Box) MaxInnerWidth() float32 { return b.constraints[AxisX].MaxInner }

// MinInnerHeight returns the resolved minimum content height.
func (b *Box) MinInnerHeight() float32 { return b.constraints[AxisY].MinInner }

// MaxInnerHeight returns the resolved maximum content height.
func (b *Box) MaxInnerHeight() float32 { return b.constraints[AxisY].MaxInner }

// MinOuterWidth returns the resolved minimum width including margin.
func (b *Box) MinOuterWidth() float32 { return b.constraints[AxisX].MinOuter }

// MaxOuterWidth returns the resolved maximum width including margin.
func (b *Box) MaxOuterWidth() float32 { return b.constraints[AxisX].MaxOuter }

// MinOuterHeight returns the resolved minimum height including margin.
func (b *Box) MinOuterHeight() float32 { return b.constraints[AxisY].MinOuter }

// MaxOuterHeight returns the resolved maximum height including margin.
func (b *Box) MaxOuterHeight() float32 { return b.constraints[AxisY].MaxOuter }

// clamp restricts v to the range [lo, hi].
// If lo > hi, lo wins (matches CSS behavior).
func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if hi >= lo && v > hi {
		return hi
	}
	return v
}
