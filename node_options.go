package overlay

// Option configures a Node at construction.
type Option func(*Node)

// WithName sets the debug name used in logs and layout dumps.
func WithName(name string) Option {
	return func(n *Node) {
		n.name = name
	}
}

// --- Dimension Options ---

// WithWidth sets the declared width.
func WithWidth(d Dimension) Option {
	return func(n *Node) {
		n.box.Width = d
	}
}

// WithHeight sets the declared height.
func WithHeight(d Dimension) Option {
	return func(n *Node) {
		n.box.Height = d
	}
}

// WithSize sets both declared width and height in pixels.
func WithSize(width, height float32) Option {
	return func(n *Node) {
		n.box.Width = Px(width)
		n.box.Height = Px(height)
	}
}

// WithMinWidth sets the minimum width.
func WithMinWidth(d Dimension) Option {
	return func(n *Node) {
		n.box.MinWidth = d
	}
}

// WithMaxWidth sets the maximum width.
func WithMaxWidth(d Dimension) Option {
	return func(n *Node) {
		n.box.MaxWidth = d
	}
}

// WithMinHeight sets the minimum height.
func WithMinHeight(d Dimension) Option {
	return func(n *Node) {
		n.box.MinHeight = d
	}
}

// WithMaxHeight sets the maximum height.
func WithMaxHeight(d Dimension) Option {
	return func(n *Node) {
		n.box.MaxHeight = d
	}
}

// WithFitWidth sizes the content box width from the children.
func WithFitWidth() Option {
	return func(n *Node) {
		n.box.FitWidth = true
	}
}

// WithFitHeight sizes the content box height from the children.
func WithFitHeight() Option {
	return func(n *Node) {
		n.box.FitHeight = true
	}
}

// WithBoxSizing sets which rectangle the declared size describes.
func WithBoxSizing(s BoxSizing) Option {
	return func(n *Node) {
		n.box.Sizing = s
	}
}

// --- Spacing Options ---

// WithMargin sets the margin.
func WithMargin(e Edges) Option {
	return func(n *Node) {
		n.box.SetMargin(e)
	}
}

// WithPadding sets the padding.
func WithPadding(e Edges) Option {
	return func(n *Node) {
		n.box.SetPadding(e)
	}
}

// WithBorder sets the uniform border thickness.
func WithBorder(thickness float32) Option {
	return func(n *Node) {
		n.box.SetBorder(thickness)
	}
}

// --- Positioning Options ---

// WithPositioning sets the positioning mode.
func WithPositioning(p Positioning) Option {
	return func(n *Node) {
		n.positioning = p
	}
}

// WithLeft sets the horizontal anchor.
func WithLeft(a Anchor) Option {
	return func(n *Node) {
		n.left = a
	}
}

// WithTop sets the vertical anchor.
func WithTop(a Anchor) Option {
	return func(n *Node) {
		n.top = a
	}
}

// WithSticky makes the node sticky against the given edges with per-edge offsets.
func WithSticky(edges StickyEdges, offsets Edges) Option {
	return func(n *Node) {
		n.positioning = Sticky
		n.stickyEdges = edges
		n.sticky = offsets
	}
}

// WithStickyEdges sets the sticky edges and offsets without changing the
// positioning mode. They only take effect on a Sticky node.
func WithStickyEdges(edges StickyEdges, offsets Edges) Option {
	return func(n *Node) {
		n.stickyEdges = edges
		n.sticky = offsets
	}
}

// WithZIndex sets the draw order among siblings.
func WithZIndex(z int) Option {
	return func(n *Node) {
		n.zIndex = z
	}
}

// WithHidden creates the node hidden.
func WithHidden() Option {
	return func(n *Node) {
		n.visible = false
	}
}

// --- Arrangement Options ---

// WithStrategy sets the arrangement used for flow children.
func WithStrategy(s LayoutStrategy) Option {
	return func(n *Node) {
		if s == nil {
			s = Overlap{}
		}
		n.strategy = s
	}
}

// WithChildren appends children at construction.
func WithChildren(children ...*Node) Option {
	return func(n *Node) {
		n.AddChild(children...)
	}
}
