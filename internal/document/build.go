package document

import (
	"fmt"

	overlay "github.com/grindlemire/go-overlay"
)

// Build creates the document's nodes in tree and attaches every top-level
// node as a root. The document should have been validated.
func (d *Document) Build(tree *overlay.Tree) ([]*overlay.Node, error) {
	roots := make([]*overlay.Node, 0, len(d.Nodes))
	for _, ns := range d.Nodes {
		n, err := ns.build(tree)
		if err != nil {
			return nil, err
		}
		tree.Attach(n)
		roots = append(roots, n)
	}
	return roots, nil
}

func (n *NodeSpec) build(tree *overlay.Tree) (*overlay.Node, error) {
	opts, err := n.Options()
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", n.Name, err)
	}
	node := tree.New(opts...)

	for _, child := range n.Nodes {
		c, err := child.build(tree)
		if err != nil {
			return nil, err
		}
		node.AddChild(c)
	}

	scroll, err := ParseVector(n.Scroll)
	if err != nil {
		return nil, fmt.Errorf("node %q: scroll: %w", n.Name, err)
	}
	node.SetScrollOffset(scroll)
	return node, nil
}

// Options converts the node's own fields, children excluded, into node options.
func (n *NodeSpec) Options() ([]overlay.Option, error) {
	opts := []overlay.Option{overlay.WithName(n.Name)}

	dims := []struct {
		value string
		opt   func(overlay.Dimension) overlay.Option
	}{
		{n.Width, overlay.WithWidth},
		{n.Height, overlay.WithHeight},
		{n.MinWidth, overlay.WithMinWidth},
		{n.MaxWidth, overlay.WithMaxWidth},
		{n.MinHeight, overlay.WithMinHeight},
		{n.MaxHeight, overlay.WithMaxHeight},
	}
	for _, d := range dims {
		dim, ok, err := ParseDimension(d.value)
		if err != nil {
			return nil, err
		}
		if ok {
			opts = append(opts, d.opt(dim))
		}
	}
	if n.FitWidth {
		opts = append(opts, overlay.WithFitWidth())
	}
	if n.FitHeight {
		opts = append(opts, overlay.WithFitHeight())
	}

	sizing, err := ParseBoxSizing(n.BoxSizing)
	if err != nil {
		return nil, err
	}
	margin, err := ParseEdges(n.Margin)
	if err != nil {
		return nil, fmt.Errorf("margin: %w", err)
	}
	padding, err := ParseEdges(n.Padding)
	if err != nil {
		return nil, fmt.Errorf("padding: %w", err)
	}
	opts = append(opts,
		overlay.WithBoxSizing(sizing),
		overlay.WithMargin(margin),
		overlay.WithPadding(padding),
		overlay.WithBorder(float32(n.Border)),
	)

	positioning, err := n.positioning()
	if err != nil {
		return nil, err
	}
	left, err := ParseAnchor(n.Left, n.LeftAlign)
	if err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	top, err := ParseAnchor(n.Top, n.TopAlign)
	if err != nil {
		return nil, fmt.Errorf("top: %w", err)
	}
	opts = append(opts,
		overlay.WithPositioning(positioning),
		overlay.WithLeft(left),
		overlay.WithTop(top),
		overlay.WithZIndex(n.ZIndex),
	)

	if len(n.StickyEdges) > 0 || len(n.Sticky) > 0 {
		edges, err := ParseStickyEdges(n.StickyEdges)
		if err != nil {
			return nil, err
		}
		offsets, err := ParseStickyOffsets(n.Sticky)
		if err != nil {
			return nil, fmt.Errorf("sticky: %w", err)
		}
		opts = append(opts, overlay.WithStickyEdges(edges, offsets))
	}

	strategy, err := ParseStrategy(n.Layout, n.Gap)
	if err != nil {
		return nil, err
	}
	opts = append(opts, overlay.WithStrategy(strategy))

	if n.Hidden {
		opts = append(opts, overlay.WithHidden())
	}
	return opts, nil
}
