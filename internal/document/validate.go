package document

import (
	"errors"
	"fmt"
	"strings"

	overlay "github.com/grindlemire/go-overlay"
)

// ErrStickyPositioning is reported when sticky edges or offsets are combined
// with an explicit positioning other than sticky.
var ErrStickyPositioning = errors.New("sticky fields require sticky positioning")

// ValidationError reports an invalid field. Path locates the field, for
// example "hud/panel.width".
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks every field of every node and returns all problems joined.
func (d *Document) Validate() error {
	var errs []error
	if vp := d.Viewport; vp != nil {
		if vp.Width < 0 || vp.Height < 0 {
			errs = append(errs, &ValidationError{Path: "viewport", Err: errors.New("size must not be negative")})
		}
		if vp.Scale < 0 {
			errs = append(errs, &ValidationError{Path: "viewport.scale", Err: errors.New("scale must not be negative")})
		}
	}

	seen := map[string]bool{}
	var walk func(prefix string, nodes []*NodeSpec)
	walk = func(prefix string, nodes []*NodeSpec) {
		for i, n := range nodes {
			path := n.Name
			if path == "" {
				path = fmt.Sprintf("#%d", i)
			}
			if prefix != "" {
				path = prefix + "/" + path
			}
			if seen[path] {
				errs = append(errs, &ValidationError{Path: path, Err: errors.New("duplicate node name")})
			}
			seen[path] = true
			errs = append(errs, n.validate(path)...)
			walk(path, n.Nodes)
		}
	}
	walk("", d.Nodes)
	return errors.Join(errs...)
}

func (n *NodeSpec) validate(path string) []error {
	var errs []error
	check := func(field string, err error) {
		if err != nil {
			errs = append(errs, &ValidationError{Path: path + "." + field, Err: err})
		}
	}
	dim := func(field, v string) {
		_, _, err := ParseDimension(v)
		check(field, err)
	}

	dim("width", n.Width)
	dim("height", n.Height)
	dim("min_width", n.MinWidth)
	dim("max_width", n.MaxWidth)
	dim("min_height", n.MinHeight)
	dim("max_height", n.MaxHeight)

	_, err := ParseBoxSizing(n.BoxSizing)
	check("box_sizing", err)
	_, err = ParseEdges(n.Margin)
	check("margin", err)
	_, err = ParseEdges(n.Padding)
	check("padding", err)
	if n.Border < 0 {
		check("border", errors.New("must not be negative"))
	}

	_, err = n.positioning()
	check("positioning", err)
	_, err = ParseAnchor(n.Left, n.LeftAlign)
	check("left", err)
	_, err = ParseAnchor(n.Top, n.TopAlign)
	check("top", err)
	_, err = ParseStickyEdges(n.StickyEdges)
	check("sticky_edges", err)
	_, err = ParseStickyOffsets(n.Sticky)
	check("sticky", err)
	_, err = ParseVector(n.Scroll)
	check("scroll", err)

	_, err = ParseStrategy(n.Layout, n.Gap)
	check("layout", err)
	if n.Gap < 0 {
		check("gap", errors.New("must not be negative"))
	}
	return errs
}

// positioning resolves the declared mode. Sticky fields imply sticky when no
// mode is declared and conflict with any other explicit mode.
func (n *NodeSpec) positioning() (overlay.Positioning, error) {
	p, err := ParsePositioning(n.Positioning)
	if err != nil {
		return p, err
	}
	if len(n.StickyEdges) == 0 && len(n.Sticky) == 0 {
		return p, nil
	}
	if strings.TrimSpace(n.Positioning) == "" {
		return overlay.Sticky, nil
	}
	if p != overlay.Sticky {
		return p, fmt.Errorf("%w, got %q", ErrStickyPositioning, n.Positioning)
	}
	return p, nil
}
