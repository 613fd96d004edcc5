// Package document loads layout documents: TOML or HCL files describing a
// tree of overlay nodes, and builds them into an overlay.Tree.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/grindlemire/go-overlay/internal/debug"
)

// ErrUnsupportedFormat is returned for files that are neither .toml nor .hcl.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Document is the decoded form of a layout document.
type Document struct {
	Viewport *ViewportSpec `toml:"viewport" hcl:"viewport,block"`
	Nodes    []*NodeSpec   `toml:"node" hcl:"node,block"`
}

// ViewportSpec overrides the configured screen size and UI scale.
type ViewportSpec struct {
	Width  float64 `toml:"width" hcl:"width,optional"`
	Height float64 `toml:"height" hcl:"height,optional"`
	Scale  float64 `toml:"scale" hcl:"scale,optional"`
}

// NodeSpec describes one node and its children. Dimension and anchor fields
// are strings such as "120", "50%" or "10 + 50%"; empty means the default.
type NodeSpec struct {
	Name string `toml:"name" hcl:"name,label"`

	Width     string `toml:"width" hcl:"width,optional"`
	Height    string `toml:"height" hcl:"height,optional"`
	MinWidth  string `toml:"min_width" hcl:"min_width,optional"`
	MaxWidth  string `toml:"max_width" hcl:"max_width,optional"`
	MinHeight string `toml:"min_height" hcl:"min_height,optional"`
	MaxHeight string `toml:"max_height" hcl:"max_height,optional"`
	FitWidth  bool   `toml:"fit_width" hcl:"fit_width,optional"`
	FitHeight bool   `toml:"fit_height" hcl:"fit_height,optional"`
	BoxSizing string `toml:"box_sizing" hcl:"box_sizing,optional"`

	Margin  []float64 `toml:"margin" hcl:"margin,optional"`
	Padding []float64 `toml:"padding" hcl:"padding,optional"`
	Border  float64   `toml:"border" hcl:"border,optional"`

	Positioning string    `toml:"positioning" hcl:"positioning,optional"`
	Left        string    `toml:"left" hcl:"left,optional"`
	Top         string    `toml:"top" hcl:"top,optional"`
	LeftAlign   *float64  `toml:"left_align" hcl:"left_align,optional"`
	TopAlign    *float64  `toml:"top_align" hcl:"top_align,optional"`
	StickyEdges []string  `toml:"sticky_edges" hcl:"sticky_edges,optional"`
	Sticky      []float64 `toml:"sticky" hcl:"sticky,optional"`
	Scroll      []float64 `toml:"scroll" hcl:"scroll,optional"`
	ZIndex      int       `toml:"z_index" hcl:"z_index,optional"`
	Hidden      bool      `toml:"hidden" hcl:"hidden,optional"`

	Layout string  `toml:"layout" hcl:"layout,optional"`
	Gap    float64 `toml:"gap" hcl:"gap,optional"`

	Nodes []*NodeSpec `toml:"node" hcl:"node,block"`
}

// Load reads and decodes the document at path, choosing the decoder from
// the file extension, and validates it.
func Load(path string) (*Document, error) {
	var decode func(data []byte) (*Document, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		decode = DecodeTOML
	case ".hcl":
		decode = func(data []byte) (*Document, error) { return DecodeHCL(data, path) }
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", path, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document %s: %w", path, err)
	}

	debug.Log("document loaded", "path", path, "roots", len(doc.Nodes), "nodes", doc.Count())
	return doc, nil
}

// DecodeTOML decodes a TOML document. Unknown keys are reported as errors.
func DecodeTOML(data []byte) (*Document, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return &doc, nil
}

// DecodeHCL decodes an HCL document. filename is only used in diagnostics.
func DecodeHCL(data []byte, filename string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var doc Document
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, diags
	}
	return &doc, nil
}

// Count returns the number of nodes in the document.
func (d *Document) Count() int {
	var count func([]*NodeSpec) int
	count = func(nodes []*NodeSpec) int {
		n := len(nodes)
		for _, node := range nodes {
			n += count(node.Nodes)
		}
		return n
	}
	return count(d.Nodes)
}
