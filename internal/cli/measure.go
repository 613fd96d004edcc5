package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	overlay "github.com/grindlemire/go-overlay"
	"github.com/grindlemire/go-overlay/internal/document"
)

// result is a document built into a tree and laid out once.
type result struct {
	tree  *overlay.Tree
	roots []*overlay.Node
	frame overlay.Frame
}

// layoutDocument loads path, builds it and runs one recompute.
func layoutDocument(ctx context.Context, path string) (*result, error) {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	frame := cfg.Frame(doc)

	tree := overlay.NewTree(frame.Viewport)
	roots, err := doc.Build(tree)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", path, err)
	}
	tree.Update(frame)

	logger.Debug("layout complete", "file", path, "nodes", tree.Len(), "viewport", frame.Viewport)
	return &result{tree: tree, roots: roots, frame: frame}, nil
}

func newMeasureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "measure <file>",
		Short: "Lay out a document and print every node's rectangles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := layoutDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			var nodes []overlay.NodeLayout
			for _, root := range res.roots {
				nodes = append(nodes, root.Dump()...)
			}
			printLayout(cmd.OutOrStdout(), args[0], res.frame, nodes)
			return nil
		},
	}
}
