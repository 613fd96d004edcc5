package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	overlay "github.com/grindlemire/go-overlay"
)

// errViolations is returned when a document breaks layout invariants.
type errViolations struct {
	count int
}

func (e errViolations) Error() string {
	return fmt.Sprintf("%d invariant violation(s)", e.count)
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Lay out a document and verify the layout invariants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := layoutDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var violations []overlay.Violation
			for _, root := range res.roots {
				violations = append(violations, root.CheckInvariants()...)
			}

			out := cmd.OutOrStdout()
			if len(violations) == 0 {
				printSuccess(out, fmt.Sprintf("%s: %d nodes OK", args[0], res.tree.Len()))
				return nil
			}
			for _, v := range violations {
				printError(out, v.Error())
			}
			return errViolations{count: len(violations)}
		},
	}
}
