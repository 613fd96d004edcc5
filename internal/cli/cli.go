// Package cli implements the overlay command-line interface.
//
// The commands load a layout document, run one recompute against a
// configured viewport and report the result:
//   - measure: print the resolved rectangles of every node
//   - check: verify the box-model and dirty-flag invariants
//   - version: print build information
//
// Settings come from flags, OVERLAY_* environment variables and an optional
// config file, in that order of precedence. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grindlemire/go-overlay/internal/debug"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information, usually injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the overlay CLI.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var (
		verbose bool
		cfgFile string
	)
	v := viper.New()

	root := &cobra.Command{
		Use:           "overlay",
		Short:         "Measure and check overlay layout documents",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(errOut, level)

			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			if cfg.Debug.Log != "" {
				if err := debug.Init(cfg.Debug.Log); err != nil {
					return fmt.Errorf("debug.log: %w", err)
				}
			}
			logger.Debug("config loaded", "file", v.ConfigFileUsed(), "viewport", cfg.Viewport, "scale", cfg.UI.Scale)

			ctx := withLogger(cmd.Context(), logger)
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debug.Close()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(fmt.Sprintf("overlay %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	flags := root.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./overlay.toml)")
	flags.Float64("width", defaultViewportWidth, "viewport width in screen pixels")
	flags.Float64("height", defaultViewportHeight, "viewport height in screen pixels")
	flags.Float64("scale", 1, "UI scale factor applied to the viewport")
	flags.String("debug-log", "", "write layout pass traces to this file")
	bindFlags(v, root)

	root.AddCommand(newMeasureCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "overlay %s\n", version)
			if commit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", commit)
			}
			if date != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", date)
			}
		},
	}
}
