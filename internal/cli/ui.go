package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	overlay "github.com/grindlemire/go-overlay"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleName     = lipgloss.NewStyle().Bold(true)
	styleMode     = lipgloss.NewStyle().Foreground(colorGray)
	styleRect     = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess  = lipgloss.NewStyle().Foreground(colorGreen)
	styleError    = lipgloss.NewStyle().Foreground(colorRed)
	styleTreeLine = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

func formatRect(r overlay.Rect) string {
	return fmt.Sprintf("(%g, %g) %gx%g", r.X(), r.Y(), r.Width(), r.Height())
}

// printLayout writes one line per node, indented by depth.
func printLayout(w io.Writer, title string, frame overlay.Frame, nodes []overlay.NodeLayout) {
	fmt.Fprintf(w, "%s %s\n", styleTitle.Render(title),
		styleDim.Render(fmt.Sprintf("viewport %gx%g", frame.Viewport.X, frame.Viewport.Y)))
	for _, n := range nodes {
		indent := styleTreeLine.Render(strings.Repeat("│ ", n.Depth) + "├ ")
		fmt.Fprintf(w, "%s%s %s %s %s\n",
			indent,
			styleName.Render(n.Name),
			styleMode.Render(n.Positioning.String()),
			styleRect.Render(formatRect(n.Bounds)),
			styleDim.Render("inner "+formatRect(n.Inner)),
		)
	}
}

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", styleSuccess.Render(iconSuccess), msg)
}

func printError(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", styleError.Render(iconError), msg)
}
