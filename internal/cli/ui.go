package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconAdd     = "+"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// printAdded prints one requirement line of a patch plan.
func printAdded(w io.Writer, requirement string) {
	fmt.Fprintln(w, "  "+StyleSuccess.Render(iconAdd)+" "+StyleValue.Render(requirement))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints run counters on a single dim line, skipping zeros.
func printStats(w io.Writer, counts ...stat) {
	var parts []string
	for _, c := range counts {
		if c.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", c.n, c.label))
		}
	}
	if len(parts) == 0 {
		return
	}
	fmt.Fprintln(w, "  "+StyleDim.Render(strings.Join(parts, " · ")))
}

type stat struct {
	n     int
	label string
}

// =============================================================================
// Commands & Next Steps
// =============================================================================

// printNextStep prints a suggested next command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// printNewline prints an empty line.
func printNewline(w io.Writer) {
	fmt.Fprintln(w)
}
