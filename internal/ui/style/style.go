// Package style provides the colors and icons shared by the CLI renderers.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Arrow   = "→"
)

// Representation returns the icon and color used for inline or heap texts.
func Representation(heap bool) (string, lipgloss.Color) {
	if heap {
		return Dot, Yellow
	}
	return Check, Green
}
