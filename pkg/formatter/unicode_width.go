package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringWidth returns the display width of a string.
// Emoji and CJK characters occupy two cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadString right-pads a string to the specified display width
func PadString(s string, width int) string {
	currentWidth := StringWidth(s)
	if currentWidth >= width {
		return s
	}
	return s + strings.Repeat(" ", width-currentWidth)
}

// TruncateString shortens s to width display cells, ending with "..."
func TruncateString(s string, width int) string {
	if width <= 0 || StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
