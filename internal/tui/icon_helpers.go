package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"toolctl/internal/workspace"
)

// SafeIcon wraps an icon with proper spacing to prevent rendering issues.
// It ensures that an icon doesn't "swallow" the next character by adding
// spaces depending on the display width of the icon:
//   - If the icon occupies a single cell we append 1 space.
//   - If the icon occupies two cells (common for many emojis)
//     we append 2 spaces so that at least one space is visible after the icon.
func SafeIcon(icon string) string {
	w := runewidth.StringWidth(icon)
	spaces := 1
	if w >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// IconText formats an icon with text, handling spacing properly.
func IconText(icon string, text string) string {
	return fmt.Sprintf("%s%s", SafeIcon(icon), text)
}

// providerGlyph returns the glyph to show next to a provider, falling back
// to the package icon when the workspace sent none.
func providerGlyph(icon workspace.Icon) string {
	if glyph := icon.String(); glyph != "" {
		return glyph
	}
	return IconPackage
}
