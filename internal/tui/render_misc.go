package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderConfirmDelete renders the delete confirmation prompt.
func renderConfirmDelete(m model, width int) string {
	prompt := fmt.Sprintf("Delete skill provider %s?", panelTitleStyle.Render(m.confirmDeleteName))
	hint := fmt.Sprintf("%s confirm   •   %s cancel",
		quitKeyStyle.Render("y"),
		providerMetaStyle.Render("n/esc"))
	content := lipgloss.JoinVertical(lipgloss.Left,
		IconText(IconTrash, "Confirm Delete"),
		"",
		prompt,
		"",
		hint,
	)
	return confirmOverlayStyle.
		Width(min(width-confirmOverlayStyle.GetHorizontalFrameSize(), 60)).
		Render(content)
}

// renderHelpOverlay renders the keybinding reference.
func renderHelpOverlay(m model) string {
	titleView := helpTitleStyle.Render("KEYBOARD SHORTCUTS")
	helpContentView := m.help.View(m.keys)
	content := lipgloss.JoinVertical(lipgloss.Left, titleView, helpContentView)
	return helpOverlayStyle.Render(content)
}
