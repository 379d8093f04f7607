package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// overallState condenses the model into one status bar verdict.
func (m *model) overallState() (icon string, label string, bg lipgloss.AdaptiveColor) {
	switch {
	case m.isLoading || m.currentAppMode == ModeInitializing:
		return IconHourglass, "Loading", StatusBarInfoBg
	case m.form.phase == formSubmitting:
		return IconHourglass, "Submitting", StatusBarInfoBg
	case m.providersErr != nil:
		return IconCross, "Error", StatusBarErrorBg
	default:
		return IconCheck, "Ready", StatusBarSuccessBg
	}
}

// renderStatusBar renders the single-line bar at the very bottom: overall
// state on the left, the transient message in the center, workspace counts
// on the right.
func renderStatusBar(m model, width int) string {
	icon, label, bg := m.overallState()

	leftW := int(float64(width) * 0.2)
	rightW := int(float64(width) * 0.35)
	centerW := width - leftW - rightW
	if centerW < 0 {
		centerW = 0
	}

	var leftStr string
	if m.isLoading {
		leftStr = StatusBarTextStyle.Background(bg).Width(leftW).Render(m.spinner.View() + " " + label)
	} else {
		leftStr = StatusBarTextStyle.Background(bg).Width(leftW).Render(IconText(icon, label))
	}

	summary := fmt.Sprintf("%s%d skills  %s%d providers",
		SafeIcon(IconPackage), len(m.providers),
		SafeIcon(IconWrench), len(m.toolProviders))
	rightStr := StatusBarTextStyle.Background(bg).Width(rightW).Align(lipgloss.Right).Render(summary)

	var centerStr string
	if m.statusBarMessage != "" {
		msgIcon := IconInfo
		switch m.statusBarMessageType {
		case StatusBarSuccess:
			msgIcon = IconSparkles
		case StatusBarError:
			msgIcon = IconCross
		case StatusBarWarning:
			msgIcon = IconWarning
		}
		centerStr = StatusBarTextStyle.
			Background(bg).
			Width(centerW).
			Align(lipgloss.Center).
			Render(IconText(msgIcon, m.statusBarMessage))
	} else {
		centerStr = lipgloss.NewStyle().Background(bg).Width(centerW).Render("")
	}

	final := lipgloss.JoinHorizontal(lipgloss.Bottom, leftStr, centerStr, rightStr)
	return StatusBarBaseStyle.Width(width).Render(final)
}
