package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"toolctl/pkg/logging"
)

// renderLogOverlay renders the full-screen activity log.
func renderLogOverlay(m model, width, height int) string {
	title := logPanelTitleStyle.Render(SafeIcon(IconScroll) + "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	viewportView := m.logViewport.View()
	content := lipgloss.JoinVertical(lipgloss.Left, title, viewportView)
	return logOverlayStyle.
		Width(width - logOverlayStyle.GetHorizontalFrameSize()).
		Height(height - logOverlayStyle.GetVerticalFrameSize()).
		Render(content)
}

// renderInlineLogPanel renders the last few activity log lines at the bottom
// of the dashboard. Hidden entirely on short terminals.
func renderInlineLogPanel(m model, width, height int) string {
	if height <= 2 {
		return ""
	}

	innerWidth := max(0, width-panelStyle.GetHorizontalFrameSize())
	title := logPanelTitleStyle.Render(SafeIcon(IconScroll) + "Activity Log")

	// Show as many trailing lines as fit under the title.
	visible := height - panelStyle.GetVerticalFrameSize() - lipgloss.Height(title)
	if visible < 1 {
		visible = 1
	}
	lines := m.activityLog
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	body := prepareLogContent(lines, innerWidth)
	content := lipgloss.JoinVertical(lipgloss.Left, title, body)
	return panelStyle.Width(innerWidth).Render(content)
}

// prepareLogContent truncates long lines to avoid viewport wrapping and
// applies color styles based on log level markers.
func prepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, raw := range lines {
		line := raw
		if maxWidth > 0 && runewidth.StringWidth(line) > maxWidth {
			line = runewidth.Truncate(line, maxWidth-1, "") + "…"
		}
		out[i] = styleLogLine(line)
	}
	return strings.Join(out, "\n")
}

// styleLogLine wraps the line in the lipgloss style matching its level
// marker. The check order runs from more specific to more general.
func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return logErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return logWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return logDebugStyle.Render(l)
	case strings.Contains(l, "[INFO]"):
		return logInfoStyle.Render(l)
	default:
		return logLineStyle.Render(l)
	}
}

// formatLogEntry renders a structured log entry in the activity log's
// bracketed prefix format.
func formatLogEntry(entry logging.LogEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]", entry.Level.String())
	if entry.Subsystem != "" {
		fmt.Fprintf(&b, " [%s]", entry.Subsystem)
	}
	b.WriteString(" ")
	b.WriteString(entry.Message)
	if entry.Err != nil {
		fmt.Fprintf(&b, ": %v", entry.Err)
	}
	return b.String()
}

// joinLogLines flattens the activity log for a clipboard copy.
func joinLogLines(lines []string) string {
	return strings.Join(lines, "\n")
}
