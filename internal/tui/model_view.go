package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// overlayBackdrop dims the dashboard behind a centered overlay.
var overlayBackdrop = lipgloss.WithWhitespaceBackground(lipgloss.AdaptiveColor{Light: "rgba(0,0,0,0.1)", Dark: "rgba(0,0,0,0.6)"})

// View renders the UI according to the current model state.
func (m model) View() string {
	switch m.currentAppMode {
	case ModeQuitting:
		return logLineStyle.Render(m.quittingMessage)

	case ModeInitializing:
		if !m.ready {
			return logLineStyle.Render("Initializing... (waiting for window size)")
		}
		return logLineStyle.Render(m.spinner.View() + " Initializing...")

	case ModeBrowse:
		return m.renderDashboard()

	case ModeInstallForm:
		overlayWidth := min(int(float64(m.width)*0.7), 80)
		formView := renderInstallForm(m, overlayWidth)
		canvas := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, formView, overlayBackdrop)
		return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m, m.width))

	case ModeConfirmDelete:
		confirmView := renderConfirmDelete(m, m.width)
		canvas := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, confirmView, overlayBackdrop)
		return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m, m.width))

	case ModeDetail:
		overlayWidth := int(float64(m.width) * 0.7)
		overlayHeight := int(float64(m.height) * 0.7)
		detailView := renderDetailOverlay(m, overlayWidth, overlayHeight)
		canvas := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, detailView, overlayBackdrop)
		return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m, m.width))

	case ModeHelp:
		helpView := renderHelpOverlay(m)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpView, overlayBackdrop)

	case ModeLog:
		overlayWidth := int(float64(m.width) * 0.8)
		overlayHeight := int(float64(m.height) * 0.7)
		logView := renderLogOverlay(m, overlayWidth, overlayHeight)
		canvas := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, logView, overlayBackdrop)
		return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m, m.width))

	default:
		return logLineStyle.Render(fmt.Sprintf("Unhandled application mode: %s", m.currentAppMode.String()))
	}
}

// renderDashboard lays out the browse view: header, catalog strip, filter
// line, provider list, optional inline log, status bar.
func (m model) renderDashboard() string {
	contentWidth := m.width - appStyle.GetHorizontalFrameSize()
	totalAvailableHeight := m.height - appStyle.GetVerticalFrameSize()

	headerView := renderHeader(m, contentWidth)
	stripView := renderCatalogStrip(m, contentWidth)
	filterView := renderFilterLine(m)
	statusBar := renderStatusBar(m, m.width)

	fixedHeight := lipgloss.Height(headerView) +
		lipgloss.Height(stripView) +
		lipgloss.Height(filterView) +
		lipgloss.Height(statusBar)

	// Inline log only on terminals tall enough to spare the lines.
	logHeight := 0
	if m.height >= minHeightForInlineLog {
		logHeight = 8
	}

	listHeight := totalAvailableHeight - fixedHeight - logHeight
	if listHeight < 5 {
		listHeight = 5
	}

	listView := renderProviderList(m, contentWidth, listHeight)

	bodyParts := []string{headerView, stripView, filterView, listView}
	if logHeight > 0 {
		bodyParts = append(bodyParts, renderInlineLogPanel(m, contentWidth, logHeight))
	}
	bodyParts = append(bodyParts, statusBar)

	mainView := lipgloss.JoinVertical(lipgloss.Left, bodyParts...)
	return appStyle.Width(m.width).Render(mainView)
}
