package tui

import tea "github.com/charmbracelet/bubbletea"

// handleWindowSizeMsg updates the model with the new terminal dimensions and
// keeps any open overlay viewport in step.
func handleWindowSizeMsg(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	helpWidth := int(float64(msg.Width) * 0.8)
	if helpWidth > 100 {
		helpWidth = 100
	}
	m.help.Width = helpWidth

	switch m.currentAppMode {
	case ModeLog:
		m.sizeLogViewport()
		m.logViewport.SetContent(prepareLogContent(m.activityLog, m.logViewport.Width))
	case ModeDetail:
		m.sizeDetailViewport()
		if m.detail.detail != nil {
			m.detailViewport.SetContent(renderDetailContent(m.detail.detail, m.detailViewport.Width))
		}
	}
	return m, nil
}

// sizeLogViewport fits the log overlay viewport to the current terminal.
func (m *model) sizeLogViewport() {
	w := int(float64(m.width) * 0.8)
	h := int(float64(m.height) * 0.7)
	m.logViewport.Width = max(0, w-logOverlayStyle.GetHorizontalFrameSize())
	m.logViewport.Height = max(0, h-logOverlayStyle.GetVerticalFrameSize())
}

// sizeDetailViewport fits the detail drawer viewport to the current terminal.
func (m *model) sizeDetailViewport() {
	w := int(float64(m.width) * 0.7)
	h := int(float64(m.height) * 0.7)
	m.detailViewport.Width = max(0, w-detailOverlayStyle.GetHorizontalFrameSize())
	// The drawer header (name, metadata lines) sits above the viewport.
	m.detailViewport.Height = max(0, h-detailOverlayStyle.GetVerticalFrameSize()-detailHeaderHeight)
}
