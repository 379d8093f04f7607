package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"toolctl/internal/workspace"
)

// handleKeyMsg routes a key press to the handler owning the current mode.
// Overlays own the keyboard while open; the filter input owns printable
// keys while focused; everything else falls through to the browse handler.
func handleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.currentAppMode {
	case ModeInstallForm:
		return handleInstallFormKey(m, msg)
	case ModeConfirmDelete:
		return handleConfirmDeleteKey(m, msg)
	case ModeDetail:
		return handleDetailKey(m, msg)
	case ModeHelp:
		return handleHelpKey(m, msg)
	case ModeLog:
		return handleLogOverlayKey(m, msg)
	}

	if m.filterInput.Focused() {
		return handleFilterKey(m, msg)
	}

	return handleBrowseKey(m, msg)
}

// handleBrowseKey processes keys on the dashboard.
func handleBrowseKey(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.selectedIndex--
		m.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.selectedIndex++
		m.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Detail):
		sel, ok := m.selectedProvider()
		if !ok {
			return m, nil
		}
		m.currentAppMode = ModeDetail
		m.detail = detailState{providerID: sel.ID, loading: true}
		m.sizeDetailViewport()
		m.LogDebug("Fetching detail for provider %s", sel.ID)
		return m, tea.Batch(loadDetailCmd(m.svc, sel.ID), m.spinner.Tick)

	case key.Matches(msg, m.keys.Install):
		m.currentAppMode = ModeInstallForm
		m.form.open()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		sel, ok := m.selectedProvider()
		if !ok {
			return m, nil
		}
		m.currentAppMode = ModeConfirmDelete
		m.confirmDeleteID = sel.ID
		m.confirmDeleteName = sel.Name
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.LogInfo("Refreshing workspace collections")
		m.svc.InvalidateSkillProviders()
		m.svc.InvalidateToolProviders()
		return m, m.setStatusMessage("Refreshing...", StatusBarInfo, statusBarClearAfter)

	case key.Matches(msg, m.keys.CopySource):
		sel, ok := m.selectedProvider()
		if !ok {
			return m, nil
		}
		return m, copyToClipboardCmd(copySourceValue(sel))

	case key.Matches(msg, m.keys.ToggleLog):
		m.currentAppMode = ModeLog
		m.sizeLogViewport()
		m.logViewport.SetContent(prepareLogContent(m.activityLog, m.logViewport.Width))
		m.logViewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.currentAppMode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Back):
		// Esc on the dashboard clears an applied filter query.
		if m.filterInput.Value() != "" {
			m.filterInput.Reset()
			m.clampSelection()
		}
		return m, nil
	}

	return m, nil
}

// handleFilterKey processes keys while the filter line is focused. Printable
// keys flow into the input; enter applies the query and esc abandons it.
func handleFilterKey(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filterInput.Blur()
		m.clampSelection()
		return m, nil
	case "esc":
		m.filterInput.Blur()
		m.filterInput.Reset()
		m.clampSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.clampSelection()
	return m, cmd
}

// handleConfirmDeleteKey processes the delete confirmation prompt.
func handleConfirmDeleteKey(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		providerID := m.confirmDeleteID
		name := m.confirmDeleteName
		m.confirmDeleteID = ""
		m.confirmDeleteName = ""
		m.currentAppMode = ModeBrowse
		m.LogInfo("Deleting skill provider %s (%s)", name, providerID)
		return m, tea.Batch(
			deleteProviderCmd(m.svc, providerID, name),
			m.setStatusMessage("Deleting "+name+"...", StatusBarInfo, statusBarClearAfter),
		)
	case "n", "N", "esc":
		m.confirmDeleteID = ""
		m.confirmDeleteName = ""
		m.currentAppMode = ModeBrowse
		return m, nil
	}
	return m, nil
}

// handleDetailKey processes keys while the detail drawer is open. Scroll
// keys go to the SKILL.md viewport.
func handleDetailKey(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.currentAppMode = ModeBrowse
		m.detail = detailState{}
		return m, nil
	case "y":
		if m.detail.detail != nil {
			return m, copyToClipboardCmd(copySourceValue(m.detail.detail.SkillProvider))
		}
		return m, nil
	case "k", "up", "j", "down", "pgup", "pgdown", "home", "end":
		var vpCmd tea.Cmd
		m.detailViewport, vpCmd = m.detailViewport.Update(msg)
		return m, vpCmd
	}
	return m, nil
}

// handleHelpKey processes keys while the help overlay is open.
func handleHelpKey(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "h", "?", "esc":
		m.currentAppMode = ModeBrowse
	}
	return m, nil
}

// copySourceValue picks what the copy key puts on the clipboard: the source
// URL when the provider has one, otherwise its identifier.
func copySourceValue(p workspace.SkillProvider) string {
	if p.SourceURL != "" {
		return p.SourceURL
	}
	return p.SkillIdentifier
}

// handleLogOverlayKey processes keys while the log overlay is open.
func handleLogOverlayKey(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "L", "esc":
		m.currentAppMode = ModeBrowse
		return m, nil
	case "y":
		return m, copyToClipboardCmd(joinLogLines(m.activityLog))
	case "k", "up", "j", "down", "pgup", "pgdown", "home", "end":
		var vpCmd tea.Cmd
		m.logViewport, vpCmd = m.logViewport.Update(msg)
		return m, vpCmd
	}
	return m, nil
}
