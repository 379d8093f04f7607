package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// handleInstallFormKey processes keys while the install overlay is open.
// While a submission is in flight every key is inert; the form only moves
// on through installCompletedMsg.
func handleInstallFormKey(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	if m.form.phase == formSubmitting {
		return m, nil
	}

	switch {
	case msg.String() == "esc":
		m.form.close()
		m.currentAppMode = ModeBrowse
		return m, nil

	case key.Matches(msg, m.keys.SwitchTab):
		m.form.markEditing()
		m.form.switchTab()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Submit):
		return submitInstallForm(m)

	case msg.String() == "enter":
		m.form.markEditing()
		// Enter on the archive path field attaches the file; on every other
		// field it advances focus.
		if m.form.tab == tabUpload && m.form.focusIndex == 0 {
			if err := m.form.attach(m.form.uploadPath.Value()); err != nil {
				m.LogWarn("Archive rejected: %v", err)
				return m, m.setStatusMessage(err.Error(), StatusBarError, statusBarClearAfter)
			}
			m.form.nextField()
			return m, tea.Batch(
				textinput.Blink,
				m.setStatusMessage("Attached "+m.form.attachedName, StatusBarSuccess, statusBarClearAfter),
			)
		}
		m.form.nextField()
		return m, textinput.Blink
	}

	// Everything else edits the focused field and clears a failed phase.
	m.form.markEditing()
	fields := m.form.fields()
	var cmd tea.Cmd
	*fields[m.form.focusIndex], cmd = fields[m.form.focusIndex].Update(msg)
	return m, cmd
}

// submitInstallForm validates the active tab and, when valid, fires exactly
// one install or upload request. Validation failures never reach the
// network; the form phase records the failure inline instead.
func submitInstallForm(m model) (model, tea.Cmd) {
	m.form.markEditing()

	switch m.form.tab {
	case tabUpload:
		filename, content, name, err := m.form.uploadRequest()
		if err != nil {
			m.form.markFailed(err.Error())
			return m, m.setStatusMessage(err.Error(), StatusBarError, statusBarClearAfter)
		}
		m.form.phase = formSubmitting
		m.LogInfo("Uploading skill archive %s", filename)
		return m, tea.Batch(submitUploadCmd(m.svc, filename, content, name), m.spinner.Tick)

	default:
		req, err := m.form.gitRequest()
		if err != nil {
			m.form.markFailed(err.Error())
			return m, m.setStatusMessage(err.Error(), StatusBarError, statusBarClearAfter)
		}
		m.form.phase = formSubmitting
		m.LogInfo("Installing skill from %s (branch %s)", req.GitURL, req.GitBranch)
		return m, tea.Batch(submitInstallCmd(m.svc, req), m.spinner.Tick)
	}
}

// handleInstallCompleted finishes a submission. Success invalidates the
// skill-provider collection once, marks the new provider for selection after
// the refetch, and closes the overlay. Failure keeps every field intact so
// the user can correct and retry.
func handleInstallCompleted(m model, msg installCompletedMsg) (model, tea.Cmd) {
	if msg.err != nil {
		m.form.markFailed(msg.err.Error())
		m.LogError("Install failed: %v", msg.err)
		return m, m.setStatusMessage(msg.err.Error(), StatusBarError, statusBarClearAfter)
	}

	name := ""
	if msg.result != nil {
		name = msg.result.Name
		m.pendingSelectID = msg.result.ID
	}

	m.svc.InvalidateSkillProviders()
	m.form.close()
	m.currentAppMode = ModeBrowse
	m.LogInfo("Installed skill provider %s", name)
	return m, m.setStatusMessage(
		fmt.Sprintf("%s Installed %s", IconSparkles, name),
		StatusBarSuccess,
		statusBarClearAfter,
	)
}
