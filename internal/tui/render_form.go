package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderInstallForm renders the two-tab install overlay.
func renderInstallForm(m model, width int) string {
	f := m.form

	gitTab := formTabInactiveStyle.Render(tabGit.String())
	uploadTab := formTabInactiveStyle.Render(tabUpload.String())
	if f.tab == tabGit {
		gitTab = formTabActiveStyle.Render(tabGit.String())
	} else {
		uploadTab = formTabActiveStyle.Render(tabUpload.String())
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Bottom, gitTab, " ", uploadTab)

	var rows []string
	rows = append(rows,
		panelTitleStyle.Render(IconText(IconPackage, "Install Skill Package")),
		tabs,
		"",
	)

	switch f.tab {
	case tabUpload:
		rows = append(rows,
			formFieldLabelStyle.Render("Archive (.zip, enter attaches)"),
			f.uploadPath.View(),
		)
		if f.attachedName != "" {
			rows = append(rows, formHintStyle.Render(
				fmt.Sprintf("%sattached %s (%d bytes)", SafeIcon(IconCheck), f.attachedName, len(f.attachedData))))
		} else {
			rows = append(rows, formHintStyle.Render("no archive attached yet"))
		}
		rows = append(rows,
			"",
			formFieldLabelStyle.Render("Display name (optional)"),
			f.uploadName.View(),
		)
	default:
		rows = append(rows,
			formFieldLabelStyle.Render("Repository URL"),
			f.gitURL.View(),
			"",
			formFieldLabelStyle.Render("Branch (default: main)"),
			f.gitBranch.View(),
			"",
			formFieldLabelStyle.Render("Display name (optional)"),
			f.gitName.View(),
		)
	}

	rows = append(rows, "")
	switch f.phase {
	case formSubmitting:
		rows = append(rows, m.spinner.View()+" Submitting...")
	case formFailed:
		rows = append(rows, formErrorStyle.Render(IconText(IconCross, f.failMessage)))
	default:
		rows = append(rows, formHintStyle.Render("enter next field  •  tab switch tab  •  ctrl+s submit  •  esc cancel"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return formOverlayStyle.
		Width(width - formOverlayStyle.GetHorizontalFrameSize()).
		Render(content)
}
