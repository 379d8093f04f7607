package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"toolctl/internal/workspace"
)

// detailHeaderHeight is the number of lines the drawer reserves above the
// SKILL.md viewport for the title and metadata block.
const detailHeaderHeight = 8

// renderDetailOverlay renders the provider detail drawer.
func renderDetailOverlay(m model, width, height int) string {
	var content string
	switch {
	case m.detail.loading:
		content = m.spinner.View() + " Loading detail..."
	case m.detail.detail == nil:
		content = emptyListStyle.Render("Nothing to show.")
	default:
		header := renderDetailHeader(m.detail.detail)
		body := m.detailViewport.View()
		footer := providerMetaStyle.Render("↑/↓ scroll  •  y copy source  •  Esc close")
		content = lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	}

	return detailOverlayStyle.
		Width(width - detailOverlayStyle.GetHorizontalFrameSize()).
		Height(height - detailOverlayStyle.GetVerticalFrameSize()).
		Render(content)
}

// renderDetailHeader renders the metadata block above the SKILL.md preview.
// Every optional field may be absent; absent fields are skipped entirely.
func renderDetailHeader(d *workspace.SkillProviderDetail) string {
	lines := []string{
		panelTitleStyle.Render(IconText(providerGlyph(d.Icon), d.Name)),
	}

	addField := func(label, value string) {
		if value == "" {
			return
		}
		lines = append(lines, detailFieldLabelStyle.Render(label+": ")+value)
	}

	addField("Identifier", d.SkillIdentifier)
	addField("Version", d.Version)
	addField("Author", d.Author)
	addField("License", d.License)
	if d.SourceType != "" {
		source := string(d.SourceType)
		if d.SourceURL != "" {
			source += "  " + IconText(IconLink, d.SourceURL)
		}
		addField("Source", source)
	}
	if len(d.Scripts) > 0 {
		names := make([]string, len(d.Scripts))
		for i, s := range d.Scripts {
			names[i] = fmt.Sprintf("%s (%s)", s.Name, s.Language)
		}
		addField("Scripts", strings.Join(names, ", "))
	}

	return strings.Join(lines, "\n")
}

// renderDetailContent prepares the scrollable SKILL.md preview, wrapped to
// the viewport width.
func renderDetailContent(d *workspace.SkillProviderDetail, width int) string {
	if d == nil {
		return ""
	}
	body := d.FullContent
	if body == "" {
		body = d.Description
	}
	if body == "" {
		return emptyListStyle.Render("No SKILL.md content available.")
	}
	if width <= 0 {
		return body
	}
	return lipgloss.NewStyle().Width(width).Render(body)
}
