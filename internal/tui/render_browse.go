package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"toolctl/internal/cache"
	"toolctl/internal/workspace"
)

// renderHeader renders the title bar.
func renderHeader(m model, contentWidth int) string {
	if contentWidth < 40 {
		title := "toolctl"
		if m.isLoading {
			title = m.spinner.View() + " " + title
		}
		return headerStyle.Width(contentWidth).Render(title)
	}
	title := "toolctl — Workspace Tools  |  h Help  |  q Quit"
	if m.isLoading {
		title = m.spinner.View() + " " + title
	}
	frame := headerStyle.GetHorizontalFrameSize()
	if contentWidth <= frame {
		return "toolctl"
	}
	return headerStyle.Width(contentWidth - frame).Render(title)
}

// catalogStripOrder fixes the display order of tool partitions in the strip.
var catalogStripOrder = []string{"builtin", "api", "workflow", "mcp", "skill"}

// renderCatalogStrip renders one line of per-type provider counts sourced
// from the cross-type catalog fetch.
func renderCatalogStrip(m model, width int) string {
	counts := make(map[string]int)
	for _, p := range m.toolProviders {
		if key, ok := cache.KeyForProviderType(p.Type); ok {
			counts[key.Scope]++
		} else {
			counts["other"]++
		}
	}

	parts := make([]string, 0, len(catalogStripOrder)+1)
	for _, partition := range catalogStripOrder {
		parts = append(parts, fmt.Sprintf("%s %s", partition, catalogCountStyle.Render(fmt.Sprintf("%d", counts[partition]))))
	}
	if counts["other"] > 0 {
		parts = append(parts, fmt.Sprintf("other %s", catalogCountStyle.Render(fmt.Sprintf("%d", counts["other"]))))
	}

	line := IconText(IconWrench, "Tool providers:  ") + strings.Join(parts, "  •  ")
	innerWidth := max(0, width-catalogStripStyle.GetHorizontalFrameSize())
	return catalogStripStyle.Width(innerWidth).Render(line)
}

// renderFilterLine renders the filter input or, when idle, a hint line.
func renderFilterLine(m model) string {
	if m.filterInput.Focused() {
		return filterPromptStyle.Render(m.filterInput.View())
	}
	if query := m.filterInput.Value(); query != "" {
		return filterPromptStyle.Render(fmt.Sprintf("/ %s", query)) +
			providerMetaStyle.Render("  (esc clears, / edits)")
	}
	return providerMetaStyle.Render("press / to filter")
}

// renderProviderList renders the scrolling skill provider list.
func renderProviderList(m model, width, height int) string {
	innerWidth := max(0, width-panelStyle.GetHorizontalFrameSize())

	filtered := m.filteredProviders()
	title := panelTitleStyle.Render(IconText(IconPackage, fmt.Sprintf("Skill Providers (%d)", len(filtered))))

	var body string
	switch {
	case m.providersErr != nil:
		body = errorStyle.Render(IconText(IconCross, "Failed to load: "+m.providersErr.Error()))
	case m.isLoading && len(m.providers) == 0:
		body = m.spinner.View() + " Loading skill providers..."
	case len(filtered) == 0 && m.filterInput.Value() != "":
		body = emptyListStyle.Render("Nothing matches the filter.")
	case len(filtered) == 0:
		body = emptyListStyle.Render("No skill providers installed. Press i to install one.")
	default:
		body = renderProviderRows(m, filtered, innerWidth, height)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, body)
	return panelStyle.Width(innerWidth).Render(content)
}

// renderProviderRows renders the visible window of the provider list, kept
// centered around the current selection.
func renderProviderRows(m model, filtered []workspace.SkillProvider, innerWidth, height int) string {
	visible := height - panelStyle.GetVerticalFrameSize() - 2 // title + margin
	if visible < 1 {
		visible = 1
	}

	start := 0
	if m.selectedIndex >= visible {
		start = m.selectedIndex - visible + 1
	}
	end := start + visible
	if end > len(filtered) {
		end = len(filtered)
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		p := filtered[i]

		marker := "  "
		if i == m.selectedIndex {
			marker = "▶ "
		}

		meta := p.SkillIdentifier
		if p.Version != "" {
			meta += "  v" + p.Version
		}
		if p.SourceType != "" {
			meta += "  [" + string(p.SourceType) + "]"
		}
		if p.HasScripts {
			meta += "  " + IconScroll
		}

		row := fmt.Sprintf("%s%s%s  %s", marker, SafeIcon(providerGlyph(p.Icon)), p.Name, providerMetaStyle.Render(meta))
		if i == m.selectedIndex {
			row = selectedProviderRowStyle.Width(innerWidth).Render(
				fmt.Sprintf("%s%s%s  %s", marker, SafeIcon(providerGlyph(p.Icon)), p.Name, meta))
		} else {
			row = providerRowStyle.Render(row)
		}
		rows = append(rows, row)
	}

	return strings.Join(rows, "\n")
}
