package tui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"toolctl/internal/cache"
	"toolctl/internal/catalog"
	"toolctl/internal/workspace"
	"toolctl/pkg/logging"
)

// The commands in this file wrap catalog calls in tea.Cmd closures. All
// network work happens here so Update never blocks; request timeouts are
// enforced by the workspace client itself.

// loadProvidersCmd fetches the installed skill providers. With refresh set
// the cached collection is bypassed.
func loadProvidersCmd(svc *catalog.Service, refresh bool) tea.Cmd {
	return func() tea.Msg {
		providers, err := svc.SkillProviders(context.Background(), refresh)
		return providersLoadedMsg{providers: providers, err: err}
	}
}

// loadToolSummaryCmd fetches the cross-type provider catalog for the tool
// summary strip.
func loadToolSummaryCmd(svc *catalog.Service, refresh bool) tea.Cmd {
	return func() tea.Msg {
		providers, err := svc.ToolProviders(context.Background(), refresh)
		return toolProvidersLoadedMsg{providers: providers, err: err}
	}
}

// loadDetailCmd lazily fetches the detail for one provider.
func loadDetailCmd(svc *catalog.Service, providerID string) tea.Cmd {
	return func() tea.Msg {
		detail, err := svc.SkillProviderDetail(context.Background(), providerID)
		return detailLoadedMsg{providerID: providerID, detail: detail, err: err}
	}
}

// deleteProviderCmd removes a skill provider from the workspace.
func deleteProviderCmd(svc *catalog.Service, providerID, name string) tea.Cmd {
	return func() tea.Msg {
		err := svc.DeleteSkillProvider(context.Background(), providerID)
		return deleteCompletedMsg{providerID: providerID, name: name, err: err}
	}
}

// submitInstallCmd installs a skill package from a git repository.
func submitInstallCmd(svc *catalog.Service, req workspace.InstallSkillRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := svc.InstallSkill(context.Background(), req)
		return installCompletedMsg{result: result, err: err}
	}
}

// submitUploadCmd installs a skill package from an attached zip archive.
func submitUploadCmd(svc *catalog.Service, filename string, content []byte, name string) tea.Cmd {
	return func() tea.Msg {
		result, err := svc.UploadSkill(context.Background(), filename, content, name)
		return installCompletedMsg{result: result, upload: true, err: err}
	}
}

// copyToClipboardCmd writes a value to the system clipboard.
func copyToClipboardCmd(value string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(value)
		return clipboardCopiedMsg{value: value, err: err}
	}
}

// listenForLogsCmd forwards the next structured log entry from the logging
// channel. The handler re-issues the command to keep the loop alive.
func listenForLogsCmd(ch <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return logChannelClosedMsg{}
		}
		return logEntryMsg{entry: entry}
	}
}

// waitForCacheEventCmd forwards the next cache store notification. The
// handler re-issues the command to keep the loop alive.
func waitForCacheEventCmd(sub *cache.Subscription) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-sub.Channel
		if !ok {
			return cacheSubscriptionClosedMsg{}
		}
		return cacheEventMsg{event: event}
	}
}
