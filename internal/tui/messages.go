package tui

import (
	"toolctl/internal/cache"
	"toolctl/internal/workspace"
	"toolctl/pkg/logging"
)

// Define messages for Bubble Tea

// providersLoadedMsg carries the result of a skill provider list fetch.
type providersLoadedMsg struct {
	providers []workspace.SkillProvider // Fetched providers; nil on error.
	err       error                     // Error encountered while fetching, if any.
}

// toolProvidersLoadedMsg carries the cross-type provider catalog used by the
// tool summary strip.
type toolProvidersLoadedMsg struct {
	providers []workspace.ToolProvider
	err       error
}

// detailLoadedMsg carries the result of a lazily fetched provider detail.
type detailLoadedMsg struct {
	providerID string                         // Provider the fetch was issued for.
	detail     *workspace.SkillProviderDetail // Fetched detail; nil on error.
	err        error                          // Error encountered while fetching, if any.
}

// installCompletedMsg reports the outcome of a git install or archive upload.
type installCompletedMsg struct {
	result *workspace.InstallResult // Install result on success; nil otherwise.
	upload bool                     // True when the submission went through the upload endpoint.
	err    error                    // Error returned by the workspace, if any.
}

// deleteCompletedMsg reports the outcome of a provider delete.
type deleteCompletedMsg struct {
	providerID string // Provider that was deleted.
	name       string // Display name for the status message.
	err        error  // Error returned by the workspace, if any.
}

// clipboardCopiedMsg reports the outcome of copying a provider's source URL.
type clipboardCopiedMsg struct {
	value string // The text that was copied.
	err   error  // Clipboard error, if any.
}

// logEntryMsg wraps a structured log entry received on the TUI log channel.
type logEntryMsg struct {
	entry logging.LogEntry
}

// logChannelClosedMsg signals that the logging channel has been closed and
// the reader loop should stop.
type logChannelClosedMsg struct{}

// cacheEventMsg wraps a store notification received on the cache
// subscription channel. Invalidation events drive list refetches.
type cacheEventMsg struct {
	event cache.Event
}

// cacheSubscriptionClosedMsg signals that the cache subscription channel has
// been closed and the listener loop should stop.
type cacheSubscriptionClosedMsg struct{}

// clearStatusBarMsg signals that the status bar message should be cleared,
// unless a newer message has since replaced it.
type clearStatusBarMsg struct{}
