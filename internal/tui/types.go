package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"toolctl/internal/cache"
	"toolctl/internal/catalog"
	"toolctl/internal/workspace"
	"toolctl/pkg/logging"
)

// AppMode defines the overall state or view of the application.
// NOTE: The ordering MUST stay in sync with the String() method.
type AppMode int

const (
	// ModeInitializing is the state before the first provider list arrives.
	ModeInitializing AppMode = iota
	// ModeBrowse is the dashboard: provider list, filter line, catalog strip.
	ModeBrowse
	// ModeInstallForm shows the two-tab install overlay.
	ModeInstallForm
	// ModeConfirmDelete asks before removing the selected provider.
	ModeConfirmDelete
	// ModeDetail shows the provider detail drawer.
	ModeDetail
	// ModeHelp shows the keybinding overlay.
	ModeHelp
	// ModeLog shows the full-screen activity log.
	ModeLog
	// ModeQuitting is active while the application shuts down.
	ModeQuitting
)

// String makes AppMode satisfy the fmt.Stringer interface.
func (a AppMode) String() string {
	switch a {
	case ModeInitializing:
		return "Initializing"
	case ModeBrowse:
		return "Browse"
	case ModeInstallForm:
		return "InstallForm"
	case ModeConfirmDelete:
		return "ConfirmDelete"
	case ModeDetail:
		return "Detail"
	case ModeHelp:
		return "Help"
	case ModeLog:
		return "Log"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType selects the status bar styling for a message.
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Misc. shared constants.
const (
	// maxActivityLogLines caps the in-memory activity log.
	maxActivityLogLines = 200
	// minHeightForInlineLog hides the inline log panel on short terminals;
	// the full log stays reachable through the overlay.
	minHeightForInlineLog = 30
)

// detailState holds the lazily fetched provider detail shown in the drawer.
type detailState struct {
	providerID string                         // Provider the drawer was opened for.
	loading    bool                           // True while the fetch is in flight.
	detail     *workspace.SkillProviderDetail // Fetched detail; nil while loading or absent.
}

// model represents the state of the entire TUI application.
type model struct {
	svc *catalog.Service // Query/mutation facade used by every command.

	// --- Collections ---
	providers     []workspace.SkillProvider // Installed skill providers, last fetch.
	toolProviders []workspace.ToolProvider  // Cross-type catalog for the summary strip.
	providersErr  error                     // Last provider list fetch error, if any.

	// --- Selection & Filtering ---
	selectedIndex   int             // Index into the filtered provider list.
	pendingSelectID string          // Provider id to select after the next list load.
	filterInput     textinput.Model // Filter line; focused while the user types a query.

	// --- Overlays ---
	form              installForm    // Install form state machine.
	confirmDeleteID   string         // Provider id pending delete confirmation.
	confirmDeleteName string         // Display name for the confirmation prompt.
	detail            detailState    // Detail drawer state.
	detailViewport    viewport.Model // Scrollable SKILL.md preview.
	logViewport       viewport.Model // Full-screen log overlay viewport.

	// --- UI State & Output ---
	activityLog   []string // Global activity log lines.
	width, height int      // Terminal dimensions.
	ready         bool     // True after the first WindowSizeMsg.
	isLoading     bool     // True while the provider list loads.
	spinner       spinner.Model

	// --- Status Bar ---
	statusBarMessage     string        // Status bar text.
	statusBarMessageType MessageType   // Status bar message type for styling.
	statusBarClearCancel chan struct{} // Cancel channel for the deferred clear.

	// --- Application Mode ---
	currentAppMode AppMode

	// --- Cache Subscription ---
	// Invalidation events drive list refetches, so every mutation path
	// converges on the same reload logic.
	cacheSub *cache.Subscription

	// --- Log Channel ---
	logChan <-chan logging.LogEntry // Entries from pkg/logging in TUI mode.

	// --- Key Map & Help ---
	keys KeyMap
	help help.Model

	quittingMessage string
}

// filteredProviders applies the current filter query to the provider list.
func (m *model) filteredProviders() []workspace.SkillProvider {
	return catalog.FilterProviders(m.providers, m.filterInput.Value())
}

// selectedProvider resolves the selection against the filtered list. An
// index outside the filtered collection yields ok=false, never a panic.
func (m *model) selectedProvider() (workspace.SkillProvider, bool) {
	filtered := m.filteredProviders()
	if m.selectedIndex < 0 || m.selectedIndex >= len(filtered) {
		return workspace.SkillProvider{}, false
	}
	return filtered[m.selectedIndex], true
}

// clampSelection keeps the selection inside the filtered list after the
// list or the query changed.
func (m *model) clampSelection() {
	count := len(m.filteredProviders())
	if count == 0 {
		m.selectedIndex = 0
		return
	}
	if m.selectedIndex >= count {
		m.selectedIndex = count - 1
	}
	if m.selectedIndex < 0 {
		m.selectedIndex = 0
	}
}
