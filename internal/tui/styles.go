package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Constants for TUI behavior and internal logic.
const (
	// statusBarClearAfter defines how long a status bar message stays
	// visible before it is cleared automatically.
	statusBarClearAfter = 5 * time.Second
)

// Icons used throughout the interface.
// Ensure your terminal is configured with an emoji-capable font to see these correctly.
const (
	IconCheck     = "✔" // U+2714
	IconCross     = "❌" // U+274C
	IconWarning   = "⚠" // U+26A0 without VS16
	IconHourglass = "⏳" // U+23F3
	IconSparkles  = "✨" // U+2728 (for success messages)
	IconPackage   = "📦" // U+1F4E6 (skill providers)
	IconPlug      = "🔌" // U+1F50C (MCP servers)
	IconWrench    = "🔧" // U+1F527 (tools)
	IconScroll    = "📜" // U+1F4DC (activity log)
	IconInfo      = "ℹ" // U+2139 without VS16
	IconLink      = "🔗" // U+1F517 (source URLs)
	IconTrash     = "🗑" // U+1F5D1 without VS16
)

// Styles for the TUI, defined using the lipgloss library.
// These styles control the appearance of panels, text, borders, and backgrounds.
var (
	// appStyle defines the overall margin for the application view.
	// Zero margin so content spans the entire terminal width.
	appStyle = lipgloss.NewStyle().Margin(0, 0)

	// headerStyle is for the title bar at the top of the TUI.
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			Background(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#303030"}).
			Padding(0, 2)

	// panelStyle is the base style for rectangular panels (provider list,
	// catalog strip, inline log).
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	// panelTitleStyle is for panel headings such as "Skill Providers".
	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	// --- Provider List Styles ---
	providerRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#E0E0E0"})

	selectedProviderRowStyle = lipgloss.NewStyle().
					Bold(true).
					Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
					Background(lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#1D4ED8"})

	providerMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#606060", Dark: "#909090"})

	emptyListStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#606060", Dark: "#909090"}).
			Padding(1, 2)

	// filterPromptStyle highlights the filter line while a query is active.
	filterPromptStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#58A6FF"})

	// --- Catalog Strip Styles ---
	catalogStripStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1).
				BorderForeground(lipgloss.AdaptiveColor{Light: "#606060", Dark: "#A0A0A0"}).
				Background(lipgloss.AdaptiveColor{Light: "#F8F8F8", Dark: "#2A2A3A"}).
				Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	catalogCountStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#004400", Dark: "#8AE234"})

	// --- Activity Log Styles ---
	logLineStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	// Log level specific styles, applied per line in prepareLogContent()
	// (see render_log.go).
	logInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#E0E0E0"})
	logWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#A07000", Dark: "#FFD066"}).Bold(true)
	logErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B30000", Dark: "#FF6B6B"}).Bold(true)
	logDebugStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#606060", Dark: "#909090"}).Italic(true)

	logPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				MarginBottom(1).
				Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	// errorStyle is a general style for error messages.
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B30000", Dark: "#FF6B6B"})

	// --- Help Overlay Styles ---
	helpOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
				Background(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#222222"}).
				Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
				Padding(1, 2).
				Margin(2, 4)

	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			MarginBottom(1).
			Align(lipgloss.Center)

	helpKeyStyle = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E1E"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			Padding(0, 1).
			Margin(0, 1, 0, 0)

	// --- Log Overlay Styles (similar to Help Overlay) ---
	logOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			Background(lipgloss.AdaptiveColor{Light: "#F8F8F8", Dark: "#2A2A3A"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			Padding(1, 2)

	// --- Detail Drawer Styles ---
	detailOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#58A6FF"}).
				Background(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E1E"}).
				Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
				Padding(1, 2)

	detailFieldLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#303030", Dark: "#C0C0C0"})

	// --- Install Form Styles ---
	formOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
				Background(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E1E"}).
				Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
				Padding(1, 2)

	formTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
				Background(lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#1D4ED8"}).
				Padding(0, 2)

	formTabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#606060", Dark: "#909090"}).
				Padding(0, 2)

	formFieldLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#303030", Dark: "#C0C0C0"})

	formErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#B30000", Dark: "#FF6B6B"})

	formHintStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#606060", Dark: "#909090"})

	// --- Confirm Delete Overlay ---
	confirmOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.AdaptiveColor{Light: "#B30000", Dark: "#FF6B6B"}).
				Background(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E1E"}).
				Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
				Padding(1, 2)

	// quitKeyStyle highlights destructive key choices in prompts.
	quitKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#990000", Dark: "#FF8787"}).Bold(true)

	// --- Status Bar Styles ---
	// Color constants for status bar backgrounds.
	StatusBarDefaultBg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#374151"} // Default dark grey/blue
	StatusBarSuccessBg = lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#059669"} // Green
	StatusBarErrorBg   = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#DC2626"} // Red
	StatusBarWarningBg = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#D97706"} // Yellow/Amber
	StatusBarInfoBg    = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#2563EB"} // Blue

	// Common style for status bar text.
	StatusBarTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#F0F0F0"}).
				Padding(0, 1)

	// Base style for the status bar container; background set dynamically.
	StatusBarBaseStyle = lipgloss.NewStyle().Height(1)
)
