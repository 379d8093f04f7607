package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// printJSON renders v as indented JSON for --json mode.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTable builds the standard listing table: centered headers,
// left-aligned rows.
func newTable(w io.Writer, headers ...string) *tablewriter.Table {
	cnf := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(cnf))
	table.Header(headers)
	return table
}

// successf prints a green check followed by the formatted message.
func successf(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, args...))
}

// failuref prints a red cross followed by the formatted message.
func failuref(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", color.RedString("✗"), fmt.Sprintf(format, args...))
}

// enabledText renders an enablement flag with the usual color accents.
func enabledText(enabled bool) string {
	if enabled {
		return color.GreenString("enabled")
	}
	return color.YellowString("disabled")
}

// authStatusText renders an MCP provider auth status. Unknown statuses pass
// through uncolored.
func authStatusText(status string) string {
	switch status {
	case "authorized":
		return color.GreenString(status)
	case "pending":
		return color.YellowString(status)
	case "unauthorized":
		return color.RedString(status)
	default:
		return status
	}
}

// yesNo renders a boolean for table cells.
func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// dash substitutes empty optional fields in table cells.
func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncate flattens newlines and shortens a cell to width display columns.
func truncate(s string, width int) string {
	return runewidth.Truncate(strings.ReplaceAll(s, "\n", " "), width, "…")
}
