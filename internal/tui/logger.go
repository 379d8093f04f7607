package tui

import "fmt"

// The functions in this file provide a unified way for all handlers and
// background goroutines to append messages to the activity log while
// ensuring length limits and a consistent prefix format. Having them as
// methods on *model keeps access to shared state simple and avoids the need
// for a separate logger instance.

// LogInfo appends an informational message to the activity log.
func (m *model) LogInfo(format string, a ...interface{}) {
	m.appendLogLine("[INFO] " + fmt.Sprintf(format, a...))
}

// LogDebug appends a debug-level message to the activity log.
func (m *model) LogDebug(format string, a ...interface{}) {
	m.appendLogLine("[DEBUG] " + fmt.Sprintf(format, a...))
}

// LogWarn appends a warning message to the activity log.
func (m *model) LogWarn(format string, a ...interface{}) {
	m.appendLogLine("[WARN] " + fmt.Sprintf(format, a...))
}

// LogError appends an error message to the activity log.
func (m *model) LogError(format string, a ...interface{}) {
	m.appendLogLine("[ERROR] " + fmt.Sprintf(format, a...))
}

// appendLogLine performs the actual slice append and enforces the
// maxActivityLogLines invariant.
func (m *model) appendLogLine(line string) {
	if m == nil {
		return
	}
	m.activityLog = append(m.activityLog, line)
	if len(m.activityLog) > maxActivityLogLines {
		m.activityLog = m.activityLog[len(m.activityLog)-maxActivityLogLines:]
	}
}
