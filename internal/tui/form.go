package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"toolctl/internal/skill"
	"toolctl/internal/workspace"
)

// formPhase is the lifecycle state of the install form. Phases are mutually
// exclusive so an in-flight submission and an editable form cannot coexist.
type formPhase int

const (
	// formIdle means the overlay is closed.
	formIdle formPhase = iota
	// formEditing means the overlay is open and accepting input.
	formEditing
	// formSubmitting means a request is in flight; the submit key is inert.
	formSubmitting
	// formFailed means the last submit attempt failed; failMessage explains
	// it. Any edit key returns the form to formEditing.
	formFailed
)

// String makes formPhase satisfy the fmt.Stringer interface.
func (p formPhase) String() string {
	switch p {
	case formIdle:
		return "Idle"
	case formEditing:
		return "Editing"
	case formSubmitting:
		return "Submitting"
	case formFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// formTab selects between the two install sources.
type formTab int

const (
	tabGit formTab = iota
	tabUpload
)

// String makes formTab satisfy the fmt.Stringer interface.
func (t formTab) String() string {
	switch t {
	case tabGit:
		return "Git Repository"
	case tabUpload:
		return "Upload Archive"
	default:
		return "Unknown"
	}
}

// installForm holds everything the install overlay needs. Both tabs keep
// their field values while the overlay is open; switching tabs loses
// nothing. Values are discarded only when the overlay closes.
type installForm struct {
	phase       formPhase
	failMessage string // Explains the failure; meaningful only in formFailed.
	tab         formTab
	focusIndex  int // Index into the active tab's field list.

	// Git tab fields.
	gitURL    textinput.Model
	gitBranch textinput.Model
	gitName   textinput.Model

	// Upload tab fields.
	uploadPath textinput.Model
	uploadName textinput.Model

	// Attached archive, set by attach(). Cleared when the overlay closes.
	attachedName string
	attachedData []byte
}

// newInstallForm builds the form with all inputs blurred and the overlay
// closed.
func newInstallForm() installForm {
	gitURL := textinput.New()
	gitURL.Placeholder = "https://github.com/org/skill-pack.git"
	gitURL.CharLimit = 512
	gitURL.Width = 48

	gitBranch := textinput.New()
	gitBranch.Placeholder = "main"
	gitBranch.CharLimit = 128
	gitBranch.Width = 24

	gitName := textinput.New()
	gitName.Placeholder = "optional display name"
	gitName.CharLimit = 128
	gitName.Width = 32

	uploadPath := textinput.New()
	uploadPath.Placeholder = "/path/to/skill-pack.zip"
	uploadPath.CharLimit = 512
	uploadPath.Width = 48

	uploadName := textinput.New()
	uploadName.Placeholder = "optional display name"
	uploadName.CharLimit = 128
	uploadName.Width = 32

	return installForm{
		phase:      formIdle,
		tab:        tabGit,
		gitURL:     gitURL,
		gitBranch:  gitBranch,
		gitName:    gitName,
		uploadPath: uploadPath,
		uploadName: uploadName,
	}
}

// open switches the form into editing and focuses the first field of the
// current tab.
func (f *installForm) open() {
	f.phase = formEditing
	f.failMessage = ""
	f.focusIndex = 0
	f.refocus()
}

// close resets every field and attached-file state and returns the form to
// idle. Called when the overlay is dismissed or after a successful install.
func (f *installForm) close() {
	fresh := newInstallForm()
	*f = fresh
}

// fields returns pointers to the active tab's inputs in focus order.
func (f *installForm) fields() []*textinput.Model {
	switch f.tab {
	case tabUpload:
		return []*textinput.Model{&f.uploadPath, &f.uploadName}
	default:
		return []*textinput.Model{&f.gitURL, &f.gitBranch, &f.gitName}
	}
}

// refocus blurs every input, then focuses the one at focusIndex.
func (f *installForm) refocus() {
	f.gitURL.Blur()
	f.gitBranch.Blur()
	f.gitName.Blur()
	f.uploadPath.Blur()
	f.uploadName.Blur()

	fields := f.fields()
	if f.focusIndex < 0 || f.focusIndex >= len(fields) {
		f.focusIndex = 0
	}
	fields[f.focusIndex].Focus()
}

// nextField advances focus to the next input on the active tab, wrapping
// around at the end.
func (f *installForm) nextField() {
	f.focusIndex = (f.focusIndex + 1) % len(f.fields())
	f.refocus()
}

// switchTab toggles between the git and upload tabs. Field values of the
// inactive tab are preserved.
func (f *installForm) switchTab() {
	if f.tab == tabGit {
		f.tab = tabUpload
	} else {
		f.tab = tabGit
	}
	f.focusIndex = 0
	f.refocus()
}

// markEditing clears a failed phase once the user edits again. Editing and
// submitting phases pass through unchanged.
func (f *installForm) markEditing() {
	if f.phase == formFailed {
		f.phase = formEditing
		f.failMessage = ""
	}
}

// markFailed records a failed submission attempt. Field values stay intact
// so the user can correct and retry.
func (f *installForm) markFailed(message string) {
	f.phase = formFailed
	f.failMessage = message
}

// attach validates and reads the archive at path. The attached-file state is
// updated only when every check passes; a rejected path leaves any earlier
// attachment in place.
func (f *installForm) attach(path string) error {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return fmt.Errorf("no archive path given")
	}
	base := filepath.Base(trimmed)
	if !strings.HasSuffix(strings.ToLower(base), ".zip") {
		return fmt.Errorf("%s is not a .zip archive", base)
	}
	info, err := os.Stat(trimmed)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", trimmed, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a .zip archive", trimmed)
	}
	data, err := os.ReadFile(trimmed)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", trimmed, err)
	}
	f.attachedName = base
	f.attachedData = data
	return nil
}

// gitRequest validates the git tab and builds the install payload. A blank
// branch falls back to "main"; a blank display name is omitted from the
// payload entirely.
func (f *installForm) gitRequest() (workspace.InstallSkillRequest, error) {
	url := strings.TrimSpace(f.gitURL.Value())
	if url == "" {
		return workspace.InstallSkillRequest{}, fmt.Errorf("repository URL is required")
	}
	branch := strings.TrimSpace(f.gitBranch.Value())
	if branch == "" {
		branch = "main"
	}
	return workspace.InstallSkillRequest{
		SourceType: skill.SourceGit,
		GitURL:     url,
		GitBranch:  branch,
		Name:       strings.TrimSpace(f.gitName.Value()),
	}, nil
}

// uploadRequest validates the upload tab and returns the attached archive
// plus the optional display name.
func (f *installForm) uploadRequest() (filename string, content []byte, name string, err error) {
	if f.attachedName == "" || len(f.attachedData) == 0 {
		return "", nil, "", fmt.Errorf("attach a .zip archive before submitting")
	}
	return f.attachedName, f.attachedData, strings.TrimSpace(f.uploadName.Value()), nil
}
