package skill

// SourceType identifies where a skill package came from.
type SourceType string

const (
	SourceGit    SourceType = "git"
	SourceUpload SourceType = "upload"
	SourcePath   SourceType = "path"
)

// Script describes one file found under a skill's scripts/ directory.
type Script struct {
	Name        string `json:"name" yaml:"name"`
	Path        string `json:"path" yaml:"path"`
	Language    string `json:"language" yaml:"language"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Content     string `json:"content,omitempty" yaml:"content,omitempty"`
}

// Metadata is the YAML frontmatter of a SKILL.md file.
//
// The frontmatter follows the agent-skills convention: a required name and
// description, optional license/compatibility, and an open metadata map that
// commonly carries "version" and "author". Keys we do not model explicitly
// are preserved in Extra so nothing is lost on a round trip.
type Metadata struct {
	Name          string
	Description   string
	License       string
	Compatibility string
	AllowedTools  []string
	Extra         map[string]any
}

// Version returns the "version" entry of the open metadata map, defaulting
// to "1.0.0" the way the workspace backend does on install.
func (m Metadata) Version() string {
	if v, ok := m.Extra["version"].(string); ok && v != "" {
		return v
	}
	return "1.0.0"
}

// Author returns the "author" entry of the open metadata map, if any.
func (m Metadata) Author() string {
	if a, ok := m.Extra["author"].(string); ok {
		return a
	}
	return ""
}

// Content is a fully parsed skill package.
type Content struct {
	Metadata   Metadata
	Body       string   // markdown body after the frontmatter
	Scripts    []Script // discovered under scripts/, sorted by name
	SourceHash string   // short content hash for change detection
}
