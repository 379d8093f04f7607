package skill

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseError reports a malformed SKILL.md file.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return e.Reason
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}

// languageByExt maps script extensions to the language tag the workspace
// backend reports. Files with other extensions are not treated as scripts.
var languageByExt = map[string]string{
	".py":   "python3",
	".js":   "javascript",
	".mjs":  "javascript",
	".sh":   "bash",
	".bash": "bash",
}

// Parse splits SKILL.md content into frontmatter metadata and markdown body.
//
// The file must start with a `---` line; everything up to the next `---`
// line is YAML frontmatter, the remainder is the body. The hyphenated
// `allowed-tools` key is accepted as either a space-separated string or a
// YAML list.
func Parse(content string) (Metadata, string, error) {
	frontmatter, body, ok := splitFrontmatter(content)
	if !ok {
		return Metadata{}, "", parseErrorf("invalid SKILL.md: missing YAML frontmatter (must start with ---)")
	}

	raw := map[string]any{}
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &raw); err != nil {
			return Metadata{}, "", parseErrorf("invalid YAML frontmatter: %v", err)
		}
	}

	meta := Metadata{Extra: map[string]any{}}
	meta.Name, _ = raw["name"].(string)
	meta.Description, _ = raw["description"].(string)
	meta.License, _ = raw["license"].(string)
	meta.Compatibility, _ = raw["compatibility"].(string)

	if tools, present := raw["allowed-tools"]; present {
		meta.AllowedTools = coerceToolList(tools)
	} else if tools, present := raw["allowed_tools"]; present {
		meta.AllowedTools = coerceToolList(tools)
	}

	if extra, ok := raw["metadata"].(map[string]any); ok {
		meta.Extra = extra
	}

	if meta.Name == "" {
		return Metadata{}, "", parseErrorf("invalid skill metadata: name is required")
	}
	if meta.Description == "" {
		return Metadata{}, "", parseErrorf("invalid skill metadata: description is required")
	}

	return meta, body, nil
}

// splitFrontmatter separates the YAML frontmatter block from the markdown
// body. Returns ok=false when the content does not start with a `---` line
// or the closing delimiter is missing.
func splitFrontmatter(raw string) (frontmatter, body string, ok bool) {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	if !strings.HasPrefix(raw, "---") {
		return "", "", false
	}
	first := strings.IndexByte(raw, '\n')
	if first < 0 || strings.TrimSpace(raw[:first]) != "---" {
		return "", "", false
	}

	lines := strings.Split(raw[first+1:], "\n")
	end := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			end = i
			break
		}
	}
	if end < 0 {
		return "", "", false
	}

	frontmatter = strings.Join(lines[:end], "\n")
	body = strings.TrimSpace(strings.Join(lines[end+1:], "\n"))
	return frontmatter, body, true
}

// coerceToolList accepts the two frontmatter spellings of allowed-tools:
// a space-separated string or a YAML sequence.
func coerceToolList(v any) []string {
	switch t := v.(type) {
	case string:
		return strings.Fields(t)
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// ParseDir parses a skill directory: SKILL.md plus any scripts/ files.
func ParseDir(dir string) (Content, error) {
	skillPath := filepath.Join(dir, "SKILL.md")
	data, err := os.ReadFile(skillPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Content{}, parseErrorf("no SKILL.md found in %s", dir)
		}
		return Content{}, err
	}

	meta, body, err := Parse(string(data))
	if err != nil {
		return Content{}, err
	}

	scripts, err := discoverScripts(dir)
	if err != nil {
		return Content{}, err
	}

	return Content{
		Metadata:   meta,
		Body:       body,
		Scripts:    scripts,
		SourceHash: sourceHash(string(data), scripts),
	}, nil
}

// FindSkillDir walks root looking for the first directory that contains a
// SKILL.md, root itself included. Returns "" when none is found.
func FindSkillDir(root string) string {
	if _, err := os.Stat(filepath.Join(root, "SKILL.md")); err == nil {
		return root
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return ""
	}
	// Deterministic order: os.ReadDir sorts by name.
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if found := FindSkillDir(filepath.Join(root, entry.Name())); found != "" {
			return found
		}
	}
	return ""
}

// discoverScripts lists recognized script files under dir/scripts.
func discoverScripts(dir string) ([]Script, error) {
	scriptsDir := filepath.Join(dir, "scripts")
	entries, err := os.ReadDir(scriptsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var scripts []Script
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		lang, ok := languageByExt[strings.ToLower(filepath.Ext(entry.Name()))]
		if !ok {
			continue
		}
		scripts = append(scripts, Script{
			Name:     entry.Name(),
			Path:     "scripts/" + entry.Name(),
			Language: lang,
		})
	}
	return scripts, nil
}

// sourceHash produces a short content hash for change detection: sha256 of
// the SKILL.md content followed by the script names in sorted order,
// truncated to 16 hex characters.
func sourceHash(content string, scripts []Script) string {
	names := make([]string, len(scripts))
	for i, s := range scripts {
		names[i] = s.Name
	}
	sort.Strings(names)

	h := sha256.New()
	h.Write([]byte(content))
	for _, name := range names {
		h.Write([]byte(name))
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
