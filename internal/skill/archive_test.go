package skill

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildZip writes a zip archive with the given entries into a temp dir and
// returns its path.
func buildZip(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skill.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, body := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func TestInspectArchive_RootLevelSkill(t *testing.T) {
	path := buildZip(t, map[string]string{
		"SKILL.md":           sampleSkill,
		"scripts/analyze.py": "print('hi')",
		"scripts/readme.txt": "skip me",
	})

	content, err := InspectArchive(path)
	require.NoError(t, err)
	assert.Equal(t, "data-analyzer", content.Metadata.Name)
	require.Len(t, content.Scripts, 1)
	assert.Equal(t, "analyze.py", content.Scripts[0].Name)
	assert.Equal(t, "python3", content.Scripts[0].Language)
	assert.Len(t, content.SourceHash, 16)
}

func TestInspectArchive_NestedSkill(t *testing.T) {
	path := buildZip(t, map[string]string{
		"my-skill/SKILL.md":       sampleSkill,
		"my-skill/scripts/run.sh": "echo run",
		"my-skill/docs/extra.md":  "docs",
	})

	content, err := InspectArchive(path)
	require.NoError(t, err)
	assert.Equal(t, "data-analyzer", content.Metadata.Name)
	require.Len(t, content.Scripts, 1)
	assert.Equal(t, "scripts/run.sh", content.Scripts[0].Path)
	assert.Equal(t, "bash", content.Scripts[0].Language)
}

func TestInspectArchive_ShallowestSkillWins(t *testing.T) {
	rootSkill := "---\nname: root-skill\ndescription: Lives at the top.\n---\nRoot."
	path := buildZip(t, map[string]string{
		"SKILL.md":        rootSkill,
		"deeper/SKILL.md": sampleSkill,
	})

	content, err := InspectArchive(path)
	require.NoError(t, err)
	assert.Equal(t, "root-skill", content.Metadata.Name)
}

func TestInspectArchive_ScriptsOutsideSkillRootIgnored(t *testing.T) {
	path := buildZip(t, map[string]string{
		"bundle/SKILL.md":   sampleSkill,
		"scripts/stray.py":  "print('stray')",
		"bundle/scripts/ok": "no extension",
	})

	content, err := InspectArchive(path)
	require.NoError(t, err)
	assert.Empty(t, content.Scripts)
}

func TestInspectArchive_NoSkillFile(t *testing.T) {
	path := buildZip(t, map[string]string{"README.md": "nothing to see"})

	_, err := InspectArchive(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no SKILL.md found in archive")
}

func TestInspectArchive_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-zip.zip")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0644))

	_, err := InspectArchive(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid zip file")
}

func TestInspectArchive_InvalidFrontmatter(t *testing.T) {
	path := buildZip(t, map[string]string{"SKILL.md": "no frontmatter here"})

	_, err := InspectArchive(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing YAML frontmatter")
}
