package skill

import (
	"archive/zip"
	"io"
	"path"
	"sort"
	"strings"
)

// InspectArchive reads a skill zip archive without extracting it to disk
// and returns the parsed skill content. The SKILL.md may live at the
// archive root or nested inside a directory; when several candidates
// exist the shallowest one wins.
func InspectArchive(archivePath string) (Content, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return Content{}, parseErrorf("invalid zip file: %v", err)
	}
	defer zr.Close()

	return inspectZip(&zr.Reader)
}

func inspectZip(zr *zip.Reader) (Content, error) {
	entry := findSkillEntry(zr)
	if entry == nil {
		return Content{}, parseErrorf("no SKILL.md found in archive")
	}

	data, err := readZipFile(entry)
	if err != nil {
		return Content{}, parseErrorf("failed to read SKILL.md from archive: %v", err)
	}

	meta, body, err := Parse(string(data))
	if err != nil {
		return Content{}, err
	}

	scripts := archiveScripts(zr, path.Dir(entry.Name))

	return Content{
		Metadata:   meta,
		Body:       body,
		Scripts:    scripts,
		SourceHash: sourceHash(string(data), scripts),
	}, nil
}

// findSkillEntry locates the SKILL.md entry closest to the archive root.
// Ties break lexically so inspection stays deterministic.
func findSkillEntry(zr *zip.Reader) *zip.File {
	var best *zip.File
	bestDepth := -1
	for _, zf := range zr.File {
		name := strings.TrimSpace(zf.Name)
		if name == "" || zf.FileInfo().IsDir() {
			continue
		}
		if path.Base(name) != "SKILL.md" {
			continue
		}
		depth := strings.Count(name, "/")
		if best == nil || depth < bestDepth || (depth == bestDepth && name < best.Name) {
			best = zf
			bestDepth = depth
		}
	}
	return best
}

// archiveScripts lists recognized script files directly under the skill's
// scripts/ directory inside the archive.
func archiveScripts(zr *zip.Reader, skillRoot string) []Script {
	prefix := "scripts/"
	if skillRoot != "." && skillRoot != "" {
		prefix = skillRoot + "/scripts/"
	}

	var scripts []Script
	for _, zf := range zr.File {
		name := strings.TrimSpace(zf.Name)
		if name == "" || zf.FileInfo().IsDir() {
			continue
		}
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		rel := strings.TrimPrefix(name, prefix)
		if rel == "" || strings.Contains(rel, "/") {
			continue
		}
		lang, ok := languageByExt[strings.ToLower(path.Ext(rel))]
		if !ok {
			continue
		}
		scripts = append(scripts, Script{
			Name:     rel,
			Path:     "scripts/" + rel,
			Language: lang,
		})
	}
	sort.Slice(scripts, func(i, j int) bool { return scripts[i].Name < scripts[j].Name })
	return scripts
}

func readZipFile(zf *zip.File) ([]byte, error) {
	rc, err := zf.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
