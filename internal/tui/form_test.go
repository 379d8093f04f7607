package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFormTabSwitchPreservesValues(t *testing.T) {
	f := newInstallForm()
	f.open()

	f.gitURL.SetValue("https://github.com/org/pack.git")
	f.gitBranch.SetValue("develop")

	f.switchTab()
	if f.tab != tabUpload {
		t.Fatalf("expected upload tab after switch, got %s", f.tab)
	}
	f.uploadPath.SetValue("/tmp/pack.zip")

	f.switchTab()
	if f.tab != tabGit {
		t.Fatalf("expected git tab after second switch, got %s", f.tab)
	}
	if got := f.gitURL.Value(); got != "https://github.com/org/pack.git" {
		t.Errorf("git URL lost across tab switches: %q", got)
	}
	if got := f.gitBranch.Value(); got != "develop" {
		t.Errorf("git branch lost across tab switches: %q", got)
	}
	if got := f.uploadPath.Value(); got != "/tmp/pack.zip" {
		t.Errorf("upload path lost across tab switches: %q", got)
	}
}

func TestFormCloseDiscardsEverything(t *testing.T) {
	f := newInstallForm()
	f.open()
	f.gitURL.SetValue("https://github.com/org/pack.git")
	f.attachedName = "pack.zip"
	f.attachedData = []byte("stale")
	f.markFailed("boom")

	f.close()

	if f.phase != formIdle {
		t.Errorf("expected idle phase after close, got %s", f.phase)
	}
	if f.gitURL.Value() != "" || f.attachedName != "" || f.attachedData != nil {
		t.Error("close must discard field values and attachment")
	}
	if f.failMessage != "" {
		t.Errorf("close must discard the failure message, got %q", f.failMessage)
	}
}

func TestAttachRejectsNonZip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := newInstallForm()
	f.attachedName = "previous.zip"
	f.attachedData = []byte("previous")

	err := f.attach(path)
	if err == nil {
		t.Fatal("expected rejection for non-zip path")
	}
	if f.attachedName != "previous.zip" || string(f.attachedData) != "previous" {
		t.Error("rejected attach must leave the previous attachment in place")
	}
}

func TestAttachRejectsMissingFile(t *testing.T) {
	f := newInstallForm()
	if err := f.attach(filepath.Join(t.TempDir(), "absent.zip")); err == nil {
		t.Fatal("expected rejection for a path that fails stat")
	}
	if f.attachedName != "" {
		t.Error("failed attach must not set the attachment")
	}
}

func TestAttachRejectsEmptyPath(t *testing.T) {
	f := newInstallForm()
	if err := f.attach("   "); err == nil {
		t.Fatal("expected rejection for blank path")
	}
}

func TestAttachRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pack.zip")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}

	f := newInstallForm()
	if err := f.attach(path); err == nil {
		t.Fatal("expected rejection for a directory path")
	}
}

func TestAttachReadsArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pack.zip")
	if err := os.WriteFile(path, []byte("PK\x03\x04data"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := newInstallForm()
	if err := f.attach(path); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if f.attachedName != "pack.zip" {
		t.Errorf("attachedName = %q, want pack.zip", f.attachedName)
	}
	if string(f.attachedData) != "PK\x03\x04data" {
		t.Errorf("attachedData = %q", f.attachedData)
	}
}

func TestGitRequestRequiresURL(t *testing.T) {
	f := newInstallForm()
	f.gitURL.SetValue("   ")
	if _, err := f.gitRequest(); err == nil {
		t.Fatal("expected error for whitespace-only URL")
	}
}

func TestGitRequestDefaultsBranchToMain(t *testing.T) {
	f := newInstallForm()
	f.gitURL.SetValue("https://x/y")
	f.gitBranch.SetValue("  ")

	req, err := f.gitRequest()
	if err != nil {
		t.Fatalf("gitRequest failed: %v", err)
	}
	if req.GitBranch != "main" {
		t.Errorf("blank branch must default to main, got %q", req.GitBranch)
	}
	if req.GitURL != "https://x/y" {
		t.Errorf("GitURL = %q", req.GitURL)
	}
	if req.Name != "" {
		t.Errorf("blank name must stay empty so it is omitted, got %q", req.Name)
	}
}

func TestUploadRequestRequiresAttachment(t *testing.T) {
	f := newInstallForm()
	f.uploadName.SetValue("My Pack")
	if _, _, _, err := f.uploadRequest(); err == nil {
		t.Fatal("expected error when no archive is attached")
	}
}

func TestUploadRequestReturnsAttachment(t *testing.T) {
	f := newInstallForm()
	f.attachedName = "pack.zip"
	f.attachedData = []byte("bytes")
	f.uploadName.SetValue("  My Pack  ")

	filename, content, name, err := f.uploadRequest()
	if err != nil {
		t.Fatalf("uploadRequest failed: %v", err)
	}
	if filename != "pack.zip" || string(content) != "bytes" {
		t.Errorf("attachment mismatch: %q %q", filename, content)
	}
	if name != "My Pack" {
		t.Errorf("display name must be trimmed, got %q", name)
	}
}

func TestMarkEditingClearsFailure(t *testing.T) {
	f := newInstallForm()
	f.open()
	f.markFailed("server said no")

	f.markEditing()
	if f.phase != formEditing {
		t.Errorf("expected editing after markEditing, got %s", f.phase)
	}
	if f.failMessage != "" {
		t.Errorf("failure message must clear, got %q", f.failMessage)
	}
}
