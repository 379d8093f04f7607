package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"toolctl/internal/skill"
	"toolctl/internal/workspace"
	"toolctl/pkg/logging"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var (
	skillJSON bool

	skillGitURL    string
	skillGitBranch string
	skillName      string
	skillPath      string

	skillUploadName string

	skillValidateWatch  bool
	skillValidateRemote bool
)

// skillCmd represents the skill command
var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage skill providers",
	Long: `Manage the skill providers installed in the workspace.

A skill is a markdown package (SKILL.md plus optional scripts) that teaches
the workspace agent a behavior. Skills install from a git repository, an
uploaded .zip archive, or a directory that already exists on the server.

Available commands:
  list      - List installed skill providers
  show      - Show one skill provider in full
  install   - Install a skill from a git repository or server path
  upload    - Upload a skill archive (.zip)
  remove    - Remove a skill provider
  validate  - Validate a SKILL.md file, directory or archive`,
}

// skillListCmd lists the installed skill providers
var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed skill providers",
	Long: `List the skill providers installed in the workspace with their
identifier, source and enablement state.`,
	Args: cobra.NoArgs,
	RunE: runSkillList,
}

// skillShowCmd shows one skill provider in full
var skillShowCmd = &cobra.Command{
	Use:   "show <provider-id>",
	Short: "Show one skill provider in full",
	Long: `Show one skill provider including its metadata, scripts and the raw
SKILL.md content.

Use 'toolctl skill list' to find provider ids.`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillShow,
}

// skillInstallCmd installs a skill from git or a server path
var skillInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install a skill from a git repository or server path",
	Long: `Install a skill provider into the workspace.

Git installs clone the repository server-side and read SKILL.md from it:
  toolctl skill install --git-url https://github.com/org/skill --branch main

Path installs read a directory that already exists on the server:
  toolctl skill install --path /srv/skills/my-skill

Exactly one of --git-url and --path must be given. A blank --branch
defaults to "main".`,
	Args: cobra.NoArgs,
	RunE: runSkillInstall,
}

// skillUploadCmd uploads a skill archive
var skillUploadCmd = &cobra.Command{
	Use:   "upload <archive.zip>",
	Short: "Upload a skill archive",
	Long: `Upload a .zip archive containing a skill package.

The archive is inspected locally first: it must contain a SKILL.md
(possibly nested one directory deep) whose frontmatter passes validation.
Nothing is uploaded when the pre-flight fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillUpload,
}

// skillRemoveCmd removes a skill provider
var skillRemoveCmd = &cobra.Command{
	Use:   "remove <provider-id>",
	Short: "Remove a skill provider",
	Long: `Remove a skill provider from the workspace.

Use 'toolctl skill list' to find provider ids.`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillRemove,
}

// skillValidateCmd validates a skill package without installing it
var skillValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a skill package",
	Long: `Validate a SKILL.md file, a skill directory, or a .zip archive without
installing anything. Local validation applies the same frontmatter rules
as the workspace backend and needs no configuration.

With --watch the path is re-validated whenever it changes, which gives a
tight edit-validate loop while authoring. With --remote the SKILL.md
content is validated by the workspace API instead of locally.`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillValidate,
}

func init() {
	rootCmd.AddCommand(skillCmd)

	// Add subcommands
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
	skillCmd.AddCommand(skillInstallCmd)
	skillCmd.AddCommand(skillUploadCmd)
	skillCmd.AddCommand(skillRemoveCmd)
	skillCmd.AddCommand(skillValidateCmd)

	// Add flags to the parent command
	skillCmd.PersistentFlags().BoolVar(&skillJSON, "json", false, "Print raw JSON instead of tables")

	skillInstallCmd.Flags().StringVar(&skillGitURL, "git-url", "", "Git repository URL to install from")
	skillInstallCmd.Flags().StringVar(&skillGitBranch, "branch", "main", "Git branch to install from")
	skillInstallCmd.Flags().StringVar(&skillName, "name", "", "Display name for the provider (defaults to the skill name)")
	skillInstallCmd.Flags().StringVar(&skillPath, "path", "", "Server-side directory to install from")

	skillUploadCmd.Flags().StringVar(&skillUploadName, "name", "", "Display name for the provider (defaults to the skill name)")

	skillValidateCmd.Flags().BoolVar(&skillValidateWatch, "watch", false, "Re-validate whenever the path changes")
	skillValidateCmd.Flags().BoolVar(&skillValidateRemote, "remote", false, "Validate via the workspace API instead of locally")
}

func runSkillList(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	providers, err := sess.catalog.SkillProviders(cmd.Context(), false)
	if err != nil {
		return err
	}

	if sess.useJSON(skillJSON) {
		return printJSON(os.Stdout, providers)
	}

	if len(providers) == 0 {
		fmt.Println("No skill providers installed.")
		fmt.Println("Install one with 'toolctl skill install' or 'toolctl skill upload'.")
		return nil
	}

	table := newTable(os.Stdout, "ID", "Name", "Identifier", "Source", "Version", "Scripts", "Status")
	for _, p := range providers {
		table.Append(p.ID, p.Name, p.SkillIdentifier, string(p.SourceType), dash(p.Version), yesNo(p.HasScripts), enabledText(p.Enabled))
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("\nTotal: %d skill providers\n", len(providers))
	return nil
}

func runSkillShow(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	detail, err := sess.catalog.SkillProviderDetail(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return fmt.Errorf("no skill provider with id %q", args[0])
		}
		return err
	}

	if sess.useJSON(skillJSON) {
		return printJSON(os.Stdout, detail)
	}

	printSkillDetail(detail)
	return nil
}

func printSkillDetail(detail *workspace.SkillProviderDetail) {
	if glyph := detail.Icon.String(); glyph != "" {
		fmt.Printf("%s %s\n", glyph, detail.Name)
	} else {
		fmt.Println(detail.Name)
	}
	fmt.Printf("  id:          %s\n", detail.ID)
	fmt.Printf("  identifier:  %s\n", detail.SkillIdentifier)
	if detail.Description != "" {
		fmt.Printf("  description: %s\n", detail.Description)
	}
	fmt.Printf("  source:      %s\n", skillSourceText(detail.SkillProvider))
	fmt.Printf("  version:     %s\n", dash(detail.Version))
	if detail.Author != "" {
		fmt.Printf("  author:      %s\n", detail.Author)
	}
	if detail.License != "" {
		fmt.Printf("  license:     %s\n", detail.License)
	}
	fmt.Printf("  status:      %s\n", enabledText(detail.Enabled))

	if len(detail.Scripts) > 0 {
		fmt.Printf("\nScripts (%d):\n", len(detail.Scripts))
		for _, s := range detail.Scripts {
			if s.Description != "" {
				fmt.Printf("  %s (%s) - %s\n", s.Path, s.Language, s.Description)
			} else {
				fmt.Printf("  %s (%s)\n", s.Path, s.Language)
			}
		}
	}

	if detail.FullContent != "" {
		fmt.Println("\nSKILL.md:")
		fmt.Println(detail.FullContent)
	}
}

// skillSourceText renders the provider source as "type (url)" when a source
// URL is known.
func skillSourceText(p workspace.SkillProvider) string {
	if p.SourceURL != "" {
		return fmt.Sprintf("%s (%s)", p.SourceType, p.SourceURL)
	}
	return string(p.SourceType)
}

func runSkillInstall(cmd *cobra.Command, args []string) error {
	gitURL := strings.TrimSpace(skillGitURL)
	path := strings.TrimSpace(skillPath)

	if gitURL == "" && path == "" {
		return fmt.Errorf("either --git-url or --path is required")
	}
	if gitURL != "" && path != "" {
		return fmt.Errorf("--git-url and --path are mutually exclusive")
	}

	req := workspace.InstallSkillRequest{Name: strings.TrimSpace(skillName)}
	if gitURL != "" {
		branch := strings.TrimSpace(skillGitBranch)
		if branch == "" {
			branch = "main"
		}
		req.SourceType = skill.SourceGit
		req.GitURL = gitURL
		req.GitBranch = branch
	} else {
		req.SourceType = skill.SourcePath
		req.Path = path
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	result, err := sess.catalog.InstallSkill(cmd.Context(), req)
	if err != nil {
		return err
	}
	sess.catalog.InvalidateSkillProviders()

	if sess.useJSON(skillJSON) {
		return printJSON(os.Stdout, result)
	}

	successf("Installed %q (id %s)", result.Name, result.ID)
	if result.SkillIdentifier != "" {
		fmt.Printf("  identifier: %s\n", result.SkillIdentifier)
	}
	return nil
}

func runSkillUpload(cmd *cobra.Command, args []string) error {
	archivePath := args[0]

	if !strings.HasSuffix(archivePath, ".zip") {
		return fmt.Errorf("only .zip archives can be uploaded, got %q", filepath.Base(archivePath))
	}

	// Pre-flight locally so broken archives never leave the machine.
	content, err := skill.InspectArchive(archivePath)
	if err != nil {
		return fmt.Errorf("archive failed validation: %w", err)
	}
	if err := skill.Validate(content.Metadata); err != nil {
		return fmt.Errorf("archive failed validation: %w", err)
	}

	data, err := os.ReadFile(archivePath)
	if err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	result, err := sess.catalog.UploadSkill(cmd.Context(), filepath.Base(archivePath), data, strings.TrimSpace(skillUploadName))
	if err != nil {
		return err
	}
	sess.catalog.InvalidateSkillProviders()

	if sess.useJSON(skillJSON) {
		return printJSON(os.Stdout, result)
	}

	successf("Uploaded %q (id %s)", result.Name, result.ID)
	if result.SkillIdentifier != "" {
		fmt.Printf("  identifier: %s\n", result.SkillIdentifier)
	}
	return nil
}

func runSkillRemove(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	id := args[0]
	if err := sess.catalog.DeleteSkillProvider(cmd.Context(), id); err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return fmt.Errorf("no skill provider with id %q", id)
		}
		return err
	}
	sess.catalog.InvalidateSkillProviders()

	successf("Removed skill provider %s", id)
	return nil
}

func runSkillValidate(cmd *cobra.Command, args []string) error {
	target := args[0]

	// Local validation must work without any configuration, so a session
	// is only built when the server does the validating.
	var sess *session
	if skillValidateRemote {
		var err error
		sess, err = newSession()
		if err != nil {
			return err
		}
	}

	verdict := validateTarget(cmd.Context(), sess, target)
	printValidation(target, verdict)

	if !skillValidateWatch {
		if !verdict.Valid {
			return fmt.Errorf("validation failed")
		}
		return nil
	}

	return watchValidate(cmd.Context(), sess, target)
}

// validateTarget validates whatever the path points at: a .zip archive, a
// skill directory, or a SKILL.md file.
func validateTarget(ctx context.Context, sess *session, target string) workspace.ValidationResult {
	info, err := os.Stat(target)
	if err != nil {
		return workspace.ValidationResult{Error: err.Error()}
	}

	if !info.IsDir() && strings.HasSuffix(target, ".zip") {
		content, err := skill.InspectArchive(target)
		if err != nil {
			return workspace.ValidationResult{Error: err.Error()}
		}
		return localVerdict(content.Metadata)
	}

	raw, err := readSkillContent(target, info.IsDir())
	if err != nil {
		return workspace.ValidationResult{Error: err.Error()}
	}

	if sess != nil {
		result, err := sess.catalog.ValidateSkillContent(ctx, raw)
		if err != nil {
			return workspace.ValidationResult{Error: err.Error()}
		}
		return *result
	}

	meta, _, err := skill.Parse(raw)
	if err != nil {
		return workspace.ValidationResult{Error: err.Error()}
	}
	return localVerdict(meta)
}

// readSkillContent loads the raw SKILL.md, descending into a directory tree
// when the target is a directory.
func readSkillContent(target string, isDir bool) (string, error) {
	path := target
	if isDir {
		dir := skill.FindSkillDir(target)
		if dir == "" {
			return "", fmt.Errorf("no SKILL.md found under %s", target)
		}
		path = filepath.Join(dir, "SKILL.md")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// localVerdict runs the backend's validation rules over parsed metadata.
func localVerdict(meta skill.Metadata) workspace.ValidationResult {
	if err := skill.Validate(meta); err != nil {
		return workspace.ValidationResult{
			Name:        meta.Name,
			Description: meta.Description,
			Error:       err.Error(),
		}
	}
	return workspace.ValidationResult{
		Valid:       true,
		Name:        meta.Name,
		Description: meta.Description,
	}
}

func printValidation(target string, verdict workspace.ValidationResult) {
	if skillJSON {
		printJSON(os.Stdout, verdict) //nolint:errcheck
		return
	}

	if verdict.Valid {
		successf("%s is a valid skill package", target)
		if verdict.Name != "" {
			fmt.Printf("  name:        %s\n", verdict.Name)
		}
		if verdict.Description != "" {
			fmt.Printf("  description: %s\n", truncate(verdict.Description, 80))
		}
		return
	}

	failuref("%s failed validation", target)
	if verdict.Error != "" {
		fmt.Printf("  %s\n", verdict.Error)
	}
}

// validateDebounce coalesces the burst of fsnotify events editors fire on
// every save.
const validateDebounce = 200 * time.Millisecond

// watchValidate re-runs validation whenever the target changes, until the
// context is canceled or the process is interrupted.
func watchValidate(ctx context.Context, sess *session, target string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory: editors replace files on save and a watch
	// on the file itself dies with the old inode.
	watchPath := filepath.Dir(target)
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		watchPath = target
	}
	if err := watcher.Add(watchPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", watchPath, err)
	}

	fmt.Fprintf(os.Stderr, "Watching %s for changes (Ctrl+C to stop)\n", target)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sigChan:
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn("Validate", "Watcher error: %v", err)
		case _, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if timer == nil {
				timer = time.NewTimer(validateDebounce)
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(validateDebounce)
		case <-timerChan(timer):
			timer = nil
			printValidation(target, validateTarget(ctx, sess, target))
		}
	}
}

// timerChan returns the timer's channel, or a nil channel (which blocks
// forever) when no timer is pending.
func timerChan(timer *time.Timer) <-chan time.Time {
	if timer == nil {
		return nil
	}
	return timer.C
}
