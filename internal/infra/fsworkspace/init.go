package fsworkspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/infra/config"
	"github.com/aalvaropc/advent/internal/ports"
)

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init lays out a workspace: advent.yaml, an empty answers file, one input
// directory per requested day and the .gitignore entries that keep puzzle
// inputs out of version control. Existing files are left alone unless force
// is set; existing answers are never touched.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)
	cfg := spec.Config
	if cfg == (domain.Config{}) {
		cfg = domain.DefaultConfig()
	}

	dirs := []string{
		filepath.Join(root, cfg.Paths.InputsDir),
		filepath.Join(root, ".advent", "logs"),
	}
	for _, day := range spec.Days {
		if day <= 0 {
			return fmt.Errorf("invalid day %d", day)
		}
		dirs = append(dirs, filepath.Join(root, cfg.Paths.InputsDir, fmt.Sprintf("day%d", day)))
	}

	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}

	if err := ensureGitignore(root, gitignoreEntries(cfg)); err != nil {
		return err
	}

	cfgPath := filepath.Join(root, config.FileName)
	if force || !exists(cfgPath) {
		b, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfgPath, b, 0o644); err != nil {
			return err
		}
	}

	answers := filepath.Join(root, cfg.Paths.AnswersFile)
	if !exists(answers) {
		if err := os.MkdirAll(filepath.Dir(answers), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(answers, nil, 0o644); err != nil {
			return err
		}
	}

	return nil
}

func gitignoreEntries(cfg domain.Config) []string {
	runs := strings.TrimSuffix(filepath.ToSlash(cfg.Paths.RunsDir), "/") + "/"
	entries := []string{
		".advent/",
		strings.TrimSuffix(filepath.ToSlash(cfg.Paths.InputsDir), "/") + "/",
	}
	if !strings.HasPrefix(runs, ".advent/") {
		entries = append(entries, runs)
	}
	return entries
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

func ensureGitignore(root string, entries []string) error {
	const header = "# advent"

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 64)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
