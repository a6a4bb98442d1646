package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/advent/internal/domain"
)

func TestEnsureGitignore_CreatesFile(t *testing.T) {
	tmp := t.TempDir()

	if err := ensureGitignore(tmp, gitignoreEntries(domain.DefaultConfig())); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}

	s := string(b)
	for _, w := range []string{"# advent", ".advent/", "input/"} {
		if !strings.Contains(s, w) {
			t.Fatalf("expected .gitignore to contain %q, got:\n%s", w, s)
		}
	}
	if strings.Contains(s, "answers.txt") {
		t.Fatalf("answers must stay tracked, got:\n%s", s)
	}
}

func TestEnsureGitignore_AppendsMissingEntries(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")

	existing := "bin/\n# advent\ninput/\n"
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	if err := ensureGitignore(tmp, gitignoreEntries(domain.DefaultConfig())); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	s := string(b)

	if !strings.Contains(s, "bin/") {
		t.Fatalf("expected existing content preserved, got:\n%s", s)
	}
	if strings.Count(s, "# advent") != 1 {
		t.Fatalf("expected 1 header, got:\n%s", s)
	}
	if strings.Count(s, "input/") != 1 {
		t.Fatalf("expected input/ not duplicated, got:\n%s", s)
	}
	if !strings.Contains(s, ".advent/") {
		t.Fatalf("expected .advent/ appended, got:\n%s", s)
	}
}

func TestGitignoreEntries_CustomRunsDir(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Paths.RunsDir = "history"

	got := gitignoreEntries(cfg)
	if len(got) != 3 || got[2] != "history/" {
		t.Fatalf("expected history/ entry, got %v", got)
	}
}
