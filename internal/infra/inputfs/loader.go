package inputfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/ports"
)

const defaultFileName = "input.txt"

// Loader reads puzzle inputs laid out as <root>/<inputsDir>/day<N>/input.txt.
type Loader struct {
	rootDir   string
	inputsDir string
	fileName  string
}

type Option func(*Loader)

func WithInputsDir(dir string) Option {
	return func(l *Loader) {
		if dir != "" {
			l.inputsDir = dir
		}
	}
}

// WithFileName overrides the per-day file name (default input.txt).
func WithFileName(name string) Option {
	return func(l *Loader) {
		if name != "" {
			l.fileName = name
		}
	}
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{
		rootDir:   root,
		inputsDir: "input",
		fileName:  defaultFileName,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.InputLoader = (*Loader)(nil)

// Path returns where the input for day is expected.
func (l *Loader) Path(day int) string {
	dir := l.inputsDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(l.rootDir, dir)
	}
	return filepath.Join(dir, fmt.Sprintf("day%d", day), l.fileName)
}

// Exists reports whether the input for day is present.
func (l *Loader) Exists(day int) bool {
	info, err := os.Stat(l.Path(day))
	return err == nil && !info.IsDir()
}

func (l *Loader) LoadInput(day int) (string, error) {
	path := l.Path(day)

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &domain.OpError{
				Op:   "inputfs.load",
				Kind: domain.KindInputNotFound,
				Path: path,
				Err:  fmt.Errorf("did you forget to add %s?", l.relPath(path)),
			}
		}
		return "", &domain.OpError{
			Op:   "inputfs.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return string(b), nil
}

func (l *Loader) relPath(path string) string {
	rel, err := filepath.Rel(l.rootDir, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
