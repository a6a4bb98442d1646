// Package workspacefinder locates the workspace an invocation belongs to:
// the nearest directory at or above the start that holds advent.yaml.
package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/infra/config"
	"github.com/aalvaropc/advent/internal/ports"
)

type Finder struct {
	marker string
}

func NewFinder() *Finder {
	return &Finder{marker: config.FileName}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

// FindRoot returns the closest ancestor of startDir (startDir included)
// containing the marker file. startDir may also name a file inside the
// workspace.
func (f *Finder) FindRoot(startDir string) (string, error) {
	dir, err := searchStart(startDir)
	if err != nil {
		return "", err
	}

	for ; ; dir = filepath.Dir(dir) {
		if isRegular(filepath.Join(dir, f.marker)) {
			return dir, nil
		}
		if filepath.Dir(dir) == dir {
			break
		}
	}

	return "", &domain.OpError{
		Op:   "workspacefinder.find",
		Kind: domain.KindNotFound,
		Path: startDir,
		Err:  fmt.Errorf("%w: no %s at or above this directory", domain.ErrNotFound, f.marker),
	}
}

// RootOrStart returns the workspace root above startDir, or startDir itself
// when no advent.yaml exists anywhere above it.
func (f *Finder) RootOrStart(startDir string) (string, error) {
	root, err := f.FindRoot(startDir)
	if err == nil {
		return root, nil
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		return "", err
	}
	return filepath.Abs(startDir)
}

func searchStart(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.find",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("start directory is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: "workspacefinder.find", Kind: domain.KindExecution, Path: startDir, Err: err}
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return filepath.Clean(abs), nil
}

// isRegular ignores a directory that happens to carry the marker's name.
func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
