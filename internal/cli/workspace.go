package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/infra/answerstore"
	"github.com/aalvaropc/advent/internal/infra/config"
	"github.com/aalvaropc/advent/internal/infra/inputfs"
	"github.com/aalvaropc/advent/internal/infra/logger"
	"github.com/aalvaropc/advent/internal/infra/runstore"
	"github.com/aalvaropc/advent/internal/infra/workspacefinder"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	inputs  *inputfs.Loader
	answers *answerstore.FileStore
	history *runstore.JSONStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		inputs:  inputfs.NewLoader(root, inputfs.WithInputsDir(cfg.Paths.InputsDir)),
		answers: answerstore.NewFileStore(inRoot(root, cfg.Paths.AnswersFile)),
		history: runstore.NewJSONStore(root, cfg, runstore.WithIndex(true)),
	}, nil
}

// resolveWorkspaceRoot prefers the explicit flag, then the nearest
// advent.yaml above the working directory, then the working directory.
func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", usageError("invalid workspace path: %v", err)
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return "", usageError("workspace %q is not a directory", w)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return workspacefinder.NewFinder().RootOrStart(wd)
}

func inRoot(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// display shortens p relative to the workspace root for messages.
func (ws *workspaceCtx) display(p string) string {
	rel, err := filepath.Rel(ws.root, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return p
	}
	return rel
}

// startLogging installs the file logger for the workspace. Logging is best
// effort: a workspace we cannot write logs into still runs.
func startLogging(root string, debug bool) func() {
	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: debug})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}
