package usecase

import (
	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute scaffolds root with cfg, creating input directories for days.
func (uc *InitWorkspace) Execute(root string, cfg domain.Config, days []int, force bool) error {
	return uc.initializer.Init(domain.WorkspaceSpec{Root: root, Config: cfg, Days: days}, force)
}
