package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/advent/internal/infra/config"
	"github.com/aalvaropc/advent/internal/infra/fsworkspace"
	"github.com/aalvaropc/advent/internal/registry"
	"github.com/aalvaropc/advent/internal/usecase"
)

func initCmd(reg *registry.Registry, root *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [day...]",
		Short: "Create advent.yaml, the answers file and input directories",
		Long: `Scaffolds a workspace in the current directory (or --workspace):
advent.yaml, an empty answers file, .gitignore entries and one
input/dayN directory per day. Without days, every registered day gets one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := strings.TrimSpace(root.workspace)
			if dir == "" {
				dir = "."
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return usageError("invalid workspace path: %v", err)
			}
			if err := os.MkdirAll(abs, 0o755); err != nil {
				return err
			}

			days := reg.IDs()
			if len(args) > 0 {
				days = nil
				for _, a := range args {
					d, err := parseDay(a)
					if err != nil {
						return err
					}
					days = append(days, d)
				}
			}

			cfg, err := config.Load(abs)
			if err != nil && !force {
				return err
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(abs, cfg, days, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\n", abs)
			fmt.Fprintf(cmd.OutOrStdout(), "Add puzzle inputs as %s\n", filepath.Join(cfg.Paths.InputsDir, "dayN", "input.txt"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing advent.yaml")
	return cmd
}
