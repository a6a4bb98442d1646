package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/registry"
)

func listCmd(reg *registry.Registry, root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered days with input and answer availability",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}

			stored, err := ws.answers.Load()
			if err != nil && !errors.Is(err, domain.ErrNoAnswers) {
				return err
			}

			w := cmd.OutOrStdout()
			th := newTheme(w)

			fmt.Fprintf(w, "Workspace: %s\n\n", ws.root)
			for _, id := range reg.IDs() {
				input := th.Warn.Render("missing")
				if ws.inputs.Exists(id) {
					input = th.OK.Render("ok")
				}

				saved := 0
				for _, p := range domain.Parts {
					if _, ok := stored[domain.Key{Day: id, Part: p}]; ok {
						saved++
					}
				}

				fmt.Fprintf(w, "- Day %02d  input: %s  answers: %d/%d\n", id, input, saved, len(domain.Parts))
			}
			return nil
		},
	}
}
