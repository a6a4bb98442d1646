package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/infra/logger"
	"github.com/aalvaropc/advent/internal/puzzles"
	"github.com/aalvaropc/advent/internal/registry"
	"github.com/aalvaropc/advent/internal/usecase"
)

// Execute runs the command line and exits the process.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// Run executes the command line with args and returns the exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(puzzles.Registry())
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		var ee *ExitError
		if !errors.As(err, &ee) || ee.Err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
	}
	return exitCode(err)
}

type rootOptions struct {
	workspace string
	debug     bool

	part   int
	save   bool
	verify bool
	format string
	record bool
}

func newRootCmd(reg *registry.Registry) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "advent [day]",
		Short: "Run daily puzzle solutions and check them against saved answers",
		Long: `Runs every registered day, or a single day, against input/dayN/input.txt.

With --save the computed answers are merged into answers.txt; with --verify
they are compared with it and any difference makes the command fail.`,
		Example: `  advent            run every day
  advent 3 -p 2     run day 3, part 2 only
  advent --save     record answers for every day
  advent -v         check every day against answers.txt`,
		Args:          dayArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := selectionFrom(args, opts.part)
			if err != nil {
				return err
			}
			if opts.save && opts.verify {
				return usageError("--save and --verify cannot be used together")
			}
			if !validFormat(opts.format) {
				return usageError("unsupported format %q (expected pretty|json)", opts.format)
			}

			mode := domain.ModeExecute
			switch {
			case opts.save:
				mode = domain.ModeSave
			case opts.verify:
				mode = domain.ModeVerify
			}

			return runDays(cmd, reg, opts, sel, mode)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Err: err}
	})

	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .advent/logs/advent.log")

	cmd.Flags().IntVarP(&opts.part, "part", "p", 0, "Run only this part (1 or 2)")
	cmd.Flags().BoolVarP(&opts.save, "save", "s", false, "Save computed answers to the answers file")
	cmd.Flags().BoolVarP(&opts.verify, "verify", "v", false, "Verify computed answers against the answers file")
	cmd.Flags().StringVar(&opts.format, "format", formatPretty, "Output format: pretty|json")
	cmd.Flags().BoolVar(&opts.record, "record", false, "Write a JSON run artifact under the runs directory")

	cmd.AddCommand(initCmd(reg, opts))
	cmd.AddCommand(listCmd(reg, opts))
	cmd.AddCommand(versionCmd())
	return cmd
}

func dayArgs(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return usageError("expected at most one day, got %d arguments", len(args))
	}
	if len(args) == 1 {
		if _, err := parseDay(args[0]); err != nil {
			return err
		}
	}
	return nil
}

func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil || day <= 0 {
		return 0, usageError("invalid day %q: expected a positive number", s)
	}
	return day, nil
}

func selectionFrom(args []string, part int) (domain.Selection, error) {
	sel := domain.Selection{Part: domain.Part(part)}
	if part != 0 && !sel.Part.Valid() {
		return sel, usageError("invalid part %d: expected 1 or 2", part)
	}
	if len(args) == 1 {
		day, err := parseDay(args[0])
		if err != nil {
			return sel, err
		}
		sel.Day = day
	}
	return sel, nil
}

func runDays(cmd *cobra.Command, reg *registry.Registry, opts *rootOptions, sel domain.Selection, mode domain.RunMode) error {
	ws, err := loadWorkspace(opts.workspace)
	if err != nil {
		return err
	}

	stopLogging := startLogging(ws.root, opts.debug)
	defer stopLogging()

	runOpts := []usecase.RunOption{usecase.WithLogger(logger.L())}
	if opts.record || ws.cfg.History.Enabled {
		runOpts = append(runOpts, usecase.WithHistory(ws.history))
	}

	uc := usecase.NewRunDays(reg, ws.inputs, ws.answers, runOpts...)
	run, err := uc.Execute(cmd.Context(), sel, mode)
	if err != nil {
		return err
	}

	view := runView{run: run, answersFile: ws.display(ws.answers.Path())}
	if err := printRun(cmd.OutOrStdout(), cmd.ErrOrStderr(), view, opts.format); err != nil {
		return err
	}

	if !run.Passed() {
		return &ExitError{Code: ExitFailure}
	}
	return nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError("unexpected argument %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}
