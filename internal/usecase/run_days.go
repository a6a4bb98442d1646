package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/ports"
	"github.com/aalvaropc/advent/internal/registry"
	"github.com/aalvaropc/advent/internal/usecase/verify"
)

// RunDays executes registered days against their inputs and optionally
// saves or verifies the answers.
type RunDays struct {
	registry *registry.Registry
	inputs   ports.InputLoader
	answers  ports.AnswerStore
	history  ports.RunHistory
	log      *slog.Logger
	now      func() time.Time
}

type RunOption func(*RunDays)

// WithHistory hands every finished report to h.
func WithHistory(h ports.RunHistory) RunOption {
	return func(uc *RunDays) { uc.history = h }
}

func WithLogger(l *slog.Logger) RunOption {
	return func(uc *RunDays) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) RunOption {
	return func(uc *RunDays) { uc.now = now }
}

func NewRunDays(reg *registry.Registry, inputs ports.InputLoader, answers ports.AnswerStore, opts ...RunOption) *RunDays {
	uc := &RunDays{
		registry: reg,
		inputs:   inputs,
		answers:  answers,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs the selection. Per-day failures are recorded in the report
// and never stop the loop. The returned error is reserved for problems that
// make the invocation itself fail: an invalid selection, an unreadable or
// corrupt answer store, a failed save or a cancelled context.
func (uc *RunDays) Execute(ctx context.Context, sel domain.Selection, mode domain.RunMode) (domain.RunReport, error) {
	if mode == "" {
		mode = domain.ModeExecute
	}

	targets, err := ResolveSelection(uc.registry, sel)
	if err != nil {
		return domain.RunReport{Mode: mode}, err
	}

	stored, noBaseline, err := uc.preload(mode)
	if err != nil {
		return domain.RunReport{Mode: mode}, err
	}

	run := domain.RunReport{
		Mode:      mode,
		StartedAt: uc.now(),
	}
	uc.log.Info("run.start", "mode", mode, "day", sel.Day, "part", int(sel.Part), "targets", len(targets))

	for _, group := range groupByDay(targets) {
		if err := ctx.Err(); err != nil {
			run.EndedAt = uc.now()
			return run, err
		}
		run.Days = append(run.Days, uc.runDay(group.day, group.parts))
	}
	run.EndedAt = uc.now()

	switch mode {
	case domain.ModeSave:
		entries := run.Entries()
		if len(entries) > 0 {
			if err := uc.answers.Save(entries); err != nil {
				return run, err
			}
		}
		run.Saved = entries
		uc.log.Info("answers.saved", "entries", len(entries))
	case domain.ModeVerify:
		report := verify.Run(stored, targets, run)
		report.NoBaseline = noBaseline
		run.Verify = &report
	}

	uc.record(&run)
	return run, nil
}

// preload reads the baseline before anything runs, so a corrupt store
// aborts the invocation instead of being discovered (or clobbered) at the
// end.
func (uc *RunDays) preload(mode domain.RunMode) (domain.Answers, bool, error) {
	if mode == domain.ModeExecute {
		return nil, false, nil
	}
	if uc.answers == nil {
		return nil, false, fmt.Errorf("%w: no answer store configured", domain.ErrExecution)
	}

	stored, err := uc.answers.Load()
	if err != nil {
		if errors.Is(err, domain.ErrNoAnswers) {
			return domain.Answers{}, true, nil
		}
		return nil, false, err
	}
	return stored, false, nil
}

func (uc *RunDays) runDay(id int, parts []domain.Part) domain.DayResult {
	out := domain.DayResult{Day: id}

	day, err := uc.registry.Resolve(id)
	if err != nil {
		out.Fault = domain.FaultOf(err)
		return out
	}

	input, err := uc.inputs.LoadInput(id)
	if err != nil {
		out.Fault = domain.FaultOf(err)
		uc.log.Warn("day.input_missing", "day", id, "kind", string(domain.KindOf(err)), "error", err.Error())
		return out
	}

	for _, p := range parts {
		out.Parts = append(out.Parts, uc.runPart(id, p, day.Func(p), input))
	}
	return out
}

func (uc *RunDays) runPart(day int, part domain.Part, fn registry.PartFunc, input string) domain.PartResult {
	res := domain.PartResult{Part: part}

	start := time.Now()
	sol, err := callPart(fn, input)
	res.Elapsed = time.Since(start)

	if err == nil && sol.IsZero() {
		err = errors.New("part produced no answer")
	}
	if err != nil {
		ferr := &domain.OpError{
			Op:   domain.Key{Day: day, Part: part}.String(),
			Kind: domain.KindSolutionFault,
			Err:  err,
		}
		res.Fault = domain.FaultOf(ferr)
		uc.log.Error("part.fault", "day", day, "part", int(part), "error", ferr.Error())
		return res
	}

	res.Answer = sol
	uc.log.Debug("part.done", "day", day, "part", int(part), "answer", sol.String(), "elapsed_ms", float64(res.Elapsed)/float64(time.Millisecond))
	return res
}

// callPart runs one solver, turning a panic into an error.
func callPart(fn registry.PartFunc, input string) (sol domain.Solution, err error) {
	if fn == nil {
		return domain.Solution{}, errors.New("no solver registered")
	}
	defer func() {
		if r := recover(); r != nil {
			sol = domain.Solution{}
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(input)
}

func (uc *RunDays) record(run *domain.RunReport) {
	if uc.history == nil {
		return
	}
	id, err := uc.history.SaveRun(*run)
	if err != nil {
		run.HistoryError = err.Error()
		uc.log.Warn("history.saved", "ok", false, "error", err.Error())
		return
	}
	run.HistoryID = id
	uc.log.Info("history.saved", "ok", true, "id", id)
}

type dayGroup struct {
	day   int
	parts []domain.Part
}

// groupByDay keeps target order and folds consecutive parts of a day
// together so each input is loaded once.
func groupByDay(targets []domain.Target) []dayGroup {
	var out []dayGroup
	for _, t := range targets {
		if n := len(out); n > 0 && out[n-1].day == t.Day {
			out[n-1].parts = append(out[n-1].parts, t.Part)
			continue
		}
		out = append(out, dayGroup{day: t.Day, parts: []domain.Part{t.Part}})
	}
	return out
}
