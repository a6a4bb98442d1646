package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/aalvaropc/advent/internal/domain"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

func validFormat(f string) bool { return f == formatPretty || f == formatJSON || f == "" }

// runView is everything the printers need beyond the report itself.
type runView struct {
	run         domain.RunReport
	answersFile string
}

func printRun(stdout, stderr io.Writer, v runView, format string) error {
	switch format {
	case formatJSON:
		return printJSONRun(stdout, v)
	case formatPretty, "":
		printPrettyRun(stdout, stderr, v)
		return nil
	default:
		return usageError("unsupported format %q (expected pretty|json)", format)
	}
}

func printJSONRun(w io.Writer, v runView) error {
	type savedEntry struct {
		Day    int         `json:"day"`
		Part   domain.Part `json:"part"`
		Answer string      `json:"answer"`
	}
	saved := make([]savedEntry, 0, len(v.run.Saved))
	for _, e := range v.run.Saved {
		saved = append(saved, savedEntry{Day: e.Key.Day, Part: e.Key.Part, Answer: e.Answer})
	}

	payload := map[string]any{
		"run":    v.run,
		"passed": v.run.Passed(),
	}
	if v.run.Mode == domain.ModeSave {
		payload["saved"] = saved
		payload["answers_file"] = v.answersFile
	}
	if v.run.HistoryID != "" {
		payload["run_id"] = v.run.HistoryID
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%.4f ms", float64(d)/float64(time.Millisecond))
}

func printPrettyRun(w, errw io.Writer, v runView) {
	th := newTheme(w)
	run := v.run

	var total time.Duration
	for _, d := range run.Days {
		fmt.Fprintln(w, th.Title.Render(fmt.Sprintf("=== Day %02d ===", d.Day)))

		if d.Fault != nil {
			fmt.Fprintf(w, "  · %s %s\n", th.Warn.Render("Skipped:"), d.Fault.Message)
			fmt.Fprintf(errw, "day %d: %s\n", d.Day, d.Fault.Message)
			printFaultedVerify(w, th, run, d)
			continue
		}

		var dayTotal time.Duration
		for _, p := range d.Parts {
			dayTotal += p.Elapsed
			printPart(w, errw, th, run, d.Day, p)
		}
		total += dayTotal
		fmt.Fprintf(w, "  · Elapsed: %s\n", th.Faint.Render(ms(dayTotal)))
	}

	if len(run.Days) > 1 {
		fmt.Fprintln(w, th.Title.Render(fmt.Sprintf("=== Total: %s ===", ms(total))))
	}

	switch run.Mode {
	case domain.ModeSave:
		if len(run.Saved) == 0 {
			fmt.Fprintln(w, th.Warn.Render("Nothing to save"))
		} else {
			fmt.Fprintf(w, "Answers saved to %s\n", v.answersFile)
		}
	case domain.ModeVerify:
		printVerifySummary(w, th, run.Verify, v.answersFile)
	}

	if run.HistoryID != "" {
		fmt.Fprintf(w, "%s %s\n", th.Faint.Render("Run recorded:"), run.HistoryID)
	}
	if run.HistoryError != "" {
		fmt.Fprintf(errw, "warning: run not recorded: %s\n", run.HistoryError)
	}
}

func printPart(w, errw io.Writer, th theme, run domain.RunReport, day int, p domain.PartResult) {
	if p.Fault != nil {
		fmt.Fprintf(w, "  · Part %d: %s %s\n", p.Part, th.Fail.Render("Failed:"), p.Fault.Message)
		fmt.Fprintf(errw, "day %d part %d: %s\n", day, p.Part, p.Fault.Message)
		return
	}

	line := fmt.Sprintf("  · Part %d: %s %s", p.Part, p.Answer, th.Faint.Render("("+ms(p.Elapsed)+")"))
	if run.Mode != domain.ModeVerify || run.Verify == nil {
		fmt.Fprintln(w, line)
		return
	}

	e, ok := run.Verify.Lookup(domain.Key{Day: day, Part: p.Part})
	if !ok {
		fmt.Fprintln(w, line)
		return
	}
	switch e.Status {
	case domain.VerifyMatch:
		fmt.Fprintf(w, "%s %s\n", line, th.OK.Render("[ok]"))
	case domain.VerifyMismatch:
		fmt.Fprintf(w, "%s %s\n", line, th.Fail.Render("[FAIL]"))
		fmt.Fprintf(w, "           expected: %s\n", e.Stored)
	default:
		fmt.Fprintf(w, "%s %s\n", line, th.Warn.Render("[no baseline]"))
	}
}

// printFaultedVerify shows the baseline a skipped day would have been
// checked against.
func printFaultedVerify(w io.Writer, th theme, run domain.RunReport, d domain.DayResult) {
	if run.Verify == nil {
		return
	}
	for _, p := range domain.Parts {
		e, ok := run.Verify.Lookup(domain.Key{Day: d.Day, Part: p})
		if !ok || e.Stored == "" {
			continue
		}
		fmt.Fprintf(w, "  · Part %d: %s\n", p, th.Fail.Render("[FAIL]"))
		fmt.Fprintf(w, "           expected: %s\n", e.Stored)
	}
}

func printVerifySummary(w io.Writer, th theme, r *domain.VerifyReport, answersFile string) {
	if r == nil {
		return
	}
	if r.NoBaseline {
		fmt.Fprintln(w, th.Fail.Render(fmt.Sprintf("Verify failed: no saved answers (%s not found)", answersFile)))
		return
	}

	summary := fmt.Sprintf("Verify: %d ok, %d mismatch, %d missing, %d failed",
		r.Count(domain.VerifyMatch),
		r.Count(domain.VerifyMismatch),
		r.Count(domain.VerifyMissing),
		r.Count(domain.VerifyFault),
	)
	if r.Passed() {
		fmt.Fprintln(w, th.OK.Render(summary))
	} else {
		fmt.Fprintln(w, th.Fail.Render(summary))
	}
}
