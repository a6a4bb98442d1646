// Package verify compares freshly computed answers with the saved baseline.
package verify

import "github.com/aalvaropc/advent/internal/domain"

// Entry classifies a single computed answer against the baseline.
func Entry(stored domain.Answers, e domain.Entry) domain.VerifyEntry {
	out := domain.VerifyEntry{
		Key:      e.Key,
		Day:      e.Key.Day,
		Part:     e.Key.Part,
		Computed: e.Answer,
	}

	want, ok := stored[e.Key]
	if !ok {
		out.Status = domain.VerifyMissing
		return out
	}

	out.Stored = want
	if want == e.Answer {
		out.Status = domain.VerifyMatch
	} else {
		out.Status = domain.VerifyMismatch
	}
	return out
}

// Fault records a (day, part) that produced no value to compare.
func Fault(stored domain.Answers, k domain.Key) domain.VerifyEntry {
	return domain.VerifyEntry{
		Key:    k,
		Day:    k.Day,
		Part:   k.Part,
		Status: domain.VerifyFault,
		Stored: stored[k],
	}
}

// Compare classifies every entry in the given order. The baseline is only
// read.
func Compare(stored domain.Answers, entries []domain.Entry) domain.VerifyReport {
	out := domain.VerifyReport{Entries: make([]domain.VerifyEntry, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, Entry(stored, e))
	}
	return out
}

// Run builds the report for a finished run: every target gets exactly one
// entry, faulted or skipped parts included.
func Run(stored domain.Answers, targets []domain.Target, run domain.RunReport) domain.VerifyReport {
	computed := map[domain.Key]domain.PartResult{}
	for _, d := range run.Days {
		for _, p := range d.Parts {
			computed[domain.Key{Day: d.Day, Part: p.Part}] = p
		}
	}

	out := domain.VerifyReport{Entries: make([]domain.VerifyEntry, 0, len(targets))}
	for _, t := range targets {
		p, ok := computed[t]
		if !ok || !p.OK() {
			out.Entries = append(out.Entries, Fault(stored, t))
			continue
		}
		out.Entries = append(out.Entries, Entry(stored, domain.Entry{Key: t, Answer: p.Answer.String()}))
	}
	return out
}
