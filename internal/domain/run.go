package domain

import "time"

// RunMode selects what happens with computed answers.
type RunMode string

const (
	ModeExecute RunMode = "execute"
	ModeSave    RunMode = "save"
	ModeVerify  RunMode = "verify"
)

// FaultKind is a high-level classification of per-day failures.
type FaultKind string

const (
	FaultInputNotFound = FaultKind(KindInputNotFound)
	FaultSolution      = FaultKind(KindSolutionFault)
)

// Fault is a structured per-day or per-part failure.
type Fault struct {
	Kind    FaultKind `json:"kind"`
	Message string    `json:"message"`
}

// PartResult is the outcome of running one part of one day.
type PartResult struct {
	Part    Part          `json:"part"`
	Answer  Solution      `json:"answer"`
	Elapsed time.Duration `json:"elapsed_ns"`
	Fault   *Fault        `json:"fault,omitempty"`
}

func (p PartResult) OK() bool { return p.Fault == nil }

// DayResult groups the parts run for one day. Fault is set when the day
// could not run at all (e.g. its input is missing).
type DayResult struct {
	Day   int          `json:"day"`
	Parts []PartResult `json:"parts"`
	Fault *Fault       `json:"fault,omitempty"`
}

// Failed reports whether the day or any of its parts failed.
func (d DayResult) Failed() bool {
	if d.Fault != nil {
		return true
	}
	for _, p := range d.Parts {
		if !p.OK() {
			return true
		}
	}
	return false
}

// VerifyStatus is the per-entry outcome of a verification.
type VerifyStatus string

const (
	VerifyMatch    VerifyStatus = "match"
	VerifyMismatch VerifyStatus = "mismatch"
	VerifyMissing  VerifyStatus = "missing"
	VerifyFault    VerifyStatus = "fault"
)

// VerifyEntry compares one computed answer with its stored baseline.
type VerifyEntry struct {
	Key      Key          `json:"-"`
	Day      int          `json:"day"`
	Part     Part         `json:"part"`
	Status   VerifyStatus `json:"status"`
	Computed string       `json:"computed,omitempty"`
	Stored   string       `json:"stored,omitempty"`
}

// VerifyReport aggregates every compared entry.
type VerifyReport struct {
	Entries []VerifyEntry `json:"entries"`
	// NoBaseline is set when there was no answer store to compare against.
	NoBaseline bool `json:"no_baseline,omitempty"`
}

// Passed is true iff every entry matched. An empty report never passes
// when it had no baseline.
func (r VerifyReport) Passed() bool {
	if r.NoBaseline {
		return false
	}
	for _, e := range r.Entries {
		if e.Status != VerifyMatch {
			return false
		}
	}
	return true
}

// Count returns how many entries have the given status.
func (r VerifyReport) Count(status VerifyStatus) int {
	n := 0
	for _, e := range r.Entries {
		if e.Status == status {
			n++
		}
	}
	return n
}

// Lookup finds the entry for a key.
func (r VerifyReport) Lookup(k Key) (VerifyEntry, bool) {
	for _, e := range r.Entries {
		if e.Key == k {
			return e, true
		}
	}
	return VerifyEntry{}, false
}

// RunReport is the result of one CLI invocation.
type RunReport struct {
	Mode      RunMode       `json:"mode"`
	StartedAt time.Time     `json:"started_at"`
	EndedAt   time.Time     `json:"ended_at"`
	Days      []DayResult   `json:"days"`
	Saved     []Entry       `json:"-"`
	Verify    *VerifyReport `json:"verify,omitempty"`

	// Set after the report was handed to the run history.
	HistoryID    string `json:"-"`
	HistoryError string `json:"-"`
}

// Entries returns the successfully computed answers in run order.
func (r RunReport) Entries() []Entry {
	var out []Entry
	for _, d := range r.Days {
		for _, p := range d.Parts {
			if !p.OK() {
				continue
			}
			out = append(out, Entry{Key: Key{Day: d.Day, Part: p.Part}, Answer: p.Answer.String()})
		}
	}
	return out
}

// FailedDays counts days that failed in any way.
func (r RunReport) FailedDays() int {
	n := 0
	for _, d := range r.Days {
		if d.Failed() {
			n++
		}
	}
	return n
}

// Passed reports the overall status. Only verification can fail a run;
// per-day faults in other modes are reported but do not change it.
func (r RunReport) Passed() bool {
	if r.Mode != ModeVerify {
		return true
	}
	if r.Verify == nil {
		return false
	}
	return r.Verify.Passed()
}
