package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrUnknownDay    = errors.New("unknown day")
	ErrNoAnswers     = errors.New("no saved answers")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound           ErrorKind = "not_found"
	KindInvalidConfig      ErrorKind = "invalid_config"
	KindUnknownDay         ErrorKind = "unknown_day"
	KindInputNotFound      ErrorKind = "input_not_found"
	KindSolutionFault      ErrorKind = "solution_fault"
	KindAnswerStoreCorrupt ErrorKind = "answer_store_corrupt"
	KindAnswerStoreIO      ErrorKind = "answer_store_io"
	KindExecution          ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost OpError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}

// UnknownDayError reports a selection that names a day nobody registered.
func UnknownDayError(day int) error {
	return &OpError{
		Op:   "selection.resolve",
		Kind: KindUnknownDay,
		Err:  fmt.Errorf("%w: day %d is not registered", ErrUnknownDay, day),
	}
}

// CorruptLineError reports a malformed line in the answer store.
type CorruptLineError struct {
	Line int
	Text string
}

func (e *CorruptLineError) Error() string {
	return fmt.Sprintf("malformed line %d: %q", e.Line, e.Text)
}

// FaultOf classifies err as a per-day or per-part fault for the run report.
// Solution faults keep only the solver's own message.
func FaultOf(err error) *Fault {
	if IsKind(err, KindInputNotFound) {
		return &Fault{Kind: FaultInputNotFound, Message: err.Error()}
	}

	msg := err.Error()
	var op *OpError
	if errors.As(err, &op) && op.Kind == KindSolutionFault && op.Err != nil {
		msg = op.Err.Error()
	}
	return &Fault{Kind: FaultSolution, Message: msg}
}
