package cli

import (
	"errors"
	"fmt"

	"github.com/aalvaropc/advent/internal/domain"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1 // verification failed, or any other runtime error
	ExitUsage       = 2
	ExitAnswerStore = 3
)

// ExitError carries the exit code a command wants the process to end with.
// A nil Err means the command already reported everything it had to say.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func usageError(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}

	switch domain.KindOf(err) {
	case domain.KindUnknownDay, domain.KindInvalidConfig:
		return ExitUsage
	case domain.KindAnswerStoreCorrupt, domain.KindAnswerStoreIO:
		return ExitAnswerStore
	}
	return ExitFailure
}
