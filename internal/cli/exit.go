package cli

import "fmt"

// Exit codes, one per failure category so automation can tell configuration
// problems from test failures.
const (
	ExitOK             = 0
	ExitTestFailures   = 1
	ExitSetupFailure   = 2
	ExitNoToolchain    = 3
	ExitAgentNotFound  = 4
	ExitAgentAmbiguous = 5
)

// ExitError carries a process exit code alongside the underlying error
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exitf builds an ExitError with a formatted message.
func Exitf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Err: fmt.Errorf(format, args...)}
}
