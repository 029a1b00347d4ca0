package cli

import (
	"errors"

	"github.com/pepcheck/pepcheck/internal/domain"
)

// exitError carries a specific process exit code up through cobra's RunE
// chain: 1 violations, 2 read failure, 3 configuration error.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

// ExitCodeFor maps the error returned by Execute to a process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return domain.ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return domain.ExitViolations
}
