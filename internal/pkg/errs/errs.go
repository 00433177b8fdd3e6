package errs

import (
	"fmt"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as an errors.Is target while keeping err's cause
// chain. Both markErr and err stay visible to stdlib errors.Is, which is
// what handlers and reason mappers match against.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return fmt.Errorf("%w: %w", markErr, err)
}
