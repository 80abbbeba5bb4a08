package cli

import "errors"

// ErrUsage marks operator mistakes (bad flags, malformed --param pairs,
// unknown operation IDs). main exits 2 on it instead of 1.
var ErrUsage = errors.New("cli usage error")

type usageError struct {
	msg string
}

func newUsageError(msg string) error {
	return usageError{msg: msg}
}

func (e usageError) Error() string {
	return e.msg
}

func (e usageError) Is(target error) bool {
	return target == ErrUsage
}
