package cmd

import "errors"

// ExitCode maps the error returned by the app to the process exit status:
// 0 on success, 1 when the expression failed to parse or filter selected
// nothing, 2 for anything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrParseFailed), errors.Is(err, ErrNoMatch):
		return 1
	default:
		return 2
	}
}
