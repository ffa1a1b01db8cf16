package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides the terminal check, for tests and for
// callers that know better.
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// ResetIsInteractive undoes ForceSetIsInteractive.
func ResetIsInteractive() {
	interactiveOverride = nil
}

// IsStdinInteractive returns true if stdin is a terminal. Reading lines from
// it would then wait for the user to type them.
func IsStdinInteractive() bool {
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
