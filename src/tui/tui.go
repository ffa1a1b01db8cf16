package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/eriklarko/line-query/src/lineexpr"
)

// TUI prints the human readable output of the match command.
type TUI struct {
	output io.Writer
	errors io.Writer
}

func New() *TUI {
	return &TUI{
		output: os.Stdout,
		errors: os.Stderr,
	}
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

func (t *TUI) SetErrorOutput(output io.Writer) {
	t.errors = output
}

// Match is the outcome of evaluating one line.
type Match struct {
	Expression  string
	Line        string
	Identifiers map[string]bool
	// identifiers in the order they are printed
	Names  []string
	Result bool
}

// PrintMatch prints the expression, the line, the identifier map and the
// result. The identifier section is skipped when showIdentifiers is false.
func (t *TUI) PrintMatch(m Match, showIdentifiers bool) {
	fmt.Fprintf(t.output, "Input:  %s\n", m.Expression)
	fmt.Fprintf(t.output, "Search: %s\n", m.Line)
	fmt.Fprintln(t.output)

	if showIdentifiers {
		for _, name := range m.Names {
			fmt.Fprintf(t.output, "%s: %t\n", name, m.Identifiers[name])
		}
		fmt.Fprintln(t.output)
	}

	fmt.Fprintf(t.output, "result: %t\n", m.Result)
}

// PrintParseError explains why an expression could not be parsed.
func (t *TUI) PrintParseError(err error) {
	var parseErr *lineexpr.ParseError
	if !errors.As(err, &parseErr) {
		fmt.Fprintf(t.errors, "Error: %v\n", err)
		return
	}

	switch parseErr.Kind {
	case lineexpr.InvalidToken:
		fmt.Fprintf(t.errors, "Invalid Token: %s\n", parseErr.Token.Text)
	case lineexpr.NoCloseParen:
		fmt.Fprintln(t.errors, "Missing a closing parenthesis")
	default:
		fmt.Fprintln(t.errors, "Encountered an unknown error")
	}
}
