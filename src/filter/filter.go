package filter

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/eriklarko/line-query/src/lineexpr"
	"github.com/hashicorp/go-multierror"
)

// MaxLineLength is the longest line Run accepts.
const MaxLineLength = 1024 * 1024

type Options struct {
	// prefix selected lines with their line number
	LineNumbers bool
	// prefix selected lines with the name of their source
	ShowSource bool
	// select the lines that don't match
	Invert bool
}

// Evaluator decides whether a line is selected. *lineexpr.Parser is one.
type Evaluator interface {
	Eval(line string) (bool, error)
}

var _ Evaluator = (*lineexpr.Parser)(nil)

// Filter writes out the lines of its input that match one expression.
type Filter struct {
	evaluator Evaluator
	options   Options

	// a parser rewrites its identifier map on every Eval; held for a whole
	// Run, so one source is filtered at a time
	evalLock sync.Mutex
}

// New creates a Filter around an already parsed expression.
//
// Usage:
//
//	parser, err := lineexpr.New("error and not timeout")
//	...
//	f := filter.New(parser, filter.Options{LineNumbers: true})
//	report, err := f.Run("stdin", os.Stdin, os.Stdout)
func New(evaluator Evaluator, options Options) *Filter {
	return &Filter{
		evaluator: evaluator,
		options:   options,
	}
}

// Run evaluates every line of r and writes the selected ones to w. A line
// that fails to evaluate is logged and skipped; the remaining lines are still
// evaluated and all failures are returned together at the end. Read and
// write errors stop the run straight away.
func (f *Filter) Run(source string, r io.Reader, w io.Writer) (*Report, error) {
	f.evalLock.Lock()
	defer f.evalLock.Unlock()

	report := &Report{Source: source}
	var evalErrs *multierror.Error

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		matched, err := f.evaluator.Eval(line)
		if err != nil {
			slog.Warn("failed to evaluate line",
				"source", source,
				"line_number", lineNumber,
				"error", err,
			)
			report.RecordFailure(lineNumber, err)
			evalErrs = multierror.Append(evalErrs, fmt.Errorf("%s:%d: %w", source, lineNumber, err))
			continue
		}

		report.RecordDecision(lineNumber, matched)
		if matched == f.options.Invert {
			continue
		}

		if err := f.write(w, source, lineNumber, line); err != nil {
			return report, fmt.Errorf("failed to write line %d of %s: %w", lineNumber, source, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return report, fmt.Errorf("failed to read %s: %w", source, err)
	}

	slog.Debug("filtered lines",
		"source", source,
		"total", report.Total(),
		"matched", len(report.Matched),
		"failed", len(report.Failed),
	)

	return report, evalErrs.ErrorOrNil()
}

func (f *Filter) write(w io.Writer, source string, lineNumber int, line string) error {
	if f.options.ShowSource {
		if _, err := fmt.Fprintf(w, "%s:", source); err != nil {
			return err
		}
	}
	if f.options.LineNumbers {
		if _, err := fmt.Fprintf(w, "%d:", lineNumber); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
