package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/eriklarko/line-query/src/environment"
	"github.com/eriklarko/line-query/src/filter"
	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"
)

// FilterCommand returns the filter CLI command.
func FilterCommand() *cli.Command {
	return &cli.Command{
		Name:      "filter",
		Usage:     "Print the lines that match an expression",
		ArgsUsage: "EXPRESSION [FILE...]",
		Description: `Reads each FILE, or standard input when no file is given, and prints the
lines matching EXPRESSION. Exits with status 1 when nothing matched.

A line that cannot be evaluated is reported and skipped; the remaining
lines are still read.

Example:
  linequery filter -n "error and not timeout" app.log`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "line-numbers",
				Aliases: []string{"n"},
				Usage:   "Prefix each line with its line number",
			},
			&cli.BoolFlag{
				Name:    "invert-match",
				Aliases: []string{"v"},
				Usage:   "Print the lines that don't match",
			},
		},
		Action: runFilter,
	}
}

func runFilter(c *cli.Context) error {
	parser, err := parseExpression(c)
	if err != nil {
		return err
	}

	conf := configFrom(c)
	files := c.Args().Tail()
	options := filter.Options{
		LineNumbers: conf.LineNumbers,
		Invert:      conf.InvertMatch,
		ShowSource:  len(files) > 1,
	}
	if c.IsSet("line-numbers") {
		options.LineNumbers = c.Bool("line-numbers")
	}
	if c.IsSet("invert-match") {
		options.Invert = c.Bool("invert-match")
	}

	f := filter.New(parser, options)

	if len(files) == 0 {
		if c.App.Reader == os.Stdin && environment.IsStdinInteractive() {
			return fmt.Errorf("refusing to read lines from a terminal, pipe them in or name a FILE")
		}

		report, err := f.Run("(standard input)", c.App.Reader, c.App.Writer)
		if err != nil {
			return err
		}
		return noMatch([]*filter.Report{report})
	}

	var reports []*filter.Report
	var errs *multierror.Error
	for _, path := range files {
		report, err := runFile(f, path, c)
		if report != nil {
			reports = append(reports, report)
		}
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		slog.Debug("filter finished with errors", "failed_lines", filter.FailedLines(reports))
		return err
	}
	return noMatch(reports)
}

func runFile(f *filter.Filter, path string, c *cli.Context) (*filter.Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return f.Run(path, file, c.App.Writer)
}

func noMatch(reports []*filter.Report) error {
	if filter.AnyMatches(reports) {
		return nil
	}
	return ErrNoMatch
}
