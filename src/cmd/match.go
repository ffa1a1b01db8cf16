package cmd

import (
	"fmt"

	"github.com/eriklarko/line-query/src/tui"
	"github.com/urfave/cli/v2"
)

// MatchCommand returns the match CLI command.
func MatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "match",
		Usage:     "Evaluate an expression against one line of text",
		ArgsUsage: "EXPRESSION TEXT",
		Description: `Prints the expression, the text, whether each word of the expression
was found in the text, and the result.

Example:
  linequery match "dog or cat and pig" "there once was a cat named pig"`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "show-identifiers",
				Usage: "Print whether each word was found",
			},
		},
		Action: runMatch,
	}
}

func runMatch(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected 2 arguments, got %d", c.NArg())
	}

	parser, err := parseExpression(c)
	if err != nil {
		return err
	}

	line := c.Args().Get(1)
	result, err := parser.Eval(line)
	if err != nil {
		return fmt.Errorf("failed to evaluate '%s': %w", line, err)
	}

	showIdentifiers := configFrom(c).ShowIdentifiers
	if c.IsSet("show-identifiers") {
		showIdentifiers = c.Bool("show-identifiers")
	}

	newTUI(c).PrintMatch(tui.Match{
		Expression:  parser.Expression(),
		Line:        line,
		Identifiers: parser.Identifiers(),
		Names:       parser.IdentifierNames(),
		Result:      result,
	}, showIdentifiers)

	return nil
}
