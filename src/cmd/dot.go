package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// DotCommand returns the dot CLI command.
func DotCommand() *cli.Command {
	return &cli.Command{
		Name:      "dot",
		Usage:     "Print the parsed expression as a Graphviz graph",
		ArgsUsage: "EXPRESSION",
		Description: `Example:
  linequery dot "( dog or cat ) and not pig" | dot -Tsvg > tree.svg`,
		Action: runDot,
	}
}

func runDot(c *cli.Context) error {
	parser, err := parseExpression(c)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(c.App.Writer, parser.Dot(parser.Expression()))
	return err
}
