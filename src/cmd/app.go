// Package cmd holds the commands of the linequery command line tool.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/eriklarko/line-query/src/config"
	"github.com/eriklarko/line-query/src/lineexpr"
	"github.com/eriklarko/line-query/src/tui"
	"github.com/urfave/cli/v2"
)

var (
	// ErrNoMatch is returned by filter when no line was selected.
	ErrNoMatch = errors.New("no lines matched")
	// ErrParseFailed is returned once the parse error has been shown to
	// the user.
	ErrParseFailed = errors.New("failed to parse expression")
)

const configKey = "config"

// NewApp builds the linequery application.
func NewApp() *cli.App {
	defaultConfigPath, err := config.DefaultPath()
	if err != nil {
		slog.Debug("no default config path", "error", err)
	}

	return &cli.App{
		Name:  "linequery",
		Usage: "Select lines of text with a boolean query",
		Description: `An expression is made of words separated by spaces. A word is true for a
line when the line contains it. Words combine with "and", "or", "not" and
parentheses, which must stand alone: "( dog or cat ) and not pig".

Use \( to search for an open paren. A ")" or a keyword where a word is
expected is searched for literally.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the config file",
				Value: defaultConfigPath,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			MatchCommand(),
			FilterCommand(),
			DotCommand(),
			ConfigCommand(),
		},
		Metadata: map[string]interface{}{},
	}
}

// setup loads the config and installs the logger.
func setup(c *cli.Context) error {
	conf := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		conf, err = config.LoadOrDefault(path)
		if err != nil {
			return err
		}
	}

	if c.IsSet("log-level") {
		conf.LogLevel = c.String("log-level")
	}
	level, err := conf.Level()
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level})))
	slog.Debug("loaded config", "path", conf.Path, "log_level", level)

	c.App.Metadata[configKey] = conf
	return nil
}

func configFrom(c *cli.Context) *config.Config {
	if conf, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return conf
	}
	return config.Default()
}

func newTUI(c *cli.Context) *tui.TUI {
	ui := tui.New()
	ui.SetOutput(c.App.Writer)
	ui.SetErrorOutput(c.App.ErrWriter)
	return ui
}

// parseExpression parses the first argument, reporting failures to the user.
func parseExpression(c *cli.Context) (*lineexpr.Parser, error) {
	if c.NArg() < 1 {
		return nil, fmt.Errorf("missing EXPRESSION, see '%s --help'", c.Command.HelpName)
	}

	parser := lineexpr.NewParser(c.Args().First())
	if err := parser.Parse(); err != nil {
		newTUI(c).PrintParseError(err)
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return parser, nil
}
