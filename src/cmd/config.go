package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/eriklarko/line-query/src/config"
	"github.com/urfave/cli/v2"
)

// ConfigCommand returns the config CLI command.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the config file",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write a config file with the default settings to --config",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing config file",
					},
				},
				Action: runConfigInit,
			},
		},
	}
}

func runConfigInit(c *cli.Context) error {
	path := c.String("config")
	if path == "" {
		return fmt.Errorf("no config path, pass --config")
	}

	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return fmt.Errorf("%s already exists, use --force to overwrite it", path)
	} else if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	conf := config.Default()
	conf.Path = path
	if err := conf.Write(); err != nil {
		return err
	}
	slog.Debug("wrote config", "path", path)

	_, err := fmt.Fprintf(c.App.Writer, "Wrote %s\n", path)
	return err
}
