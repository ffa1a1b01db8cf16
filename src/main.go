package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/eriklarko/line-query/src/cmd"
)

func main() {
	err := cmd.NewApp().Run(os.Args)
	// parse errors have already been explained to the user, and no match is
	// not worth a message
	if err != nil && !errors.Is(err, cmd.ErrParseFailed) && !errors.Is(err, cmd.ErrNoMatch) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cmd.ExitCode(err))
}
