package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func (e *env) versionCommand(c *cli.Context) error {
	_, err := fmt.Fprintf(e.ui.Out, "wordbook version %s (commit: %s)\n", BuildTag, BuildCommit)
	return err
}
