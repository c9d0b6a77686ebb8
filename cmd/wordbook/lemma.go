package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func (e *env) lemmaCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("usage: %s lemma <word>...", c.App.Name)
	}

	resolver, _ := e.mustResolver()
	for _, word := range c.Args().Slice() {
		base, ok := resolver.BaseForm(word)
		if !ok {
			base = "-"
		}
		fmt.Fprintf(e.ui.Out, "%s\t%s\n", word, base)
	}

	return nil
}
