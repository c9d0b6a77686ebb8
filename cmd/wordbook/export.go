package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/wordbook/storage/filesystem"
	"github.com/revelaction/wordbook/storage/sqlite/zombiezen"
)

func (e *env) exportCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: %s export <db> <json>", c.App.Name)
	}
	from, to := c.Args().Get(0), c.Args().Get(1)

	pool, err := zombiezen.NewPool(from)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateSchemas(pool, zombiezen.WordsSchema); err != nil {
		return err
	}

	src := zombiezen.NewWordStore(pool)
	dst := filesystem.NewWordStore(to)

	l, err := src.ReadAll()
	if err != nil {
		return err
	}

	if err := dst.WriteAll(l); err != nil {
		return fmt.Errorf("failed to export words: %w", err)
	}

	fmt.Fprintf(e.ui.Out, "Successfully exported %d words from %s to %s\n", len(l), from, to)
	return nil
}
