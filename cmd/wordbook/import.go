package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/wordbook/storage/filesystem"
	"github.com/revelaction/wordbook/storage/sqlite/zombiezen"
)

func (e *env) importCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: %s import <json> <db>", c.App.Name)
	}
	from, to := c.Args().Get(0), c.Args().Get(1)

	src := filesystem.NewWordStore(from)

	pool, err := zombiezen.NewPool(to)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateSchemas(pool, zombiezen.WordsSchema); err != nil {
		return fmt.Errorf("failed to setup word tables: %w", err)
	}

	dst := zombiezen.NewWordStore(pool)

	l, err := src.ReadAll()
	if err != nil {
		return err
	}

	if err := dst.WriteAll(l); err != nil {
		return fmt.Errorf("failed to import words: %w", err)
	}

	_, _ = fmt.Fprintf(e.ui.Err, "Successfully imported %d words from %s to %s\n", len(l), from, to)
	return nil
}
