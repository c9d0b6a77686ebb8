package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/wordbook/edit"
)

func (e *env) editCommand(c *cli.Context) error {
	repo, closeRepo, err := NewWordRepository(e.conf.WordsPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	h := edit.NewHandler(repo)
	h.Out = e.ui.Out
	return h.Run()
}
