package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/wordbook/query"
	"github.com/revelaction/wordbook/render"
)

func (e *env) queryCommand(c *cli.Context) error {
	repo, closeRepo, err := NewWordRepository(e.conf.WordsPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	_, annotator := e.mustResolver()

	r := render.NewRenderer(e.ui.Out)
	r.HasPrefix = true

	return query.NewHandler(repo, annotator, r).Run()
}
