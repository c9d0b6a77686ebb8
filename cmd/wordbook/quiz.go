package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/wordbook/quiz"
	"github.com/revelaction/wordbook/render"
	"github.com/revelaction/wordbook/speak"
)

func (e *env) quizCommand(c *cli.Context) error {
	repo, closeRepo, err := NewWordRepository(e.conf.WordsPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	_, annotator := e.mustResolver()

	speaker := speak.New(e.conf.Speech(), e.conf.Voice)
	defer speaker.Stop()

	s := quiz.NewSession(repo, annotator, render.NewRenderer(e.ui.Out), speaker)
	res, err := s.Run()
	if err != nil {
		return err
	}

	if res.Asked > 0 {
		fmt.Fprintf(e.ui.Out, "\n%d asked, %d memorized\n", res.Asked, res.Memorized)
	}

	return nil
}
