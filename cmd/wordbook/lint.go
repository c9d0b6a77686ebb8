package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/wordbook/vocab"
)

func (e *env) lintCommand(c *cli.Context) error {
	repo, closeRepo, err := NewWordRepository(e.conf.WordsPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	l, err := repo.ReadAll()
	if err != nil {
		return err
	}

	_, annotator := e.mustResolver()

	var unmatched vocab.List
	if len(l) > 0 {
		// Start progress indicator
		progress := uiprogress.New()
		progress.SetOut(e.ui.Err)
		progress.Start()
		bar := progress.AddBar(len(l))
		bar.AppendCompleted()
		bar.PrependElapsed()
		// Append the word to the progress bar
		bar.AppendFunc(func(b *uiprogress.Bar) string {
			if b.Current() == 0 {
				return ""
			}
			return l[b.Current()-1].English
		})

		for _, w := range l {
			if !annotator.Annotate(w.Example, w.English).HasMatch() {
				unmatched = append(unmatched, w)
			}
			bar.Incr()
		}

		progress.Stop()
	}

	for _, w := range unmatched {
		fmt.Fprintf(e.ui.Out, "❌ %s: %s\n", w.English, w.Example)
	}

	if len(unmatched) > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d examples do not contain their word", len(unmatched), len(l)), 1)
	}

	fmt.Fprintf(e.ui.Out, "✔ %d examples checked\n", len(l))
	return nil
}
