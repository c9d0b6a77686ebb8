package main

import (
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/wordbook/stat"
)

func (e *env) statCommand(c *cli.Context) error {
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

	hdl := stat.NewHandler(annotator)
	hdl.AggregateList(l)

	stats := hdl.Get()
	fmt.Fprintf(e.ui.Out, "Num words %d, memorized %d, pending %d\n", stats.NumWords, stats.NumMemorized, stats.NumPending)

	counts := make([]int, 0, len(stats.MatchesPerExampleDis))
	for n := range stats.MatchesPerExampleDis {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	for _, n := range counts {
		fmt.Fprintf(e.ui.Out, "%5d examples with %d occurrences\n", stats.MatchesPerExampleDis[n], n)
	}

	for _, english := range stats.Unmatched {
		fmt.Fprintf(e.ui.Out, "Unmatched: %s\n", english)
	}

	return nil
}
