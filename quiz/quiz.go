// Package quiz runs the flash card session: every pending word is shown with
// its annotated example and spoken, the translation is revealed on demand and
// the user can mark the word memorized.
package quiz

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/rs/zerolog/log"

	"github.com/revelaction/wordbook/render"
	"github.com/revelaction/wordbook/search"
	"github.com/revelaction/wordbook/storage"
)

const (
	Instructions = "(q)uit, (m)ark memorized, (ret) next"
	ResetPrompt  = "All words have been memorized 🎉 Press 'r' to reset the word list or 'q' to quit."

	inputPrefix = "   ❯ "
)

type action int

const (
	actionNext action = iota
	actionMark
	actionQuit
)

// Speaker pronounces a word.
type Speaker interface {
	Speak(text string) error
}

// InputFunc reads one line from the user.
type InputFunc func(prefix string) string

type Session struct {
	Repo      storage.WordRepository
	Annotator search.Annotator
	Renderer  *render.Renderer
	Speaker   Speaker

	Input   InputFunc
	Shuffle func(indices []int)
	Out     io.Writer
}

// Result summarizes a finished session.
type Result struct {
	Asked     int
	Memorized int
	Quit      bool
	Reset     bool
}

func NewSession(repo storage.WordRepository, a search.Annotator, r *render.Renderer, sp Speaker) *Session {
	return &Session{
		Repo:      repo,
		Annotator: a,
		Renderer:  r,
		Speaker:   sp,
		Input:     PromptInput,
		Shuffle:   Shuffle,
		Out:       r.Out,
	}
}

// PromptInput reads a line with go-prompt.
func PromptInput(prefix string) string {
	return prompt.Input(prefix, func(prompt.Document) []prompt.Suggest { return nil },
		prompt.OptionTitle("wordbook quiz"),
		prompt.OptionPrefixTextColor(prompt.Yellow),
	)
}

func Shuffle(indices []int) {
	rand.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
}

// Run asks every pending word once and saves the list when the session ends.
func (s *Session) Run() (Result, error) {
	var res Result

	l, err := s.Repo.ReadAll()
	if err != nil {
		return res, err
	}

	if len(l) == 0 {
		fmt.Fprintln(s.Out, "No words to ask.")
		return res, nil
	}

	pending := l.Pending()
	if len(pending) == 0 {
		if !s.confirmReset() {
			res.Quit = true
			return res, nil
		}

		l.Reset()
		if err := s.Repo.WriteAll(l); err != nil {
			return res, err
		}

		res.Reset = true
		pending = l.Pending()
	}

	s.Shuffle(pending)

	fmt.Fprintln(s.Out, Instructions)

loop:
	for i, idx := range pending {
		w := l[idx]
		s.speak(w.English)
		s.question(i, len(pending), w.English, w.Example)
		res.Asked++

		a := s.action()
		if a == actionNext {
			fmt.Fprintf(s.Out, "   %s\n", w.Japanese)
			a = s.action()
		}

		switch a {
		case actionMark:
			l[idx].Skip = true
			res.Memorized++
		case actionQuit:
			res.Quit = true
			break loop
		}
	}

	if err := s.Repo.WriteAll(l); err != nil {
		return res, err
	}

	log.Debug().Int("asked", res.Asked).Int("memorized", res.Memorized).Msg("quiz session saved")
	return res, nil
}

func (s *Session) question(i, total int, english, example string) {
	fmt.Fprintf(s.Out, "\n%d / %d\n", i+1, total)
	fmt.Fprintf(s.Out, "   %s\n", s.Renderer.Word(english))

	fragments := s.Annotator.Annotate("("+example+")", english)
	fmt.Fprintf(s.Out, "   %s\n", s.Renderer.String(fragments))
}

func (s *Session) speak(english string) {
	if s.Speaker == nil {
		return
	}

	if err := s.Speaker.Speak(english); err != nil {
		log.Warn().Err(err).Str("word", english).Msg("speech failed")
	}
}

// action reads input until it is one of return, m or q. Other input is
// ignored.
func (s *Session) action() action {
	for {
		switch strings.TrimSpace(s.Input(inputPrefix)) {
		case "":
			return actionNext
		case "m":
			return actionMark
		case "q":
			return actionQuit
		}
	}
}

func (s *Session) confirmReset() bool {
	fmt.Fprintln(s.Out, ResetPrompt)
	for {
		switch strings.TrimSpace(s.Input(inputPrefix)) {
		case "r":
			return true
		case "q":
			return false
		}
	}
}
