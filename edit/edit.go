package edit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/revelaction/wordbook/storage"
	"github.com/revelaction/wordbook/vocab"
)

const (
	actionAdd    = 1
	actionDelete = 0
)

type Handler struct {
	Repo storage.WordRepository
	Out  io.Writer

	list vocab.List
}

func NewHandler(repo storage.WordRepository) *Handler {
	return &Handler{
		Repo: repo,
		Out:  os.Stdout,
	}
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Out, "🔑 english | example | japanese: add, english/: delete, 🔧 quit")

	if err := h.Load(); err != nil {
		return err
	}

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔖 ", h.completer(),
			prompt.OptionTitle("wordbook edit"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)
		if err := h.Apply(in); err != nil {
			var ie *InputError
			if errors.As(err, &ie) {
				fmt.Fprintf(h.Out, "❌ %s\n", err)
				continue
			}
			return err
		}
	}
}

// InputError is an edit line that cannot be applied. The REPL reports it
// and goes on.
type InputError struct {
	msg string
}

func (e *InputError) Error() string {
	return e.msg
}

// Load reads the list from the repository.
func (h *Handler) Load() error {
	l, err := h.Repo.ReadAll()
	if err != nil {
		return err
	}

	h.list = l
	return nil
}

// Apply adds or deletes one entry and writes the list.
func (h *Handler) Apply(in string) error {
	w, action, err := parse(in)
	if err != nil {
		return &InputError{msg: err.Error()}
	}

	idx := h.list.Index(w.English)

	if action == actionAdd {
		if idx >= 0 {
			return &InputError{msg: "Word already exists."}
		}

		h.list = append(h.list, w)

	} else {

		if idx < 0 {
			return &InputError{msg: "Word does not exist."}
		}

		h.list = h.list.Remove(idx)
	}

	if err := h.Repo.WriteAll(h.list); err != nil {
		return err
	}

	return h.Load()
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		return h.suggest(in.TextBeforeCursor())
	}
}

func (h *Handler) suggest(befCursor string) []prompt.Suggest {

	s := []prompt.Suggest{}

	// Only complete the english word
	if befCursor == "" || strings.Contains(befCursor, "|") {
		return s
	}

	for _, w := range h.list {
		if strings.HasPrefix(w.English, befCursor) && w.English != befCursor {
			s = append(s, prompt.Suggest{Text: w.English, Description: w.Example})
		}
	}

	return s
}

func parse(in string) (vocab.Word, int, error) {

	in = strings.TrimSpace(in)
	if in == "" {
		return vocab.Word{}, actionAdd, errors.New("No word given.")
	}

	if strings.HasSuffix(in, "/") {
		english := strings.TrimSpace(strings.TrimSuffix(in, "/"))
		if english == "" {
			return vocab.Word{}, actionDelete, errors.New("No word given.")
		}

		return vocab.Word{English: english}, actionDelete, nil
	}

	w, err := vocab.Parse(in)
	if err != nil {
		return vocab.Word{}, actionAdd, err
	}

	return w, actionAdd, nil
}
