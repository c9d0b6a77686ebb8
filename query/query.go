package query

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/wordbook/render"
	"github.com/revelaction/wordbook/search"
	"github.com/revelaction/wordbook/storage"
	"github.com/revelaction/wordbook/vocab"
)

const (
	completionThreshold = 2
)

type Handler struct {
	Repo      storage.WordReader
	Annotator search.Annotator
	Renderer  *render.Renderer
	Out       io.Writer
}

func NewHandler(wr storage.WordReader, a search.Annotator, r *render.Renderer) *Handler {
	return &Handler{
		Repo:      wr,
		Annotator: a,
		Renderer:  r,
		Out:       r.Out,
	}
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Out, "🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, 🔧 quit")

	l, err := h.Repo.ReadAll()
	if err != nil {
		return err
	}

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔖 ", h.completer(l),
			prompt.OptionTitle("wordbook query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.Out, "Format set to: "+h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintln(h.Out, "Prefix set to "+fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)
		h.Query(l, in)
	}
}

// Query renders, for every word of in, the examples containing it. It
// returns the number of rendered examples.
func (h *Handler) Query(l vocab.List, in string) int {
	n := 0
	for _, target := range strings.Fields(in) {
		hits := search.Examples(h.Annotator, l, target)
		if len(hits) == 0 {
			fmt.Fprintf(h.Out, "❌ no examples for %s\n", target)
			continue
		}

		for _, hit := range hits {
			h.Renderer.Entry(hit.Word, hit.Fragments)
		}

		n += len(hits)
	}

	return n
}

func (h *Handler) completer(l vocab.List) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		return suggest(l, in.GetWordBeforeCursor())
	}
}

// suggest returns the vocabulary words starting with token.
func suggest(l vocab.List, token string) []prompt.Suggest {
	s := []prompt.Suggest{}
	if len(token) < completionThreshold {
		return s
	}

	for _, w := range l {
		if strings.HasPrefix(w.English, token) {
			s = append(s, prompt.Suggest{Text: w.English, Description: w.Japanese})
		}
	}

	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Text < s[j].Text
	})

	return s
}
