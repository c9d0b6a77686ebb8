package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	sent "github.com/revelaction/wordbook/sentence"
	"github.com/revelaction/wordbook/vocab"
)

const (
	DefaultFormat = "styled"
	blindMask     = "###"
)

func SupportedFormats() []string {
	return []string{"styled", "plain", "mark", "blind"}
}

// IsSupported reports whether format is one of SupportedFormats.
func IsSupported(format string) bool {
	for _, f := range SupportedFormats() {
		if f == format {
			return true
		}
	}
	return false
}

type Renderer struct {
	Out io.Writer

	// Format determines how matched fragments are shown
	//
	// styled: matches bold and underlined, the rest dark grey
	// plain: text only
	// mark: matches wrapped in brackets
	// blind: matches replaced by a mask
	Format string

	HasPrefix bool

	// PrefixFunc builds the line prefix of Entry when HasPrefix is set
	PrefixFunc func(vocab.Word) string

	match lipgloss.Style
	rest  lipgloss.Style
	word  lipgloss.Style
}

func NewRenderer(out io.Writer) *Renderer {
	if out == nil {
		out = os.Stdout
	}

	lr := lipgloss.NewRenderer(out)
	return &Renderer{
		Out:        out,
		Format:     DefaultFormat,
		PrefixFunc: PrefixFuncWord,
		match:      lr.NewStyle().Bold(true).Underline(true),
		rest:       lr.NewStyle().Foreground(lipgloss.Color("240")),
		word:       lr.NewStyle().Foreground(lipgloss.Color("130")).Bold(true),
	}
}

// String returns the fragments as one line in the current format.
func (r *Renderer) String(fragments sent.Fragments) string {
	var str strings.Builder
	for _, f := range fragments {
		str.WriteString(r.fragment(f))
	}

	return strings.ReplaceAll(str.String(), "\n", " ")
}

func (r *Renderer) fragment(f sent.Fragment) string {
	switch r.Format {
	case "plain":
		return f.Text
	case "mark":
		if f.Match {
			return "[" + f.Text + "]"
		}
		return f.Text
	case "blind":
		if f.Match {
			return blindMask
		}
		return f.Text
	default:
		if f.Match {
			return r.match.Render(f.Text)
		}
		// lipgloss expands tabs and pads lines
		if strings.TrimSpace(f.Text) == "" {
			return f.Text
		}
		return r.rest.Render(f.Text)
	}
}

// Fragments writes the fragments followed by a newline.
func (r *Renderer) Fragments(fragments sent.Fragments) {
	fmt.Fprintln(r.Out, r.String(fragments))
}

// Entry writes an annotated vocabulary example, prefixed with its word when
// HasPrefix is set.
func (r *Renderer) Entry(w vocab.Word, fragments sent.Fragments) {
	var prefix string
	if r.HasPrefix && r.PrefixFunc != nil {
		prefix = r.PrefixFunc(w)
	}

	fmt.Fprintf(r.Out, "%s%s\n", prefix, r.String(fragments))
}

// Word returns the vocabulary word highlighted.
func (r *Renderer) Word(english string) string {
	if r.Format != DefaultFormat {
		return english
	}
	return r.word.Render(english)
}

func PrefixFuncEmpty(w vocab.Word) string {
	return ""
}

func PrefixFuncWord(w vocab.Word) string {
	return fmt.Sprintf("[%-15s] ✍  ", w.English)
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			r.Format = supported[(i+1)%len(supported)]
			return
		}
	}

	r.Format = supported[0]
}

func (r *Renderer) NextPrefix() {
	r.HasPrefix = !r.HasPrefix
}
