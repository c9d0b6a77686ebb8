package render

import (
	"encoding/json"
	"io"

	sent "github.com/revelaction/wordbook/sentence"
)

// JSONRenderer writes annotated fragments as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the fragments as a JSON array of {"text","match"}.
func (r *JSONRenderer) Render(fragments sent.Fragments) error {
	if fragments == nil {
		fragments = sent.Fragments{}
	}
	return json.NewEncoder(r.W).Encode(fragments)
}
