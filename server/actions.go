package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"github.com/revelaction/wordbook/match"
	"github.com/revelaction/wordbook/search"
	sent "github.com/revelaction/wordbook/sentence"
	"github.com/revelaction/wordbook/storage"
)

type lemmaResponse struct {
	Word  string `json:"word"`
	Lemma string `json:"lemma"`
	Found bool   `json:"found"`
}

type annotateRequest struct {
	Sentence string `json:"sentence"`
	Target   string `json:"target"`
}

type annotateResponse struct {
	Fragments sent.Fragments `json:"fragments"`
}

type wordResponse struct {
	English   string         `json:"english"`
	Japanese  string         `json:"japanese"`
	Skip      bool           `json:"skip"`
	Fragments sent.Fragments `json:"fragments"`
}

type wordsResponse struct {
	Words []wordResponse `json:"words"`
}

// Actions holds the HTTP handlers of the API.
type Actions struct {
	resolver  match.BaseFormer
	annotator search.Annotator
	repo      storage.WordReader
}

func NewActions(r match.BaseFormer, a search.Annotator, repo storage.WordReader) *Actions {
	return &Actions{resolver: r, annotator: a, repo: repo}
}

// Lemma returns the base form of the word in the path.
func (a *Actions) Lemma(ctx *gin.Context) {
	word := ctx.Param("word")
	lemma, found := a.resolver.BaseForm(word)
	uniresp.WriteJSONResponse(ctx.Writer, lemmaResponse{Word: word, Lemma: lemma, Found: found})
}

// Annotate segments the sentence of the request body and marks the
// occurrences of its target.
func (a *Actions) Annotate(ctx *gin.Context) {
	var req annotateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Target) == "" {
		uniresp.RespondWithErrorJSON(ctx, errors.New("missing target"), http.StatusBadRequest)
		return
	}

	fragments := a.annotator.Annotate(req.Sentence, req.Target)
	if fragments == nil {
		fragments = sent.Fragments{}
	}

	uniresp.WriteJSONResponse(ctx.Writer, annotateResponse{Fragments: fragments})
}

// Words returns the vocabulary with every example annotated.
func (a *Actions) Words(ctx *gin.Context) {
	l, err := a.repo.ReadAll()
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}

	resp := wordsResponse{Words: make([]wordResponse, 0, len(l))}
	for _, w := range l {
		fragments := a.annotator.Annotate(w.Example, w.English)
		if fragments == nil {
			fragments = sent.Fragments{}
		}

		resp.Words = append(resp.Words, wordResponse{
			English:   w.English,
			Japanese:  w.Japanese,
			Skip:      w.Skip,
			Fragments: fragments,
		})
	}

	uniresp.WriteJSONResponse(ctx.Writer, resp)
}
