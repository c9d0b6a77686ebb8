package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/wordbook/cnf"
	"github.com/revelaction/wordbook/lemma"
	"github.com/revelaction/wordbook/lexicon"
	"github.com/revelaction/wordbook/match"
	"github.com/revelaction/wordbook/vocab"
)

type memRepo struct {
	list vocab.List
	err  error
}

func (m *memRepo) ReadAll() (vocab.List, error) {
	return m.list, m.err
}

func newTestHandler(t *testing.T, repo *memRepo, origins ...string) http.Handler {
	t.Helper()
	lex, err := lexicon.New()
	require.NoError(t, err)

	resolver := lemma.NewResolver(lex)
	conf := &cnf.Conf{CorsAllowedOrigins: origins}
	require.NoError(t, cnf.ValidateAndDefaults(conf))

	return NewHandler(conf, NewActions(resolver, match.NewAnnotator(resolver), repo), "test")
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLemma(t *testing.T) {
	h := newTestHandler(t, &memRepo{})

	rec := do(h, http.MethodGet, "/lemma/running", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp lemmaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, lemmaResponse{Word: "running", Lemma: "run", Found: true}, resp)

	rec = do(h, http.MethodGet, "/lemma/axes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Lemma)
}

func TestAnnotate(t *testing.T) {
	h := newTestHandler(t, &memRepo{})

	rec := do(h, http.MethodPost, "/annotate", `{"sentence":"I ate a student.","target":"eat"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp annotateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Fragments, 8)
	assert.Equal(t, "ate", resp.Fragments[2].Text)
	assert.True(t, resp.Fragments[2].Match)
	assert.Equal(t, 1, resp.Fragments.NumMatches())

	rec = do(h, http.MethodPost, "/annotate", `{"sentence":"","target":"am"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"fragments":[]}`, rec.Body.String())
}

func TestAnnotateBadRequest(t *testing.T) {
	h := newTestHandler(t, &memRepo{})

	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodPost, "/annotate", `{"sentence":`).Code)
	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodPost, "/annotate", `{"sentence":"be kind."}`).Code)
}

func TestWords(t *testing.T) {
	h := newTestHandler(t, &memRepo{list: vocab.List{
		{English: "be", Example: "be kind.", Japanese: "である"},
	}})

	rec := do(h, http.MethodGet, "/words", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp wordsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Words, 1)
	assert.Equal(t, "である", resp.Words[0].Japanese)
	assert.Equal(t, "be", resp.Words[0].Fragments[0].Text)
	assert.True(t, resp.Words[0].Fragments[0].Match)

	h = newTestHandler(t, &memRepo{err: errors.New("broken")})
	assert.Equal(t, http.StatusInternalServerError, do(h, http.MethodGet, "/words", "").Code)
}

func TestNotFound(t *testing.T) {
	h := newTestHandler(t, &memRepo{})
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/nothing", "").Code)
}

func TestCORS(t *testing.T) {
	h := newTestHandler(t, &memRepo{}, "http://localhost:3000")

	req := httptest.NewRequest(http.MethodGet, "/lemma/cats", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/lemma/cats", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
