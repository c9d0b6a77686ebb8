package main

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/revelaction/wordbook/cnf"
	"github.com/revelaction/wordbook/lemma"
	"github.com/revelaction/wordbook/lexicon"
	"github.com/revelaction/wordbook/match"
	"github.com/revelaction/wordbook/storage"
	"github.com/revelaction/wordbook/storage/filesystem"
	"github.com/revelaction/wordbook/storage/sqlite/zombiezen"
)

func isSQLite(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// NewWordRepository opens the word storage at path. The returned func
// releases it.
func NewWordRepository(path string) (storage.WordRepository, func() error, error) {
	if !isSQLite(path) {
		return filesystem.NewWordStore(path), func() error { return nil }, nil
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, nil, err
	}

	if err := zombiezen.CreateSchemas(pool, zombiezen.WordsSchema); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return zombiezen.NewWordStore(pool), pool.Close, nil
}

// NewLemmatizer loads the configured lemmatizer backend.
func NewLemmatizer(conf *cnf.Conf) (lemma.Lemmatizer, error) {
	log.Info().Str("lemmatizer", conf.Lemmatizer).Msg("initializing lemmatizer")

	if conf.Lemmatizer == cnf.LemmatizerGolem {
		g, err := lexicon.NewGolem()
		if err != nil {
			return nil, err
		}
		log.Info().Msg("lemmatizer loaded")
		return g, nil
	}

	var (
		lex *lexicon.Lexicon
		err error
	)
	if conf.LexiconPath != "" {
		lex, err = lexicon.Open(conf.LexiconPath)
	} else {
		lex, err = lexicon.New()
	}
	if err != nil {
		return nil, err
	}

	log.Info().Int("entries", lex.Len()).Msg("lemmatizer loaded")
	return lex, nil
}

// mustResolver builds the resolver and the annotator. A lemmatizer that
// cannot be loaded ends the process.
func (e *env) mustResolver() (*lemma.Resolver, *match.Annotator) {
	lz, err := NewLemmatizer(e.conf)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load lemmatizer")
	}

	r := lemma.NewResolver(lz)
	return r, match.NewAnnotator(r)
}
