package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/revelaction/wordbook/storage"
	"github.com/revelaction/wordbook/vocab"
)

// WordStore keeps the vocabulary list in a JSON file: an array of
// {"english", "example", "japanese", "skip"} objects.
type WordStore struct {
	path string
}

var _ storage.WordRepository = (*WordStore)(nil)

func NewWordStore(path string) *WordStore {
	return &WordStore{path: path}
}

// ReadAll reads the list. A missing file is an empty list.
func (s *WordStore) ReadAll() (vocab.List, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", s.path).Msg("word file does not exist, starting empty")
		return vocab.List{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	var l vocab.List
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("JSON decoding error in %s: %w", s.path, err)
	}

	if l == nil {
		l = vocab.List{}
	}

	return l, nil
}

// WriteAll writes the list pretty printed. The file is replaced atomically.
func (s *WordStore) WriteAll(l vocab.List) error {
	if l == nil {
		l = vocab.List{}
	}

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("IO error: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("IO error: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	log.Debug().Str("path", s.path).Int("words", len(l)).Msg("word file written")
	return nil
}
