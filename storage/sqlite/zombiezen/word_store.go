package zombiezen

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/wordbook/storage"
	"github.com/revelaction/wordbook/vocab"
)

type WordStore struct {
	pool *sqlitex.Pool
}

var _ storage.WordRepository = (*WordStore)(nil)

func NewWordStore(pool *sqlitex.Pool) *WordStore {
	return &WordStore{pool: pool}
}

func (s *WordStore) ReadAll() (vocab.List, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	l := vocab.List{}
	err = sqlitex.Execute(conn, "SELECT english, example, japanese, skip FROM words ORDER BY position", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			l = append(l, vocab.Word{
				English:  stmt.ColumnText(0),
				Example:  stmt.ColumnText(1),
				Japanese: stmt.ColumnText(2),
				Skip:     stmt.ColumnInt(3) != 0,
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Int("words", len(l)).Msg("words read from sqlite")
	return l, nil
}

// WriteAll replaces the table contents in one transaction.
func (s *WordStore) WriteAll(l vocab.List) (err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	if err = sqlitex.Execute(conn, "DELETE FROM words", nil); err != nil {
		return fmt.Errorf("failed to clear words: %w", err)
	}

	for i, w := range l {
		err = sqlitex.Execute(conn, "INSERT INTO words (position, english, example, japanese, skip) VALUES (?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{i, w.English, w.Example, w.Japanese, w.Skip},
		})
		if err != nil {
			return fmt.Errorf("failed to insert word %q: %w", w.English, err)
		}
	}

	log.Debug().Int("words", len(l)).Msg("words written to sqlite")
	return nil
}
