package storage

import (
	"github.com/revelaction/wordbook/vocab"
)

// WordReader defines read operations for vocabulary storage
type WordReader interface {
	// ReadAll returns the whole vocabulary list, in stored order
	ReadAll() (vocab.List, error)
}

// WordWriter defines write operations for vocabulary storage
type WordWriter interface {
	// WriteAll replaces the stored list with l
	WriteAll(l vocab.List) error
}

// WordRepository combines read and write operations
type WordRepository interface {
	WordReader
	WordWriter
}
