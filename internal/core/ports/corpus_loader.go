package ports

import (
	"io"

	"go.trai.ch/smolbuf/internal/core/domain"
)

// CorpusLoader defines the interface for reading corpus files.
//
//go:generate mockgen -source=corpus_loader.go -destination=mocks/mock_corpus_loader.go -package=mocks
type CorpusLoader interface {
	// Load reads the corpus file at path. An empty path selects domain.DefaultCorpusFile.
	Load(path string) (*domain.Corpus, error)

	// Decode reads a corpus in the given format from r. name is used when the corpus
	// does not declare one.
	Decode(r io.Reader, format domain.Format, name string) (*domain.Corpus, error)
}
