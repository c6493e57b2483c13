// Package config provides the corpus file loader for smolbuf.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"go.trai.ch/smolbuf"
	"go.trai.ch/smolbuf/internal/adapters/codec"
	"go.trai.ch/smolbuf/internal/core/domain"
	"go.trai.ch/smolbuf/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.CorpusLoader for YAML and JSON corpus files.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

var _ ports.CorpusLoader = (*Loader)(nil)

// NewLoader creates a Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Load reads the corpus file at path. The format follows the file extension.
func (l *Loader) Load(path string) (*domain.Corpus, error) {
	if path == "" {
		path = domain.DefaultCorpusFile
	}

	c, err := codec.ForPath(path)
	if err != nil {
		return nil, err
	}

	if _, err := l.FS.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "cannot load corpus"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	data, err := l.FS.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Corpusfile
	if err := c.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return l.build(&file, path, defaultName(path)), nil
}

// Decode reads a corpus in the given format from r.
func (l *Loader) Decode(r io.Reader, format domain.Format, name string) (*domain.Corpus, error) {
	c, err := codec.ForFormat(format)
	if err != nil {
		return nil, err
	}

	var file Corpusfile
	if err := c.Decode(r, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "format", string(format))
	}

	return l.build(&file, domain.StdinPath, name), nil
}

func (l *Loader) build(file *Corpusfile, source, fallbackName string) *domain.Corpus {
	corpus := &domain.Corpus{
		Name:    file.Name,
		Source:  source,
		Entries: make([]domain.Entry, 0, len(file.Texts)+len(file.Fragments)),
	}
	if corpus.Name == "" {
		corpus.Name = fallbackName
	}

	for i, text := range file.Texts {
		corpus.Entries = append(corpus.Entries, domain.Entry{Kind: domain.KindText, Index: i, Text: text})
	}
	for i, parts := range file.Fragments {
		corpus.Entries = append(corpus.Entries, domain.Entry{
			Kind:  domain.KindFragments,
			Index: i,
			Text:  smolbuf.Concat(parts...),
		})
	}

	if corpus.Len() == 0 {
		l.Logger.Warn(fmt.Sprintf("corpus %q has no texts or fragments", corpus.Name))
	}

	return corpus
}

// defaultName names a corpus after its file, without the extension.
func defaultName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
