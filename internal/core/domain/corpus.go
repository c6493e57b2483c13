package domain

import (
	"fmt"

	"go.trai.ch/smolbuf"
)

// EntryKind tells how an entry was declared in its corpus file.
type EntryKind uint8

const (
	// KindText is a text given whole.
	KindText EntryKind = iota
	// KindFragments is a text assembled from a list of fragments.
	KindFragments
)

// String returns the corpus file key the kind is declared under.
func (k EntryKind) String() string {
	switch k {
	case KindText:
		return "texts"
	case KindFragments:
		return "fragments"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k EntryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entry is a single text of a corpus.
type Entry struct {
	Kind  EntryKind
	Index int
	Text  smolbuf.Str16
}

// Label identifies the entry inside its corpus, e.g. "fragments[2]".
func (e *Entry) Label() string {
	return fmt.Sprintf("%s[%d]", e.Kind, e.Index)
}

// Corpus is a named collection of texts to classify.
type Corpus struct {
	Name    string
	Source  string
	Entries []Entry
}

// Len returns the number of entries.
func (c *Corpus) Len() int {
	return len(c.Entries)
}
