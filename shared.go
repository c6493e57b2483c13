package smolbuf

import (
	"strings"
	"sync/atomic"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Shared is an immutable heap string whose ownership is shared between
// Str16 values. Its text never changes after construction; only the owner
// count does, and only atomically, so a *Shared may be retained and released
// from any number of goroutines.
type Shared struct {
	text string
	refs atomic.Int64
}

// NewShared copies s into a new buffer owned by the caller.
func NewShared(s string) *Shared {
	return adoptShared(strings.Clone(s))
}

// SharedFromBytes builds a Shared from a buffer the caller gives up.
// When b has no spare capacity its storage becomes the shared buffer as is;
// otherwise exactly len(b) bytes are copied so the excess capacity is not kept
// alive. b must not be modified after the call.
func SharedFromBytes(b []byte) *Shared {
	return adoptShared(ownedString(b))
}

func adoptShared(s string) *Shared {
	h := &Shared{text: s}
	h.refs.Store(1)
	return h
}

// ownedString converts a buffer the caller gives up into a string, reusing the
// storage when the buffer is already exactly sized.
func ownedString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	if cap(b) != len(b) {
		return string(b)
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// String returns the shared text. It never copies.
func (h *Shared) String() string {
	return h.text
}

// Len returns the length of the text in bytes.
func (h *Shared) Len() int {
	return len(h.text)
}

// Equal reports whether h and o hold the same text, regardless of which
// allocation holds it.
func (h *Shared) Equal(o *Shared) bool {
	return h.text == o.text
}

// Hash returns the xxhash of the text.
func (h *Shared) Hash() uint64 {
	return xxhash.Sum64String(h.text)
}

// Refs returns the current number of owners.
func (h *Shared) Refs() int64 {
	return h.refs.Load()
}

// Retain registers one more owner and returns h.
// It panics with ErrReleased if the last owner already released h.
func (h *Shared) Retain() *Shared {
	for {
		n := h.refs.Load()
		if n <= 0 {
			panic(zerr.With(zerr.Wrap(ErrReleased, "retain"), "refs", n))
		}
		if h.refs.CompareAndSwap(n, n+1) {
			return h
		}
	}
}

// Release drops one owner. It reports true for exactly one call: the one that
// drops the last owner, after which the buffer belongs to the garbage
// collector. Releasing more times than h was retained panics with ErrReleased.
func (h *Shared) Release() bool {
	n := h.refs.Add(-1)
	if n < 0 {
		panic(zerr.With(zerr.Wrap(ErrReleased, "release"), "refs", n))
	}
	return n == 0
}
