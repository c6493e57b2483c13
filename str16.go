package smolbuf

import (
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Str16 is an immutable string. Texts of at most InlineCap bytes are stored
// inside the value; longer texts live in a Shared buffer.
//
// The zero value is the empty string. Str16 is not comparable with ==; use
// Equal, Compare and Hash, which only look at the text.
type Str16 struct {
	_ [0]func()

	// heap is non-nil exactly when the text is longer than InlineCap.
	heap   *Shared
	inline inlineBuffer
}

// New returns s as a Str16. Texts longer than InlineCap are copied into a new
// Shared buffer so the result does not keep the memory behind s alive.
func New(s string) Str16 {
	if ib, ok := makeInline(s); ok {
		return Str16{inline: ib}
	}
	return Str16{heap: NewShared(s)}
}

// NewInline returns s stored inline. It is meant for package-level values
// built from literals and panics if s is longer than InlineCap.
//
//	var empty = smolbuf.NewInline("")
func NewInline(s string) Str16 {
	v, err := TryInline(s)
	if err != nil {
		panic(err)
	}
	return v
}

// TryInline is NewInline returning ErrInlineOverflow instead of panicking.
func TryInline(s string) (Str16, error) {
	ib, ok := makeInline(s)
	if !ok {
		return Str16{}, zerr.With(zerr.Wrap(ErrInlineOverflow, "cannot store text inline"), "len", len(s))
	}
	return Str16{inline: ib}, nil
}

// FromBytes builds a Str16 from a buffer the caller gives up; b must not be
// modified afterwards. Short texts are copied inline. Longer ones reuse b's
// storage when it has no spare capacity and are copied exactly otherwise.
func FromBytes(b []byte) Str16 {
	if len(b) <= InlineCap {
		var s Str16
		s.inline.n = uint8(copy(s.inline.buf[:], b))
		return s
	}
	return Str16{heap: SharedFromBytes(b)}
}

// FromBuilder returns the text accumulated in b. The builder may keep being
// used afterwards. Long texts share the builder's storage only when it is
// exactly sized.
func FromBuilder(b *strings.Builder) Str16 {
	s := b.String()
	if ib, ok := makeInline(s); ok {
		return Str16{inline: ib}
	}
	if b.Cap() != b.Len() {
		s = strings.Clone(s)
	}
	return Str16{heap: adoptShared(s)}
}

// FromShared returns the text of h. Short texts are copied inline so the
// result needs no reference to h at all; longer ones retain h and share its
// buffer. The caller keeps its own reference to h.
func FromShared(h *Shared) Str16 {
	if ib, ok := makeInline(h.String()); ok {
		return Str16{inline: ib}
	}
	return Str16{heap: h.Retain()}
}

// fromString adopts s without copying. Callers must own s outright.
func fromString(s string) Str16 {
	if ib, ok := makeInline(s); ok {
		return Str16{inline: ib}
	}
	return Str16{heap: adoptShared(s)}
}

// View returns the text without copying.
//
// WARNING: for inline values the result points into s itself. It stays valid
// only while *s is not overwritten; use String when the text must outlive s.
func (s *Str16) View() string {
	if s.heap != nil {
		return s.heap.String()
	}
	return s.inline.view()
}

// String returns the text. Heap-backed values never copy; inline values copy
// at most InlineCap bytes.
func (s Str16) String() string {
	if s.heap != nil {
		return s.heap.String()
	}
	return s.inline.string()
}

// GoString implements fmt.GoStringer.
func (s Str16) GoString() string {
	return "smolbuf.New(" + strconv.Quote(s.View()) + ")"
}

// Len returns the length of the text in bytes.
func (s Str16) Len() int {
	if s.heap != nil {
		return s.heap.Len()
	}
	return s.inline.len()
}

// IsEmpty reports whether the text is empty.
func (s Str16) IsEmpty() bool {
	return s.Len() == 0
}

// IsHeapAllocated reports whether the text lives in a Shared buffer.
func (s Str16) IsHeapAllocated() bool {
	return s.heap != nil
}

// Bytes returns a copy of the text.
func (s Str16) Bytes() []byte {
	return []byte(s.View())
}

// AppendTo appends the text to dst and returns the extended slice.
func (s Str16) AppendTo(dst []byte) []byte {
	return append(dst, s.View()...)
}

// WriteTo writes the text to w.
func (s Str16) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.View())
	return int64(n), err
}

// Shared returns the text as a Shared buffer owned by the caller. A heap-backed
// value hands out its own buffer with one more owner; an inline value copies
// its bytes into a new buffer.
func (s Str16) Shared() *Shared {
	if s.heap != nil {
		return s.heap.Retain()
	}
	return NewShared(s.inline.view())
}

// Clone returns a copy of s that owns its text independently of s. For heap
// values this adds an owner to the shared buffer; inline values are copied.
func (s Str16) Clone() Str16 {
	if s.heap != nil {
		s.heap.Retain()
	}
	return s
}

// Release gives up the ownership s holds on its shared buffer and resets s to
// the empty string. Inline values just become empty.
func (s *Str16) Release() {
	if s.heap != nil {
		s.heap.Release()
	}
	*s = Str16{}
}

// Equal reports whether s and o hold the same text.
func (s Str16) Equal(o Str16) bool {
	if s.Len() != o.Len() {
		return false
	}
	return s.View() == o.View()
}

// EqualString reports whether s holds the text t.
func (s Str16) EqualString(t string) bool {
	return s.View() == t
}

// Compare returns an integer comparing the texts of s and o lexicographically
// by bytes, like strings.Compare.
func (s Str16) Compare(o Str16) int {
	return strings.Compare(s.View(), o.View())
}

// Hash returns the xxhash of the text. Values with equal text hash equally
// whichever representation holds them.
func (s Str16) Hash() uint64 {
	return xxhash.Sum64String(s.View())
}

// MarshalText implements encoding.TextMarshaler. The text is emitted as is,
// so encoders see a plain string.
func (s Str16) MarshalText() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The decoded value is
// routed inline or to the heap like any other construction.
func (s *Str16) UnmarshalText(text []byte) error {
	*s = fromString(string(text))
	return nil
}

// Compare compares two values by text. It fits slices.SortFunc and
// slices.BinarySearchFunc.
func Compare(a, b Str16) int {
	return a.Compare(b)
}

// Sort sorts ss by text in increasing order.
func Sort(ss []Str16) {
	slices.SortFunc(ss, Compare)
}
