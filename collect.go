package smolbuf

import (
	"iter"
	"unicode/utf8"
)

// maxPrealloc caps how many bytes a size hint alone may reserve up front.
const maxPrealloc = 64 << 10

// SizeHint estimates how many items an iterator has left. Producers may be
// wrong in either direction; the estimate only steers how buffers are sized,
// never what gets built. Collection reads only Lower; Upper and Bounded are
// informational.
type SizeHint struct {
	Lower   int
	Upper   int
	Bounded bool // Upper is meaningful
}

// Iterator yields items one at a time and can estimate how many remain.
type Iterator[T any] interface {
	Next() (T, bool)
	SizeHint() SizeHint
}

// collector assembles text inline for as long as it fits, then moves to a
// growable buffer. finish decides the representation from the final length,
// so a wrong size hint costs at most an allocation, never the inline form.
type collector struct {
	inline  inlineBuffer
	buf     []byte
	spilled bool
}

// newCollector starts on the heap when lowerBytes alone already exceeds
// InlineCap.
func newCollector(lowerBytes int) collector {
	var c collector
	if lowerBytes > InlineCap {
		c.buf = make([]byte, 0, min(lowerBytes, maxPrealloc))
		c.spilled = true
	}
	return c
}

// spill moves the inline bytes into buf, leaving room for extra more bytes.
func (c *collector) spill(extra int) {
	n := c.inline.len()
	c.buf = make([]byte, n, n+min(max(extra, 0), maxPrealloc))
	copy(c.buf, c.inline.bytes())
	c.spilled = true
}

func (c *collector) writeRune(r rune, rest Iterator[rune]) {
	if !c.spilled {
		if c.inline.appendRune(r) {
			return
		}
		remaining := 0
		if rest != nil {
			remaining = rest.SizeHint().Lower
		}
		c.spill(runeLen(r) + remaining)
	}
	c.buf = utf8.AppendRune(c.buf, r)
}

func (c *collector) writeString(s string) {
	if !c.spilled {
		if c.inline.appendString(s) {
			return
		}
		c.spill(len(s))
	}
	c.buf = append(c.buf, s...)
}

func (c *collector) finish() Str16 {
	if !c.spilled {
		return Str16{inline: c.inline}
	}
	return FromBytes(c.buf)
}

// FromRuneIter drains it and returns the UTF-8 encoding of the runes.
// The result is identical to New on the same text, whatever it reports
// through SizeHint.
func FromRuneIter(it Iterator[rune]) Str16 {
	c := newCollector(it.SizeHint().Lower)
	for {
		r, ok := it.Next()
		if !ok {
			return c.finish()
		}
		c.writeRune(r, it)
	}
}

// FromStringIter drains it and returns the concatenation of its items.
// A count of strings says nothing about their byte length, so collection
// always starts inline.
func FromStringIter(it Iterator[string]) Str16 {
	var c collector
	for {
		s, ok := it.Next()
		if !ok {
			return c.finish()
		}
		c.writeString(s)
	}
}

// CollectRunes returns the UTF-8 encoding of the runes yielded by seq.
func CollectRunes(seq iter.Seq[rune]) Str16 {
	var c collector
	for r := range seq {
		c.writeRune(r, nil)
	}
	return c.finish()
}

// CollectStrings returns the concatenation of the strings yielded by seq.
func CollectStrings(seq iter.Seq[string]) Str16 {
	var c collector
	for s := range seq {
		c.writeString(s)
	}
	return c.finish()
}

// Concat returns the concatenation of parts. The total length is known up
// front, so long results are built in one exactly sized allocation.
func Concat(parts ...string) Str16 {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	if n <= InlineCap {
		var s Str16
		for _, p := range parts {
			s.inline.appendString(p)
		}
		return s
	}
	b := make([]byte, 0, n)
	for _, p := range parts {
		b = append(b, p...)
	}
	return Str16{heap: SharedFromBytes(b)}
}

// RuneIter yields the runes of a string. Invalid UTF-8 bytes decode to
// utf8.RuneError, as in a range loop.
type RuneIter struct {
	s string
}

// Runes returns an iterator over the runes of s. Its size hint is the one a
// UTF-8 decoder can give without scanning: at least one rune per four
// bytes, at most one per byte.
func Runes(s string) *RuneIter {
	return &RuneIter{s: s}
}

// Next returns the next rune.
func (it *RuneIter) Next() (rune, bool) {
	if it.s == "" {
		return 0, false
	}
	r, n := utf8.DecodeRuneInString(it.s)
	it.s = it.s[n:]
	return r, true
}

// SizeHint implements Iterator.
func (it *RuneIter) SizeHint() SizeHint {
	n := len(it.s)
	return SizeHint{Lower: (n + utf8.UTFMax - 1) / utf8.UTFMax, Upper: n, Bounded: true}
}

// StringIter yields the elements of a string slice.
type StringIter struct {
	parts []string
}

// Strings returns an iterator over parts with an exact size hint.
func Strings(parts []string) *StringIter {
	return &StringIter{parts: parts}
}

// Next returns the next element.
func (it *StringIter) Next() (string, bool) {
	if len(it.parts) == 0 {
		return "", false
	}
	s := it.parts[0]
	it.parts = it.parts[1:]
	return s, true
}

// SizeHint implements Iterator.
func (it *StringIter) SizeHint() SizeHint {
	return SizeHint{Lower: len(it.parts), Upper: len(it.parts), Bounded: true}
}
