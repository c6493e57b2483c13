package smolbuf

import (
	"unicode/utf8"
	"unsafe"
)

// InlineCap is the largest byte length a Str16 stores without a heap allocation.
// The inline buffer and its length byte together are the size of a string header.
const InlineCap = 15

// inlineBuffer holds up to InlineCap bytes of text plus their length.
// Bytes past n are always zero.
type inlineBuffer struct {
	buf [InlineCap]byte
	n   uint8
}

// makeInline copies s into a fresh buffer. It reports false, leaving the
// buffer empty, when s does not fit.
func makeInline(s string) (inlineBuffer, bool) {
	var ib inlineBuffer
	if len(s) > InlineCap {
		return ib, false
	}
	ib.n = uint8(copy(ib.buf[:], s))
	return ib, true
}

func (ib *inlineBuffer) len() int {
	return int(ib.n)
}

// appendString appends s if the result fits. Nothing is written otherwise.
func (ib *inlineBuffer) appendString(s string) bool {
	if len(s) > InlineCap-int(ib.n) {
		return false
	}
	ib.n += uint8(copy(ib.buf[ib.n:], s))
	return true
}

// appendRune appends the UTF-8 encoding of r if it fits. Invalid runes are
// written as utf8.RuneError, the same way utf8.AppendRune does.
func (ib *inlineBuffer) appendRune(r rune) bool {
	size := runeLen(r)
	if size > InlineCap-int(ib.n) {
		return false
	}
	ib.n += uint8(utf8.EncodeRune(ib.buf[ib.n:], r))
	return true
}

func (ib *inlineBuffer) bytes() []byte {
	return ib.buf[:ib.n]
}

// view returns the text without copying. The result aliases ib.
func (ib *inlineBuffer) view() string {
	if ib.n == 0 {
		return ""
	}
	return unsafe.String(&ib.buf[0], int(ib.n))
}

func (ib *inlineBuffer) string() string {
	return string(ib.buf[:ib.n])
}

// runeLen is utf8.RuneLen with invalid runes counted as utf8.RuneError.
func runeLen(r rune) int {
	if n := utf8.RuneLen(r); n > 0 {
		return n
	}
	return utf8.RuneLen(utf8.RuneError)
}
