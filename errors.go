package smolbuf

import "go.trai.ch/zerr"

var (
	// ErrInlineOverflow is returned when a text longer than InlineCap is given to an
	// inline-only constructor.
	ErrInlineOverflow = zerr.New("text exceeds inline capacity")

	// ErrReleased is the panic value raised when a Shared buffer is retained or
	// released after its last reference was dropped.
	ErrReleased = zerr.New("shared string already released")
)
