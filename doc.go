// Package smolbuf provides Str16, an immutable string value that stores texts
// of up to InlineCap bytes inside the value itself and shares longer texts
// through a reference-counted heap buffer.
//
// A Str16 never changes after construction. Short texts cost no heap
// allocation and no atomic operations; long texts are shared between copies
// made with Clone. Equality, ordering and hashing are defined over the text
// alone, so an inline and a heap-backed value holding the same bytes are
// indistinguishable to callers except through IsHeapAllocated.
//
//	var keyword = smolbuf.NewInline("return")
//
//	name := smolbuf.New(input)
//	if name.Equal(keyword) {
//		...
//	}
package smolbuf
