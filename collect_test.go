package smolbuf_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/smolbuf"
)

// misreported wraps an iterator and reports a fixed, usually wrong, size hint.
type misreported[T any] struct {
	smolbuf.Iterator[T]
	hint smolbuf.SizeHint
}

func (m misreported[T]) SizeHint() smolbuf.SizeHint {
	return m.hint
}

func TestFromRuneIter_Examples(t *testing.T) {
	tests := []struct {
		text string
		heap bool
	}{
		// Keyword-like strings
		{text: "if", heap: false},
		{text: "for", heap: false},
		{text: "impl", heap: false},
		// Multibyte characters
		{text: "パーティーへ行かないか", heap: true},
		{text: "パーティーへ行か", heap: true},
		{text: "パーティー", heap: false},
		{text: "和製漢語", heap: false},
		{text: "部落格", heap: false},
		{text: "사회과학원 어학연구소", heap: true},
		// Mixed widths
		{text: "表ポあA鷗ŒéＢ逍Üßªąñ丂㐀𠀀", heap: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			s := smolbuf.FromRuneIter(smolbuf.Runes(tt.text))

			assert.Equal(t, tt.text, s.String())
			assert.Equal(t, tt.heap, s.IsHeapAllocated())
		})
	}
}

func TestFromRuneIter_LowerBoundAboveCapacity(t *testing.T) {
	// 93 bytes give a lower bound of 24 runes, so collection starts on the heap.
	raw := strings.Repeat("a", 23*4+1)
	require.Greater(t, smolbuf.Runes(raw).SizeHint().Lower, smolbuf.InlineCap)

	s := smolbuf.FromRuneIter(smolbuf.Runes(raw))

	assert.Equal(t, raw, s.String())
	assert.True(t, s.IsHeapAllocated())
}

func TestFromRuneIter_MisreportedSizeHint(t *testing.T) {
	tests := []struct {
		name string
		text string
		hint smolbuf.SizeHint
	}{
		{name: "far too high, short text", text: "testing", hint: smolbuf.SizeHint{Lower: 1024}},
		{name: "far too high, long text", text: strings.Repeat("t", 93), hint: smolbuf.SizeHint{Lower: 1024}},
		{name: "too low, long text", text: strings.Repeat("t", 93), hint: smolbuf.SizeHint{Lower: 0, Upper: 0, Bounded: true}},
		{name: "too low, multibyte", text: "사회과학원 어학연구소", hint: smolbuf.SizeHint{Lower: 1, Upper: 1, Bounded: true}},
		{name: "absent, exactly capacity", text: strings.Repeat("c", smolbuf.InlineCap), hint: smolbuf.SizeHint{}},
		{name: "huge lower bound", text: "tiny", hint: smolbuf.SizeHint{Lower: 1 << 40}},
		{name: "negative lower bound", text: strings.Repeat("n", 20), hint: smolbuf.SizeHint{Lower: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collected := smolbuf.FromRuneIter(misreported[rune]{Iterator: smolbuf.Runes(tt.text), hint: tt.hint})
			direct := smolbuf.New(tt.text)

			assert.True(t, collected.Equal(direct))
			assert.Equal(t, direct.IsHeapAllocated(), collected.IsHeapAllocated())
			checkProps(t, tt.text, collected)
		})
	}
}

func TestFromStringIter(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
	}{
		{name: "no parts", parts: nil},
		{name: "empty parts", parts: []string{"", "", ""}},
		{name: "fits inline", parts: []string{"Hello", ", ", "World!"}},
		{name: "fills inline exactly", parts: []string{"ABCDE", "FGHIJ", "KLMNO"}},
		{name: "spills on last part", parts: []string{"ABCDE", "FGHIJ", "KLMNOP"}},
		{name: "single long part", parts: []string{strings.Repeat("x", 40)}},
		{name: "many short parts", parts: slices.Repeat([]string{"ab"}, 50)},
		{name: "multibyte", parts: []string{"パーティー", "へ", "行かないか"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := strings.Join(tt.parts, "")

			checkProps(t, want, smolbuf.FromStringIter(smolbuf.Strings(tt.parts)))
			checkProps(t, want, smolbuf.CollectStrings(slices.Values(tt.parts)))
			checkProps(t, want, smolbuf.Concat(tt.parts...))

			hinted := misreported[string]{Iterator: smolbuf.Strings(tt.parts), hint: smolbuf.SizeHint{Lower: 4096}}
			checkProps(t, want, smolbuf.FromStringIter(hinted))
		})
	}
}

func TestCollectRunes(t *testing.T) {
	for _, text := range []string{"", "abc", "パーティー", "パーティーへ行かないか", strings.Repeat("r", 64)} {
		checkProps(t, text, smolbuf.CollectRunes(slices.Values([]rune(text))))
	}
}

func TestCollect_InvalidRunesBecomeReplacementChar(t *testing.T) {
	s := smolbuf.CollectRunes(slices.Values([]rune{'a', -1, 'b'}))

	assert.Equal(t, "a�b", s.String())
	assert.Equal(t, 5, s.Len())
}

func TestRunes_SizeHint(t *testing.T) {
	it := smolbuf.Runes("héllo")

	assert.Equal(t, smolbuf.SizeHint{Lower: 2, Upper: 6, Bounded: true}, it.SizeHint())

	var got []rune
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		got = append(got, r)
	}
	assert.Equal(t, []rune("héllo"), got)
	assert.Equal(t, smolbuf.SizeHint{Lower: 0, Upper: 0, Bounded: true}, it.SizeHint())
}

func TestStrings_SizeHint(t *testing.T) {
	it := smolbuf.Strings([]string{"a", "b"})
	assert.Equal(t, smolbuf.SizeHint{Lower: 2, Upper: 2, Bounded: true}, it.SizeHint())

	s, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "a", s)
	assert.Equal(t, 1, it.SizeHint().Lower)
}

func TestConcat_DoesNotAliasParts(t *testing.T) {
	buf := []byte(strings.Repeat("p", 20))
	s := smolbuf.Concat(string(buf[:10]), string(buf[10:]))
	buf[0] = 'q'

	checkProps(t, strings.Repeat("p", 20), s)
}
