package codec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/smolbuf"
	"go.trai.ch/smolbuf/internal/adapters/codec"
	"go.trai.ch/smolbuf/internal/core/domain"
)

type document struct {
	Short smolbuf.Str16              `json:"short" yaml:"short"`
	Long  smolbuf.Str16              `json:"long" yaml:"long"`
	List  []smolbuf.Str16            `json:"list" yaml:"list"`
	Index smolbuf.Map[smolbuf.Str16] `json:"index" yaml:"index"`
}

var longText = strings.Repeat("Hello, World! ", 3)

func newDocument() document {
	doc := document{
		Short: smolbuf.New("Hello, World!"),
		Long:  smolbuf.New(longText),
		List:  []smolbuf.Str16{smolbuf.New(""), smolbuf.New("パーティーへ行かないか")},
	}
	doc.Index.Set(smolbuf.New("a"), smolbuf.New("ohno"))
	doc.Index.Set(smolbuf.New(longText), smolbuf.New("long key"))
	return doc
}

func assertDocument(t *testing.T, got document) {
	t.Helper()
	assert.Equal(t, "Hello, World!", got.Short.String())
	assert.False(t, got.Short.IsHeapAllocated())
	assert.Equal(t, longText, got.Long.String())
	assert.True(t, got.Long.IsHeapAllocated())
	require.Len(t, got.List, 2)
	assert.True(t, got.List[0].IsEmpty())
	assert.True(t, got.List[1].IsHeapAllocated())

	require.Equal(t, 2, got.Index.Len())
	v, ok := got.Index.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "ohno", v.String())
	v, ok = got.Index.Lookup(longText)
	require.True(t, ok)
	assert.Equal(t, "long key", v.String())
}

func TestCodecs_RoundTrip(t *testing.T) {
	for _, c := range []codec.Codec{codec.JSON, codec.YAML} {
		t.Run(string(c.Format()), func(t *testing.T) {
			data, err := c.Marshal(newDocument())
			require.NoError(t, err)

			var viaBytes document
			require.NoError(t, c.Unmarshal(data, &viaBytes))
			assertDocument(t, viaBytes)

			var viaReader document
			require.NoError(t, c.Decode(strings.NewReader(string(data)), &viaReader))
			assertDocument(t, viaReader)
		})
	}
}

func TestMarshalJSON_PlainStrings(t *testing.T) {
	data, err := codec.MarshalJSON(map[string]smolbuf.Str16{"k": smolbuf.New("v")})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"k\": \"v\"\n}\n", string(data))
}

func TestMarshalYAML_PlainStrings(t *testing.T) {
	data, err := codec.MarshalYAML(struct {
		Texts []smolbuf.Str16 `yaml:"texts"`
	}{Texts: []smolbuf.Str16{smolbuf.New("if"), smolbuf.New("for")}})
	require.NoError(t, err)
	assert.Equal(t, "texts:\n  - if\n  - for\n", string(data))
}

func TestDecode_Errors(t *testing.T) {
	var doc document

	err := codec.UnmarshalJSON([]byte(`{"short": `), &doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode json")

	err = codec.DecodeYAML(strings.NewReader("short: [unterminated"), &doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode yaml")

	require.NoError(t, codec.DecodeYAML(strings.NewReader(""), &doc))
}

func TestForPath(t *testing.T) {
	c, err := codec.ForPath("smolbuf.yaml")
	require.NoError(t, err)
	assert.Equal(t, domain.FormatYAML, c.Format())

	c, err = codec.ForPath("corpus.json")
	require.NoError(t, err)
	assert.Equal(t, domain.FormatJSON, c.Format())

	_, err = codec.ForPath("corpus.txt")
	require.ErrorIs(t, err, domain.ErrUnknownFormat)

	_, err = codec.ForFormat(domain.FormatText)
	require.ErrorIs(t, err, domain.ErrUnknownFormat)
}
