package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/smolbuf"
	"go.trai.ch/smolbuf/internal/adapters/report"
	"go.trai.ch/smolbuf/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func classifications() []domain.Classification {
	return []domain.Classification{
		{Text: smolbuf.New("if"), Bytes: 2, Runes: 2, Hash: 0x1},
		{Text: smolbuf.New("パーティーへ行かないか"), Bytes: 33, Runes: 11, Heap: true, Hash: 0xdeadbeef},
	}
}

func sampleReport(withItems bool) *domain.Report {
	items := classifications()
	items[0].Label = "texts[0]"
	items[1].Label = "fragments[0]"

	r := &domain.Report{
		Corpus:   "keywords",
		Entries:  2,
		Inline:   domain.Bucket{Count: 1, Bytes: 2},
		Heap:     domain.Bucket{Count: 1, Bytes: 33},
		Distinct: 2,
		Longest:  &items[1],
	}
	if withItems {
		r.Items = items
	}
	return r
}

func TestWriter_Text(t *testing.T) {
	tests := []struct {
		name       string
		render     func(*report.Writer, *bytes.Buffer) error
		goldenName string
	}{
		{
			name: "inspections",
			render: func(w *report.Writer, buf *bytes.Buffer) error {
				return w.WriteInspections(buf, classifications(), domain.FormatText)
			},
			goldenName: "inspect_text",
		},
		{
			name: "report",
			render: func(w *report.Writer, buf *bytes.Buffer) error {
				return w.WriteReport(buf, sampleReport(false), domain.FormatText)
			},
			goldenName: "report_text",
		},
		{
			name: "report with items",
			render: func(w *report.Writer, buf *bytes.Buffer) error {
				return w.WriteReport(buf, sampleReport(true), domain.FormatText)
			},
			goldenName: "report_text_items",
		},
		{
			name: "empty report",
			render: func(w *report.Writer, buf *bytes.Buffer) error {
				return w.WriteReport(buf, &domain.Report{Corpus: "empty"}, domain.FormatText)
			},
			goldenName: "report_text_empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.render(report.NewPlainWriter(), &buf))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.NewPlainWriter().WriteReport(&buf, sampleReport(true), domain.FormatJSON))

	var decoded struct {
		Corpus   string `json:"corpus"`
		Entries  int    `json:"entries"`
		Distinct int    `json:"distinct"`
		Inline   struct {
			Count int `json:"count"`
			Bytes int `json:"bytes"`
		} `json:"inline"`
		Longest struct {
			Label string `json:"label"`
			Text  string `json:"text"`
			Heap  bool   `json:"heap"`
		} `json:"longest"`
		Items []struct {
			Text string `json:"text"`
			Hash uint64 `json:"hash"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "keywords", decoded.Corpus)
	assert.Equal(t, 2, decoded.Entries)
	assert.Equal(t, 1, decoded.Inline.Count)
	assert.Equal(t, "fragments[0]", decoded.Longest.Label)
	assert.Equal(t, "パーティーへ行かないか", decoded.Longest.Text)
	assert.True(t, decoded.Longest.Heap)
	require.Len(t, decoded.Items, 2)
	assert.Equal(t, uint64(0xdeadbeef), decoded.Items[1].Hash)
}

func TestWriter_YAMLInspections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.NewPlainWriter().WriteInspections(&buf, classifications(), domain.FormatYAML))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "if", decoded[0]["text"])
	assert.Equal(t, true, decoded[1]["heap"])
	assert.NotContains(t, decoded[0], "label")
}

func TestWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := report.NewPlainWriter().WriteReport(&buf, sampleReport(false), domain.Format("xml"))
	require.ErrorIs(t, err, domain.ErrUnknownFormat)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter_WriteFailure(t *testing.T) {
	w := report.NewPlainWriter()

	err := w.WriteReport(failingWriter{}, sampleReport(false), domain.FormatText)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrRenderFailed.Error())

	err = w.WriteInspections(failingWriter{}, classifications(), domain.FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
