// Package report renders classifications and corpus reports as text, JSON or YAML.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"go.trai.ch/smolbuf/internal/adapters/codec"
	"go.trai.ch/smolbuf/internal/core/domain"
	"go.trai.ch/smolbuf/internal/core/ports"
	"go.trai.ch/smolbuf/internal/ui/output"
	"go.trai.ch/smolbuf/internal/ui/style"
	"go.trai.ch/zerr"
)

// Writer implements ports.ReportWriter.
type Writer struct {
	// newOutput builds the styled output for text rendering.
	newOutput func(io.Writer) *termenv.Output
}

var _ ports.ReportWriter = (*Writer)(nil)

// NewWriter creates a Writer that colors text output when w is a terminal.
func NewWriter() *Writer {
	return &Writer{newOutput: func(w io.Writer) *termenv.Output { return output.New(w) }}
}

// NewPlainWriter creates a Writer that never colors text output.
func NewPlainWriter() *Writer {
	return &Writer{newOutput: func(w io.Writer) *termenv.Output {
		return output.NewWithProfile(w, termenv.Ascii)
	}}
}

// WriteInspections renders one line per classification in text mode, or the
// list itself in JSON and YAML.
func (wr *Writer) WriteInspections(w io.Writer, items []domain.Classification, format domain.Format) error {
	if format != domain.FormatText {
		return wr.encode(w, items, format)
	}

	out := wr.newOutput(w)
	bw := bufio.NewWriter(out)
	for i := range items {
		writeItem(bw, out, &items[i])
	}
	return flush(bw)
}

// WriteReport renders a corpus report.
func (wr *Writer) WriteReport(w io.Writer, r *domain.Report, format domain.Format) error {
	if format != domain.FormatText {
		return wr.encode(w, r, format)
	}

	out := wr.newOutput(w)
	bw := bufio.NewWriter(out)

	_, _ = fmt.Fprintf(bw, "%-9s %s\n", "corpus", r.Corpus)
	_, _ = fmt.Fprintf(bw, "%-9s %d\n", "entries", r.Entries)
	_, _ = fmt.Fprintf(bw, "%-9s %d (%d bytes, %.1f%%)\n", "inline", r.Inline.Count, r.Inline.Bytes, 100*r.InlineRatio())
	_, _ = fmt.Fprintf(bw, "%-9s %d (%d bytes)\n", "heap", r.Heap.Count, r.Heap.Bytes)
	_, _ = fmt.Fprintf(bw, "%-9s %d\n", "distinct", r.Distinct)
	if r.Longest != nil {
		_, _ = fmt.Fprintf(bw, "%-9s %s (%d bytes)\n", "longest", r.Longest.Label, r.Longest.Bytes)
	}

	if len(r.Items) > 0 {
		_, _ = fmt.Fprintln(bw)
		for i := range r.Items {
			writeItem(bw, out, &r.Items[i])
		}
	}

	return flush(bw)
}

// writeItem renders a classification as
//
//	<icon> <representation> <bytes> <runes> <hash> [label] <quoted text>
func writeItem(w io.Writer, out *termenv.Output, c *domain.Classification) {
	icon, color := style.Representation(c.Heap)
	_, _ = fmt.Fprintf(w, "%s %-6s %4d bytes %4d runes  %016x  ",
		output.Paint(out, icon, color), c.Representation(), c.Bytes, c.Runes, c.Hash)
	if c.Label != "" {
		_, _ = fmt.Fprintf(w, "%s ", c.Label)
	}
	_, _ = fmt.Fprintf(w, "%q\n", c.Text.View())
}

func (wr *Writer) encode(w io.Writer, v any, format domain.Format) error {
	c, err := codec.ForFormat(format)
	if err != nil {
		return err
	}
	data, err := c.Marshal(v)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	if _, err := w.Write(data); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}

func flush(bw *bufio.Writer) error {
	if err := bw.Flush(); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}
