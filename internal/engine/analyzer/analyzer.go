// Package analyzer classifies the texts of a corpus by how they are stored.
package analyzer

import (
	"context"
	"runtime"
	"unicode/utf8"

	"go.trai.ch/smolbuf"
	"go.trai.ch/smolbuf/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Analyzer classifies texts and summarizes corpora.
type Analyzer struct{}

// New creates a new Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Classify describes how text is stored.
func (a *Analyzer) Classify(label string, text smolbuf.Str16) domain.Classification {
	view := text.View()
	return domain.Classification{
		Label: label,
		Text:  text,
		Bytes: len(view),
		Runes: utf8.RuneCountInString(view),
		Heap:  text.IsHeapAllocated(),
		Hash:  text.Hash(),
	}
}

// Options control a corpus analysis.
type Options struct {
	// Workers limits how many entries are classified at once. Zero or less
	// means GOMAXPROCS.
	Workers int
	// Verbose keeps the classification of every entry in the report.
	Verbose bool
}

// Analyze classifies every entry of corpus in parallel and summarizes the
// results. Entries keep their corpus order in the report.
func (a *Analyzer) Analyze(ctx context.Context, corpus *domain.Corpus, opts Options) (*domain.Report, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	items := make([]domain.Classification, corpus.Len())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range corpus.Entries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entry := &corpus.Entries[i]
			items[i] = a.Classify(entry.Label(), entry.Text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAnalysisFailed.Error()), "corpus", corpus.Name)
	}
	if err := ctx.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAnalysisFailed.Error()), "corpus", corpus.Name)
	}

	return summarize(corpus.Name, items, opts.Verbose), nil
}

func summarize(name string, items []domain.Classification, verbose bool) *domain.Report {
	r := &domain.Report{
		Corpus:  name,
		Entries: len(items),
	}

	seen := smolbuf.NewMap[struct{}](len(items))
	longest := -1
	for i := range items {
		c := &items[i]
		if c.Heap {
			r.Heap.Add(c.Bytes)
		} else {
			r.Inline.Add(c.Bytes)
		}
		seen.Set(c.Text, struct{}{})
		if longest < 0 || c.Bytes > items[longest].Bytes {
			longest = i
		}
	}
	r.Distinct = seen.Len()

	if longest >= 0 {
		l := items[longest]
		r.Longest = &l
	}
	if verbose {
		r.Items = items
	}
	return r
}
