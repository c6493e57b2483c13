// Package app implements the application layer for smolbuf.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"go.trai.ch/smolbuf"
	"go.trai.ch/smolbuf/internal/core/domain"
	"go.trai.ch/smolbuf/internal/core/ports"
	"go.trai.ch/smolbuf/internal/engine/analyzer"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// App represents the main application logic.
type App struct {
	loader   ports.CorpusLoader
	analyzer *analyzer.Analyzer
	writer   ports.ReportWriter
	logger   ports.Logger
	tracer   ports.Tracer
	watcher  ports.Watcher

	stdout     io.Writer
	stdin      io.Reader
	isTerminal func(io.Reader) bool
}

// New creates a new App instance writing to os.Stdout and reading os.Stdin.
func New(
	loader ports.CorpusLoader,
	a *analyzer.Analyzer,
	writer ports.ReportWriter,
	log ports.Logger,
	tracer ports.Tracer,
	watcher ports.Watcher,
) *App {
	return &App{
		loader:     loader,
		analyzer:   a,
		writer:     writer,
		logger:     log,
		tracer:     tracer,
		watcher:    watcher,
		stdout:     os.Stdout,
		stdin:      os.Stdin,
		isTerminal: isTerminal,
	}
}

// WithOutput sets where reports are written.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithInput sets where a corpus is read from when the path is "-".
func (a *App) WithInput(r io.Reader) *App {
	a.stdin = r
	return a
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// GlobalOptions holds settings shared by every command.
type GlobalOptions struct {
	// LogJSON switches log output to JSON lines.
	LogJSON bool
	// Trace logs every finished span.
	Trace bool
}

// Configure applies options shared by every command.
func (a *App) Configure(opts GlobalOptions) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(opts.LogJSON)
	}
	a.tracer.SetVerbose(opts.Trace)
}

// InspectOptions configuration for the Inspect method.
type InspectOptions struct {
	Format string
}

// Inspect classifies each text and writes one result per text.
func (a *App) Inspect(ctx context.Context, texts []string, opts InspectOptions) error {
	if len(texts) == 0 {
		return domain.ErrNoTexts
	}
	format, err := domain.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	_, span := a.tracer.Start(ctx, "inspect")
	defer span.End()
	span.SetAttribute("texts", len(texts))

	items := make([]domain.Classification, len(texts))
	for i, text := range texts {
		items[i] = a.analyzer.Classify("", smolbuf.New(text))
	}

	if err := a.writer.WriteInspections(a.stdout, items, format); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// AnalyzeOptions configuration for the Analyze method.
type AnalyzeOptions struct {
	// Path is the corpus file. Empty selects domain.DefaultCorpusFile and
	// domain.StdinPath reads standard input.
	Path string
	// InputFormat is the format of a corpus read from standard input.
	InputFormat string
	// Format is the report format.
	Format  string
	Workers int
	Verbose bool
	// Watch re-runs the analysis whenever the corpus file changes.
	Watch bool
}

// Analyze loads a corpus, classifies its entries and writes a report. With
// Watch set it keeps running until ctx is done.
func (a *App) Analyze(ctx context.Context, opts AnalyzeOptions) error {
	if opts.Watch && opts.Path == domain.StdinPath {
		return domain.ErrWatchStdin
	}
	format, err := domain.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	if err := a.analyzeOnce(ctx, opts, format); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}

	path := opts.Path
	if path == "" {
		path = domain.DefaultCorpusFile
	}

	var mu sync.Mutex
	return a.watcher.Watch(ctx, path, func() {
		mu.Lock()
		defer mu.Unlock()

		a.logger.Info(fmt.Sprintf("%s changed, analyzing again", path))
		if err := a.analyzeOnce(ctx, opts, format); err != nil {
			a.logger.Error(err)
		}
	})
}

func (a *App) analyzeOnce(ctx context.Context, opts AnalyzeOptions, format domain.Format) error {
	ctx, span := a.tracer.Start(ctx, "analyze")
	defer span.End()

	corpus, err := a.loadCorpus(opts)
	if err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "failed to load corpus")
	}
	span.SetAttribute("corpus", corpus.Name)

	report, err := a.analyzer.Analyze(ctx, corpus, analyzer.Options{
		Workers: opts.Workers,
		Verbose: opts.Verbose,
	})
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttribute("entries", report.Entries)
	span.SetAttribute("inline", report.Inline.Count)
	span.SetAttribute("heap", report.Heap.Count)
	span.SetAttribute("distinct", report.Distinct)

	if err := a.writer.WriteReport(a.stdout, report, format); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (a *App) loadCorpus(opts AnalyzeOptions) (*domain.Corpus, error) {
	if opts.Path != domain.StdinPath {
		return a.loader.Load(opts.Path)
	}

	format := domain.FormatYAML
	if opts.InputFormat != "" {
		f, err := domain.ParseFormat(opts.InputFormat)
		if err != nil {
			return nil, err
		}
		if f == domain.FormatText {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "corpus input cannot be text"), "format", opts.InputFormat)
		}
		format = f
	}

	if a.isTerminal(a.stdin) {
		return nil, domain.ErrNoInput
	}
	return a.loader.Decode(a.stdin, format, "stdin")
}
