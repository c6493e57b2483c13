package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/smolbuf"
	"go.trai.ch/smolbuf/internal/app"
	"go.trai.ch/smolbuf/internal/core/domain"
	"go.trai.ch/smolbuf/internal/core/ports"
	"go.trai.ch/smolbuf/internal/core/ports/mocks"
	"go.trai.ch/smolbuf/internal/engine/analyzer"
	"go.uber.org/mock/gomock"
)

type appTestMocks struct {
	loader  *mocks.MockCorpusLoader
	writer  *mocks.MockReportWriter
	logger  *mocks.MockLogger
	tracer  *mocks.MockTracer
	span    *mocks.MockSpan
	watcher *mocks.MockWatcher
}

// setupAppTest creates an App over mocks, with a real analyzer and a tracer
// that accepts any span.
func setupAppTest(t *testing.T) (*app.App, appTestMocks, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appTestMocks{
		loader:  mocks.NewMockCorpusLoader(ctrl),
		writer:  mocks.NewMockReportWriter(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		tracer:  mocks.NewMockTracer(ctrl),
		span:    mocks.NewMockSpan(ctrl),
		watcher: mocks.NewMockWatcher(ctrl),
	}

	m.span.EXPECT().End().AnyTimes()
	m.span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, m.span
		},
	).AnyTimes()

	out := new(bytes.Buffer)
	a := app.New(m.loader, analyzer.New(), m.writer, m.logger, m.tracer, m.watcher).
		WithOutput(out).
		WithInput(strings.NewReader(""))
	return a, m, out
}

func sampleCorpus() *domain.Corpus {
	return &domain.Corpus{
		Name: "keywords",
		Entries: []domain.Entry{
			{Kind: domain.KindText, Index: 0, Text: smolbuf.New("if")},
			{Kind: domain.KindText, Index: 1, Text: smolbuf.New("パーティーへ行かないか")},
		},
	}
}

func TestApp_Inspect(t *testing.T) {
	a, m, out := setupAppTest(t)

	m.writer.EXPECT().WriteInspections(out, gomock.Any(), domain.FormatJSON).DoAndReturn(
		func(_ io.Writer, items []domain.Classification, _ domain.Format) error {
			require.Len(t, items, 2)
			assert.Equal(t, "Hello, World!", items[0].Text.String())
			assert.False(t, items[0].Heap)
			assert.Equal(t, 13, items[0].Bytes)
			assert.True(t, items[1].Heap)
			assert.Equal(t, 11, items[1].Runes)
			assert.Empty(t, items[0].Label)
			return nil
		},
	)

	err := a.Inspect(context.Background(), []string{"Hello, World!", "パーティーへ行かないか"}, app.InspectOptions{Format: "json"})
	require.NoError(t, err)
}

func TestApp_Inspect_Errors(t *testing.T) {
	t.Run("no texts", func(t *testing.T) {
		a, _, _ := setupAppTest(t)
		err := a.Inspect(context.Background(), nil, app.InspectOptions{})
		require.ErrorIs(t, err, domain.ErrNoTexts)
	})

	t.Run("unknown format", func(t *testing.T) {
		a, _, _ := setupAppTest(t)
		err := a.Inspect(context.Background(), []string{"x"}, app.InspectOptions{Format: "xml"})
		require.ErrorIs(t, err, domain.ErrUnknownFormat)
	})

	t.Run("render failure is recorded", func(t *testing.T) {
		a, m, _ := setupAppTest(t)
		renderErr := errors.New("render failed")
		m.writer.EXPECT().WriteInspections(gomock.Any(), gomock.Any(), domain.FormatText).Return(renderErr)
		m.span.EXPECT().RecordError(renderErr)

		err := a.Inspect(context.Background(), []string{"x"}, app.InspectOptions{})
		require.ErrorIs(t, err, renderErr)
	})
}

func TestApp_Analyze(t *testing.T) {
	a, m, out := setupAppTest(t)

	m.loader.EXPECT().Load("corpus.yaml").Return(sampleCorpus(), nil)
	m.writer.EXPECT().WriteReport(out, gomock.Any(), domain.FormatText).DoAndReturn(
		func(_ io.Writer, r *domain.Report, _ domain.Format) error {
			assert.Equal(t, "keywords", r.Corpus)
			assert.Equal(t, 2, r.Entries)
			assert.Equal(t, 1, r.Inline.Count)
			assert.Equal(t, 1, r.Heap.Count)
			assert.Len(t, r.Items, 2)
			return nil
		},
	)

	err := a.Analyze(context.Background(), app.AnalyzeOptions{Path: "corpus.yaml", Workers: 2, Verbose: true})
	require.NoError(t, err)
}

func TestApp_Analyze_LoadFailure(t *testing.T) {
	a, m, _ := setupAppTest(t)

	m.loader.EXPECT().Load("").Return(nil, domain.ErrConfigNotFound)
	m.span.EXPECT().RecordError(gomock.Any())

	err := a.Analyze(context.Background(), app.AnalyzeOptions{})
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
	assert.Contains(t, err.Error(), "failed to load corpus")
}

func TestApp_Analyze_Stdin(t *testing.T) {
	tests := []struct {
		name        string
		inputFormat string
		want        domain.Format
	}{
		{name: "default is yaml", inputFormat: "", want: domain.FormatYAML},
		{name: "json", inputFormat: "json", want: domain.FormatJSON},
		{name: "yml alias", inputFormat: "yml", want: domain.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, m, _ := setupAppTest(t)
			in := strings.NewReader("texts: [a]\n")
			a.WithInput(in)

			m.loader.EXPECT().Decode(in, tt.want, "stdin").Return(sampleCorpus(), nil)
			m.writer.EXPECT().WriteReport(gomock.Any(), gomock.Any(), domain.FormatYAML).Return(nil)

			err := a.Analyze(context.Background(), app.AnalyzeOptions{
				Path:        domain.StdinPath,
				InputFormat: tt.inputFormat,
				Format:      "yaml",
			})
			require.NoError(t, err)
		})
	}
}

func TestApp_Analyze_StdinErrors(t *testing.T) {
	t.Run("terminal", func(t *testing.T) {
		a, m, _ := setupAppTest(t)
		a.WithTerminalCheck(func(io.Reader) bool { return true })
		m.span.EXPECT().RecordError(gomock.Any())

		err := a.Analyze(context.Background(), app.AnalyzeOptions{Path: domain.StdinPath})
		require.ErrorIs(t, err, domain.ErrNoInput)
	})

	t.Run("text input format", func(t *testing.T) {
		a, m, _ := setupAppTest(t)
		m.span.EXPECT().RecordError(gomock.Any())

		err := a.Analyze(context.Background(), app.AnalyzeOptions{Path: domain.StdinPath, InputFormat: "text"})
		require.ErrorIs(t, err, domain.ErrUnknownFormat)
	})

	t.Run("watch", func(t *testing.T) {
		a, _, _ := setupAppTest(t)

		err := a.Analyze(context.Background(), app.AnalyzeOptions{Path: domain.StdinPath, Watch: true})
		require.ErrorIs(t, err, domain.ErrWatchStdin)
	})
}

func TestApp_Analyze_Watch(t *testing.T) {
	a, m, _ := setupAppTest(t)

	reloadErr := errors.New("broken corpus")
	gomock.InOrder(
		m.loader.EXPECT().Load(domain.DefaultCorpusFile).Return(sampleCorpus(), nil),
		m.loader.EXPECT().Load(domain.DefaultCorpusFile).Return(sampleCorpus(), nil),
		m.loader.EXPECT().Load(domain.DefaultCorpusFile).Return(nil, reloadErr),
	)
	m.writer.EXPECT().WriteReport(gomock.Any(), gomock.Any(), domain.FormatText).Return(nil).Times(2)
	m.span.EXPECT().RecordError(gomock.Any())
	m.logger.EXPECT().Info("smolbuf.yaml changed, analyzing again").Times(2)

	var logged []error
	var mu sync.Mutex
	m.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		mu.Lock()
		defer mu.Unlock()
		logged = append(logged, err)
	})

	m.watcher.EXPECT().Watch(gomock.Any(), domain.DefaultCorpusFile, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, onChange func()) error {
			onChange()
			onChange()
			return nil
		},
	)

	err := a.Analyze(context.Background(), app.AnalyzeOptions{Watch: true})
	require.NoError(t, err)

	require.Len(t, logged, 1)
	assert.ErrorIs(t, logged[0], reloadErr)
}

func TestApp_Analyze_WatchStopsOnInitialFailure(t *testing.T) {
	a, m, _ := setupAppTest(t)

	m.loader.EXPECT().Load("corpus.yaml").Return(nil, domain.ErrConfigParseFailed)
	m.span.EXPECT().RecordError(gomock.Any())

	err := a.Analyze(context.Background(), app.AnalyzeOptions{Path: "corpus.yaml", Watch: true})
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestApp_Analyze_Cancelled(t *testing.T) {
	a, m, _ := setupAppTest(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m.loader.EXPECT().Load(gomock.Any()).Return(sampleCorpus(), nil)
	m.span.EXPECT().RecordError(gomock.Any())

	err := a.Analyze(ctx, app.AnalyzeOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

type jsonLogger struct {
	*mocks.MockLogger
	json bool
}

func (l *jsonLogger) SetJSON(enable bool) { l.json = enable }

func TestApp_Configure(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	log := &jsonLogger{MockLogger: mocks.NewMockLogger(ctrl)}

	a := app.New(mocks.NewMockCorpusLoader(ctrl), analyzer.New(), mocks.NewMockReportWriter(ctrl), log, tracer, mocks.NewMockWatcher(ctrl))

	tracer.EXPECT().SetVerbose(true)
	a.Configure(app.GlobalOptions{LogJSON: true, Trace: true})
	assert.True(t, log.json)

	tracer.EXPECT().SetVerbose(false)
	a.Configure(app.GlobalOptions{})
	assert.False(t, log.json)
}
