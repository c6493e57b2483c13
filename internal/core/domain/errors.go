package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no corpus file exists at the requested path.
	ErrConfigNotFound = zerr.New("corpus file not found")

	// ErrConfigReadFailed is returned when the corpus file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read corpus file")

	// ErrConfigParseFailed is returned when the corpus file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse corpus file")

	// ErrUnknownFormat is returned when a file extension or format name is not recognized.
	ErrUnknownFormat = zerr.New("unknown format, expected 'text', 'json' or 'yaml'")

	// ErrNoInput is returned when the corpus should come from standard input but it is a terminal.
	ErrNoInput = zerr.New("no corpus on standard input")

	// ErrNoTexts is returned when inspect is called without any text.
	ErrNoTexts = zerr.New("no texts specified")

	// ErrWatchStdin is returned when watch mode is requested for standard input.
	ErrWatchStdin = zerr.New("cannot watch standard input")

	// ErrAnalysisFailed is returned when a corpus analysis does not complete.
	ErrAnalysisFailed = zerr.New("corpus analysis failed")

	// ErrRenderFailed is returned when a report cannot be written.
	ErrRenderFailed = zerr.New("failed to render report")

	// ErrWatchFailed is returned when the corpus file cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch corpus file")
)
