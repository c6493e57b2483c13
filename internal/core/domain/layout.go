package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// DefaultCorpusFile is the corpus file analyze reads when no path is given.
	DefaultCorpusFile = "smolbuf.yaml"

	// StdinPath is the path argument that selects standard input.
	StdinPath = "-"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Format names a serialization format for reports and corpus files.
type Format string

const (
	// FormatText is the human readable report format. It cannot be decoded.
	FormatText Format = "text"
	// FormatJSON is JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a user supplied format name. The empty string means text.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownFormat, "invalid format"), "format", name)
	}
}

// FormatForPath derives the format of a corpus file from its extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownFormat, "unsupported corpus file extension"), "path", path)
	}
}
