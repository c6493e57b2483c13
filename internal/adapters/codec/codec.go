// Package codec encodes and decodes values as JSON or YAML.
package codec

import (
	"bytes"
	"errors"
	"io"

	"github.com/goccy/go-json"
	"go.trai.ch/smolbuf/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Codec is one serialization format.
type Codec interface {
	Format() domain.Format
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Decode(r io.Reader, v any) error
}

// JSON is the JSON codec.
var JSON Codec = jsonCodec{}

// YAML is the YAML codec.
var YAML Codec = yamlCodec{}

// ForFormat returns the codec for f. FormatText has no codec.
func ForFormat(f domain.Format) (Codec, error) {
	switch f {
	case domain.FormatJSON:
		return JSON, nil
	case domain.FormatYAML:
		return YAML, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "no codec for format"), "format", string(f))
	}
}

// ForPath returns the codec matching the extension of path.
func ForPath(path string) (Codec, error) {
	f, err := domain.FormatForPath(path)
	if err != nil {
		return nil, err
	}
	return ForFormat(f)
}

// MarshalJSON encodes v as indented JSON followed by a newline.
func MarshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode json")
	}
	return append(data, '\n'), nil
}

// UnmarshalJSON decodes JSON data into v.
func UnmarshalJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return zerr.Wrap(err, "failed to decode json")
	}
	return nil
}

// DecodeJSON decodes a single JSON value read from r into v.
func DecodeJSON(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return zerr.Wrap(err, "failed to decode json")
	}
	return nil
}

// MarshalYAML encodes v as YAML with two space indentation.
func MarshalYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, zerr.Wrap(err, "failed to encode yaml")
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to encode yaml")
	}
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes YAML data into v.
func UnmarshalYAML(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return zerr.Wrap(err, "failed to decode yaml")
	}
	return nil
}

// DecodeYAML decodes the first YAML document read from r into v. An empty
// stream leaves v untouched.
func DecodeYAML(r io.Reader, v any) error {
	if err := yaml.NewDecoder(r).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, "failed to decode yaml")
	}
	return nil
}

type jsonCodec struct{}

func (jsonCodec) Format() domain.Format              { return domain.FormatJSON }
func (jsonCodec) Marshal(v any) ([]byte, error)      { return MarshalJSON(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return UnmarshalJSON(data, v) }
func (jsonCodec) Decode(r io.Reader, v any) error    { return DecodeJSON(r, v) }

type yamlCodec struct{}

func (yamlCodec) Format() domain.Format              { return domain.FormatYAML }
func (yamlCodec) Marshal(v any) ([]byte, error)      { return MarshalYAML(v) }
func (yamlCodec) Unmarshal(data []byte, v any) error { return UnmarshalYAML(data, v) }
func (yamlCodec) Decode(r io.Reader, v any) error    { return DecodeYAML(r, v) }
