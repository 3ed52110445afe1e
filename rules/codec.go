package rules

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an encoding for compiled rule bundles.
type Format int

// Bundles may be encoded as JSON (the default) or as YAML.
const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	}
	return "<unknown>"
}

// ErrUnknownFormat is returned for bundle formats other than JSON or YAML.
var ErrUnknownFormat = errors.New("unknown bundle format")

// ParseFormat finds a format from its name. Names are case-insensitive,
// "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return JSON, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatForPath derives a bundle format from a file name extension.
func FormatForPath(path string) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if f, err := ParseFormat(ext); err == nil {
		return f
	}
	return JSON
}

// Load reads a compiled bundle.
func Load(r io.Reader, format Format) (*Stylesheet, error) {
	ss := &Stylesheet{}
	var err error
	switch format {
	case JSON:
		err = json.NewDecoder(r).Decode(ss)
	case YAML:
		err = yaml.NewDecoder(r).Decode(ss)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot load rules bundle: %w", err)
	}
	ss.normalize()
	tracer().Debugf("loaded bundle with %d base rules and %d media layers",
		ss.Rules.Len(), len(ss.MediaQueries))
	return ss, nil
}

// Encode writes a stylesheet as a compiled bundle.
func (ss *Stylesheet) Encode(w io.Writer, format Format) error {
	ss.normalize()
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ss)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ss); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %d", ErrUnknownFormat, format)
}
