/*
Package source provides rule sources: components which deliver the
placement rules of a document.

Rules may come pre-compiled (see Compiled and File) or be extracted from
the stylesheets of a document (see Document). Sources deliver exactly once,
possibly asynchronously.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package source

import (
	"context"
	"fmt"
	"os"

	"github.com/npillmayer/domino/result"
	"github.com/npillmayer/domino/rules"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'domino.source'.
func tracer() tracing.Trace {
	return tracing.Select("domino.source")
}

// Delivery is called by a Source with the rules for a document, or with an
// error if the rules could not be provided.
type Delivery func(result.Result[*rules.Stylesheet])

// Source provides the placement rules for a document. GetRules calls deliver
// exactly once, either before returning or later from another goroutine.
type Source interface {
	GetRules(ctx context.Context, root *html.Node, deliver Delivery)
}

// SourceFunc is an adapter to use an ordinary function as a Source.
type SourceFunc func(ctx context.Context, root *html.Node, deliver Delivery)

// GetRules calls f(ctx, root, deliver).
func (f SourceFunc) GetRules(ctx context.Context, root *html.Node, deliver Delivery) {
	f(ctx, root, deliver)
}

// Compiled is a source for pre-compiled rules. The stylesheets are merged
// in order and delivered synchronously.
func Compiled(sheets ...*rules.Stylesheet) Source {
	merged := rules.Merge(sheets...)
	return SourceFunc(func(ctx context.Context, _ *html.Node, deliver Delivery) {
		deliver(result.Ok(merged))
	})
}

// File is a source reading a compiled bundle from a file. The format is
// derived from the file extension (see rules.FormatForPath). The file is
// read synchronously, on every call of GetRules.
func File(path string) Source {
	return SourceFunc(func(ctx context.Context, _ *html.Node, deliver Delivery) {
		ss, err := loadFile(path)
		deliver(result.Of(ss, err))
	})
}

func loadFile(path string) (*rules.Stylesheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open rules bundle: %w", err)
	}
	defer f.Close()
	ss, err := rules.Load(f, rules.FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("loaded rules bundle %s", path)
	return ss, nil
}
