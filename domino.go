/*
Package domino re-parents and re-orders the elements of HTML documents,
driven by custom CSS properties:

   .cta   { -domino-container: .card; }   // move .cta into the first .card
   .price { -domino-order: -1; }          // .price goes first among its siblings

   @media only screen and (max-width: 480px) {
       .cta { -domino-container: footer; }
   }

Package domino bundles the most common use cases. Clients needing more
control will find the building blocks in the sub-packages: rules (the rule
model and CSS parsing), reorder (the re-arrangement engine), dom (HTML
documents), media (media queries), source (rule sources) and bootstrap
(re-applying rules on demand).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domino

import (
	"context"
	"fmt"
	"io"

	"github.com/npillmayer/domino/bootstrap"
	"github.com/npillmayer/domino/dom"
	"github.com/npillmayer/domino/reorder"
	"github.com/npillmayer/domino/rules"
	"github.com/npillmayer/domino/source"
	"golang.org/x/net/html"
)

// Parse extracts placement rules from CSS text.
func Parse(css string) (*rules.Stylesheet, error) {
	return rules.Parse(css)
}

// Compile reads CSS text from r and writes the placement rules found as a
// bundle to w. Bundles may later be used with source.Compiled or
// source.File, saving the cost of parsing CSS at runtime.
func Compile(r io.Reader, w io.Writer, format rules.Format) (*rules.Stylesheet, error) {
	css, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read stylesheet: %w", err)
	}
	ss, err := rules.Parse(string(css))
	if err != nil {
		return nil, err
	}
	if err = ss.Encode(w, format); err != nil {
		return nil, fmt.Errorf("cannot write bundle: %w", err)
	}
	return ss, nil
}

// ApplyRules re-arranges a document according to a stylesheet, once.
func ApplyRules(ss *rules.Stylesheet, doc *dom.Document, mm reorder.MediaMatcher) (reorder.Report, error) {
	engine := reorder.New[*html.Node](doc, doc)
	return engine.Apply(ss, mm)
}

// Bootstrap binds a document to the placement rules of its own stylesheets
// and applies them as soon as they are available. Linked stylesheets are
// retrieved with fetcher, which may be nil.
func Bootstrap(ctx context.Context, doc *dom.Document, fetcher source.Fetcher, mm reorder.MediaMatcher) *bootstrap.Hook {
	return bootstrap.Bind(ctx, doc, source.Document(fetcher), mm)
}

// BootstrapCompiled binds a document to pre-compiled rule bundles and
// applies them immediately.
func BootstrapCompiled(ctx context.Context, doc *dom.Document, mm reorder.MediaMatcher, bundles ...*rules.Stylesheet) *bootstrap.Hook {
	return bootstrap.Bind(ctx, doc, source.Compiled(bundles...), mm)
}
