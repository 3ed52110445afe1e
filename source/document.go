package source

import (
	"context"

	"github.com/npillmayer/domino/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/domino/result"
	"github.com/npillmayer/domino/rules"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// MaxConcurrentFetches limits the number of stylesheets fetched in parallel
// for a single document.
const MaxConcurrentFetches = 4

type documentSource struct {
	fetcher Fetcher
}

// Document is a source extracting rules from the stylesheets of a document:
// <style> elements and <link rel="stylesheet"> elements, in document order.
// Linked stylesheets are retrieved with fetcher, concurrently and
// asynchronously. If fetcher is nil, linked stylesheets are ignored.
//
// A stylesheet which cannot be fetched or parsed contributes no rules, but
// does not make the whole document fail. Rules are delivered from a separate
// goroutine, unless the document has no linked stylesheets.
func Document(fetcher Fetcher) Source {
	return documentSource{fetcher: fetcher}
}

func (src documentSource) GetRules(ctx context.Context, root *html.Node, deliver Delivery) {
	styles := douceuradapter.ExtractStyleSources(root)
	sheets := make([]*rules.Stylesheet, len(styles))
	async := false
	for i, s := range styles {
		if s.IsLink() {
			async = true
			continue
		}
		sheets[i] = parseOrEmpty(s.Inline, "<style>")
	}
	if !async {
		deliver(result.Ok(rules.Merge(sheets...)))
		return
	}
	go func() {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(MaxConcurrentFetches)
		for i, s := range styles {
			if !s.IsLink() {
				continue
			}
			i, href := i, s.Href
			g.Go(func() error {
				sheets[i] = src.fetchSheet(gctx, href)
				return nil
			})
		}
		_ = g.Wait() // sheets fail individually
		if err := ctx.Err(); err != nil {
			deliver(result.Err[*rules.Stylesheet](err))
			return
		}
		deliver(result.Ok(rules.Merge(sheets...)))
	}()
}

func (src documentSource) fetchSheet(ctx context.Context, href string) *rules.Stylesheet {
	if src.fetcher == nil {
		tracer().Debugf("no fetcher, ignoring stylesheet %s", href)
		return rules.NewStylesheet()
	}
	css, err := src.fetcher.Fetch(ctx, href)
	if err != nil {
		tracer().Errorf("cannot fetch stylesheet: %v", err)
		return rules.NewStylesheet()
	}
	return parseOrEmpty(string(css), href)
}

func parseOrEmpty(css string, origin string) *rules.Stylesheet {
	ss, err := rules.Parse(css)
	if err != nil {
		tracer().P("origin", origin).Errorf("cannot parse stylesheet: %v", err)
		return rules.NewStylesheet()
	}
	return ss
}
