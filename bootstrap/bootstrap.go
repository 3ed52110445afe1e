/*
Package bootstrap binds a document to a rule source and re-applies rules
on demand, e.g. whenever the viewport changes.

   hook := bootstrap.Bind(ctx, doc, source.Document(fetcher), media.Default)
   if err := hook.Wait(ctx); err != nil {
       …
   }
   …
   report, err := hook.Resize(media.Viewport{Width: 375, Height: 812})

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/domino/dom"
	"github.com/npillmayer/domino/media"
	"github.com/npillmayer/domino/reorder"
	"github.com/npillmayer/domino/result"
	"github.com/npillmayer/domino/rules"
	"github.com/npillmayer/domino/source"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'domino.bootstrap'.
func tracer() tracing.Trace {
	return tracing.Select("domino.bootstrap")
}

// ErrNoRules is returned if the rule source failed to deliver rules.
var ErrNoRules = errors.New("no rules available")

// Hook re-applies the rules of a rule source to a document. Applications are
// serialized, so a hook may be triggered from different goroutines.
type Hook struct {
	mx      sync.Mutex
	doc     *dom.Document
	engine  *reorder.Engine[*html.Node]
	media   reorder.MediaMatcher
	sheet   *rules.Stylesheet // nil until delivered
	err     error             // delivery failure
	first   error             // failure of initial application
	report  reorder.Report    // of last application
	once    sync.Once
	arrived chan struct{}
}

// Bind creates a hook for a document and requests its rules from src.
// As soon as the rules arrive, they are applied. A nil media matcher is
// replaced by media.Default.
func Bind(ctx context.Context, doc *dom.Document, src source.Source, mm reorder.MediaMatcher) *Hook {
	if mm == nil {
		mm = media.Default
	}
	h := &Hook{
		doc:     doc,
		engine:  reorder.New[*html.Node](doc, doc),
		media:   mm,
		arrived: make(chan struct{}),
	}
	src.GetRules(ctx, doc.Root(), h.deliver)
	return h
}

func (h *Hook) deliver(r result.Result[*rules.Stylesheet]) {
	h.once.Do(func() {
		defer close(h.arrived)
		var ss *rules.Stylesheet
		var err error
		switch m := r.Match(); m {
		case m.Ok(&ss):
			h.mx.Lock()
			h.sheet = ss
			h.mx.Unlock()
			if _, err = h.Apply(); err != nil {
				tracer().Errorf("initial application of rules failed: %v", err)
				h.mx.Lock()
				h.first = err
				h.mx.Unlock()
			}
		case m.Err(&err):
			tracer().Errorf("rule source failed: %v", err)
			h.mx.Lock()
			h.err = fmt.Errorf("%w: %v", ErrNoRules, err)
			h.mx.Unlock()
		}
	})
}

// Apply re-applies the rules to the document. Before rules have arrived,
// Apply does nothing. If the rule source failed, Apply returns the failure.
func (h *Hook) Apply() (reorder.Report, error) {
	h.mx.Lock()
	defer h.mx.Unlock()
	if h.err != nil {
		return reorder.Report{}, h.err
	}
	if h.sheet == nil {
		tracer().Debugf("no rules yet, nothing to apply")
		return reorder.Report{}, nil
	}
	report, err := h.engine.Apply(h.sheet, h.media)
	h.report = report
	return report, err
}

// Resize replaces the media matcher of the hook, e.g. with a viewport of a
// new size, and re-applies the rules.
func (h *Hook) Resize(mm reorder.MediaMatcher) (reorder.Report, error) {
	h.mx.Lock()
	if mm != nil {
		h.media = mm
	}
	h.mx.Unlock()
	tracer().Infof("resize: %v", mm)
	return h.Apply()
}

// Wait blocks until rules have arrived and have been applied once, or ctx
// is done. It returns the failure of the rule source or of the initial
// application.
func (h *Hook) Wait(ctx context.Context) error {
	select {
	case <-h.arrived:
		if err := h.Err(); err != nil {
			return err
		}
		h.mx.Lock()
		defer h.mx.Unlock()
		return h.first
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the failure of the rule source, wrapping ErrNoRules, if any.
func (h *Hook) Err() error {
	h.mx.Lock()
	defer h.mx.Unlock()
	return h.err
}

// Ready is true if rules have arrived.
func (h *Hook) Ready() bool {
	h.mx.Lock()
	defer h.mx.Unlock()
	return h.sheet != nil
}

// LastReport returns the report of the latest application of rules.
func (h *Hook) LastReport() reorder.Report {
	h.mx.Lock()
	defer h.mx.Unlock()
	return h.report
}

// Document returns the document the hook is bound to.
func (h *Hook) Document() *dom.Document {
	return h.doc
}
