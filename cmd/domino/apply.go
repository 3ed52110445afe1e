package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/npillmayer/domino/bootstrap"
	"github.com/npillmayer/domino/dom"
	"github.com/npillmayer/domino/dom/domdbg"
	"github.com/npillmayer/domino/media"
	"github.com/npillmayer/domino/source"
	"github.com/spf13/cobra"
)

type applyOptions struct {
	rules   string        // compiled bundle; empty: use the document's styles
	base    string        // base URL for remote stylesheets
	output  string        // output file; empty: stdout
	dump    bool          // print element tree instead of HTML
	dot     string        // GraphViz output file
	timeout time.Duration // for fetching stylesheets
}

func newApplyCommand() *cobra.Command {
	opts := applyOptions{}
	cmd := &cobra.Command{
		Use:   "apply [flags] document.html",
		Short: "Re-arrange an HTML document",
		Long: `Apply re-arranges an HTML document according to placement rules. Rules
are taken from a compiled bundle or from the stylesheets of the document.
Linked stylesheets are read relative to the document or, for absolute URLs
and with --base, fetched over HTTP.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vp, err := viewport()
			if err != nil {
				return err
			}
			return runApply(cmd.Context(), args[0], opts, vp, cmd.OutOrStdout())
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.rules, "rules", "", "compiled rules bundle (JSON or YAML)")
	flags.StringVar(&opts.base, "base", "", "base URL for linked stylesheets")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default is stdout)")
	flags.BoolVar(&opts.dump, "dump", false, "print the element tree instead of HTML")
	flags.StringVar(&opts.dot, "dot", "", "write a GraphViz diagram of the result to this file")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "timeout for retrieving stylesheets")
	flags.Int("width", 0, "viewport width in px")
	flags.Int("height", 0, "viewport height in px")
	flags.String("media-type", "", "media type, e.g. screen or print")
	return cmd
}

func runApply(ctx context.Context, path string, opts applyOptions, vp media.Viewport, stdout io.Writer) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	src, err := ruleSource(path, opts)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()
	hook := bootstrap.Bind(ctx, doc, src, vp)
	if err = hook.Wait(ctx); err != nil {
		return err
	}
	tracer().Infof("%s: %s at %s", path, hook.LastReport(), vp)
	if opts.dot != "" {
		if err = writeFile(opts.dot, func(w io.Writer) error {
			return domdbg.ToGraphViz(doc.Root(), w)
		}); err != nil {
			return err
		}
	}
	render := func(w io.Writer) error {
		if opts.dump {
			_, err := io.WriteString(w, domdbg.Dump(doc.Root()))
			return err
		}
		return doc.Render(w)
	}
	if opts.output == "" {
		return render(stdout)
	}
	return writeFile(opts.output, render)
}

func loadDocument(path string) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dom.Parse(f)
}

// ruleSource selects the source of placement rules: a bundle, or the styles
// of the document.
func ruleSource(path string, opts applyOptions) (source.Source, error) {
	if opts.rules != "" {
		return source.File(opts.rules), nil
	}
	remote, err := source.NewHTTPFetcher(opts.base)
	if err != nil {
		return nil, err
	}
	var fetcher source.Fetcher = source.DirFetcher{
		Dir:    filepath.Dir(path),
		Remote: remote,
	}
	if opts.base != "" {
		fetcher = remote
	}
	return source.Document(fetcher), nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
