package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Fetcher retrieves the content of a linked stylesheet.
type Fetcher interface {
	Fetch(ctx context.Context, href string) ([]byte, error)
}

// FetcherFunc is an adapter to use an ordinary function as a Fetcher.
type FetcherFunc func(ctx context.Context, href string) ([]byte, error)

// Fetch calls f(ctx, href).
func (f FetcherFunc) Fetch(ctx context.Context, href string) ([]byte, error) {
	return f(ctx, href)
}

// ErrFetch is returned for stylesheets which could not be retrieved.
var ErrFetch = errors.New("cannot fetch stylesheet")

// MaxStylesheetSize limits the size of fetched stylesheets.
const MaxStylesheetSize = 4 << 20

// HTTPFetcher fetches stylesheets over HTTP(S). Relative references are
// resolved against Base.
type HTTPFetcher struct {
	Client *http.Client
	Base   *url.URL
}

// NewHTTPFetcher creates a fetcher for documents located at base, which may
// be empty.
func NewHTTPFetcher(base string) (*HTTPFetcher, error) {
	f := &HTTPFetcher{Client: &http.Client{Timeout: 30 * time.Second}}
	if base != "" {
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL: %w", err)
		}
		f.Base = u
	}
	return f, nil
}

// Fetch issues a GET request for href.
func (f *HTTPFetcher) Fetch(ctx context.Context, href string) ([]byte, error) {
	u, err := url.Parse(href)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if f.Base != nil {
		u = f.Base.ResolveReference(u)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported URL %q", ErrFetch, u)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "text/css,*/*;q=0.1")
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s: %s", ErrFetch, u, resp.Status)
	}
	css, err := io.ReadAll(io.LimitReader(resp.Body, MaxStylesheetSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, u, err)
	}
	if len(css) > MaxStylesheetSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrFetch, u, MaxStylesheetSize)
	}
	tracer().Debugf("fetched %s", u)
	return css, nil
}

// DirFetcher reads linked stylesheets from the local file system. References
// are taken relative to the directory; absolute URLs are handed to Remote,
// if set.
type DirFetcher struct {
	Dir    string
	Remote Fetcher
}

// Fetch reads the file for href.
func (f DirFetcher) Fetch(ctx context.Context, href string) ([]byte, error) {
	u, err := url.Parse(href)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	var path string
	switch {
	case u.Scheme == "file":
		path = filepath.FromSlash(u.Path)
	case u.Scheme != "" || u.Host != "":
		if f.Remote == nil {
			return nil, fmt.Errorf("%w: no remote fetcher for %q", ErrFetch, href)
		}
		return f.Remote.Fetch(ctx, href)
	default:
		path = filepath.Join(f.Dir, filepath.FromSlash(strings.TrimPrefix(u.Path, "/")))
	}
	css, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return css, nil
}
