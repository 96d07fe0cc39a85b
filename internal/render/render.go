// Package render provides the capability that loads a source URL and exposes
// the resulting document for inspection. The production implementation
// fetches over HTTP and parses the body; callers treat it as opaque.
package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"lotto-stats/internal/extract"
)

// Page is one rendered page. Close must be called on every exit path of an
// acquisition pipeline; a rendering session leaked across iterations is the
// most damaging resource fault this system can produce.
type Page interface {
	Document() extract.Document
	// Snapshot writes the rendered page to dir for later manual
	// inspection. Diagnostic only: failures must not affect extraction.
	Snapshot(dir string) error
	Close() error
}

// Renderer loads a URL and exposes its document.
type Renderer interface {
	Render(ctx context.Context, url string, timeout time.Duration) (Page, error)
}

// HTTPRenderer renders pages by fetching them with a shared fasthttp client.
type HTTPRenderer struct {
	client *fasthttp.Client
	logger zerolog.Logger
}

func NewHTTPRenderer(logger zerolog.Logger) *HTTPRenderer {
	return &HTTPRenderer{
		client: &fasthttp.Client{
			MaxConnsPerHost:     4,
			ReadTimeout:         30 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		logger: logger,
	}
}

func (r *HTTPRenderer) Render(ctx context.Context, url string, timeout time.Duration) (Page, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; lotto-stats/1.0)")

	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := r.client.DoDeadline(req, resp, deadline); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", url, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("unexpected status %d loading %s", resp.StatusCode(), url)
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	r.logger.Debug().Str("url", url).Int("bytes", len(body)).Msg("page rendered")
	return &httpPage{doc: goqueryDocument{doc: doc}, raw: body, url: url}, nil
}

type httpPage struct {
	doc goqueryDocument
	raw []byte
	url string
}

func (p *httpPage) Document() extract.Document {
	return p.doc
}

func (p *httpPage) Snapshot(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	name := fmt.Sprintf("page-%d.html", time.Now().UnixMilli())
	if err := os.WriteFile(filepath.Join(dir, name), p.raw, 0o644); err != nil {
		return fmt.Errorf("failed to write page snapshot: %w", err)
	}
	return nil
}

func (p *httpPage) Close() error {
	// HTTP pages hold no external session; a browser-backed renderer
	// would release its tab here.
	p.raw = nil
	return nil
}

// goqueryDocument adapts a parsed page to the extraction surface.
type goqueryDocument struct {
	doc *goquery.Document
}

func (d goqueryDocument) Select(selector string) []extract.Element {
	return toElements(d.doc.Find(selector))
}

type goqueryElement struct {
	sel *goquery.Selection
}

func (e goqueryElement) Text() string {
	return e.sel.Text()
}

func (e goqueryElement) Find(selector string) []extract.Element {
	return toElements(e.sel.Find(selector))
}

func toElements(sel *goquery.Selection) []extract.Element {
	out := make([]extract.Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, goqueryElement{sel: s})
	})
	return out
}
