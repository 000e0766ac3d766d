// Package jsonld adapts the fedikit entity model to the external
// JSON-LD 1.1 expansion/compaction algorithm and to a pluggable remote
// document loader.
package jsonld

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/piprate/json-gold/ld"
)

// ErrLoadFailure is returned (or wrapped) when a document loader fails
// to retrieve a resource, either because it was not found or because
// of a transport error.
var ErrLoadFailure = errors.New("jsonld: load failure")

// RemoteDocument is the result of fetching a URL: its content type,
// an optional Link-header-derived context URL, the final URL after
// redirects, and the decoded JSON document.
type RemoteDocument struct {
	ContentType string
	ContextURL  string
	URL         string
	Document    interface{}
}

// DocumentLoader fetches url and returns the resulting RemoteDocument,
// or an error wrapping ErrLoadFailure if it cannot be retrieved. A nil
// RemoteDocument with a nil error is not a valid return; "not found"
// must be reported as an error.
type DocumentLoader interface {
	LoadDocument(ctx context.Context, url string) (*RemoteDocument, error)
}

// DocumentLoaderFunc adapts a plain function to DocumentLoader.
type DocumentLoaderFunc func(ctx context.Context, url string) (*RemoteDocument, error)

// LoadDocument implements DocumentLoader.
func (f DocumentLoaderFunc) LoadDocument(ctx context.Context, url string) (*RemoteDocument, error) {
	return f(ctx, url)
}

// HTTPLoader is the default DocumentLoader: it issues a GET request
// preferring application/ld+json, follows redirects (the default
// behavior of http.Client), and reports the final URL as the base.
type HTTPLoader struct {
	Client *http.Client
}

// NewHTTPLoader returns an HTTPLoader with a bounded-timeout client.
func NewHTTPLoader() *HTTPLoader {
	return &HTTPLoader{Client: &http.Client{Timeout: 10 * time.Second}}
}

// LoadDocument implements DocumentLoader.
func (l *HTTPLoader) LoadDocument(ctx context.Context, url string) (*RemoteDocument, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %v", ErrLoadFailure, url, err)
	}
	req.Header.Set("Accept", `application/ld+json, application/activity+json, application/json;q=0.9`)
	req.Header.Set("User-Agent", "fedikit/1.0 (+https://github.com/fedikit/fedikit)")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", ErrLoadFailure, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrLoadFailure, url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body of %s: %v", ErrLoadFailure, url, err)
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding JSON from %s: %v", ErrLoadFailure, url, err)
	}

	return &RemoteDocument{
		ContentType: resp.Header.Get("Content-Type"),
		URL:         resp.Request.URL.String(),
		Document:    doc,
	}, nil
}

// cacheEntry is one TTL-bounded slot in CachingLoader.
type cacheEntry struct {
	doc       *RemoteDocument
	expiresAt time.Time
}

// CachingLoader wraps another DocumentLoader with an in-memory TTL
// cache keyed by URL, so repeatedly dereferencing the same remote
// actor or object does not repeatedly hit the network. A background
// goroutine sweeps expired entries.
type CachingLoader struct {
	Inner DocumentLoader
	TTL   time.Duration

	cache sync.Map // string -> cacheEntry
	once  sync.Once
}

// NewCachingLoader wraps inner with a ttl-bounded cache and starts its
// sweeper goroutine.
func NewCachingLoader(inner DocumentLoader, ttl time.Duration) *CachingLoader {
	l := &CachingLoader{Inner: inner, TTL: ttl}
	l.startSweeper()
	return l
}

func (l *CachingLoader) startSweeper() {
	l.once.Do(func() {
		go func() {
			ticker := time.NewTicker(l.TTL / 2)
			defer ticker.Stop()
			for range ticker.C {
				now := time.Now()
				l.cache.Range(func(k, v interface{}) bool {
					if e := v.(cacheEntry); now.After(e.expiresAt) {
						l.cache.Delete(k)
					}
					return true
				})
			}
		}()
	})
}

// LoadDocument implements DocumentLoader.
func (l *CachingLoader) LoadDocument(ctx context.Context, url string) (*RemoteDocument, error) {
	if v, ok := l.cache.Load(url); ok {
		entry := v.(cacheEntry)
		if time.Now().Before(entry.expiresAt) {
			return entry.doc, nil
		}
		l.cache.Delete(url)
	}
	doc, err := l.Inner.LoadDocument(ctx, url)
	if err != nil {
		return nil, err
	}
	l.cache.Store(url, cacheEntry{doc: doc, expiresAt: time.Now().Add(l.TTL)})
	return doc, nil
}

// goldDocumentLoader adapts a fedikit DocumentLoader to json-gold's
// ld.DocumentLoader interface, which is context-free; the request ctx
// is captured at construction time (see Options.processorOptions).
type goldDocumentLoader struct {
	ctx context.Context
	dl  DocumentLoader
}

func (g *goldDocumentLoader) LoadDocument(u string) (*ld.RemoteDocument, error) {
	rd, err := g.dl.LoadDocument(g.ctx, u)
	if err != nil {
		return nil, err
	}
	return &ld.RemoteDocument{
		ContextURL: rd.ContextURL,
		Document:   rd.Document,
		DocumentURL: rd.URL,
	}, nil
}
