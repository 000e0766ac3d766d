package jsonld

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestCachingLoaderCachesWithinTTL(t *testing.T) {
	var calls int32
	inner := DocumentLoaderFunc(func(ctx context.Context, url string) (*RemoteDocument, error) {
		atomic.AddInt32(&calls, 1)
		return &RemoteDocument{URL: url, Document: map[string]interface{}{"ok": true}}, nil
	})

	cache := NewCachingLoader(inner, time.Minute)

	for i := 0; i < 3; i++ {
		if _, err := cache.LoadDocument(context.Background(), "https://example.com/a"); err != nil {
			t.Fatalf("LoadDocument: %v", err)
		}
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("inner loader called %d times, want 1 (cached)", got)
	}

	if _, err := cache.LoadDocument(context.Background(), "https://example.com/b"); err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("inner loader called %d times, want 2 (distinct URL)", got)
	}
}

func TestCachingLoaderRefetchesAfterExpiry(t *testing.T) {
	var calls int32
	inner := DocumentLoaderFunc(func(ctx context.Context, url string) (*RemoteDocument, error) {
		atomic.AddInt32(&calls, 1)
		return &RemoteDocument{URL: url}, nil
	})

	cache := NewCachingLoader(inner, 10*time.Millisecond)

	if _, err := cache.LoadDocument(context.Background(), "https://example.com/a"); err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := cache.LoadDocument(context.Background(), "https://example.com/a"); err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("inner loader called %d times, want 2 (cache entry expired)", got)
	}
}

func TestDocumentLoaderFuncPropagatesError(t *testing.T) {
	wantErr := ErrLoadFailure
	f := DocumentLoaderFunc(func(ctx context.Context, url string) (*RemoteDocument, error) {
		return nil, wantErr
	})
	if _, err := f.LoadDocument(context.Background(), "https://example.com"); err != wantErr {
		t.Errorf("got error %v, want %v", err, wantErr)
	}
}
