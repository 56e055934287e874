package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestDirectFetcher(cfg DirectConfig) *directFetcher {
	return newDirectFetcher(cfg.withDefaults())
}

func TestDirectFetcherExtractsTitleAndText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("User-Agent"), "GeminiBot") {
			t.Fatalf("unexpected user agent: %s", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head>
			<meta property="og:title" content="OG Wins"/>
			<title>Tag Title</title>
			<style>body { color: red }</style>
		</head><body>
			<script>var hidden = true;</script>
			<p>Hello   world.</p>
			<p>Second paragraph.</p>
		</body></html>`))
	}))
	defer server.Close()

	doc := newTestDirectFetcher(DirectConfig{TimeoutSecs: 2}).Fetch(context.Background(), server.URL)
	if !doc.Succeeded {
		t.Fatalf("expected success, got error: %s", doc.Error)
	}
	if doc.Title != "OG Wins" {
		t.Fatalf("expected og:title to win, got %q", doc.Title)
	}
	if doc.Text != "Hello world. Second paragraph." {
		t.Fatalf("unexpected text: %q", doc.Text)
	}
	if strings.Contains(doc.Text, "hidden") || strings.Contains(doc.Text, "color") {
		t.Fatalf("script/style content leaked: %q", doc.Text)
	}
}

func TestDirectFetcherTitleFallbacks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title> Plain Title </title></head><body>content</body></html>`))
	}))
	defer server.Close()

	doc := newTestDirectFetcher(DirectConfig{TimeoutSecs: 2}).Fetch(context.Background(), server.URL)
	if doc.Title != "Plain Title" {
		t.Fatalf("expected title tag fallback, got %q", doc.Title)
	}

	bare := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>no title anywhere</body></html>`))
	}))
	defer bare.Close()

	doc = newTestDirectFetcher(DirectConfig{TimeoutSecs: 2}).Fetch(context.Background(), bare.URL)
	if doc.Title != "Untitled" {
		t.Fatalf("expected Untitled, got %q", doc.Title)
	}
}

func TestDirectFetcherTruncatesLongPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>" + strings.Repeat("word ", 100) + "</body></html>"))
	}))
	defer server.Close()

	doc := newTestDirectFetcher(DirectConfig{TimeoutSecs: 2, MaxChars: 50}).Fetch(context.Background(), server.URL)
	if !doc.Succeeded {
		t.Fatalf("expected success, got error: %s", doc.Error)
	}
	if !strings.HasSuffix(doc.Text, TruncationMarker) {
		t.Fatalf("expected truncation marker, got %q", doc.Text)
	}
	if len(doc.Text) > 50+len(TruncationMarker) {
		t.Fatalf("text too long: %d chars", len(doc.Text))
	}
}

func TestDirectFetcherAbsorbsHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusForbidden)
	}))
	defer server.Close()

	doc := newTestDirectFetcher(DirectConfig{TimeoutSecs: 2}).Fetch(context.Background(), server.URL)
	if doc.Succeeded {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(doc.Error, "403") {
		t.Fatalf("expected status in error, got %q", doc.Error)
	}
	if doc.Fetcher != FetcherDirect {
		t.Fatalf("unexpected fetcher label: %q", doc.Fetcher)
	}
}
