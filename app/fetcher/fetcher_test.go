package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestFetcher(client *http.Client) *Fetcher {
	return &Fetcher{
		httpClient: client,
		userAgent:  "Feed Split Test/1.0",
		timeout:    5 * time.Second,
	}
}

func TestFetcherRun(t *testing.T) {
	feedBody := `<?xml version="1.0"?><rss version="2.0"><channel></channel></rss>`

	var receivedUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		w.Write([]byte(feedBody))
	}))
	defer server.Close()

	fetcher := newTestFetcher(server.Client())
	body, err := fetcher.Run(context.Background(), server.URL, 0)

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if body != feedBody {
		t.Errorf("Expected feed body, got: %q", body)
	}
	if receivedUA != "Feed Split Test/1.0" {
		t.Errorf("Expected configured user agent, got: %q", receivedUA)
	}
}

func TestFetcherRunHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := newTestFetcher(server.Client())
	_, err := fetcher.Run(context.Background(), server.URL, 0)

	if err == nil {
		t.Fatal("Expected error for non-200 response")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Expected status code in error, got: %v", err)
	}
}

func TestFetcherRunTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	fetcher := newTestFetcher(server.Client())
	_, err := fetcher.Run(context.Background(), server.URL, 10*time.Millisecond)

	if err == nil {
		t.Fatal("Expected error when fetch exceeds timeout")
	}
}

func TestDecodeBodyLatin1(t *testing.T) {
	// "café" encoded as ISO-8859-1
	data := []byte{'c', 'a', 'f', 0xe9}

	body, err := decodeBody(data, "application/rss+xml; charset=iso-8859-1")

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if body != "café" {
		t.Errorf("Expected decoded UTF-8 'café', got: %q", body)
	}
}

func TestDecodeBodyDefaultsToUTF8(t *testing.T) {
	body, err := decodeBody([]byte("plain"), "")

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if body != "plain" {
		t.Errorf("Expected body unchanged, got: %q", body)
	}
}

func TestDecodeBodyUnknownCharset(t *testing.T) {
	body, err := decodeBody([]byte("plain"), "text/xml; charset=not-a-charset")

	if err != nil {
		t.Fatalf("Expected unknown charset to fall back to UTF-8, got: %v", err)
	}
	if body != "plain" {
		t.Errorf("Expected body unchanged, got: %q", body)
	}
}
