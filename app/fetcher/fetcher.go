package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/lysyi3m/feed-split/app/cfg"
)

type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
}

func NewFetcher(httpClient *http.Client) *Fetcher {
	appCfg := cfg.Get()

	return &Fetcher{
		httpClient: httpClient,
		userAgent:  appCfg.UserAgent,
		timeout:    time.Duration(appCfg.FetchTimeout) * time.Second,
	}
}

// Run fetches url and returns the response body as a UTF-8 string. A zero
// timeout falls back to the configured fetch timeout; the wait is always
// bounded and an expired deadline surfaces as a fetch failure.
func (f *Fetcher) Run(ctx context.Context, url string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = f.timeout
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	body, err := decodeBody(data, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	slog.Debug("Feed fetched", "url", url, "bytes", len(data))

	return body, nil
}

// decodeBody converts the response body to UTF-8 using the charset declared
// in the Content-Type header. Unknown or missing charsets are treated as
// UTF-8 already.
func decodeBody(data []byte, contentType string) (string, error) {
	charset := "utf-8"
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		if cs, ok := params["charset"]; ok {
			charset = cs
		}
	}

	if strings.EqualFold(charset, "utf-8") {
		return string(data), nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		slog.Warn("Unknown charset, assuming UTF-8", "charset", charset)
		return string(data), nil
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s body: %w", charset, err)
	}

	return string(decoded), nil
}
