package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmcdole/gofeed"

	"github.com/lysyi3m/feed-split/app/config"
	"github.com/lysyi3m/feed-split/app/feed"
)

func NewHandler(sourceCache *config.SourceCache, fetcher FetcherInterface,
	transformer TransformerInterface) *Handler {
	return &Handler{
		sourceCache: sourceCache,
		fetcher:     fetcher,
		transformer: transformer,
	}
}

func (h *Handler) GetFeed(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	source, err := h.sourceCache.Get(name)
	if err != nil {
		slog.Error("Feed source not found", "source", name, "error", err)
		c.Status(http.StatusNotFound)
		return
	}

	timeout := time.Duration(source.Settings.Timeout) * time.Second
	feedText, err := h.fetcher.Run(c.Request.Context(), source.URL, timeout)
	if err != nil {
		slog.Error("Fetch error", "source", name, "url", source.URL, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch feed"})
		return
	}

	h.respondTransformed(c, feedText, name)
}

func (h *Handler) APITransformURL(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing url parameter"})
		return
	}

	feedText, err := h.fetcher.Run(c.Request.Context(), url, 0)
	if err != nil {
		slog.Error("Fetch error", "url", url, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch feed"})
		return
	}

	h.respondTransformed(c, feedText, url)
}

func (h *Handler) APITransformBody(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty request body"})
		return
	}

	h.respondTransformed(c, string(data), "request body")
}

func (h *Handler) APIListSources(c *gin.Context) {
	sources := h.sourceCache.GetAll()

	list := make([]map[string]interface{}, 0, len(sources))
	for _, source := range sources {
		list = append(list, map[string]interface{}{
			"name":    source.Name,
			"url":     source.URL,
			"title":   source.Title,
			"timeout": source.Settings.Timeout,
		})
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"sources": list,
		"total":   len(list),
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"timestamp":      time.Now().Format(time.RFC3339),
		"loaded_sources": h.sourceCache.Count(),
	})
}

// respondTransformed runs the transform and writes the rewritten feed with a
// media type matching the detected dialect. A ParseError means the upstream
// document was not well-formed XML, which is the caller's data problem, not
// ours.
func (h *Handler) respondTransformed(c *gin.Context, feedText, origin string) {
	out, err := h.transformer.Run(feedText)
	if err != nil {
		var parseErr *feed.ParseError
		if errors.As(err, &parseErr) {
			slog.Error("Feed parse error", "origin", origin, "error", err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "Failed to process feed",
				"details": err.Error(),
			})
			return
		}
		slog.Error("Transform error", "origin", origin, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", mediaType(out))
	c.String(http.StatusOK, out)
}

func mediaType(feedText string) string {
	switch gofeed.DetectFeedType(strings.NewReader(feedText)) {
	case gofeed.FeedTypeAtom:
		return "application/atom+xml; charset=utf-8"
	case gofeed.FeedTypeRSS:
		return "application/rss+xml; charset=utf-8"
	default:
		return "application/xml; charset=utf-8"
	}
}
