package api

import (
	"context"
	"time"

	"github.com/lysyi3m/feed-split/app/config"
	"github.com/lysyi3m/feed-split/app/feed"
	"github.com/lysyi3m/feed-split/app/fetcher"
)

type TransformerInterface interface {
	Run(feedText string) (string, error)
}

var _ TransformerInterface = (*feed.Transformer)(nil)

type FetcherInterface interface {
	Run(ctx context.Context, url string, timeout time.Duration) (string, error)
}

var _ FetcherInterface = (*fetcher.Fetcher)(nil)

type Handler struct {
	sourceCache *config.SourceCache
	fetcher     FetcherInterface
	transformer TransformerInterface
}
