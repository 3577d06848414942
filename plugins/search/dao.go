package search

import (
	"context"

	es7 "github.com/olivere/elastic/v7"
)

type searchService interface {
	search(ctx context.Context, index string, query es7.Query, from, size int) (*es7.SearchResult, error)
	aggregate(ctx context.Context, index string, query es7.Query, fields []string) (*es7.SearchResult, error)
}
