package search

import (
	"context"

	es7 "github.com/olivere/elastic/v7"
)

// maxBuckets bounds the number of terms returned per aggregation.
const maxBuckets = 1000

type elasticsearch struct {
	client *es7.Client
}

func newElasticsearch(client *es7.Client) *elasticsearch {
	return &elasticsearch{client}
}

func (es *elasticsearch) search(ctx context.Context, index string, query es7.Query, from, size int) (*es7.SearchResult, error) {
	return es.client.Search(index).
		SearchSource(searchSource(query, from, size)).
		Do(ctx)
}

func (es *elasticsearch) aggregate(ctx context.Context, index string, query es7.Query, fields []string) (*es7.SearchResult, error) {
	return es.client.Search(index).
		SearchSource(aggregationSource(query, fields)).
		Do(ctx)
}

func searchSource(query es7.Query, from, size int) *es7.SearchSource {
	return es7.NewSearchSource().
		Query(query).
		From(from).
		Size(size).
		TrackTotalHits(true)
}

func aggregationSource(query es7.Query, fields []string) *es7.SearchSource {
	source := es7.NewSearchSource().
		Query(query).
		Size(0).
		TrackTotalHits(true)
	for _, field := range fields {
		source = source.Aggregation(field, es7.NewTermsAggregation().Field(field).Size(maxBuckets))
	}
	return source
}
