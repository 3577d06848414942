package search

import (
	"net/http"

	"github.com/appbaseio/search-api/plugins"
)

func (s *Search) routes() []plugins.Route {
	middleware := (&chain{}).Wrap
	return []plugins.Route{
		{
			Name:        "Search documents",
			Methods:     []string{http.MethodGet},
			Path:        "/{index}/{doc_type}/search",
			HandlerFunc: middleware(s.search()),
			Description: "Returns a page of the documents matching the query and filters",
		},
		{
			Name:        "Aggregate documents",
			Methods:     []string{http.MethodGet},
			Path:        "/{index}/{doc_type}/aggregations",
			HandlerFunc: middleware(s.aggregations()),
			Description: "Returns the term counts of the requested fields over the matching documents",
		},
	}
}
