package search

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/appbaseio/search-api/errors"
	"github.com/appbaseio/search-api/model/mapping"
	"github.com/appbaseio/search-api/util"
	es7 "github.com/olivere/elastic/v7"
)

const (
	paramQuery        = "q"
	paramPage         = "page"
	paramAggregations = "aggregations"
	filterPrefix      = "filter_"
)

type filter struct {
	field  string
	values []string
}

// query is a search request read from the url query.
type query struct {
	text    string
	filters []filter
}

// parseQuery reads the text query and the filters of values, rejecting
// filters on fields the mapping doesn't allow.
func parseQuery(definition *mapping.Definition, values url.Values) (*query, error) {
	q := &query{text: strings.TrimSpace(values.Get(paramQuery))}

	keys := make([]string, 0, len(values))
	for key := range values {
		if strings.HasPrefix(key, filterPrefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		field := strings.TrimPrefix(key, filterPrefix)
		if !definition.CanFilter(field) {
			return nil, errors.NewInvalidFieldError("filter", field)
		}
		for _, value := range values[key] {
			terms := util.SplitList(value)
			if len(terms) == 0 {
				continue
			}
			q.filters = append(q.filters, filter{field, terms})
		}
	}
	return q, nil
}

// build returns the engine query: a simple query string over the search
// fields of the mapping, or match all, narrowed by a terms filter each.
func (q *query) build(definition *mapping.Definition) es7.Query {
	var textQuery es7.Query = es7.NewMatchAllQuery()
	if q.text != "" {
		simple := es7.NewSimpleQueryStringQuery(q.text).DefaultOperator("and")
		for _, field := range definition.Meta.SearchFields {
			simple = simple.Field(field)
		}
		textQuery = simple
	}
	if len(q.filters) == 0 {
		return textQuery
	}

	boolQuery := es7.NewBoolQuery().Must(textQuery)
	for _, f := range q.filters {
		terms := make([]interface{}, len(f.values))
		for i, v := range f.values {
			terms[i] = v
		}
		boolQuery = boolQuery.Filter(es7.NewTermsQuery(f.field, terms...))
	}
	return boolQuery
}

// maxResultWindow is the engine's default index.max_result_window, the
// deepest from + size a search may reach.
const maxResultWindow = 10000

// parsePage returns the 1-based page number of values, 1 when absent.
// Pages beyond the engine's result window are rejected.
func parsePage(values url.Values, pageSize int) (int, error) {
	raw := values.Get(paramPage)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, errors.ErrInvalidPage
	}
	maxPage := maxResultWindow / pageSize
	if maxPage < 1 {
		maxPage = 1
	}
	if page > maxPage {
		return 0, errors.ErrInvalidPage
	}
	return page, nil
}

// parseAggregations returns the requested aggregation fields in order,
// without duplicates.
func parseAggregations(definition *mapping.Definition, values url.Values) ([]string, error) {
	var fields []string
	for _, value := range values[paramAggregations] {
		for _, field := range util.SplitList(value) {
			if !definition.CanAggregate(field) {
				return nil, errors.NewInvalidFieldError("aggregation", field)
			}
			if !util.Contains(fields, field) {
				fields = append(fields, field)
			}
		}
	}
	if len(fields) == 0 {
		return nil, errors.ErrNoAggregations
	}
	return fields, nil
}

// queryArgs flattens the url query for the response meta.
func queryArgs(values url.Values) map[string]interface{} {
	args := make(map[string]interface{}, len(values))
	for key, v := range values {
		if len(v) == 1 {
			args[key] = v[0]
		} else {
			args[key] = v
		}
	}
	return args
}
