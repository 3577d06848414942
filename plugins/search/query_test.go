package search

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/appbaseio/search-api/model/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func services(t *testing.T) *mapping.Definition {
	t.Helper()
	definition, err := mapping.Get("services")
	require.NoError(t, err)
	return definition
}

func sourceOf(t *testing.T, q *query, definition *mapping.Definition) string {
	t.Helper()
	src, err := q.build(definition).Source()
	require.NoError(t, err)
	raw, err := json.Marshal(src)
	require.NoError(t, err)
	return string(raw)
}

func TestBuildMatchAll(t *testing.T) {
	definition := services(t)
	q, err := parseQuery(definition, url.Values{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"match_all":{}}`, sourceOf(t, q, definition))
}

func TestBuildTextQuery(t *testing.T) {
	definition := services(t)
	q, err := parseQuery(definition, url.Values{"q": {" cloud hosting "}})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"simple_query_string": {
			"query": "cloud hosting",
			"fields": ["serviceName^3", "serviceSummary^2", "serviceFeatures", "serviceBenefits", "supplierName"],
			"default_operator": "and"
		}
	}`, sourceOf(t, q, definition))
}

func TestBuildFilters(t *testing.T) {
	definition := services(t)
	q, err := parseQuery(definition, url.Values{
		"filter_serviceTypes": {"Hosting", "Storage"},
		"filter_lot":          {"SaaS,PaaS"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"bool": {
			"must": {"match_all": {}},
			"filter": [
				{"terms": {"lot": ["SaaS", "PaaS"]}},
				{"terms": {"serviceTypes": ["Hosting"]}},
				{"terms": {"serviceTypes": ["Storage"]}}
			]
		}
	}`, sourceOf(t, q, definition))
}

func TestBlankFiltersAreIgnored(t *testing.T) {
	definition := services(t)
	q, err := parseQuery(definition, url.Values{"filter_lot": {" , "}})
	require.NoError(t, err)
	assert.Empty(t, q.filters)
}

func TestInvalidFilterField(t *testing.T) {
	_, err := parseQuery(services(t), url.Values{"filter_serviceName": {"Cloud"}})
	require.Error(t, err)
	assert.Equal(t, "Invalid filter field 'serviceName'", err.Error())
}

func TestParsePage(t *testing.T) {
	page, err := parsePage(url.Values{}, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, page)

	page, err = parsePage(url.Values{"page": {"3"}}, 100)
	require.NoError(t, err)
	assert.Equal(t, 3, page)

	page, err = parsePage(url.Values{"page": {"100"}}, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, page)

	page, err = parsePage(url.Values{"page": {"1"}}, 20000)
	require.NoError(t, err)
	assert.Equal(t, 1, page)

	for _, invalid := range []string{"0", "-1", "two", "1.5", "101", "9223372036854775807", "99999999999999999999"} {
		_, err := parsePage(url.Values{"page": {invalid}}, 100)
		assert.EqualError(t, err, "Invalid page argument", invalid)
	}
}

func TestParseAggregations(t *testing.T) {
	definition := services(t)

	fields, err := parseAggregations(definition, url.Values{"aggregations": {"lot,serviceTypes", "lot"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"lot", "serviceTypes"}, fields)

	_, err = parseAggregations(definition, url.Values{})
	assert.EqualError(t, err, "No aggregations requested")

	_, err = parseAggregations(definition, url.Values{"aggregations": {"lot,serviceName"}})
	assert.EqualError(t, err, "Invalid aggregation field 'serviceName'")
}

func TestQueryArgs(t *testing.T) {
	args := queryArgs(url.Values{"q": {"cloud"}, "filter_lot": {"SaaS", "PaaS"}})
	assert.Equal(t, map[string]interface{}{
		"q":          "cloud",
		"filter_lot": []string{"SaaS", "PaaS"},
	}, args)
}
