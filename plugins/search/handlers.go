package search

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/appbaseio/search-api/model/mapping"
	"github.com/appbaseio/search-api/util"
	"github.com/gorilla/mux"
	es7 "github.com/olivere/elastic/v7"
	log "github.com/sirupsen/logrus"
)

type meta struct {
	Query map[string]interface{} `json:"query"`
	Total int64                  `json:"total"`
	Took  int64                  `json:"took"`
}

func (s *Search) search() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		vars := mux.Vars(req)
		indexName := vars["index"]
		definition, err := mapping.Get(vars["doc_type"])
		if err != nil {
			util.WriteBackError(w, err.Error(), http.StatusBadRequest)
			return
		}

		values := req.URL.Query()
		q, err := parseQuery(definition, values)
		if err != nil {
			util.WriteBackError(w, err.Error(), http.StatusBadRequest)
			return
		}
		page, err := parsePage(values, s.pageSize)
		if err != nil {
			util.WriteBackError(w, err.Error(), http.StatusBadRequest)
			return
		}

		from := (page - 1) * s.pageSize
		result, err := s.es.search(req.Context(), indexName, q.build(definition), from, s.pageSize)
		if err != nil {
			writeEngineError(w, indexName, err)
			return
		}

		documents, err := documentsOf(result)
		if err != nil {
			log.Errorln(logTag, ": can't read search hits of", indexName, ":", err)
			util.WriteBackError(w, "Can't read search results", http.StatusInternalServerError)
			return
		}

		total := totalHits(result)
		links := make(map[string]string)
		if page > 1 {
			links["prev"] = pageURL(req.URL, page-1)
		}
		if int64(from+s.pageSize) < total {
			links["next"] = pageURL(req.URL, page+1)
		}

		util.WriteBackJSON(w, map[string]interface{}{
			"documents": documents,
			"meta": meta{
				Query: queryArgs(values),
				Total: total,
				Took:  result.TookInMillis,
			},
			"links": links,
		}, http.StatusOK)
	}
}

func (s *Search) aggregations() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		vars := mux.Vars(req)
		indexName := vars["index"]
		definition, err := mapping.Get(vars["doc_type"])
		if err != nil {
			util.WriteBackError(w, err.Error(), http.StatusBadRequest)
			return
		}

		values := req.URL.Query()
		fields, err := parseAggregations(definition, values)
		if err != nil {
			util.WriteBackError(w, err.Error(), http.StatusBadRequest)
			return
		}
		q, err := parseQuery(definition, values)
		if err != nil {
			util.WriteBackError(w, err.Error(), http.StatusBadRequest)
			return
		}

		result, err := s.es.aggregate(req.Context(), indexName, q.build(definition), fields)
		if err != nil {
			writeEngineError(w, indexName, err)
			return
		}

		aggregations := make(map[string]map[string]int64, len(fields))
		for _, field := range fields {
			counts := make(map[string]int64)
			if terms, found := result.Aggregations.Terms(field); found {
				for _, bucket := range terms.Buckets {
					counts[bucketKey(bucket)] = bucket.DocCount
				}
			}
			aggregations[field] = counts
		}

		util.WriteBackJSON(w, map[string]interface{}{
			"aggregations": aggregations,
			"meta": meta{
				Query: queryArgs(values),
				Total: totalHits(result),
				Took:  result.TookInMillis,
			},
		}, http.StatusOK)
	}
}

func documentsOf(result *es7.SearchResult) ([]map[string]interface{}, error) {
	documents := make([]map[string]interface{}, 0)
	if result.Hits == nil {
		return documents, nil
	}
	for _, hit := range result.Hits.Hits {
		document := make(map[string]interface{})
		if len(hit.Source) > 0 {
			if err := json.Unmarshal(hit.Source, &document); err != nil {
				return nil, err
			}
		}
		document["id"] = hit.Id
		documents = append(documents, document)
	}
	return documents, nil
}

func totalHits(result *es7.SearchResult) int64 {
	if result.Hits == nil || result.Hits.TotalHits == nil {
		return 0
	}
	return result.Hits.TotalHits.Value
}

func bucketKey(bucket *es7.AggregationBucketKeyItem) string {
	if bucket.KeyAsString != nil {
		return *bucket.KeyAsString
	}
	switch key := bucket.Key.(type) {
	case string:
		return key
	case float64:
		return strconv.FormatFloat(key, 'f', -1, 64)
	default:
		raw, _ := json.Marshal(key)
		return string(raw)
	}
}

// pageURL returns the request url pointing at page.
func pageURL(u *url.URL, page int) string {
	values := u.Query()
	values.Set(paramPage, strconv.Itoa(page))
	link := url.URL{Path: u.Path, RawQuery: values.Encode()}
	return link.String()
}

func writeEngineError(w http.ResponseWriter, indexName string, err error) {
	msg, code := util.EngineError(err)
	if code == http.StatusInternalServerError {
		log.Errorln(logTag, ": error searching", indexName, ":", err)
	}
	util.WriteBackError(w, msg, code)
}
