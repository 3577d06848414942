package admin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/appbaseio/search-api/model/mapping"
	"github.com/buger/jsonparser"
	es7 "github.com/olivere/elastic/v7"
	log "github.com/sirupsen/logrus"
)

type elasticsearch struct {
	client *es7.Client
}

func newElasticsearch(client *es7.Client) *elasticsearch {
	return &elasticsearch{client}
}

func (es *elasticsearch) createIndex(ctx context.Context, name string, definition *mapping.Definition) error {
	body, err := definition.CreateBody()
	if err != nil {
		return err
	}
	_, err = es.client.CreateIndex(name).
		BodyString(body).
		Do(ctx)
	if err != nil {
		return err
	}
	log.Println(logTag, ": created index", name, "with mapping", definition.Name)
	return nil
}

func (es *elasticsearch) putMapping(ctx context.Context, name string, definition *mapping.Definition) error {
	_, err := es.client.PutMapping().
		Index(name).
		BodyString(definition.MappingsBody()).
		Do(ctx)
	if err != nil {
		return err
	}
	log.Println(logTag, ": updated mapping of index", name, "with", definition.Name)
	return nil
}

func (es *elasticsearch) deleteIndex(ctx context.Context, name string) error {
	_, err := es.client.DeleteIndex(name).Do(ctx)
	if err != nil {
		return err
	}
	log.Println(logTag, ": deleted index", name)
	return nil
}

func (es *elasticsearch) aliasesOf(ctx context.Context, name string) (map[string][]string, error) {
	result, err := es.client.Aliases().
		Index(name).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	aliases := make(map[string][]string, len(result.Indices))
	for index, indexResult := range result.Indices {
		names := make([]string, 0, len(indexResult.Aliases))
		for _, alias := range indexResult.Aliases {
			names = append(names, alias.AliasName)
		}
		sort.Strings(names)
		aliases[index] = names
	}
	return aliases, nil
}

func (es *elasticsearch) setAlias(ctx context.Context, alias, target string, from []string) error {
	service := es.client.Alias()
	for _, index := range from {
		service = service.Remove(index, alias)
	}
	_, err := service.Add(target, alias).Do(ctx)
	if err != nil {
		return err
	}
	log.Println(logTag, ": alias", alias, "now points to", target)
	return nil
}

func (es *elasticsearch) status(ctx context.Context, name string) (map[string]*indexStatus, error) {
	stats, err := es.client.IndexStats(name).Do(ctx)
	if err != nil {
		return nil, err
	}
	versions, err := es.mappingVersions(ctx, name)
	if err != nil {
		return nil, err
	}
	aliases, err := es.aliasesOf(ctx, name)
	if err != nil {
		return nil, err
	}

	status := make(map[string]*indexStatus, len(stats.Indices))
	for index, indexStats := range stats.Indices {
		s := &indexStatus{
			MappingVersion: versions[index],
			Aliases:        aliases[index],
		}
		if s.Aliases == nil {
			s.Aliases = []string{}
		}
		if p := indexStats.Primaries; p != nil {
			if p.Docs != nil {
				s.NumDocs = p.Docs.Count
			}
			if p.Store != nil {
				s.PrimarySize = p.Store.SizeInBytes
			}
		}
		status[index] = s
	}
	return status, nil
}

// mappingVersions reads the "_meta.version" of every index mapping name resolves to.
func (es *elasticsearch) mappingVersions(ctx context.Context, name string) (map[string]string, error) {
	response, err := es.client.PerformRequest(ctx, es7.PerformRequestOptions{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/%s/_mapping", url.PathEscape(name)),
	})
	if err != nil {
		return nil, err
	}

	versions := make(map[string]string)
	err = jsonparser.ObjectEach(response.Body, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		version, err := jsonparser.GetString(value, "mappings", "_meta", "version")
		if err != nil && err != jsonparser.KeyPathNotFoundError {
			return err
		}
		versions[string(key)] = version
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to read mappings of %q: %v", name, err)
	}
	return versions, nil
}
