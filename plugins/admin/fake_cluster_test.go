package admin

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/appbaseio/search-api/model/mapping"
	es7 "github.com/olivere/elastic/v7"
)

// fakeCluster is an in-memory adminService that enforces the same index and
// alias rules as the engine.
type fakeCluster struct {
	mu          sync.Mutex
	indices     map[string]*fakeIndex
	mappingPuts map[string]int
}

type fakeIndex struct {
	mapping string
	version string
	aliases map[string]bool
}

func newFakeCluster() *fakeCluster {
	return &fakeCluster{
		indices:     make(map[string]*fakeIndex),
		mappingPuts: make(map[string]int),
	}
}

func indexNotFound(name string) error {
	return &es7.Error{
		Status: http.StatusNotFound,
		Details: &es7.ErrorDetails{
			Type:         "index_not_found_exception",
			Reason:       fmt.Sprintf("no such index [%s]", name),
			ResourceType: "index_or_alias",
			ResourceId:   name,
			Index:        name,
		},
	}
}

func (f *fakeCluster) createIndex(ctx context.Context, name string, definition *mapping.Definition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.indices[name]; ok {
		return &es7.Error{
			Status: http.StatusBadRequest,
			Details: &es7.ErrorDetails{
				Type:   "resource_already_exists_exception",
				Reason: fmt.Sprintf("index [%s/uuid] already exists", name),
				Index:  name,
			},
		}
	}
	if len(f.holders(name)) > 0 {
		return &es7.Error{
			Status: http.StatusBadRequest,
			Details: &es7.ErrorDetails{
				Type:   "invalid_index_name_exception",
				Reason: "Invalid index name [" + name + "], already exists as alias",
				Index:  name,
			},
		}
	}
	f.indices[name] = &fakeIndex{
		mapping: definition.Name,
		version: definition.Meta.Version,
		aliases: make(map[string]bool),
	}
	return nil
}

func (f *fakeCluster) putMapping(ctx context.Context, name string, definition *mapping.Definition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx, ok := f.indices[name]
	if !ok {
		return indexNotFound(name)
	}
	idx.mapping = definition.Name
	idx.version = definition.Meta.Version
	f.mappingPuts[name]++
	return nil
}

func (f *fakeCluster) deleteIndex(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.indices[name]; !ok {
		return indexNotFound(name)
	}
	delete(f.indices, name)
	return nil
}

func (f *fakeCluster) aliasesOf(ctx context.Context, name string) (map[string][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	resolved, err := f.resolve(name)
	if err != nil {
		return nil, err
	}
	aliases := make(map[string][]string, len(resolved))
	for _, index := range resolved {
		aliases[index] = f.aliasNames(index)
	}
	return aliases, nil
}

func (f *fakeCluster) setAlias(ctx context.Context, alias, target string, from []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.indices[alias]; ok {
		return &es7.Error{
			Status: http.StatusBadRequest,
			Details: &es7.ErrorDetails{
				Type:   "invalid_alias_name_exception",
				Reason: fmt.Sprintf("Invalid alias name [%s], an index exists with the same name as the alias", alias),
				Index:  alias,
			},
		}
	}
	targetIndex, ok := f.indices[target]
	if !ok {
		return indexNotFound(target)
	}
	for _, index := range from {
		if idx, ok := f.indices[index]; ok {
			delete(idx.aliases, alias)
		}
	}
	targetIndex.aliases[alias] = true
	return nil
}

func (f *fakeCluster) status(ctx context.Context, name string) (map[string]*indexStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	resolved, err := f.resolve(name)
	if err != nil {
		return nil, err
	}
	status := make(map[string]*indexStatus, len(resolved))
	for _, index := range resolved {
		status[index] = &indexStatus{
			MappingVersion: f.indices[index].version,
			Aliases:        f.aliasNames(index),
		}
	}
	return status, nil
}

func (f *fakeCluster) resolve(name string) ([]string, error) {
	if name == "_all" {
		var all []string
		for index := range f.indices {
			all = append(all, index)
		}
		return all, nil
	}
	if _, ok := f.indices[name]; ok {
		return []string{name}, nil
	}
	if holders := f.holders(name); len(holders) > 0 {
		return holders, nil
	}
	return nil, indexNotFound(name)
}

func (f *fakeCluster) holders(alias string) []string {
	var holders []string
	for index, idx := range f.indices {
		if idx.aliases[alias] {
			holders = append(holders, index)
		}
	}
	return holders
}

func (f *fakeCluster) aliasNames(index string) []string {
	names := []string{}
	for alias := range f.indices[index].aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}
