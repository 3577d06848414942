package search

import (
	"errors"
	"sync"

	"github.com/appbaseio/search-api/config"
	"github.com/appbaseio/search-api/plugins"
	"github.com/appbaseio/search-api/util"
)

const logTag = "[search]"

var (
	singleton *Search
	once      sync.Once
)

// Search plugin runs document searches and term aggregations against an
// index, restricted to the fields its mapping exposes.
type Search struct {
	es       searchService
	pageSize int
}

// Instance returns the singleton instance of the plugin. Instance
// should be the only way (both within or outside the package) to fetch
// the instance of the plugin, in order to avoid stateless duplicates.
func Instance() *Search {
	once.Do(func() { singleton = &Search{} })
	return singleton
}

// Name returns the name of the plugin: [search]
func (s *Search) Name() string {
	return logTag
}

// InitFunc initializes the dao, i.e. elasticsearch client, and the page size.
func (s *Search) InitFunc() error {
	client := util.GetClient7()
	if client == nil {
		return errors.New(logTag + ": elasticsearch client is not initialized")
	}
	s.es = newElasticsearch(client)
	s.pageSize = config.Get().PageSize
	return nil
}

// Routes returns the search routes.
func (s *Search) Routes() []plugins.Route {
	return s.routes()
}
