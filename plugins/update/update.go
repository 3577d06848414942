package update

import (
	"errors"
	"sync"

	"github.com/appbaseio/search-api/plugins"
	"github.com/appbaseio/search-api/util"
)

const logTag = "[update]"

var (
	singleton *Update
	once      sync.Once
)

// Update plugin indexes and deletes single documents.
type Update struct {
	es updateService
}

// Instance returns the singleton instance of the plugin. Instance
// should be the only way (both within or outside the package) to fetch
// the instance of the plugin, in order to avoid stateless duplicates.
func Instance() *Update {
	once.Do(func() { singleton = &Update{} })
	return singleton
}

// Name returns the name of the plugin: [update]
func (u *Update) Name() string {
	return logTag
}

// InitFunc initializes the dao, i.e. elasticsearch client.
func (u *Update) InitFunc() error {
	client := util.GetClient7()
	if client == nil {
		return errors.New(logTag + ": elasticsearch client is not initialized")
	}
	u.es = newElasticsearch(client)
	return nil
}

// Routes returns the document routes.
func (u *Update) Routes() []plugins.Route {
	return u.routes()
}
