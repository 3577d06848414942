package admin

import (
	"errors"
	"sync"

	"github.com/appbaseio/search-api/config"
	"github.com/appbaseio/search-api/plugins"
	"github.com/appbaseio/search-api/util"
)

const logTag = "[admin]"

var (
	singleton *Admin
	once      sync.Once
)

// Admin plugin manages the lifecycle of indices and aliases.
type Admin struct {
	es             adminService
	defaultMapping string
}

// Instance returns the singleton instance of the plugin. Instance
// should be the only way (both within or outside the package) to fetch
// the instance of the plugin, in order to avoid stateless duplicates.
func Instance() *Admin {
	once.Do(func() { singleton = &Admin{} })
	return singleton
}

// Name returns the name of the plugin: [admin]
func (a *Admin) Name() string {
	return logTag
}

// InitFunc initializes the dao, i.e. elasticsearch client, and reads the
// mapping used by index requests that don't name one.
func (a *Admin) InitFunc() error {
	client := util.GetClient7()
	if client == nil {
		return errors.New(logTag + ": elasticsearch client is not initialized")
	}
	a.es = newElasticsearch(client)
	a.defaultMapping = config.Get().DefaultMapping
	return nil
}

// Routes returns the index and alias management routes.
func (a *Admin) Routes() []plugins.Route {
	return a.routes()
}
