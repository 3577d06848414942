package meta

import (
	"net/http"
	"sync"

	"github.com/appbaseio/search-api/plugins"
)

const logTag = "[meta]"

var (
	singleton *Meta
	once      sync.Once
)

// Meta plugin reports whether the service can reach the cluster.
type Meta struct{}

// Instance returns the singleton instance of the plugin.
func Instance() *Meta {
	once.Do(func() { singleton = &Meta{} })
	return singleton
}

// Name returns the name of the plugin: [meta]
func (m *Meta) Name() string {
	return logTag
}

// InitFunc is a no-op, the status route uses the shared client on each request.
func (m *Meta) InitFunc() error {
	return nil
}

// Routes returns the status route.
func (m *Meta) Routes() []plugins.Route {
	middleware := (&chain{}).Wrap
	return []plugins.Route{
		{
			Name:        "Get status",
			Methods:     []string{http.MethodGet},
			Path:        "/_status",
			HandlerFunc: middleware(m.status()),
			Description: "Returns the service status along with the cluster health",
		},
	}
}
