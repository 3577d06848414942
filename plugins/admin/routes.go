package admin

import (
	"net/http"

	"github.com/appbaseio/search-api/plugins"
)

func (a *Admin) routes() []plugins.Route {
	middleware := (&chain{}).Wrap
	return []plugins.Route{
		{
			Name:        "Get index status",
			Methods:     []string{http.MethodGet},
			Path:        "/{name}",
			HandlerFunc: middleware(a.getStatus()),
			Description: "Returns the status of an index, or of every index for _all",
		},
		{
			Name:        "Put index or alias",
			Methods:     []string{http.MethodPut},
			Path:        "/{name}",
			HandlerFunc: middleware(a.putIndexOrAlias()),
			Description: "Creates or updates an index, or points an alias at an index",
		},
		{
			Name:        "Delete index",
			Methods:     []string{http.MethodDelete},
			Path:        "/{name}",
			HandlerFunc: middleware(a.deleteIndex()),
			Description: "Deletes an index that no alias points to",
		},
	}
}
