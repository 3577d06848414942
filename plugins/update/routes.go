package update

import (
	"net/http"

	"github.com/appbaseio/search-api/plugins"
)

func (u *Update) routes() []plugins.Route {
	middleware := (&chain{}).Wrap
	return []plugins.Route{
		{
			Name:        "Index document",
			Methods:     []string{http.MethodPut},
			Path:        "/{index}/{doc_type}/{id}",
			HandlerFunc: middleware(u.indexDocument()),
			Description: "Creates or replaces the document stored under id",
		},
		{
			Name:        "Delete document",
			Methods:     []string{http.MethodDelete},
			Path:        "/{index}/{doc_type}/{id}",
			HandlerFunc: middleware(u.deleteDocument()),
			Description: "Deletes the document stored under id",
		},
	}
}
