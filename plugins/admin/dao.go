package admin

import (
	"context"

	"github.com/appbaseio/search-api/model/mapping"
)

// indexStatus is the summary of an index returned by the status routes.
type indexStatus struct {
	NumDocs        int64    `json:"num_docs"`
	PrimarySize    int64    `json:"primary_size"`
	MappingVersion string   `json:"mapping_version"`
	Aliases        []string `json:"aliases"`
}

type adminService interface {
	createIndex(ctx context.Context, name string, definition *mapping.Definition) error
	putMapping(ctx context.Context, name string, definition *mapping.Definition) error
	deleteIndex(ctx context.Context, name string) error
	// aliasesOf returns the indices name resolves to, each with its sorted aliases.
	aliasesOf(ctx context.Context, name string) (map[string][]string, error)
	// setAlias removes alias from the from indices and adds it to target in one call.
	setAlias(ctx context.Context, alias, target string, from []string) error
	status(ctx context.Context, name string) (map[string]*indexStatus, error)
}
