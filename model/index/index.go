package index

import (
	"fmt"

	"github.com/appbaseio/search-api/errors"
)

// Type is the kind of resource a PUT request creates under a name.
type Type string

// Types
const (
	Index Type = "index"
	Alias Type = "alias"
)

// Request is the body of a PUT request on an index or alias name.
type Request struct {
	Type Type `json:"type"`
	// Mapping names the mapping definition an index is created with.
	Mapping string `json:"mapping,omitempty"`
	// Target is the index an alias points to.
	Target string `json:"target,omitempty"`
}

// InvalidTypeError is returned for a request whose type is neither index nor alias.
type InvalidTypeError struct {
	Type Type
}

// Error implements the error interface.
func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("Invalid type '%s', must be one of '%s' or '%s'", e.Type, Index, Alias)
}

// Validate checks the request and fills in the default mapping for index requests.
func (r *Request) Validate(defaultMapping string) error {
	switch r.Type {
	case Index:
		if r.Mapping == "" {
			r.Mapping = defaultMapping
		}
		return nil
	case Alias:
		if r.Target == "" {
			return errors.ErrMissingAliasTarget
		}
		return nil
	default:
		return &InvalidTypeError{r.Type}
	}
}
