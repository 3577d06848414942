package mapping

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/appbaseio/search-api/errors"
	"github.com/gobuffalo/packr"
)

const ext = ".json"

var (
	box       = packr.NewBox("./definitions")
	validName = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// Meta is the query time configuration a mapping carries in its "_meta" object.
type Meta struct {
	Version            string   `json:"version"`
	SearchFields       []string `json:"search_fields"`
	FilterFields       []string `json:"filter_fields"`
	AggregatableFields []string `json:"aggregatable_fields"`
}

// Definition is a named index definition: the settings an index is created
// with and the mappings of its documents.
type Definition struct {
	Name     string          `json:"-"`
	Settings json.RawMessage `json:"settings,omitempty"`
	Mappings json.RawMessage `json:"mappings"`
	Meta     Meta            `json:"-"`
}

// Get returns the definition named name.
func Get(name string) (*Definition, error) {
	if !validName.MatchString(name) || !box.Has(name+ext) {
		return nil, errors.NewMappingNotFoundError(name)
	}
	raw, err := box.Find(name + ext)
	if err != nil {
		return nil, errors.NewMappingNotFoundError(name)
	}
	return Parse(name, raw)
}

// Parse decodes a definition from its json form.
func Parse(name string, raw []byte) (*Definition, error) {
	d := Definition{Name: name}
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("mapping definition %q is invalid: %v", name, err)
	}
	if len(d.Mappings) == 0 {
		return nil, fmt.Errorf("mapping definition %q has no mappings", name)
	}
	var mappings struct {
		Meta Meta `json:"_meta"`
	}
	if err := json.Unmarshal(d.Mappings, &mappings); err != nil {
		return nil, fmt.Errorf("mapping definition %q has invalid mappings: %v", name, err)
	}
	d.Meta = mappings.Meta
	return &d, nil
}

// Names lists the available definitions.
func Names() []string {
	var names []string
	for _, file := range box.List() {
		if strings.HasSuffix(file, ext) && !strings.Contains(file, "/") {
			names = append(names, strings.TrimSuffix(file, ext))
		}
	}
	sort.Strings(names)
	return names
}

// CreateBody returns the create index request body of the definition.
func (d *Definition) CreateBody() (string, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// MappingsBody returns the put mapping request body of the definition.
func (d *Definition) MappingsBody() string {
	return string(d.Mappings)
}

// CanFilter reports whether field may be used as a search filter.
func (d *Definition) CanFilter(field string) bool {
	return contains(d.Meta.FilterFields, field)
}

// CanAggregate reports whether field may be used in an aggregation.
func (d *Definition) CanAggregate(field string) bool {
	return contains(d.Meta.AggregatableFields, field)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
