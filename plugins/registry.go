package plugins

import (
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const logTag = "[registry]"

var (
	mu sync.Mutex
	// plugins holds the registered plugins in registration order. Routes
	// are added to the router in that order, so plugins with more specific
	// routes must be registered first.
	plugins []Plugin
)

// Plugin is a type that holds information about the plugin.
type Plugin interface {
	// Name returns the name of the plugin. Name of the plugin must be
	// unique as it is used to identify a plugin in the registry.
	Name() string

	// InitFunc returns the plugin's setup function that is executed
	// before the plugin routes are loaded in the router.
	InitFunc() error

	// Routes returns the http routes that a plugin handles or is
	// associated with.
	Routes() []Route
}

// RegisterPlugin plugs in plugin. All plugins must have a name:
// preferably lowercase and one word. The name of the plugin must
// be unique.
func RegisterPlugin(p Plugin) {
	mu.Lock()
	defer mu.Unlock()
	name := p.Name()
	if name == "" {
		panic("plugin must have a name.")
	}
	for _, registered := range plugins {
		if registered.Name() == name {
			panic("plugin named " + name + " is already registered.")
		}
	}
	plugins = append(plugins, p)
}

// LoadPlugin executes the plugin's initFunc to ensure it makes all the
// initializations before the plugin is functional and then registers
// the routes associated with the plugin to the router.
func LoadPlugin(router *mux.Router, p Plugin) error {
	log.Println(logTag, ": Initializing plugin:", p.Name())
	if err := p.InitFunc(); err != nil {
		return err
	}
	return AddRoutes(router, p.Routes())
}

// AddRoutes registers routes to the router.
func AddRoutes(router *mux.Router, routes []Route) error {
	for _, r := range routes {
		err := router.Methods(r.Methods...).
			Name(r.Name).
			Path(r.Path).
			HandlerFunc(r.HandlerFunc).
			GetError()
		if err != nil {
			return err
		}
	}
	return nil
}

// LoadPlugins loads every registered plugin, in registration order.
func LoadPlugins(router *mux.Router) error {
	for _, p := range ListPlugins() {
		if err := LoadPlugin(router, p); err != nil {
			return err
		}
	}
	return nil
}

// ListPluginsStr returns a string listing the registered plugins.
func ListPluginsStr() string {
	str := "Registered plugins:\n"
	pl := ListPlugins()
	for i := 0; i < len(pl); i++ {
		str += "\t" + strconv.Itoa(i+1) + ". " + pl[i].Name() + "\n"
	}
	return str
}

// ListPlugins returns the list of plugins that are currently registered.
func ListPlugins() []Plugin {
	mu.Lock()
	defer mu.Unlock()
	list := make([]Plugin, len(plugins))
	copy(list, plugins)
	return list
}
