package update

import (
	"net/http"

	"github.com/appbaseio/search-api/middleware"
	"github.com/appbaseio/search-api/middleware/order"
	"github.com/appbaseio/search-api/middleware/ratelimiter"
	"github.com/appbaseio/search-api/plugins/auth"
)

type chain struct {
	order.Fifo
}

func (c *chain) Wrap(h http.HandlerFunc) http.HandlerFunc {
	return c.Adapt(h, list()...)
}

func list() []middleware.Middleware {
	return []middleware.Middleware{
		auth.Authenticate(),
		ratelimiter.Limit(),
	}
}
