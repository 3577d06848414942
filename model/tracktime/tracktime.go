package tracktime

import (
	"context"
	"net/http"
	"time"

	"github.com/appbaseio/search-api/errors"
)

type contextKey string

// ctxKey is a key against which the start time of the request is stored.
const ctxKey = contextKey("time_tracker")

// NewContext returns a new context carrying the current time.
func NewContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey, time.Now())
}

// FromContext retrieves the request start time stored in the context.
func FromContext(ctx context.Context) (*time.Time, error) {
	ctxStart := ctx.Value(ctxKey)
	if ctxStart == nil {
		return nil, errors.NewNotFoundInContextError("TimeTracker")
	}
	start, ok := ctxStart.(time.Time)
	if !ok {
		return nil, errors.NewInvalidCastError("ctxStart", "time.Time")
	}
	return &start, nil
}

// Track stores the starting time of the request in its context.
func Track(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		req = req.WithContext(NewContext(req.Context()))
		h.ServeHTTP(w, req)
	})
}
