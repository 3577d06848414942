package requestid

import (
	"context"

	"github.com/appbaseio/search-api/errors"
	"github.com/google/uuid"
)

type contextKey string

// ctxKey is a key against which request id will get stored in the context.
const ctxKey = contextKey("requestid")

// Header is the response header carrying the request id.
const Header = "X-Request-ID"

// NewContext returns a new context with a fresh request id.
func NewContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey, uuid.New().String())
}

// FromContext retrieves the request id stored against the requestid.ctxKey from the context.
func FromContext(ctx context.Context) (string, error) {
	ctxRequestID := ctx.Value(ctxKey)
	if ctxRequestID == nil {
		return "", errors.NewNotFoundInContextError("requestid")
	}
	requestID, ok := ctxRequestID.(string)
	if !ok {
		return "", errors.NewInvalidCastError("ctxRequestID", "requestid")
	}
	return requestID, nil
}
