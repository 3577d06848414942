package credential

import (
	"context"

	"github.com/appbaseio/search-api/errors"
)

type contextKey string

// ctxKey is a key against which the request credential is stored.
const ctxKey = contextKey("request_credential")

// Kind identifies how the request authenticated.
type Kind int

// Kinds
const (
	Token Kind = iota
	JWT
)

// String returns the name of the credential kind.
func (k Kind) String() string {
	switch k {
	case Token:
		return "token"
	case JWT:
		return "jwt"
	default:
		return "unknown"
	}
}

// Credential is the authenticated identity of a request.
type Credential struct {
	Kind Kind
	// Subject identifies the caller: the token label for static tokens,
	// the "sub" claim for jwts.
	Subject string
}

// NewContext returns a new context carrying credential 'c'.
func NewContext(ctx context.Context, c *Credential) context.Context {
	return context.WithValue(ctx, ctxKey, c)
}

// FromContext retrieves the credential stored in the context against credential.ctxKey.
func FromContext(ctx context.Context) (*Credential, error) {
	ctxCredential := ctx.Value(ctxKey)
	if ctxCredential == nil {
		return nil, errors.NewNotFoundInContextError("request.Credential")
	}
	reqCredential, ok := ctxCredential.(*Credential)
	if !ok {
		return nil, errors.NewInvalidCastError("ctxCredential", "*credential.Credential")
	}
	return reqCredential, nil
}
