package update

import (
	"context"
	"encoding/json"
)

type updateService interface {
	// indexDocument stores document under id and returns the engine's
	// result, "created" or "updated".
	indexDocument(ctx context.Context, index, id string, document json.RawMessage) (string, error)
	deleteDocument(ctx context.Context, index, id string) error
}
