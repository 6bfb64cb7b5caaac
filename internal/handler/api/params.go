// Package api contains the JSON handlers of the storefront API.
package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dukerupert/kestrel/internal/domain"
)

// pathUUID parses the named path wildcard as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("request.path", name, "must be a valid UUID")
	}
	return id, nil
}

// listResponse wraps collections so the top level of every response is an
// object.
type listResponse[T any] struct {
	Items []T `json:"items"`
}

func newList[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Items: items}
}
