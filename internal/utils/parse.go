package utils

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sellora/marketplace/internal/errors"
)

// ParseID reads a UUID path value from the request.
func ParseID(r *http.Request, key string) (uuid.UUID, error) {
	raw := r.PathValue(key)

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.BadRequestError(fmt.Sprintf("Invalid %s format", key)).WithError(err)
	}

	return id, nil
}
