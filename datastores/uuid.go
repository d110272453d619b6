package datastores

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// newContactID returns a UUIDv7 encoded with [base64.RawURLEncoding],
// which keeps identifiers short and safe to use in a URL path.
func newContactID() ContactID {
	id := uuid.Must(uuid.NewV7())
	return base64.RawURLEncoding.EncodeToString(id[:])
}
