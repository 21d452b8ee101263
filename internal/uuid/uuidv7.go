// Package uuid issues the identifiers used as primary keys. UUIDv7 is
// time-ordered, so freshly created rows cluster together in the index.
package uuid

import googleuuid "github.com/google/uuid"

// New returns a UUIDv7 string, falling back to a random UUIDv4 when the
// system entropy source fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid reports whether s parses as a UUID in any accepted format.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
