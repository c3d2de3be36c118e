// Package id provides UUIDv7 identifiers for edit sessions.
// Backend records keep their own integer keys; only engine-owned state uses these.
package id

import (
	"github.com/google/uuid"
)

// ID identifies an engine-owned object such as an edit session.
type ID = uuid.UUID

// New generates a new UUIDv7 (time-ordered UUID).
func New() ID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// Parse converts string to ID with validation.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// IsNil checks if ID is zero-value.
func IsNil(id ID) bool {
	return id == uuid.Nil
}
