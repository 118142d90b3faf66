package utils

import "github.com/google/uuid"

// NewID returns a fresh record identifier.
func NewID() string { return uuid.NewString() }

// ValidID reports whether s is a well-formed record identifier.
// Malformed ids are rejected before any repository call.
func ValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
