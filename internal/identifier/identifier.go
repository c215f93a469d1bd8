// Package identifier produces the opaque unique tokens that key stored objects.
package identifier

import "github.com/google/uuid"

// Generator produces a globally unique opaque token per call. Tokens are
// never derived from file content; two identical uploads get distinct tokens.
type Generator interface {
	Generate() string
}

// UUID implements Generator with random (v4) UUIDs.
type UUID struct{}

// NewUUID creates a UUID-backed Generator.
func NewUUID() UUID {
	return UUID{}
}

// Generate returns a fresh UUIDv4 string.
func (UUID) Generate() string {
	return uuid.NewString()
}
