// Package utils provides general-purpose helper utilities
// used across different parts of the client.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces client-side identifiers, primarily the temporary ids
// assigned to optimistic messages before the server confirms them.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 string so that locally generated
// message ids sort by creation time. Falls back to a random UUIDv4 when the
// system clock cannot produce a v7 value.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
