// Package random provides seed generation for the practice number source.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// SeedOrNew returns configured when it is non-zero, a fresh seed otherwise.
func SeedOrNew(configured uint64) (uint64, error) {
	if configured != 0 {
		return configured, nil
	}
	return NewSeed()
}
