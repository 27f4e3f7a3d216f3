package bip39

import (
	"crypto/rand"
	"fmt"
	"io"
)

// DefaultEntropySize is the entropy size, in bytes, used when none is given
// (256 bits, a 24-word mnemonic).
const DefaultEntropySize = 32

// GenerateEntropy returns size bytes from the system's secure random source.
// A size of 0 means DefaultEntropySize.
func GenerateEntropy(size int) ([]byte, error) {
	return readEntropy(rand.Reader, size)
}

func readEntropy(r io.Reader, size int) ([]byte, error) {
	if size == 0 {
		size = DefaultEntropySize
	}
	if err := validateEntropySize(size); err != nil {
		return nil, err
	}
	entropy := make([]byte, size)
	if _, err := io.ReadFull(r, entropy); err != nil {
		return nil, fmt.Errorf("read entropy: %w", err)
	}
	return entropy, nil
}
