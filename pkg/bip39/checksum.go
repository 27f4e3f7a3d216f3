package bip39

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
)

// MaxEntropySize is the largest entropy, in bytes, whose checksum still fits
// in one SHA-256 digest (one checksum bit per 32 entropy bits).
const MaxEntropySize = crypto.DigestSize * 8 * 32 / 8

// ChecksumBits returns the number of checksum bits appended to size bytes of
// entropy.
func ChecksumBits(size int) int {
	return size * 8 / 32
}

func validateEntropySize(size int) error {
	if size <= 0 || size%4 != 0 || size > MaxEntropySize {
		return fmt.Errorf("%w: %d bytes (must be a positive multiple of 4, at most %d)",
			ErrInvalidEntropyLength, size, MaxEntropySize)
	}
	return nil
}

// ExtendEntropy returns entropy followed by its checksum: the top
// ChecksumBits(len(entropy)) bits of SHA-256(entropy). The unused low bits of
// the final byte are zero. entropy is not modified.
func ExtendEntropy(entropy []byte) ([]byte, error) {
	if err := validateEntropySize(len(entropy)); err != nil {
		return nil, err
	}

	cksumBits := ChecksumBits(len(entropy))
	digest := crypto.SHA256(entropy)

	out := make([]byte, len(entropy)+(cksumBits+7)/8)
	n := copy(out, entropy)
	copy(out[n:], digest[:])
	if rem := cksumBits % 8; rem != 0 {
		out[len(out)-1] &= byte(0xff << (8 - rem))
	}
	return out, nil
}
