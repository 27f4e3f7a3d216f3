// Package crypto wraps the hash primitives used by the mnemonic codec.
package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/pbkdf2"
)

// DigestSize is the length of a digest in bytes.
const DigestSize = 32

// Digest is a 256-bit hash value.
type Digest [DigestSize]byte

// String returns the hex-encoded digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero returns true if the digest is all zeros.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// Hash computes a BLAKE3-256 hash of the input data.
// Used for fingerprints, never for checksums.
func Hash(data []byte) Digest {
	return blake3.Sum256(data)
}

// SHA256 computes the SHA-256 digest used for mnemonic checksums.
func SHA256(data []byte) Digest {
	return sha256.Sum256(data)
}

// StretchKey runs PBKDF2 with HMAC-SHA512 over password and salt.
func StretchKey(password, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, sha512.New)
}
