package bip39

import (
	"golang.org/x/text/unicode/norm"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

const (
	seedIterations = 2048
	seedSaltPrefix = "mnemonic"
)

// NewSeed stretches a mnemonic and passphrase into a 64-byte seed with
// PBKDF2-HMAC-SHA512 (2048 rounds, salt "mnemonic"+passphrase). The phrase is
// normalized first and both inputs are NFKD-normalized.
//
// NewSeed does not check the mnemonic. Codec.MnemonicToSeed does.
func NewSeed(mnemonic, passphrase string) []byte {
	password := norm.NFKD.String(NormalizeMnemonic(mnemonic))
	salt := norm.NFKD.String(seedSaltPrefix + passphrase)
	return crypto.StretchKey([]byte(password), []byte(salt), seedIterations, SeedSize)
}
