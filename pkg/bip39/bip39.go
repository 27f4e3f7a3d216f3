// Package bip39 implements BIP-39 mnemonic phrases: encoding entropy as
// words from a 2048-word list with an appended SHA-256 checksum, decoding
// and validating such phrases (detecting their language when it is not
// given), and deriving a 64-byte seed from a phrase and passphrase.
//
// The package-level functions use the built-in wordlists. Build a Registry
// and a Codec to use other lists.
package bip39

// EntropyToMnemonic encodes entropy with the built-in wordlist for lang.
func EntropyToMnemonic(entropy []byte, lang Language) (string, error) {
	return getDefaultCodec().EntropyToMnemonic(entropy, lang)
}

// GenerateMnemonic encodes DefaultEntropySize bytes of fresh entropy.
func GenerateMnemonic(lang Language) (string, error) {
	return getDefaultCodec().GenerateMnemonic(lang, DefaultEntropySize)
}

// MnemonicToEntropy decodes and checksums a mnemonic in any built-in
// language.
func MnemonicToEntropy(mnemonic string) ([]byte, error) {
	return getDefaultCodec().MnemonicToEntropy(mnemonic)
}

// ValidateMnemonic reports whether mnemonic is valid in some built-in
// language.
func ValidateMnemonic(mnemonic string) bool {
	return getDefaultCodec().Validate(mnemonic)
}

// MnemonicToSeed validates mnemonic and derives its 64-byte seed.
func MnemonicToSeed(mnemonic, passphrase string) ([]byte, error) {
	return getDefaultCodec().MnemonicToSeed(mnemonic, passphrase)
}
