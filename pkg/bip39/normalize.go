package bip39

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeMnemonic returns the canonical form of a phrase: ideographic
// spaces become ordinary spaces, surrounding whitespace is dropped, every run
// of whitespace (spaces, tabs, newlines) collapses to one space and each word
// is lower-cased and put in NFKD form, the form wordlists are indexed in. It
// is idempotent.
func NormalizeMnemonic(mnemonic string) string {
	return strings.Join(normalizedWords(mnemonic), " ")
}

func normalizedWords(mnemonic string) []string {
	mnemonic = strings.ReplaceAll(mnemonic, ideographicSpace, " ")
	words := strings.Fields(mnemonic)
	for i, w := range words {
		words[i] = norm.NFKD.String(strings.ToLower(w))
	}
	return words
}
