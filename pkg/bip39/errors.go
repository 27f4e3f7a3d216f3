package bip39

import (
	"errors"
	"fmt"
)

// Validation errors. Callers distinguish them with errors.Is.
var (
	ErrInvalidEntropyLength  = errors.New("invalid entropy length")
	ErrInvalidMnemonicLength = errors.New("invalid mnemonic length")
	ErrUnknownLanguage       = errors.New("unknown language")
	ErrAmbiguousLanguage     = errors.New("ambiguous language")
	ErrUnknownWord           = errors.New("unknown word")
	ErrChecksumMismatch      = errors.New("checksum mismatch")
	ErrInvalidWordlist       = errors.New("invalid wordlist")
)

// WordError reports a word that is not in the wordlist it was checked
// against. Language is empty when the word is absent from every wordlist.
type WordError struct {
	Word     string
	Position int
	Language Language
}

func (e *WordError) Error() string {
	if e.Language == "" {
		return fmt.Sprintf("%v: word %d is not in any wordlist", ErrUnknownWord, e.Position+1)
	}
	return fmt.Sprintf("%v: word %d is not in the %s wordlist", ErrUnknownWord, e.Position+1, e.Language)
}

func (e *WordError) Unwrap() error {
	return ErrUnknownWord
}
