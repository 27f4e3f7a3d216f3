package bip39

import (
	"fmt"
	"strings"
)

// Language names a wordlist.
type Language string

const (
	ChineseSimplified  Language = "chinese_simplified"
	ChineseTraditional Language = "chinese_traditional"
	Czech              Language = "czech"
	English            Language = "english"
	French             Language = "french"
	Italian            Language = "italian"
	Japanese           Language = "japanese"
	Korean             Language = "korean"
	Portuguese         Language = "portuguese"
	Russian            Language = "russian"
	Spanish            Language = "spanish"
	Turkish            Language = "turkish"
)

// ideographicSpace separates Japanese mnemonic words.
const ideographicSpace = "\u3000"

var knownLanguages = []Language{
	ChineseSimplified,
	ChineseTraditional,
	Czech,
	English,
	French,
	Italian,
	Japanese,
	Korean,
	Portuguese,
	Russian,
	Spanish,
	Turkish,
}

// KnownLanguages returns every language with a published BIP-39 wordlist,
// in alphabetical order.
func KnownLanguages() []Language {
	out := make([]Language, len(knownLanguages))
	copy(out, knownLanguages)
	return out
}

// ParseLanguage maps a user-supplied name ("English", "chinese-simplified")
// to a known Language.
func ParseLanguage(s string) (Language, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "-", "_")
	for _, l := range knownLanguages {
		if string(l) == name {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

// Delimiter returns the separator placed between words of a mnemonic.
func (l Language) Delimiter() string {
	if l == Japanese {
		return ideographicSpace
	}
	return " "
}

func (l Language) String() string {
	return string(l)
}
