package bip39

import (
	"fmt"
	"sync"

	"github.com/tyler-smith/go-bip39/wordlists"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultCodec    *Codec
)

// builtinWordlists returns the lists shipped with go-bip39, in alphabetical
// language order. Portuguese, Russian and Turkish are not among them; load
// those with ParseWordlist and add them through Registry.With.
func builtinWordlists() map[Language][]string {
	return map[Language][]string{
		ChineseSimplified:  wordlists.ChineseSimplified,
		ChineseTraditional: wordlists.ChineseTraditional,
		Czech:              wordlists.Czech,
		English:            wordlists.English,
		French:             wordlists.French,
		Italian:            wordlists.Italian,
		Japanese:           wordlists.Japanese,
		Korean:             wordlists.Korean,
		Spanish:            wordlists.Spanish,
	}
}

// BuiltinRegistry builds a fresh registry from the built-in wordlists.
func BuiltinRegistry() (*Registry, error) {
	builtin := builtinWordlists()
	lists := make([]*Wordlist, 0, len(builtin))
	for _, lang := range knownLanguages {
		words, ok := builtin[lang]
		if !ok {
			continue
		}
		wl, err := NewWordlist(lang, words)
		if err != nil {
			return nil, fmt.Errorf("built-in %s wordlist: %w", lang, err)
		}
		lists = append(lists, wl)
	}
	return NewRegistry(lists...)
}

// DefaultRegistry returns the shared registry of built-in wordlists. It is
// built on first use.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		reg, err := BuiltinRegistry()
		if err != nil {
			panic(err)
		}
		defaultRegistry = reg
		defaultCodec = NewCodec(reg)
	})
	return defaultRegistry
}

func getDefaultCodec() *Codec {
	DefaultRegistry()
	return defaultCodec
}
