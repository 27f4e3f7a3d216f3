package bip39

import "fmt"

// Registry holds a set of wordlists and the word → languages lookup used for
// language detection. It is immutable once built and safe for concurrent use.
type Registry struct {
	order  []Language
	lists  map[Language]*Wordlist
	lookup map[string][]Language
}

// NewRegistry indexes lists. The argument order is the registry order, which
// decides the fallback when detection stays ambiguous.
func NewRegistry(lists ...*Wordlist) (*Registry, error) {
	r := &Registry{
		order:  make([]Language, 0, len(lists)),
		lists:  make(map[Language]*Wordlist, len(lists)),
		lookup: make(map[string][]Language, len(lists)*WordlistSize),
	}
	for _, wl := range lists {
		if wl == nil {
			return nil, fmt.Errorf("%w: nil wordlist", ErrInvalidWordlist)
		}
		if _, dup := r.lists[wl.lang]; dup {
			return nil, fmt.Errorf("%w: %s registered twice", ErrInvalidWordlist, wl.lang)
		}
		r.order = append(r.order, wl.lang)
		r.lists[wl.lang] = wl
		for _, w := range wl.words {
			r.lookup[w] = append(r.lookup[w], wl.lang)
		}
	}
	return r, nil
}

// With returns a new registry holding r's lists followed by extra.
func (r *Registry) With(extra ...*Wordlist) (*Registry, error) {
	lists := make([]*Wordlist, 0, len(r.order)+len(extra))
	for _, l := range r.order {
		lists = append(lists, r.lists[l])
	}
	return NewRegistry(append(lists, extra...)...)
}

// Wordlist returns the list for lang.
func (r *Registry) Wordlist(lang Language) (*Wordlist, error) {
	wl, ok := r.lists[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	return wl, nil
}

// Supported returns the registered languages in registry order.
func (r *Registry) Supported() []Language {
	out := make([]Language, len(r.order))
	copy(out, r.order)
	return out
}

// Candidates returns the languages whose wordlist contains word, in registry
// order. The word must already be normalized.
func (r *Registry) Candidates(word string) []Language {
	langs := r.lookup[word]
	out := make([]Language, len(langs))
	copy(out, langs)
	return out
}
