package bip39

import "fmt"

// DetectLanguage picks the wordlist a sequence of normalized words belongs to.
//
// A word found in only one wordlist settles the question at once, as does a
// running intersection of candidate sets that narrows to one language. A word
// found in no wordlist fails with a *WordError. When every word is shared by
// several languages the first remaining candidate in registry order is
// returned; this is a best guess, not a proof. Use DetectLanguageStrict to
// reject such phrases instead.
func (r *Registry) DetectLanguage(words []string) (Language, error) {
	lang, candidates, err := r.detect(words)
	if err != nil {
		return "", err
	}
	if lang != "" {
		return lang, nil
	}
	return candidates[0], nil
}

// DetectLanguageStrict is DetectLanguage without the ambiguous fallback: it
// fails with ErrAmbiguousLanguage when more than one language remains.
func (r *Registry) DetectLanguageStrict(words []string) (Language, error) {
	lang, candidates, err := r.detect(words)
	if err != nil {
		return "", err
	}
	if lang != "" {
		return lang, nil
	}
	return "", fmt.Errorf("%w: candidates %v", ErrAmbiguousLanguage, candidates)
}

// detect returns either a settled language or the ambiguous candidate set.
func (r *Registry) detect(words []string) (Language, []Language, error) {
	if len(words) == 0 {
		return "", nil, fmt.Errorf("%w: no words", ErrUnknownLanguage)
	}

	var candidates []Language
	for i, word := range words {
		langs := r.lookup[word]
		switch len(langs) {
		case 0:
			return "", nil, &WordError{Word: word, Position: i}
		case 1:
			return langs[0], nil, nil
		}

		if candidates == nil {
			candidates = langs
			continue
		}
		candidates = intersect(candidates, langs)
		switch len(candidates) {
		case 0:
			return "", nil, fmt.Errorf("%w: word %d shares no wordlist with the words before it", ErrUnknownLanguage, i+1)
		case 1:
			return candidates[0], nil, nil
		}
	}
	return "", candidates, nil
}

// intersect keeps the elements of a that are also in b, preserving a's order.
// It never modifies a or b.
func intersect(a, b []Language) []Language {
	out := make([]Language, 0, min(len(a), len(b)))
	for _, x := range a {
		for _, y := range b {
			if x == y {
				out = append(out, x)
				break
			}
		}
	}
	return out
}
