package bip39

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
)

// WordlistSize is the number of words in every BIP-39 wordlist.
const WordlistSize = 2048

// bitsPerWord is the number of bits one word encodes.
const bitsPerWord = 11

// Wordlist is an immutable, index-addressable list of 2048 words.
// It is safe for concurrent use.
type Wordlist struct {
	lang  Language
	words []string
	index map[string]uint32
}

// NewWordlist validates words and builds the reverse index. Words are
// trimmed, lower-cased and NFKD-normalized; the result must hold exactly
// WordlistSize unique, non-empty words.
func NewWordlist(lang Language, words []string) (*Wordlist, error) {
	if lang == "" {
		return nil, fmt.Errorf("%w: empty language", ErrInvalidWordlist)
	}
	if len(words) != WordlistSize {
		return nil, fmt.Errorf("%w: %s has %d words, want %d", ErrInvalidWordlist, lang, len(words), WordlistSize)
	}

	wl := &Wordlist{
		lang:  lang,
		words: make([]string, WordlistSize),
		index: make(map[string]uint32, WordlistSize),
	}
	for i, w := range words {
		w = norm.NFKD.String(strings.ToLower(strings.TrimSpace(w)))
		if w == "" {
			return nil, fmt.Errorf("%w: %s word %d is empty", ErrInvalidWordlist, lang, i)
		}
		if prev, dup := wl.index[w]; dup {
			return nil, fmt.Errorf("%w: %s words %d and %d are identical", ErrInvalidWordlist, lang, prev, i)
		}
		wl.words[i] = w
		wl.index[w] = uint32(i)
	}
	return wl, nil
}

// ParseWordlist reads a wordlist in the plain-text format: UTF-8, one word
// per line. Blank lines are skipped.
func ParseWordlist(lang Language, r io.Reader) (*Wordlist, error) {
	words := make([]string, 0, WordlistSize)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s wordlist: %w", lang, err)
	}
	return NewWordlist(lang, words)
}

// LoadWordlistFile reads a plain-text wordlist from path.
func LoadWordlistFile(lang Language, path string) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseWordlist(lang, f)
}

// Language returns the wordlist's language.
func (w *Wordlist) Language() Language {
	return w.lang
}

// Delimiter returns the separator used between words of this language.
func (w *Wordlist) Delimiter() string {
	return w.lang.Delimiter()
}

// Word returns the word at index i. It panics if i >= WordlistSize.
func (w *Wordlist) Word(i uint32) string {
	return w.words[i]
}

// Index returns the position of word, which must already be normalized.
func (w *Wordlist) Index(word string) (uint32, bool) {
	i, ok := w.index[word]
	return i, ok
}

// Contains reports whether word is in the list.
func (w *Wordlist) Contains(word string) bool {
	_, ok := w.index[word]
	return ok
}

// Words returns a copy of the words in index order.
func (w *Wordlist) Words() []string {
	out := make([]string, len(w.words))
	copy(out, w.words)
	return out
}

// Fingerprint returns the BLAKE3 hash of the newline-joined words, so two
// copies of a list can be compared without diffing them.
func (w *Wordlist) Fingerprint() crypto.Digest {
	return crypto.Hash([]byte(strings.Join(w.words, "\n")))
}
