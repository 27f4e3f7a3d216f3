package bip39

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/bitpack"
)

// maxWords is the longest mnemonic the codec accepts (MaxEntropySize bytes).
const maxWords = MaxEntropySize * 3 / 4

// Codec converts between entropy and mnemonics over a Registry.
// A Codec is safe for concurrent use.
type Codec struct {
	registry *Registry
	rand     io.Reader
	log      zerolog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithRandom sets the entropy source used by GenerateMnemonic.
func WithRandom(r io.Reader) Option {
	return func(c *Codec) { c.rand = r }
}

// WithLogger sets the logger. Only sizes, languages and error kinds are
// logged, never words, entropy or seeds.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Codec) { c.log = l }
}

// NewCodec returns a codec backed by reg.
func NewCodec(reg *Registry, opts ...Option) *Codec {
	c := &Codec{
		registry: reg,
		rand:     rand.Reader,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the codec's wordlists.
func (c *Codec) Registry() *Registry {
	return c.registry
}

// EntropyToMnemonic encodes entropy as words of lang joined by the
// language's delimiter.
func (c *Codec) EntropyToMnemonic(entropy []byte, lang Language) (string, error) {
	wl, err := c.registry.Wordlist(lang)
	if err != nil {
		return "", err
	}
	extended, err := ExtendEntropy(entropy)
	if err != nil {
		return "", err
	}

	words := make([]string, 0, len(entropy)*3/4)
	for idx := range bitpack.Values(extended, bitsPerWord) {
		words = append(words, wl.Word(idx))
	}

	c.log.Debug().
		Str("language", string(lang)).
		Int("entropy_bytes", len(entropy)).
		Int("words", len(words)).
		Msg("Encoded mnemonic")
	return strings.Join(words, wl.Delimiter()), nil
}

// GenerateMnemonic encodes size bytes of fresh entropy (DefaultEntropySize
// when size is 0).
func (c *Codec) GenerateMnemonic(lang Language, size int) (string, error) {
	entropy, err := readEntropy(c.rand, size)
	if err != nil {
		return "", err
	}
	defer clear(entropy)
	return c.EntropyToMnemonic(entropy, lang)
}

// MnemonicToEntropy decodes a mnemonic whose language is detected from its
// words, verifying the checksum.
func (c *Codec) MnemonicToEntropy(mnemonic string) ([]byte, error) {
	entropy, _, err := c.decode(mnemonic, "")
	return entropy, err
}

// MnemonicToEntropyIn decodes a mnemonic written in lang.
func (c *Codec) MnemonicToEntropyIn(mnemonic string, lang Language) ([]byte, error) {
	if lang == "" {
		return nil, fmt.Errorf("%w: empty language", ErrUnknownLanguage)
	}
	entropy, _, err := c.decode(mnemonic, lang)
	return entropy, err
}

// Decode is MnemonicToEntropy that also reports the language used.
func (c *Codec) Decode(mnemonic string) ([]byte, Language, error) {
	return c.decode(mnemonic, "")
}

// Validate reports whether mnemonic decodes cleanly.
func (c *Codec) Validate(mnemonic string) bool {
	_, _, err := c.decode(mnemonic, "")
	return err == nil
}

// ValidateIn reports whether mnemonic decodes cleanly as lang.
func (c *Codec) ValidateIn(mnemonic string, lang Language) bool {
	_, err := c.MnemonicToEntropyIn(mnemonic, lang)
	return err == nil
}

// MnemonicToSeed validates mnemonic and derives its seed. An invalid
// mnemonic fails before any key stretching happens.
func (c *Codec) MnemonicToSeed(mnemonic, passphrase string) ([]byte, error) {
	entropy, _, err := c.decode(mnemonic, "")
	if err != nil {
		return nil, err
	}
	clear(entropy)

	start := time.Now()
	seed := NewSeed(mnemonic, passphrase)
	c.log.Debug().Dur("duration", time.Since(start)).Msg("Derived seed")
	return seed, nil
}

// decode runs the full validation pipeline. An empty lang means detect.
func (c *Codec) decode(mnemonic string, lang Language) ([]byte, Language, error) {
	entropy, lang, err := c.decodeWords(normalizedWords(mnemonic), lang)
	if err != nil {
		c.log.Debug().Err(err).Msg("Mnemonic rejected")
		return nil, lang, err
	}
	return entropy, lang, nil
}

func (c *Codec) decodeWords(words []string, lang Language) ([]byte, Language, error) {
	if n := len(words); n == 0 || n%3 != 0 || n > maxWords {
		return nil, lang, fmt.Errorf("%w: %d words (must be a positive multiple of 3, at most %d)",
			ErrInvalidMnemonicLength, n, maxWords)
	}

	if lang == "" {
		detected, err := c.registry.DetectLanguage(words)
		if err != nil {
			return nil, "", err
		}
		lang = detected
	}
	wl, err := c.registry.Wordlist(lang)
	if err != nil {
		return nil, lang, err
	}

	indices := make([]uint32, len(words))
	for i, w := range words {
		idx, ok := wl.Index(w)
		if !ok {
			return nil, lang, &WordError{Word: w, Position: i, Language: lang}
		}
		indices[i] = idx
	}

	packed, err := bitpack.Encode(indices, bitsPerWord)
	if err != nil {
		return nil, lang, err
	}
	defer clear(packed)

	entropyLen := len(words) * 4 / 3
	entropy := make([]byte, entropyLen)
	copy(entropy, packed)

	expected, err := ExtendEntropy(entropy)
	if err != nil {
		clear(entropy)
		return nil, lang, err
	}
	defer clear(expected)
	if !bytes.Equal(expected, packed) {
		clear(entropy)
		return nil, lang, ErrChecksumMismatch
	}
	return entropy, lang, nil
}
