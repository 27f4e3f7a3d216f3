package config

import (
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/bip39"
)

// Entropy size limits in bits. The upper bound matches bip39.MaxEntropySize.
const (
	MinEntropyBits = 32
	MaxEntropyBits = bip39.MaxEntropySize * 8
)

// Validate checks runtime config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	lang, err := bip39.ParseLanguage(cfg.Mnemonic.Language)
	if err != nil {
		return fmt.Errorf("mnemonic.language: %w", err)
	}
	cfg.Mnemonic.Language = string(lang)

	bits := cfg.Mnemonic.EntropyBits
	if bits < MinEntropyBits || bits > MaxEntropyBits || bits%32 != 0 {
		return fmt.Errorf("mnemonic.entropy_bits must be a multiple of 32 in [%d, %d], got %d",
			MinEntropyBits, MaxEntropyBits, bits)
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", cfg.Log.Level)
	}

	return nil
}

// EntropyBytes returns the configured entropy size in bytes.
func (c *Config) EntropyBytes() int {
	return c.Mnemonic.EntropyBits / 8
}
