// Package config handles configuration for the mnemonic command-line tool.
//
// Settings are resolved in order of increasing precedence: built-in
// defaults, the config file, then command-line flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Config holds the tool's runtime configuration.
type Config struct {
	// Directory holding the config file and extra wordlists.
	ConfigDir string

	// Mnemonic defaults
	Mnemonic MnemonicConfig

	// Extra wordlists
	Wordlists WordlistConfig

	// Logging
	Log LogConfig
}

// MnemonicConfig holds defaults for generating and decoding mnemonics.
type MnemonicConfig struct {
	Language     string `conf:"mnemonic.language"`      // Language for generate/encode; detection ignores it
	EntropyBits  int    `conf:"mnemonic.entropy_bits"`  // Entropy size for generate
	StrictDetect bool   `conf:"mnemonic.strict_detect"` // Reject phrases valid in several languages
}

// WordlistConfig points at plain-text wordlists loaded on top of the
// built-in ones. Files are named <language>.txt, one word per line.
type WordlistConfig struct {
	Dir string `conf:"wordlists.dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// DefaultConfigDir returns the platform-specific default config directory.
//
//	Linux:   ~/.klingnet-mnemonic
//	macOS:   ~/Library/Application Support/KlingnetMnemonic
//	Windows: %APPDATA%\KlingnetMnemonic
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".klingnet-mnemonic"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "KlingnetMnemonic")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "KlingnetMnemonic")
		}
		return filepath.Join(home, "AppData", "Roaming", "KlingnetMnemonic")
	default:
		return filepath.Join(home, ".klingnet-mnemonic")
	}
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.ConfigDir, "mnemonic.conf")
}

// WordlistDir returns the directory scanned for extra wordlists. An empty
// string disables loading.
func (c *Config) WordlistDir() string {
	return c.Wordlists.Dir
}
