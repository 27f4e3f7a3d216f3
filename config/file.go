package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadFile loads tool configuration from a .conf file.
// Format: key = value (one per line, # for comments)
// A missing file yields an empty set of values.
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}
		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", lineNum)
		}

		values[key] = value
	}

	return values, scanner.Err()
}

func unquote(value string) string {
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

// setConfigValue sets a config value by key. Unknown keys are ignored so
// that newer config files keep working with older binaries.
func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	// Mnemonic
	case "mnemonic.language", "language":
		cfg.Mnemonic.Language = value
	case "mnemonic.entropy_bits", "bits":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Mnemonic.EntropyBits = n
	case "mnemonic.strict_detect":
		cfg.Mnemonic.StrictDetect = parseBool(value)

	// Wordlists
	case "wordlists.dir":
		cfg.Wordlists.Dir = value

	// Logging
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)

	default:
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// WriteDefaultConfig writes a default configuration file. An existing file
// is left alone.
func WriteDefaultConfig(path string) error {
	content := `# Klingnet Mnemonic Configuration

# ============================================================================
# Mnemonic
# ============================================================================

# Wordlist used by generate and encode. Decoding detects the language
# from the words themselves.
mnemonic.language = english

# Entropy size for generate: a multiple of 32 between 32 and 8192.
# 128 bits gives 12 words, 256 bits gives 24 words.
mnemonic.entropy_bits = 256

# Reject phrases that are valid in more than one language instead of
# picking the first candidate.
# mnemonic.strict_detect = false

# ============================================================================
# Wordlists
# ============================================================================

# Directory of extra wordlists named <language>.txt, one word per line.
# Each list must hold exactly 2048 distinct words. portuguese, russian and
# turkish are not built in and only work once their list is placed here.
# wordlists.dir = ~/.klingnet-mnemonic/wordlists

# ============================================================================
# Logging
# ============================================================================

log.level = warn
# log.file =
log.json = false
`
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
