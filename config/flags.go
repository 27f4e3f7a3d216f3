package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// Flags holds parsed global command-line flags. Everything after the first
// positional argument (the command) is left in Args.
type Flags struct {
	// Commands
	Help    bool
	Version bool

	// Core
	ConfigDir string
	Config    string

	// Mnemonic
	Language    string
	EntropyBits int
	Strict      bool

	// Wordlists
	WordlistDir string

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Command and its arguments
	Args []string

	// Explicitly-set bool flags (for true/false overrides).
	SetStrict  bool
	SetLogJSON bool
}

// ParseFlags parses the global flags in args (without the program name).
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("klingnet-mnemonic", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Commands
	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")

	// Core
	fs.StringVar(&f.ConfigDir, "configdir", "", "Config directory path")
	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")

	// Mnemonic
	fs.StringVar(&f.Language, "language", "", "Wordlist language")
	fs.StringVar(&f.Language, "l", "", "Wordlist language (shorthand)")
	fs.IntVar(&f.EntropyBits, "bits", 0, "Entropy size in bits for generate")
	fs.BoolVar(&f.Strict, "strict", false, "Reject mnemonics valid in several languages")

	// Wordlists
	fs.StringVar(&f.WordlistDir, "wordlist-dir", "", "Directory of extra <language>.txt wordlists")

	// Logging
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			f.Help = true
			return f, nil
		}
		return nil, err
	}

	f.SetStrict = isFlagSet(fs, "strict")
	f.SetLogJSON = isFlagSet(fs, "log-json")
	f.Args = fs.Args()
	return f, nil
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	// Mnemonic
	if f.Language != "" {
		cfg.Mnemonic.Language = f.Language
	}
	if f.EntropyBits != 0 {
		cfg.Mnemonic.EntropyBits = f.EntropyBits
	}
	if f.SetStrict {
		cfg.Mnemonic.StrictDetect = f.Strict
	}

	// Wordlists
	if f.WordlistDir != "" {
		cfg.Wordlists.Dir = f.WordlistDir
	}

	// Logging
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// isFlagSet checks if a flag was explicitly set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// PrintUsage writes the global help text to w.
func PrintUsage(w io.Writer) {
	usage := `Klingnet Mnemonic - BIP-39 mnemonic phrase tool

Usage:
  klingnet-mnemonic [global options] <command> [arguments]

Commands:
  generate [--bits N]          Generate a new mnemonic from fresh entropy
  entropy [--bits N]           Print fresh random entropy as hex
  encode <hex>                 Encode hex entropy as a mnemonic
  decode [mnemonic]            Decode a mnemonic back to hex entropy
  validate [mnemonic]          Check a mnemonic's words and checksum
  detect [--strict] [mnemonic] Report which wordlist a mnemonic uses
  normalize [mnemonic]         Print the canonical form of a mnemonic
  seed [mnemonic]              Derive the 64-byte seed
       --passphrase P          Passphrase (visible in process lists)
       --ask-passphrase        Prompt for the passphrase instead
  wordlists                    List loaded wordlists with fingerprints
  init-config                  Write a default config file

  Mnemonics are read from standard input when not given as arguments.
  decode and validate detect the language unless --language is given.

Global Options:
  --help, -h        Show this help message
  --version         Show version information
  --configdir       Config directory (default: ~/.klingnet-mnemonic)
  --config, -c      Config file path (default: <configdir>/mnemonic.conf)
  --language, -l    Wordlist for generate and encode (default: english)
  --bits            Entropy bits for generate (default: 256)
  --strict          Fail on mnemonics valid in more than one language
  --wordlist-dir    Directory of extra <language>.txt wordlists

Wordlists:
  chinese_simplified, chinese_traditional, czech, english, french, italian,
  japanese, korean and spanish are built in. portuguese, russian and turkish
  must be supplied as portuguese.txt, russian.txt or turkish.txt (the
  official BIP-39 lists, one word per line) in --wordlist-dir.

Logging Options:
  --log-level       Log level: debug, info, warn, error (default: warn)
  --log-file        Log file path (default: stderr)
  --log-json        Output logs as JSON

Examples:
  # 12-word Japanese mnemonic
  klingnet-mnemonic --language=japanese --bits=128 generate

  # Round trip
  klingnet-mnemonic decode "abandon abandon ... about"
  klingnet-mnemonic encode 00000000000000000000000000000000
`
	fmt.Fprint(w, usage)
}

// Load resolves configuration with the following precedence:
// 1. Default values
// 2. Config file (missing file is not an error)
// 3. Command-line flags
func Load(args []string) (*Config, *Flags, error) {
	flags, err := ParseFlags(args)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing flags: %w", err)
	}

	cfg := Default()
	if flags.ConfigDir != "" {
		cfg.ConfigDir = flags.ConfigDir
	}

	configPath := flags.Config
	if configPath == "" {
		configPath = cfg.ConfigFile()
	}

	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, nil, fmt.Errorf("applying config file: %w", err)
	}

	ApplyFlags(cfg, flags)
	if err := Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, flags, nil
}

// EnsureConfigDir creates the config directory and a default config file
// if they do not exist yet.
func EnsureConfigDir(cfg *Config) error {
	if err := os.MkdirAll(cfg.ConfigDir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return WriteDefaultConfig(cfg.ConfigFile())
}
