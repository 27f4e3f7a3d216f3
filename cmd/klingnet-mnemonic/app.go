package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/Klingon-tech/klingnet-mnemonic/config"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/bip39"
)

var (
	// errInvalid ends the process with status 1 after the command has
	// already reported why.
	errInvalid = errors.New("invalid mnemonic")
	errUsage   = errors.New("usage")
)

// app runs one command against a codec built from the configuration.
type app struct {
	cfg   *config.Config
	codec *bip39.Codec

	language bip39.Language // used by generate and encode
	explicit bool           // --language given: decode in it instead of detecting
	strict   bool

	stdin        io.Reader
	stdout       io.Writer
	stderr       io.Writer
	readPassword func(prompt string) ([]byte, error)
}

func newApp(cfg *config.Config, flags *config.Flags) (*app, error) {
	reg, err := loadRegistry(cfg.WordlistDir())
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:          cfg,
		codec:        bip39.NewCodec(reg, bip39.WithLogger(log.Codec)),
		language:     bip39.Language(cfg.Mnemonic.Language),
		explicit:     flags.Language != "",
		strict:       cfg.Mnemonic.StrictDetect,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		readPassword: readPassword,
	}, nil
}

// loadRegistry returns the built-in wordlists plus every <language>.txt in
// dir whose language is not built in.
func loadRegistry(dir string) (*bip39.Registry, error) {
	reg := bip39.DefaultRegistry()
	if dir == "" {
		return reg, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Wordlist.Warn().Str("dir", dir).Msg("Wordlist directory does not exist")
			return reg, nil
		}
		return nil, fmt.Errorf("read wordlist dir: %w", err)
	}

	var extra []*bip39.Wordlist
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".txt" {
			continue
		}
		lang, err := bip39.ParseLanguage(strings.TrimSuffix(name, ".txt"))
		if err != nil {
			log.Wordlist.Warn().Str("file", name).Msg("Skipping wordlist for unknown language")
			continue
		}
		if _, err := reg.Wordlist(lang); err == nil {
			log.Wordlist.Warn().Str("file", name).Msg("Skipping wordlist, language is built in")
			continue
		}

		wl, err := bip39.LoadWordlistFile(lang, filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("wordlist %s: %w", name, err)
		}
		logger := log.WithLanguage(string(lang))
		logger.Info().
			Str("fingerprint", wl.Fingerprint().String()).
			Msg("Loaded wordlist")
		extra = append(extra, wl)
	}

	if len(extra) == 0 {
		return reg, nil
	}
	return reg.With(extra...)
}

func (a *app) run(cmd string, args []string) error {
	log.CLI.Debug().Str("command", cmd).Msg("Running command")

	switch cmd {
	case "generate":
		return a.cmdGenerate(args)
	case "entropy":
		return a.cmdEntropy(args)
	case "encode":
		return a.cmdEncode(args)
	case "decode":
		return a.cmdDecode(args)
	case "validate":
		return a.cmdValidate(args)
	case "detect":
		return a.cmdDetect(args)
	case "normalize":
		return a.cmdNormalize(args)
	case "seed":
		return a.cmdSeed(args)
	case "wordlists":
		return a.cmdWordlists()
	case "init-config":
		return a.cmdInitConfig()
	case "help":
		config.PrintUsage(a.stdout)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// ── Generation ──────────────────────────────────────────────────────────

func (a *app) entropyFlags(name string, args []string) (int, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	bits := fs.Int("bits", a.cfg.Mnemonic.EntropyBits, "Entropy size in bits (multiple of 32)")
	if err := fs.Parse(args); err != nil {
		return 0, err
	}
	if *bits < config.MinEntropyBits || *bits > config.MaxEntropyBits || *bits%32 != 0 {
		return 0, fmt.Errorf("--bits must be a multiple of 32 in [%d, %d], got %d",
			config.MinEntropyBits, config.MaxEntropyBits, *bits)
	}
	return *bits / 8, nil
}

func (a *app) cmdGenerate(args []string) error {
	size, err := a.entropyFlags("generate", args)
	if err != nil {
		return err
	}
	mnemonic, err := a.codec.GenerateMnemonic(a.language, size)
	if err != nil {
		return a.languageHint(err)
	}
	fmt.Fprintln(a.stdout, mnemonic)
	return nil
}

func (a *app) cmdEntropy(args []string) error {
	size, err := a.entropyFlags("entropy", args)
	if err != nil {
		return err
	}
	entropy, err := bip39.GenerateEntropy(size)
	if err != nil {
		return err
	}
	defer clear(entropy)
	fmt.Fprintln(a.stdout, hex.EncodeToString(entropy))
	return nil
}

func (a *app) cmdEncode(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: klingnet-mnemonic encode <hex entropy>", errUsage)
	}
	entropy, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(args[0]), "0x"))
	if err != nil {
		return fmt.Errorf("invalid hex entropy: %w", err)
	}
	defer clear(entropy)

	mnemonic, err := a.codec.EntropyToMnemonic(entropy, a.language)
	if err != nil {
		return a.languageHint(err)
	}
	fmt.Fprintln(a.stdout, mnemonic)
	return nil
}

// languageHint points at wordlists.dir when the configured language has no
// loaded wordlist (portuguese, russian and turkish are not built in).
func (a *app) languageHint(err error) error {
	if !errors.Is(err, bip39.ErrUnknownLanguage) {
		return err
	}
	return fmt.Errorf("%w; the %s wordlist is not built in, put %s.txt in wordlists.dir (--wordlist-dir)",
		err, a.language, a.language)
}

// ── Decoding ────────────────────────────────────────────────────────────

// readMnemonic joins args, or reads the phrase from stdin when there are
// none. A terminal gets a hidden prompt so the phrase stays off screen.
func (a *app) readMnemonic(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := a.readPassword("Mnemonic: ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	b, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("read mnemonic: %w", err)
	}
	mnemonic := strings.TrimSpace(string(b))
	if mnemonic == "" {
		return "", fmt.Errorf("%w: no mnemonic given", errUsage)
	}
	return mnemonic, nil
}

// decode picks the language the way the flags ask for: the explicit
// --language, strict detection, or lenient detection.
func (a *app) decode(mnemonic string) ([]byte, bip39.Language, error) {
	if a.explicit {
		entropy, err := a.codec.MnemonicToEntropyIn(mnemonic, a.language)
		return entropy, a.language, err
	}
	if a.strict {
		lang, err := a.detect(mnemonic, true)
		if err != nil {
			return nil, "", err
		}
		entropy, err := a.codec.MnemonicToEntropyIn(mnemonic, lang)
		return entropy, lang, err
	}
	return a.codec.Decode(mnemonic)
}

func (a *app) detect(mnemonic string, strict bool) (bip39.Language, error) {
	words := strings.Fields(bip39.NormalizeMnemonic(mnemonic))
	if strict {
		return a.codec.Registry().DetectLanguageStrict(words)
	}
	return a.codec.Registry().DetectLanguage(words)
}

func (a *app) cmdDecode(args []string) error {
	mnemonic, err := a.readMnemonic(args)
	if err != nil {
		return err
	}
	entropy, lang, err := a.decode(mnemonic)
	if err != nil {
		return err
	}
	defer clear(entropy)
	log.CLI.Debug().Str("language", string(lang)).Int("entropy_bytes", len(entropy)).Msg("Decoded mnemonic")
	fmt.Fprintln(a.stdout, hex.EncodeToString(entropy))
	return nil
}

func (a *app) cmdValidate(args []string) error {
	mnemonic, err := a.readMnemonic(args)
	if err != nil {
		return err
	}
	entropy, lang, err := a.decode(mnemonic)
	if err != nil {
		fmt.Fprintf(a.stdout, "invalid: %v\n", err)
		return errInvalid
	}
	clear(entropy)
	fmt.Fprintf(a.stdout, "valid (%s, %d words)\n", lang, len(entropy)*3/4)
	return nil
}

func (a *app) cmdDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	strict := fs.Bool("strict", a.strict, "Fail when several languages match")
	if err := fs.Parse(args); err != nil {
		return err
	}

	mnemonic, err := a.readMnemonic(fs.Args())
	if err != nil {
		return err
	}
	lang, err := a.detect(mnemonic, *strict)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, lang)
	return nil
}

func (a *app) cmdNormalize(args []string) error {
	mnemonic, err := a.readMnemonic(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, bip39.NormalizeMnemonic(mnemonic))
	return nil
}

// ── Seed ────────────────────────────────────────────────────────────────

func (a *app) cmdSeed(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	passphrase := fs.String("passphrase", "", "Passphrase (visible in process lists)")
	ask := fs.Bool("ask-passphrase", false, "Prompt for the passphrase")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *ask && *passphrase != "" {
		return fmt.Errorf("%w: --passphrase and --ask-passphrase are mutually exclusive", errUsage)
	}

	mnemonic, err := a.readMnemonic(fs.Args())
	if err != nil {
		return err
	}

	// Validate before prompting so a typo does not cost a passphrase entry.
	entropy, _, err := a.decode(mnemonic)
	if err != nil {
		return err
	}
	clear(entropy)

	pass := *passphrase
	if *ask {
		p, err := a.askPassphrase()
		if err != nil {
			return err
		}
		pass = p
	}

	done := log.Benchmark("seed")
	seed := bip39.NewSeed(mnemonic, pass)
	done()
	defer clear(seed)

	fmt.Fprintln(a.stdout, hex.EncodeToString(seed))
	return nil
}

func (a *app) askPassphrase() (string, error) {
	p1, err := a.readPassword("Passphrase: ")
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	p2, err := a.readPassword("Confirm passphrase: ")
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	if string(p1) != string(p2) {
		return "", fmt.Errorf("passphrases do not match")
	}
	return string(p1), nil
}

// ── Wordlists & config ──────────────────────────────────────────────────

func (a *app) cmdWordlists() error {
	reg := a.codec.Registry()
	for _, lang := range reg.Supported() {
		wl, err := reg.Wordlist(lang)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "%-20s %s  %s\n", lang, wl.Fingerprint(), wl.Word(0))
	}
	return nil
}

func (a *app) cmdInitConfig() error {
	if err := config.EnsureConfigDir(a.cfg); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, a.cfg.ConfigFile())
	return nil
}
