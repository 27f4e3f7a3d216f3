// klingnet-mnemonic generates, converts and checks BIP-39 mnemonic phrases.
//
// Usage:
//
//	klingnet-mnemonic [global flags] <command> [flags] [args]
//	klingnet-mnemonic --help
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/Klingon-tech/klingnet-mnemonic/config"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
)

const version = "0.1.0"

func main() {
	cfg, flags, err := config.Load(os.Args[1:])
	if err != nil {
		fatal("%v", err)
	}
	if flags.Help {
		config.PrintUsage(os.Stdout)
		return
	}
	if flags.Version {
		fmt.Println("klingnet-mnemonic version " + version)
		return
	}
	if len(flags.Args) == 0 {
		config.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatal("init logging: %v", err)
	}
	log.Config.Debug().
		Str("language", cfg.Mnemonic.Language).
		Int("entropy_bits", cfg.Mnemonic.EntropyBits).
		Str("wordlist_dir", cfg.WordlistDir()).
		Msg("Configuration loaded")

	a, err := newApp(cfg, flags)
	if err != nil {
		fatal("%v", err)
	}

	err = a.run(flags.Args[0], flags.Args[1:])
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errInvalid):
		os.Exit(1)
	case errors.Is(err, errUsage):
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		config.PrintUsage(os.Stderr)
		os.Exit(1)
	default:
		fatal("%v", err)
	}
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
