package config

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		ConfigDir: DefaultConfigDir(),
		Mnemonic: MnemonicConfig{
			Language:    "english",
			EntropyBits: 256,
		},
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
