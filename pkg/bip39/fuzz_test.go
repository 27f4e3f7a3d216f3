package bip39

import (
	"bytes"
	"testing"
)

// FuzzMnemonicToEntropy tests that arbitrary phrases never panic and that
// every accepted phrase re-encodes to its normalized form.
func FuzzMnemonicToEntropy(f *testing.F) {
	for _, v := range englishVectors {
		f.Add(v.mnemonic)
	}
	f.Add("")
	f.Add("abandon")
	f.Add("ABANDON\tabandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	f.Add("あいこくしん\u3000あいこくしん\u3000あいさつ")

	codec := getDefaultCodec()
	f.Fuzz(func(t *testing.T, mnemonic string) {
		entropy, lang, err := codec.Decode(mnemonic)
		if err != nil {
			return
		}
		encoded, err := codec.EntropyToMnemonic(entropy, lang)
		if err != nil {
			t.Fatalf("EntropyToMnemonic() error: %v", err)
		}
		if NormalizeMnemonic(encoded) != NormalizeMnemonic(mnemonic) {
			t.Fatalf("re-encoded %q, want %q", encoded, NormalizeMnemonic(mnemonic))
		}
	})
}

// FuzzEntropyRoundTrip tests entropy -> mnemonic -> entropy for any valid
// length.
func FuzzEntropyRoundTrip(f *testing.F) {
	f.Add(make([]byte, 16))
	f.Add(bytes.Repeat([]byte{0xff}, 32))
	f.Add([]byte{1, 2, 3, 4})

	codec := getDefaultCodec()
	f.Fuzz(func(t *testing.T, entropy []byte) {
		mnemonic, err := codec.EntropyToMnemonic(entropy, English)
		if err != nil {
			if validateEntropySize(len(entropy)) == nil {
				t.Fatalf("EntropyToMnemonic() error: %v", err)
			}
			return
		}
		got, err := codec.MnemonicToEntropyIn(mnemonic, English)
		if err != nil {
			t.Fatalf("MnemonicToEntropyIn() error: %v", err)
		}
		if !bytes.Equal(got, entropy) {
			t.Fatalf("round trip = %x, want %x", got, entropy)
		}
	})
}
