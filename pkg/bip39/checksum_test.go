package bip39

import (
	"bytes"
	"errors"
	"testing"
)

func TestExtendEntropy(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantLen int
		tail    []byte
	}{
		{"128 bits, 4 checksum bits", 16, 17, []byte{0x30}},
		{"160 bits, 5 checksum bits", 20, 21, []byte{0xd8}},
		{"256 bits, full checksum byte", 32, 33, []byte{0x66}},
		{"288 bits, 9 checksum bits", 36, 38, []byte{0x6d, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entropy := make([]byte, tt.size)
			got, err := ExtendEntropy(entropy)
			if err != nil {
				t.Fatalf("ExtendEntropy() error: %v", err)
			}
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if !bytes.Equal(got[:tt.size], entropy) {
				t.Errorf("entropy prefix changed: %x", got[:tt.size])
			}
			if tail := got[tt.size:]; !bytes.Equal(tail, tt.tail) {
				t.Errorf("checksum = %x, want %x", tail, tt.tail)
			}
			if bits := tt.size*8 + ChecksumBits(tt.size); bits%11 != 0 {
				t.Errorf("extended bit length %d is not a multiple of 11", bits)
			}
		})
	}
}

func TestExtendEntropy_DoesNotMutate(t *testing.T) {
	entropy := bytes.Repeat([]byte{0xab}, 16)
	orig := bytes.Clone(entropy)
	if _, err := ExtendEntropy(entropy); err != nil {
		t.Fatalf("ExtendEntropy() error: %v", err)
	}
	if !bytes.Equal(entropy, orig) {
		t.Error("entropy was modified")
	}
}

func TestExtendEntropy_InvalidLength(t *testing.T) {
	for _, size := range []int{0, 1, 3, 15, 17, 33, MaxEntropySize + 4} {
		_, err := ExtendEntropy(make([]byte, size))
		if !errors.Is(err, ErrInvalidEntropyLength) {
			t.Errorf("size %d: error = %v, want ErrInvalidEntropyLength", size, err)
		}
	}
}

func TestExtendEntropy_MaxSize(t *testing.T) {
	got, err := ExtendEntropy(make([]byte, MaxEntropySize))
	if err != nil {
		t.Fatalf("ExtendEntropy() error: %v", err)
	}
	if len(got) != MaxEntropySize+32 {
		t.Errorf("len = %d, want %d", len(got), MaxEntropySize+32)
	}
}

func TestChecksumBits(t *testing.T) {
	for size, want := range map[int]int{16: 4, 20: 5, 24: 6, 28: 7, 32: 8} {
		if got := ChecksumBits(size); got != want {
			t.Errorf("ChecksumBits(%d) = %d, want %d", size, got, want)
		}
	}
}
