package bip39

import (
	"fmt"
	"testing"
)

// group is a run of words shared by every synthetic list that includes it.
type group struct {
	prefix string
	n      int
}

// syntheticList fills a wordlist from groups, padding with words unique to
// lang.
func syntheticList(t *testing.T, lang Language, groups ...group) *Wordlist {
	t.Helper()
	words := make([]string, 0, WordlistSize)
	for _, g := range groups {
		for i := 0; i < g.n; i++ {
			words = append(words, fmt.Sprintf("%s%04d", g.prefix, i))
		}
	}
	for i := 0; len(words) < WordlistSize; i++ {
		words = append(words, fmt.Sprintf("%s-only%04d", lang, i))
	}
	wl, err := NewWordlist(lang, words)
	if err != nil {
		t.Fatalf("NewWordlist(%s) error: %v", lang, err)
	}
	return wl
}

// syntheticRegistry builds four lists with overlapping word groups:
//
//	abc* in A, B, C   ab* in A, B   bc* in B, C   cd* in C, D
func syntheticRegistry(t *testing.T) *Registry {
	t.Helper()
	abc := group{"abc", 512}
	ab := group{"ab", 512}
	bc := group{"bc", 512}
	cd := group{"cd", 512}

	reg, err := NewRegistry(
		syntheticList(t, "a", abc, ab),
		syntheticList(t, "b", abc, ab, bc),
		syntheticList(t, "c", abc, bc, cd),
		syntheticList(t, "d", cd),
	)
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}
	return reg
}

func sequentialWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%04d", i)
	}
	return words
}
