package bip39

import (
	"errors"
	"strings"
	"testing"
)

func TestNewWordlist(t *testing.T) {
	words := sequentialWords(WordlistSize)
	words[5] = "  MiXeD  "

	wl, err := NewWordlist("test", words)
	if err != nil {
		t.Fatalf("NewWordlist() error: %v", err)
	}
	if wl.Language() != "test" {
		t.Errorf("Language() = %q", wl.Language())
	}
	if got := wl.Word(5); got != "mixed" {
		t.Errorf("Word(5) = %q, want %q", got, "mixed")
	}
	if idx, ok := wl.Index("w2047"); !ok || idx != 2047 {
		t.Errorf("Index(w2047) = %d, %v", idx, ok)
	}
	if wl.Contains("MiXeD") {
		t.Error("lookups expect normalized words")
	}
	if !wl.Contains("mixed") {
		t.Error("Contains(mixed) = false")
	}
}

func TestNewWordlist_Invalid(t *testing.T) {
	dup := sequentialWords(WordlistSize)
	dup[10] = dup[3]
	dupCase := sequentialWords(WordlistSize)
	dupCase[10] = strings.ToUpper(dupCase[3])
	empty := sequentialWords(WordlistSize)
	empty[7] = "   "

	tests := []struct {
		name  string
		lang  Language
		words []string
	}{
		{"too short", "x", sequentialWords(2047)},
		{"too long", "x", sequentialWords(2049)},
		{"duplicate", "x", dup},
		{"duplicate after lower-casing", "x", dupCase},
		{"blank word", "x", empty},
		{"no language", "", sequentialWords(WordlistSize)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWordlist(tt.lang, tt.words)
			if !errors.Is(err, ErrInvalidWordlist) {
				t.Errorf("error = %v, want ErrInvalidWordlist", err)
			}
		})
	}
}

func TestParseWordlist(t *testing.T) {
	text := "\n" + strings.Join(sequentialWords(WordlistSize), "\r\n") + "\n\n"

	wl, err := ParseWordlist("test", strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseWordlist() error: %v", err)
	}
	if got := wl.Word(0); got != "w0000" {
		t.Errorf("Word(0) = %q", got)
	}
	if got := wl.Word(2047); got != "w2047" {
		t.Errorf("Word(2047) = %q", got)
	}
}

func TestParseWordlist_Short(t *testing.T) {
	_, err := ParseWordlist("test", strings.NewReader("one\ntwo\n"))
	if !errors.Is(err, ErrInvalidWordlist) {
		t.Fatalf("error = %v, want ErrInvalidWordlist", err)
	}
}

func TestWordlist_Fingerprint(t *testing.T) {
	a, _ := NewWordlist("a", sequentialWords(WordlistSize))
	b, _ := ParseWordlist("b", strings.NewReader(strings.Join(sequentialWords(WordlistSize), "\n")))
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("identical word sequences should share a fingerprint")
	}

	words := sequentialWords(WordlistSize)
	words[0], words[1] = words[1], words[0]
	c, _ := NewWordlist("c", words)
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("reordered list should change the fingerprint")
	}
}

func TestWordlist_WordsIsCopy(t *testing.T) {
	wl, _ := NewWordlist("a", sequentialWords(WordlistSize))
	words := wl.Words()
	words[0] = "changed"
	if wl.Word(0) != "w0000" {
		t.Error("Words() exposed internal storage")
	}
}

func TestLanguage_Delimiter(t *testing.T) {
	if got := Japanese.Delimiter(); got != "\u3000" {
		t.Errorf("Japanese delimiter = %q", got)
	}
	for _, l := range []Language{English, Spanish, ChineseSimplified, Korean} {
		if got := l.Delimiter(); got != " " {
			t.Errorf("%s delimiter = %q", l, got)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"english", English},
		{" English ", English},
		{"chinese-simplified", ChineseSimplified},
		{"CHINESE_TRADITIONAL", ChineseTraditional},
		{"turkish", Turkish},
	}
	for _, tt := range tests {
		got, err := ParseLanguage(tt.in)
		if err != nil {
			t.Errorf("ParseLanguage(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLanguage(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseLanguage("klingon"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("ParseLanguage(klingon) error = %v, want ErrUnknownLanguage", err)
	}
}

func TestNewWordlist_DecomposesAccents(t *testing.T) {
	words := sequentialWords(WordlistSize)
	words[7] = "\u00e1baco" // composed

	wl, err := NewWordlist(Spanish, words)
	if err != nil {
		t.Fatalf("NewWordlist() error: %v", err)
	}
	if got := wl.Word(7); got != "a\u0301baco" {
		t.Errorf("Word(7) = %q, want decomposed form", got)
	}
	if i, ok := wl.Index("a\u0301baco"); !ok || i != 7 {
		t.Errorf("Index(decomposed) = %d, %v", i, ok)
	}

	words[8] = "a\u0301baco"
	if _, err := NewWordlist(Spanish, words); !errors.Is(err, ErrInvalidWordlist) {
		t.Errorf("composed and decomposed duplicates: error = %v, want ErrInvalidWordlist", err)
	}
}
