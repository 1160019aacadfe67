package speech

import (
	"context"
	"strings"
	"testing"
)

func TestCacheFilename(t *testing.T) {
	a := cacheFilename("Joanna", "This is your sister.")
	b := cacheFilename("Joanna", "This is your sister.")
	if a != b {
		t.Fatalf("same input produced different names: %q vs %q", a, b)
	}
	if cacheFilename("Joanna", "hello") == cacheFilename("Matthew", "hello") {
		t.Fatal("voice should be part of the cache key")
	}
	if !strings.HasSuffix(a, ".mp3") {
		t.Fatalf("expected .mp3 suffix, got %q", a)
	}
	for _, r := range strings.TrimSuffix(a, ".mp3") {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_') {
			t.Fatalf("unsafe rune %q in filename %q", r, a)
		}
	}
}

func TestCacheFilenameTruncatesLongText(t *testing.T) {
	long := strings.Repeat("remember ", 40)
	name := cacheFilename("Joanna", long)
	if len(name) > 80 {
		t.Fatalf("filename too long: %d runes", len(name))
	}
	if name == cacheFilename("Joanna", long+"extra") {
		t.Fatal("distinct texts should hash to distinct names")
	}
}

func TestDisabledSynthesizer(t *testing.T) {
	var s Synthesizer = Disabled{}
	if s.Enabled() {
		t.Fatal("disabled synthesizer reports enabled")
	}
	if _, err := s.Synthesize(context.Background(), "hello"); err == nil {
		t.Fatal("expected error from disabled synthesizer")
	}
}
