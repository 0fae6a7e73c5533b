package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"already a slug", "hello-world", "hello-world"},
		{"uppercase", "HELLO", "hello"},
		{"punctuation collapses", "Hello, World! Again", "hello-world-again"},
		{"multiple separators collapse", "a  -  b", "a-b"},
		{"leading and trailing junk trimmed", "  --Hello--  ", "hello"},
		{"digits kept", "Top 10 Products of 2024", "top-10-products-of-2024"},
		{"cyrillic transliterated", "Привет мир", "privet-mir"},
		{"cyrillic uppercase", "НОВАЯ СТАТЬЯ", "novaya-statya"},
		{"mixed scripts", "Статья about Go", "statya-about-go"},
		{"accented latin", "Café crème brûlée", "cafe-creme-brulee"},
		{"german umlauts", "Über größe", "uber-grosse"},
		{"empty input", "", ""},
		{"only punctuation", "!!! ??? ...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.input))
		})
	}
}

// Every output must contain only ASCII lowercase letters, digits, and dashes
func TestMakeProducesASCIIOnly(t *testing.T) {
	inputs := []string{
		"Привет, мир! Ёлка и щука",
		"Crème brûlée à la française",
		"日本語のタイトル mixed with latin",
		"Ąžuolas ir ūsai",
		"emoji 🎉 in title",
	}

	for _, input := range inputs {
		out := Make(input)
		for _, r := range out {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			assert.True(t, ok, "non-ASCII rune %q in slug %q from input %q", r, out, input)
		}
		assert.NotContains(t, out, "--", "consecutive separators in %q", out)
	}
}

func TestMakeIsDeterministic(t *testing.T) {
	input := "Ещё одна статья про Go"
	assert.Equal(t, Make(input), Make(input))
}

func TestUnique(t *testing.T) {
	t.Run("free base is returned unchanged", func(t *testing.T) {
		got := Unique("hello", func(string) bool { return false })
		assert.Equal(t, "hello", got)
	})

	t.Run("taken base gets -2", func(t *testing.T) {
		taken := map[string]bool{"hello": true}
		got := Unique("hello", func(s string) bool { return taken[s] })
		assert.Equal(t, "hello-2", got)
	})

	t.Run("suffix counts past existing duplicates", func(t *testing.T) {
		taken := map[string]bool{"hello": true, "hello-2": true, "hello-3": true}
		got := Unique("hello", func(s string) bool { return taken[s] })
		assert.Equal(t, "hello-4", got)
	})

	t.Run("deterministic for the same taken set", func(t *testing.T) {
		taken := map[string]bool{"post": true, "post-2": true}
		first := Unique("post", func(s string) bool { return taken[s] })
		second := Unique("post", func(s string) bool { return taken[s] })
		assert.Equal(t, first, second)
	})
}
