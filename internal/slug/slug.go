// Package slug derives ASCII URL-safe identifiers from human-readable
// titles. Derivation is deterministic for a given input.
package slug

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// cyrillicTranslit maps lowercase Cyrillic letters to their common Latin
// transliteration (GOST-ish, the variant used in slugs across the original
// Russian content).
var cyrillicTranslit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "j", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "h", 'ц': "c", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya",
}

// latinSpecials covers Latin letters that NFD decomposition does not
// reduce to an ASCII base letter.
var latinSpecials = map[rune]string{
	'ß': "ss", 'æ': "ae", 'œ': "oe", 'ø': "o", 'đ': "d", 'þ': "th", 'ð': "d", 'ł': "l",
}

// Make converts the input into a lowercase ASCII slug: Cyrillic letters
// are transliterated, accented Latin letters lose their diacritics, and
// every run of other characters collapses into a single "-". The result
// may be empty if the input contains nothing representable.
func Make(s string) string {
	lowered := strings.ToLower(s)

	var translit strings.Builder
	for _, r := range lowered {
		if t, ok := cyrillicTranslit[r]; ok {
			translit.WriteString(t)
			continue
		}
		if t, ok := latinSpecials[r]; ok {
			translit.WriteString(t)
			continue
		}
		translit.WriteRune(r)
	}

	// Decompose accented letters and drop the combining marks
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, err := transform.String(t, translit.String())
	if err != nil {
		ascii = translit.String()
	}

	var out strings.Builder
	pendingSep := false
	for _, r := range ascii {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			if out.Len() > 0 {
				pendingSep = true
			}
			continue
		}
		if pendingSep {
			out.WriteByte('-')
			pendingSep = false
		}
		out.WriteRune(r)
	}
	return out.String()
}

// Unique returns base if it is not taken, otherwise the first of
// base-2, base-3, ... that is free. Disambiguation is deterministic:
// the same set of taken slugs always yields the same result.
func Unique(base string, taken func(string) bool) string {
	if !taken(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !taken(candidate) {
			return candidate
		}
	}
}
