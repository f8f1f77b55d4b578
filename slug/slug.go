package slug

import (
	"strings"
	"unicode"
)

// translit maps Cyrillic letters onto their Latin street spelling.
// Multi-letter sounds expand (ж→zh, щ→sht) so slugs stay readable.
var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ж': "zh", 'з': "z", 'и': "i",
	'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o",
	'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh",
	'щ': "sht", 'ъ': "a", 'ь': "y", 'ю': "yu", 'я': "ya",
	'ы': "y", 'э': "e", 'ё': "yo",
}

// Make converts arbitrary text into a URL-safe slug: Cyrillic is
// transliterated, everything else is lowered and reduced to [a-z0-9-].
// Pure, deterministic, and safe on empty input.
func Make(text string) string {
	if text == "" {
		return ""
	}

	runes := []rune(strings.ToLower(strings.TrimSpace(text)))

	var b strings.Builder
	b.Grow(len(runes))

	for i, r := range runes {
		if r == 'й' {
			// word-final й reads as "y" (Дубай → dubay), mid-word as "i"
			// (Тайланд → tailand)
			if i+1 < len(runes) && unicode.IsLetter(runes[i+1]) {
				b.WriteByte('i')
			} else {
				b.WriteByte('y')
			}
			continue
		}
		if t, ok := translit[r]; ok {
			b.WriteString(t)
			continue
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '_', r == '-':
			b.WriteByte('-')
		default:
			// punctuation and anything non-ASCII is dropped
		}
	}

	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}
