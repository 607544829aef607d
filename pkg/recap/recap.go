package recap

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Recap swaps the case of every cased letter of raw following the casing
// rules of tag. Runes that are neither upper nor lower case are kept.
func Recap(raw string, tag language.Tag) string {
	upper := cases.Upper(tag)
	lower := cases.Lower(tag)

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r):
			b.WriteRune(single(lower.String(string(r)), r))
		case unicode.IsLower(r):
			b.WriteRune(single(upper.String(string(r)), r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// single returns the only rune of mapped, or r when the case mapping
// expanded to several runes ("ß" -> "SS").
func single(mapped string, r rune) rune {
	out, size := utf8.DecodeRuneInString(mapped)
	if size == 0 || size != len(mapped) {
		return r
	}
	return out
}

// Collector hands out each distinct recapitalization once per menu build.
type Collector struct {
	seen map[string]struct{}
}

func NewCollector() *Collector {
	return &Collector{seen: make(map[string]struct{})}
}

// Add recapitalizes raw for tag. It reports false when tag is undetermined,
// when the result equals raw, or when the same result was already returned.
func (c *Collector) Add(raw string, tag language.Tag) (string, bool) {
	if tag == language.Und {
		return "", false
	}

	out := Recap(raw, tag)
	if out == raw {
		return "", false
	}

	if _, ok := c.seen[out]; ok {
		return "", false
	}
	c.seen[out] = struct{}{}

	return out, true
}
