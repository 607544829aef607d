package relayout

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	EnKeys = "`qwertyuiop[]asdfghjkl;'zxcvbnm,./~@#$%^&QWERTYUIOP{}|ASDFGHJKL:\"ZXCVBNM<>?"
	UaKeys = "'йцукенгшщзхїфівапролджєячсмитьбю.₴\"№;%:?ЙЦУКЕНГШЩЗХЇ/ФІВАПРОЛДЖЄЯЧСМИТЬБЮ,"
)

var (
	English   = Layout{Name: "En", Keys: EnKeys}
	Ukrainian = Layout{Name: "Ua", Keys: UaKeys}
)

// Exclusive returns the characters of target that never occur in source,
// each once, in order of first appearance.
func Exclusive(target, source string) string {
	seen := make(map[rune]struct{})
	var b strings.Builder
	for _, r := range target {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		if !strings.ContainsRune(source, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Relayout substitutes every character of raw found in inKeys with the
// character at the same position of outKeys. It reports false when raw
// contains any of neverOccurs or when nothing changed.
func Relayout(raw, inKeys, outKeys, neverOccurs string) (string, bool) {
	return remap(raw, indexOf(inKeys), []rune(outKeys), runeSet(neverOccurs))
}

func NewPair(first, second Layout) (Pair, error) {
	for _, l := range []Layout{first, second} {
		if l.Keys == "" {
			return Pair{}, fmt.Errorf("layout %q: %w", l.Name, ErrEmptyLayout)
		}
	}

	if a, b := utf8.RuneCountInString(first.Keys), utf8.RuneCountInString(second.Keys); a != b {
		return Pair{}, fmt.Errorf("pair %s/%s (%d != %d): %w", first.Name, second.Name, a, b, ErrLengthMismatch)
	}

	return Pair{
		Forward:  newDirection(first, second),
		Backward: newDirection(second, first),
	}, nil
}

func (p Pair) Directions() []Direction {
	return []Direction{p.Forward, p.Backward}
}

func newDirection(from, to Layout) Direction {
	return Direction{
		From:       from,
		To:         to,
		index:      indexOf(from.Keys),
		out:        []rune(to.Keys),
		impossible: runeSet(Exclusive(to.Keys, from.Keys)),
	}
}

func (d Direction) Label() string {
	return fmt.Sprintf("%s => %s", d.From.Name, d.To.Name)
}

func (d Direction) Apply(raw string) (string, bool) {
	return remap(raw, d.index, d.out, d.impossible)
}

func remap(raw string, index map[rune]int, out []rune, impossible map[rune]struct{}) (string, bool) {
	for _, r := range raw {
		if _, ok := impossible[r]; ok {
			return "", false
		}
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		i, ok := index[r]
		if !ok || i >= len(out) {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(out[i])
	}

	result := b.String()
	if result == raw {
		return "", false
	}
	return result, true
}

// indexOf keeps the first position of every rune, matching a left-to-right
// scan of the key sequence.
func indexOf(keys string) map[rune]int {
	index := make(map[rune]int)
	i := 0
	for _, r := range keys {
		if _, ok := index[r]; !ok {
			index[r] = i
		}
		i++
	}
	return index
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}
