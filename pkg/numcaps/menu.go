package numcaps

import (
	"unicode/utf8"

	"codeberg.org/miketth/numcaps/pkg/recap"
	"codeberg.org/miketth/numcaps/pkg/relayout"
)

const DefaultWidthLimit = 40

const (
	NoClipboardText    = "No suitable data found in the clipboard"
	NoLetters          = "No letters found in the clipboard"
	NoLayoutCharacters = "No layout-dependent characters found in the clipboard"
	NoInputLanguages   = "No input languages found"
)

type Entry struct {
	Text  string
	Value string
}

// Submenu is the content of one transform submenu. Header is empty when
// there are no entries.
type Submenu struct {
	Enabled bool
	ToolTip string
	Header  string
	Entries []Entry
}

// TrimLong cuts s to limit runes and marks the cut with an ellipsis.
func TrimLong(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "…"
}

func Unavailable() Submenu {
	return Submenu{ToolTip: NoClipboardText}
}

func BuildRecapMenu(raw string, locales []Locale, limit int) Submenu {
	if len(locales) == 0 {
		return Submenu{ToolTip: NoInputLanguages}
	}

	b := menuBuilder{raw: raw, limit: limit}
	c := recap.NewCollector()
	for _, l := range locales {
		if out, ok := c.Add(raw, l.Tag); ok {
			b.add(l.Name, out)
		}
	}
	return b.complete(NoLetters)
}

func BuildRelayoutMenu(raw string, pairs []relayout.Pair, limit int) Submenu {
	b := menuBuilder{raw: raw, limit: limit}
	for _, p := range pairs {
		for _, d := range p.Directions() {
			if out, ok := d.Apply(raw); ok {
				b.add(d.Label(), out)
			}
		}
	}
	return b.complete(NoLayoutCharacters)
}

type menuBuilder struct {
	raw     string
	limit   int
	entries []Entry
}

func (b *menuBuilder) add(prefix, value string) {
	b.entries = append(b.entries, Entry{
		Text:  prefix + ": " + TrimLong(value, b.limit),
		Value: value,
	})
}

func (b *menuBuilder) complete(empty string) Submenu {
	if len(b.entries) == 0 {
		return Submenu{ToolTip: empty}
	}

	// a lone candidate needs no prefix to tell it apart
	if len(b.entries) == 1 {
		b.entries[0].Text = TrimLong(b.entries[0].Value, b.limit)
	}

	return Submenu{
		Enabled: true,
		Header:  TrimLong(b.raw, b.limit),
		Entries: b.entries,
	}
}
