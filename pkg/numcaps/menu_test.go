package numcaps

import (
	"strings"
	"testing"
	"unicode/utf8"

	"codeberg.org/miketth/numcaps/pkg/relayout"
)

func uaEnPairs(t *testing.T) []relayout.Pair {
	t.Helper()
	pair, err := relayout.NewPair(relayout.Ukrainian, relayout.English)
	if err != nil {
		t.Fatalf("NewPair() error = %v", err)
	}
	return []relayout.Pair{pair}
}

func TestTrimLong(t *testing.T) {
	short := strings.Repeat("a", 40)
	if got := TrimLong(short, DefaultWidthLimit); got != short {
		t.Fatalf("TrimLong(40 runes) = %q", got)
	}

	long := strings.Repeat("b", 41)
	got := TrimLong(long, DefaultWidthLimit)
	if want := strings.Repeat("b", 40) + "…"; got != want {
		t.Fatalf("TrimLong(41 runes) = %q, want %q", got, want)
	}
	if n := utf8.RuneCountInString(got); n != 41 {
		t.Fatalf("TrimLong(41 runes) has %d runes, want 41", n)
	}

	cyrillic := strings.Repeat("ж", 45)
	if got := TrimLong(cyrillic, DefaultWidthLimit); got != strings.Repeat("ж", 40)+"…" {
		t.Fatalf("TrimLong cut inside a rune: %q", got)
	}
}

func TestBuildRecapMenu(t *testing.T) {
	menu := BuildRecapMenu("Hello World", []Locale{usEnglish, ukrainian}, DefaultWidthLimit)

	if !menu.Enabled {
		t.Fatalf("menu disabled: %+v", menu)
	}
	if menu.Header != "Hello World" {
		t.Errorf("Header = %q", menu.Header)
	}
	if len(menu.Entries) != 1 {
		t.Fatalf("Entries = %+v, want one entry for identical casing", menu.Entries)
	}
	if got := menu.Entries[0]; got.Text != "hELLO wORLD" || got.Value != "hELLO wORLD" {
		t.Errorf("single entry = %+v, want collapsed text", got)
	}
}

func TestBuildRecapMenuDeduplicatesLocales(t *testing.T) {
	menu := BuildRecapMenu("Hi", []Locale{usEnglish, ukEnglish, {Name: "Türkçe", Tag: turkish}}, DefaultWidthLimit)

	if len(menu.Entries) != 2 {
		t.Fatalf("Entries = %+v, want 2", menu.Entries)
	}
	if got := menu.Entries[0].Text; got != "US: hI" {
		t.Errorf("Entries[0].Text = %q", got)
	}
	if got := menu.Entries[1].Text; got != "Türkçe: hİ" {
		t.Errorf("Entries[1].Text = %q", got)
	}
}

func TestBuildRecapMenuWithoutLetters(t *testing.T) {
	menu := BuildRecapMenu("1234", []Locale{usEnglish}, DefaultWidthLimit)
	if menu.Enabled || menu.ToolTip != NoLetters || menu.Header != "" {
		t.Fatalf("menu = %+v, want disabled with %q", menu, NoLetters)
	}

	menu = BuildRecapMenu("Hello", []Locale{{Name: "unknown"}}, DefaultWidthLimit)
	if menu.Enabled {
		t.Fatalf("menu = %+v, want disabled without an identified locale", menu)
	}
}

func TestBuildRecapMenuWithoutLocales(t *testing.T) {
	menu := BuildRecapMenu("Hello", nil, DefaultWidthLimit)
	if menu.Enabled || menu.ToolTip != NoInputLanguages || len(menu.Entries) != 0 {
		t.Fatalf("menu = %+v, want disabled with %q", menu, NoInputLanguages)
	}
}

func TestBuildRelayoutMenu(t *testing.T) {
	menu := BuildRelayoutMenu("ghbdsn", uaEnPairs(t), DefaultWidthLimit)

	if !menu.Enabled || len(menu.Entries) != 1 {
		t.Fatalf("menu = %+v", menu)
	}
	if got := menu.Entries[0]; got.Value != "привіт" || got.Text != "привіт" {
		t.Fatalf("entry = %+v", got)
	}
}

func TestBuildRelayoutMenuBothDirections(t *testing.T) {
	// "/" and "," exist in both layouts, so both directions apply
	menu := BuildRelayoutMenu("/,", uaEnPairs(t), DefaultWidthLimit)

	if len(menu.Entries) != 2 {
		t.Fatalf("Entries = %+v, want 2", menu.Entries)
	}
	if !strings.HasPrefix(menu.Entries[0].Text, "Ua => En: ") {
		t.Errorf("Entries[0].Text = %q", menu.Entries[0].Text)
	}
	if !strings.HasPrefix(menu.Entries[1].Text, "En => Ua: ") {
		t.Errorf("Entries[1].Text = %q", menu.Entries[1].Text)
	}
}

func TestBuildRelayoutMenuWithoutLayoutCharacters(t *testing.T) {
	menu := BuildRelayoutMenu("12 34", uaEnPairs(t), DefaultWidthLimit)
	if menu.Enabled || menu.ToolTip != NoLayoutCharacters {
		t.Fatalf("menu = %+v, want disabled with %q", menu, NoLayoutCharacters)
	}
}

func TestMenuEntriesKeepFullValue(t *testing.T) {
	raw := strings.Repeat("ghbdsn ", 10)
	menu := BuildRelayoutMenu(raw, uaEnPairs(t), DefaultWidthLimit)

	if len(menu.Entries) != 1 {
		t.Fatalf("Entries = %+v", menu.Entries)
	}
	entry := menu.Entries[0]
	if !strings.HasSuffix(entry.Text, "…") {
		t.Errorf("Text = %q, want truncated", entry.Text)
	}
	if entry.Value != strings.Repeat("привіт ", 10) {
		t.Errorf("Value = %q, want untruncated", entry.Value)
	}
	if !strings.HasSuffix(menu.Header, "…") {
		t.Errorf("Header = %q, want truncated", menu.Header)
	}
}
