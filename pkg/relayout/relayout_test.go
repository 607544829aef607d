package relayout

import (
	"errors"
	"testing"
	"unicode/utf8"
)

func TestBuiltInLayoutsAlign(t *testing.T) {
	a, b := utf8.RuneCountInString(EnKeys), utf8.RuneCountInString(UaKeys)
	if a != b {
		t.Fatalf("len(EnKeys) = %d, len(UaKeys) = %d", a, b)
	}
}

func TestExclusive(t *testing.T) {
	tests := []struct {
		name   string
		target string
		source string
		want   string
	}{
		{name: "disjoint", target: "abc", source: "xyz", want: "abc"},
		{name: "overlap", target: "abcd", source: "bd", want: "ac"},
		{name: "duplicates kept once", target: "aab", source: "", want: "ab"},
		{name: "subset", target: "ab", source: "abc", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Exclusive(tt.target, tt.source); got != tt.want {
				t.Fatalf("Exclusive(%q, %q) = %q, want %q", tt.target, tt.source, got, tt.want)
			}
		})
	}
}

func TestRelayout(t *testing.T) {
	enExclusive := Exclusive(EnKeys, UaKeys)
	uaExclusive := Exclusive(UaKeys, EnKeys)

	tests := []struct {
		name   string
		raw    string
		in     string
		out    string
		never  string
		want   string
		wantOk bool
	}{
		{name: "en typed as ua", raw: "ghbdsn", in: EnKeys, out: UaKeys, never: uaExclusive, want: "привіт", wantOk: true},
		{name: "ua typed as en", raw: "руддщ", in: UaKeys, out: EnKeys, never: enExclusive, want: "hello", wantOk: true},
		{name: "latin cannot be ua mistype", raw: "ghbdsn", in: UaKeys, out: EnKeys, never: enExclusive},
		{name: "cyrillic cannot be en mistype", raw: "привіт", in: EnKeys, out: UaKeys, never: uaExclusive},
		{name: "digits and spaces", raw: "123 456", in: EnKeys, out: UaKeys, never: uaExclusive},
		{name: "empty", raw: "", in: EnKeys, out: UaKeys, never: uaExclusive},
		{name: "unmapped runes pass through", raw: "ghbdsn 42!", in: EnKeys, out: UaKeys, never: uaExclusive, want: "привіт 42!", wantOk: true},
		{name: "shifted row", raw: "Ghbdsn", in: EnKeys, out: UaKeys, never: uaExclusive, want: "Привіт", wantOk: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Relayout(tt.raw, tt.in, tt.out, tt.never)
			if ok != tt.wantOk || got != tt.want {
				t.Fatalf("Relayout(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestDirectionMatchesRelayout(t *testing.T) {
	pair, err := NewPair(Ukrainian, English)
	if err != nil {
		t.Fatalf("NewPair() error = %v", err)
	}

	for _, raw := range []string{"ghbdsn", "руддщ", "Ntcn? ghbdsn", "2024", "Vs. cdsn"} {
		want, wantOk := Relayout(raw, UaKeys, EnKeys, Exclusive(EnKeys, UaKeys))
		got, ok := pair.Forward.Apply(raw)
		if got != want || ok != wantOk {
			t.Errorf("Forward.Apply(%q) = (%q, %v), want (%q, %v)", raw, got, ok, want, wantOk)
		}

		want, wantOk = Relayout(raw, EnKeys, UaKeys, Exclusive(UaKeys, EnKeys))
		got, ok = pair.Backward.Apply(raw)
		if got != want || ok != wantOk {
			t.Errorf("Backward.Apply(%q) = (%q, %v), want (%q, %v)", raw, got, ok, want, wantOk)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	pair, err := NewPair(Ukrainian, English)
	if err != nil {
		t.Fatalf("NewPair() error = %v", err)
	}

	for _, raw := range []string{"руддщ, світ", "Привіт", "як справи"} {
		en, ok := pair.Forward.Apply(raw)
		if !ok {
			t.Fatalf("Forward.Apply(%q) reported no change", raw)
		}
		back, ok := pair.Backward.Apply(en)
		if !ok {
			t.Fatalf("Backward.Apply(%q) reported no change", en)
		}
		if back != raw {
			t.Errorf("round trip of %q = %q via %q", raw, back, en)
		}
	}
}

func TestDirectionLabel(t *testing.T) {
	pair, err := NewPair(Ukrainian, English)
	if err != nil {
		t.Fatalf("NewPair() error = %v", err)
	}

	if got := pair.Forward.Label(); got != "Ua => En" {
		t.Errorf("Forward.Label() = %q", got)
	}
	if got := pair.Backward.Label(); got != "En => Ua" {
		t.Errorf("Backward.Label() = %q", got)
	}
}

func TestNewPairRejectsMismatchedLayouts(t *testing.T) {
	_, err := NewPair(Layout{Name: "a", Keys: "abc"}, Layout{Name: "b", Keys: "ab"})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("NewPair() error = %v, want %v", err, ErrLengthMismatch)
	}

	_, err = NewPair(Layout{Name: "a"}, Layout{Name: "b"})
	if !errors.Is(err, ErrEmptyLayout) {
		t.Fatalf("NewPair() error = %v, want %v", err, ErrEmptyLayout)
	}
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()

	if _, err := r.Pair("Ua", "En"); err != nil {
		t.Fatalf("Pair(Ua, En) error = %v", err)
	}

	if _, err := r.Pair("Ua", "De"); !errors.Is(err, ErrUnknownLayout) {
		t.Fatalf("Pair(Ua, De) error = %v, want %v", err, ErrUnknownLayout)
	}

	r.Add(Layout{Name: "En", Keys: "qwe"})
	l, ok := r.GetLayout("En")
	if !ok || l.Keys != "qwe" {
		t.Fatalf("GetLayout(En) = %+v, %v after override", l, ok)
	}
}
