package locales

import (
	"strings"

	"codeberg.org/miketth/numcaps/pkg/numcaps"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const unknownName = "Unknown"

// Source lists the input languages installed for the current user.
type Source struct {
	names func() ([]string, error)
}

func NewSource() *Source {
	return &Source{names: installedLocaleNames}
}

func (s *Source) InstalledLocales() ([]numcaps.Locale, error) {
	names, err := s.names()
	if err != nil {
		return nil, err
	}
	return FromLocaleNames(names), nil
}

// FromLocaleNames resolves BCP 47 or POSIX locale names. Names that cannot
// be parsed keep an undetermined tag so the recap transform skips them.
func FromLocaleNames(names []string) []numcaps.Locale {
	namer := display.English.Tags()

	locales := make([]numcaps.Locale, 0, len(names))
	for _, name := range names {
		tag, err := language.Parse(normalize(name))
		if err != nil || tag == language.Und {
			if name == "" {
				name = unknownName
			}
			locales = append(locales, numcaps.Locale{Name: name, Tag: language.Und})
			continue
		}

		label := namer.Name(tag)
		if label == "" {
			label = tag.String()
		}
		locales = append(locales, numcaps.Locale{Name: label, Tag: tag})
	}

	return locales
}

// normalize turns "uk_UA.UTF-8@euro" into "uk-UA".
func normalize(name string) string {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(name, "_", "-")
	if name == "C" || name == "POSIX" {
		return ""
	}
	return name
}
