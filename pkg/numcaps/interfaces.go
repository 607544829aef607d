package numcaps

import "golang.org/x/text/language"

type KeyStateReader interface {
	IsToggled(key Key) bool
}

// Presenter draws the tray side of the agent: one icon per lock key.
type Presenter interface {
	ShowState(key LockKey) error
	SetVisible(key Key, visible bool) error
}

type Clipboard interface {
	ReadText() (string, bool)
	WriteText(text string) error
}

type SettingsStore interface {
	// GetIndicatorFlags returns 0 when nothing has been stored yet.
	GetIndicatorFlags() (int, error)
	SetIndicatorFlags(flags int) error
}

type LocaleSource interface {
	InstalledLocales() ([]Locale, error)
}

// Locale is an installed input language. A zero Tag means the locale could
// not be identified.
type Locale struct {
	Name string
	Tag  language.Tag
}
