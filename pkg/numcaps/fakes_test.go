package numcaps

import (
	"errors"

	"golang.org/x/text/language"
)

type fakeKeys struct {
	toggled map[Key]bool
}

func (f *fakeKeys) IsToggled(key Key) bool {
	return f.toggled[key]
}

type recordingPresenter struct {
	shown   []LockKey
	visible map[Key]bool
	failOn  bool
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{visible: make(map[Key]bool)}
}

func (p *recordingPresenter) ShowState(key LockKey) error {
	if p.failOn {
		return errors.New("icon gone")
	}
	p.shown = append(p.shown, key)
	return nil
}

func (p *recordingPresenter) SetVisible(key Key, visible bool) error {
	p.visible[key] = visible
	return nil
}

type memoryStore struct {
	flags  int
	writes int
	err    error
}

func (s *memoryStore) GetIndicatorFlags() (int, error) {
	return s.flags, s.err
}

func (s *memoryStore) SetIndicatorFlags(flags int) error {
	if s.err != nil {
		return s.err
	}
	s.flags = flags
	s.writes++
	return nil
}

type fakeClipboard struct {
	text    string
	hasText bool
}

func (c *fakeClipboard) ReadText() (string, bool) {
	return c.text, c.hasText
}

func (c *fakeClipboard) WriteText(text string) error {
	c.text = text
	c.hasText = true
	return nil
}

type staticLocales []Locale

func (l staticLocales) InstalledLocales() ([]Locale, error) {
	return l, nil
}

type failingLocales struct{}

func (failingLocales) InstalledLocales() ([]Locale, error) {
	return nil, errors.New("layout list unavailable")
}

var (
	turkish   = language.Turkish
	usEnglish = Locale{Name: "US", Tag: language.AmericanEnglish}
	ukEnglish = Locale{Name: "United Kingdom", Tag: language.BritishEnglish}
	ukrainian = Locale{Name: "Ukrainian", Tag: language.Ukrainian}
)
