package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

type settings struct {
	IndicatorFlags int `json:"indicator_flags"`
}

// SettingsStore keeps the settings in a JSON file. Every change is written
// out before the setter returns.
type SettingsStore struct {
	path     string
	settings settings
	lock     sync.Mutex
	log      *zap.SugaredLogger
}

// NewSettingsStore opens filename. A missing file leaves the store empty;
// a corrupt one is logged and replaced on the next write.
func NewSettingsStore(filename string, log *zap.SugaredLogger) (*SettingsStore, error) {
	store := &SettingsStore{path: filename, log: log}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	err := store.load()
	switch {
	case os.IsNotExist(err):
		return store, nil
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, io.ErrUnexpectedEOF):
		log.Warnw("ignoring corrupt settings file", "path", filename, "error", err)
		store.settings = settings{}
		return store, nil
	case err != nil:
		return nil, fmt.Errorf("load: %w", err)
	}

	return store, nil
}

func (s *SettingsStore) Close() error {
	return nil
}

func (s *SettingsStore) load() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		return err
	}
	defer file.Close()

	// an empty file is an empty store
	if fi, err := file.Stat(); err == nil && fi.Size() == 0 {
		return nil
	}

	dec := json.NewDecoder(file)
	err = dec.Decode(&s.settings)
	if err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	return nil
}

func (s *SettingsStore) save() error {
	err := os.MkdirAll(filepath.Dir(s.path), 0755)
	if err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	data, err := json.MarshalIndent(s.settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	err = os.WriteFile(tmp, data, 0644)
	if err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	err = os.Rename(tmp, s.path)
	if err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}

	return nil
}

func (s *SettingsStore) GetIndicatorFlags() (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.settings.IndicatorFlags, nil
}

func (s *SettingsStore) SetIndicatorFlags(flags int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.settings.IndicatorFlags = flags
	if err := s.save(); err != nil {
		return err
	}

	s.log.Debugw("saved settings", "path", s.path, "indicator_flags", flags)
	return nil
}
