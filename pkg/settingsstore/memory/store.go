package memory

type SettingsStore struct {
	indicatorFlags int
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{}
}

func (s *SettingsStore) GetIndicatorFlags() (int, error) {
	return s.indicatorFlags, nil
}

func (s *SettingsStore) SetIndicatorFlags(flags int) error {
	s.indicatorFlags = flags
	return nil
}

func (s *SettingsStore) Close() error {
	return nil
}
