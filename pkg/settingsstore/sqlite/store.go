package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"codeberg.org/miketth/numcaps/pkg/settingsstore/sqlite/migrations"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// IndicatorFlagsSetting is the settings row holding the visible icons.
const IndicatorFlagsSetting = "indicator_flags"

type SettingsStore struct {
	db      *sql.DB
	querier *Queries
}

func NewSettingsStore(filename string, log *zap.SugaredLogger) (*SettingsStore, error) {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := migrations.Migrate(db, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &SettingsStore{
		db:      db,
		querier: New(db),
	}, nil
}

func (s *SettingsStore) Close() error {
	return s.db.Close()
}

func (s *SettingsStore) GetIndicatorFlags() (int, error) {
	value, err := s.querier.GetSetting(context.Background(), IndicatorFlagsSetting)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("sqlite select: %w", err)
	}

	return int(value), nil
}

func (s *SettingsStore) SetIndicatorFlags(flags int) error {
	if err := s.querier.SetSetting(context.Background(), SetSettingParams{
		Name:  IndicatorFlagsSetting,
		Value: int64(flags),
	}); err != nil {
		return fmt.Errorf("sqlite upsert: %w", err)
	}

	return nil
}
