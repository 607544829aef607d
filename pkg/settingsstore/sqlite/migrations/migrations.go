package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

var ErrDirtySchema = errors.New("settings schema is dirty")

//go:embed *.sql
var files embed.FS

func Migrate(db *sql.DB, log *zap.SugaredLogger) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	source, err := iofs.New(files, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	log.Debug("running migrations")

	err = migrator.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Debug("no migrations to apply")
	case err != nil:
		return fmt.Errorf("migrate up: %w", err)
	default:
		log.Info("migrations applied")
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	// a failed migration leaves the version dirty and the settings table
	// possibly half built
	if dirty {
		return fmt.Errorf("schema version %d: %w", version, ErrDirtySchema)
	}
	log.Debugw("settings schema ready", "version", version)

	return nil
}
