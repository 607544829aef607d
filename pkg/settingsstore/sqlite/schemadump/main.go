// Command schemadump applies the settings migrations to an in-memory
// database and writes the resulting schema for sqlc.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"codeberg.org/miketth/numcaps/pkg/settingsstore/sqlite"
	"codeberg.org/miketth/numcaps/pkg/settingsstore/sqlite/migrations"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errSettingMismatch = errors.New("setting read back differs")

func main() {
	if err := run(); err != nil {
		log.Fatalf("error: %+v", err)
	}
}

func run() error {
	path := flag.String("path", "schema.sql", "file to write the schema to, - for stdout")
	debug := flag.Bool("debug", false, "use debug level logging")
	flag.Parse()

	log, err := newLogger(*debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	db, err := sql.Open("sqlite3", "file::memory:?cache=shared")
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err := migrations.Migrate(db, log); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	out := io.Writer(os.Stdout)
	if *path != "-" {
		file, err := os.Create(*path)
		if err != nil {
			return fmt.Errorf("create file: %w", err)
		}
		defer file.Close()
		out = file
	}

	ctx := context.Background()
	q := sqlite.New(db)

	// the dump is only useful if the store queries work against it
	if err := checkSettings(ctx, q); err != nil {
		return fmt.Errorf("check settings table: %w", err)
	}

	log.Infow("dumping schema", "path", *path)
	if err := dumpSchema(ctx, q, out); err != nil {
		return fmt.Errorf("dump schema: %w", err)
	}

	return nil
}

// checkSettings writes the indicator flags twice through the upsert and
// reads them back.
func checkSettings(ctx context.Context, q *sqlite.Queries) error {
	for _, want := range []int64{1, 3} {
		err := q.SetSetting(ctx, sqlite.SetSettingParams{Name: sqlite.IndicatorFlagsSetting, Value: want})
		if err != nil {
			return fmt.Errorf("set %s: %w", sqlite.IndicatorFlagsSetting, err)
		}

		got, err := q.GetSetting(ctx, sqlite.IndicatorFlagsSetting)
		if err != nil {
			return fmt.Errorf("get %s: %w", sqlite.IndicatorFlagsSetting, err)
		}
		if got != want {
			return fmt.Errorf("%s = %d after writing %d: %w", sqlite.IndicatorFlagsSetting, got, want, errSettingMismatch)
		}
	}
	return nil
}

func dumpSchema(ctx context.Context, q *sqlite.Queries, w io.Writer) error {
	tables, err := q.DumpTables(ctx)
	if err != nil {
		return fmt.Errorf("dump tables: %w", err)
	}

	rest, err := q.DumpRest(ctx)
	if err != nil {
		return fmt.Errorf("dump indexes and triggers: %w", err)
	}

	for _, statement := range append(tables, rest...) {
		if statement == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s;\n\n", *statement); err != nil {
			return fmt.Errorf("write statement: %w", err)
		}
	}

	// sqlc needs to know sqlite_master to type the dump queries
	if _, err := io.WriteString(w, sqliteMasterSchema); err != nil {
		return fmt.Errorf("write sqlite_master: %w", err)
	}

	return nil
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewDevelopmentConfig()

	loggerConfig.OutputPaths = []string{"stderr"}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if !debug {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}

const sqliteMasterSchema = `
create table sqlite_master (
    type     text,
    name     text,
    tbl_name text,
    rootpage int,
    sql      text
);
`
