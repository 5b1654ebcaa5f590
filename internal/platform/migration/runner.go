// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration brings the magazine and media tables up to date before
// the API starts serving.
//
// Migrations come from the binary itself unless a directory on disk is
// configured, which lets operators hot-fix SQL without a rebuild.
package migration

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Source names where migration files are read from. Path wins when set.
type Source struct {
	Path     string
	Embedded fs.FS
	Dir      string
}

// RunUp applies every pending up migration and refuses to touch a dirty database.
func RunUp(dsn string, source Source, logger *slog.Logger) error {
	migrator, origin, err := open(ToPgx5DSN(dsn), source)
	if err != nil {
		return fmt.Errorf("migration: failed to initialize: %w", err)
	}
	defer func() {
		if sourceErr, dbErr := migrator.Close(); sourceErr != nil || dbErr != nil {
			logger.Error("migration_close_failed", slog.Any("source_error", sourceErr), slog.Any("db_error", dbErr))
		}
	}()

	migrator.Log = &migrateLogger{logger: logger, verbose: logger.Enabled(context.Background(), slog.LevelDebug)}

	from, dirty, err := migrator.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return fmt.Errorf("migration: failed to read version: %w", err)
	case dirty:
		return fmt.Errorf("migration: version %d is dirty, fix it by hand", from)
	}

	logger.Info("migration_started", slog.String("source", origin), slog.Uint64("from_version", uint64(from)))

	err = migrator.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("migration_already_up_to_date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration: up failed: %w", err)
	}

	to, _, _ := migrator.Version()
	logger.Info("migration_successful", slog.Uint64("from_version", uint64(from)), slog.Uint64("to_version", uint64(to)))

	return nil
}

func open(databaseURL string, source Source) (*migrate.Migrate, string, error) {
	if source.Path != "" {
		migrator, err := migrate.New("file://"+source.Path, databaseURL)
		return migrator, source.Path, err
	}

	if source.Embedded == nil {
		return nil, "", errors.New("no migration source configured")
	}

	driver, err := iofs.New(source.Embedded, source.Dir)
	if err != nil {
		return nil, "", err
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", driver, databaseURL)
	if err != nil {
		_ = driver.Close()
		return nil, "", err
	}

	return migrator, "embedded", nil
}

// ToPgx5DSN rewrites postgres:// and postgresql:// URLs to the pgx5:// scheme
// the driver registers. Other DSNs pass through.
func ToPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, found := strings.CutPrefix(dsn, prefix); found {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger routes golang-migrate output to slog at debug level.
type migrateLogger struct {
	logger  *slog.Logger
	verbose bool
}

func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *migrateLogger) Verbose() bool {
	return l.verbose
}
