package database

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// RunMigrations brings the conversation_states schema up to date. A dirty
// schema is reported instead of being forced.
func RunMigrations(dsn string, migrationsPath string, logger *zap.Logger) (err error) {
	dir, err := filepath.Abs(migrationsPath)
	if err != nil {
		return fmt.Errorf("migrations path: %w", err)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(dir), dsn)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	if _, dirty, verr := m.Version(); verr == nil && dirty {
		return errors.New("migration: schema is dirty, fix it by hand first")
	}

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Debug("schema already current")
	case err != nil:
		return fmt.Errorf("migration up: %w", err)
	}

	version, _, verr := m.Version()
	if verr != nil {
		return fmt.Errorf("migration version: %w", verr)
	}
	logger.Info("migrations applied", zap.Uint("version", version))
	return nil
}
