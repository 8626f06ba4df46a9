package postgres

import (
	"context"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type schemaMigration struct {
	Version   string    `gorm:"column:version;primaryKey"`
	AppliedAt time.Time `gorm:"column:applied_at;autoCreateTime"`
}

func (schemaMigration) TableName() string { return "schema_migrations" }

const createSchemaMigrations = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version    text PRIMARY KEY,
	applied_at timestamptz NOT NULL DEFAULT now()
)`

// Migrate applies every *.sql file in files that has not been recorded in
// schema_migrations, in lexical order. Each file runs in its own transaction
// together with its bookkeeping row.
func Migrate(ctx context.Context, db *gorm.DB, files fs.FS, logger *slog.Logger) error {
	db = db.WithContext(ctx)
	if err := db.Exec(createSchemaMigrations).Error; err != nil {
		return errors.Wrap(err, "create schema_migrations")
	}

	var applied []string
	if err := db.Model(&schemaMigration{}).Pluck("version", &applied).Error; err != nil {
		return errors.Wrap(err, "list applied migrations")
	}

	pending, err := pendingMigrations(files, applied)
	if err != nil {
		return err
	}

	for _, name := range pending {
		body, err := fs.ReadFile(files, name)
		if err != nil {
			return errors.Wrapf(err, "read migration %s", name)
		}

		version := migrationVersion(name)
		logger.InfoContext(ctx, "Applying migration", slog.String("version", version))

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(string(body)).Error; err != nil {
				return errors.Wrapf(err, "exec migration %s", name)
			}

			return errors.Wrapf(tx.Create(&schemaMigration{Version: version}).Error, "record migration %s", name)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func pendingMigrations(files fs.FS, applied []string) ([]string, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, errors.Wrap(err, "list migrations")
	}

	done := make(map[string]struct{}, len(applied))
	for _, v := range applied {
		done[v] = struct{}{}
	}

	pending := names[:0]
	for _, name := range names {
		if _, ok := done[migrationVersion(name)]; !ok {
			pending = append(pending, name)
		}
	}
	sort.Strings(pending)

	return pending, nil
}

func migrationVersion(name string) string {
	return strings.TrimSuffix(path.Base(name), ".sql")
}
