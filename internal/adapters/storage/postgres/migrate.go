package postgres

import (
	"context"
	"database/sql"

	"med-reminder/internal/adapters/storage/postgres/migrations"

	"github.com/pressly/goose/v3"
)

// RunMigrations aplica las migraciones embebidas al arrancar.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
