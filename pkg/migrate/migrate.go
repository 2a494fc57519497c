package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/carebridge/eldercare-backend/pkg/config"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var embedded embed.FS

// Dir returns the embedded migration directory for the configured driver.
// Each dialect carries the same version sequence; versions are the contract,
// the SQL text is per-engine.
func Dir(driver string) (string, error) {
	switch driver {
	case config.DriverSQLite:
		return "migrations/sqlite", nil
	case config.DriverPostgres:
		return "migrations/postgres", nil
	default:
		return "", fmt.Errorf("no migrations for driver %q", driver)
	}
}

func dialect(driver string) (string, error) {
	switch driver {
	case config.DriverSQLite:
		return "sqlite3", nil
	case config.DriverPostgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("no goose dialect for driver %q", driver)
	}
}

// Run executes a goose command against the embedded migrations for the
// configured driver.
func Run(ctx context.Context, db *sql.DB, driver, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}

	dir, err := Dir(driver)
	if err != nil {
		return err
	}
	dl, err := dialect(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedded)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dl); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	// RunContext prints status output to stdout (goose internal)
	if err := goose.RunContext(ctx, command, db, dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
