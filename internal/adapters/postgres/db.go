// Package postgres implements the repositories on PostgreSQL using a pgx
// connection pool. The schema is managed by goose migrations embedded in the
// binary.
package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/config"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

//go:embed migrations/*.sql
var migrations embed.FS

var _ ports.HealthChecker = (*DB)(nil)

// DB owns the connection pool shared by every repository.
type DB struct {
	Pool *pgxpool.Pool
}

// Connect opens a pool and pings it.
func Connect(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	if cfg.URL == "" {
		return nil, errors.New("database.url is required for the postgres driver")
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &DB{Pool: pool}, nil
}

// Close releases every pooled connection.
func (db *DB) Close() { db.Pool.Close() }

// Migrate applies pending migrations.
func (db *DB) Migrate(ctx context.Context, logger *slog.Logger) error {
	sqlDB := stdlib.OpenDBFromPool(db.Pool)
	defer sqlDB.Close()

	dir, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("opening migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, dir)
	if err != nil {
		return fmt.Errorf("creating migration provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	for _, r := range results {
		logger.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (db *DB) Name() string { return "database" }

// HealthCheck implements ports.HealthChecker.
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Postgres error codes the repositories translate.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// translate maps driver errors onto domain errors.
func translate(entity string, id int64, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %s already exists: %w", entity, uniqueField(pgErr.ConstraintName), domain.ErrConflict)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s violates %s: %w", entity, pgErr.ConstraintName, domain.ErrConflict)
		}
		return fmt.Errorf("%s: %w", entity, err)
	}

	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return fmt.Errorf("%s: %w: %w", entity, domain.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", entity, err)
}

// uniqueFields names the column behind each unique constraint.
var uniqueFields = map[string]string{
	"staff_email_key":           "email",
	"users_email_key":           "email",
	"invoices_number_key":       "number",
	"inventory_items_sku_key":   "sku",
	"documents_storage_key_key": "storage key",
}

func uniqueField(constraint string) string {
	if f, ok := uniqueFields[constraint]; ok {
		return f
	}
	return constraint
}

// where accumulates AND-ed filter conditions with positional arguments.
type where struct {
	conds []string
	args  []any
}

// add appends cond, which must contain one %d for the argument position.
func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func deleteByID(ctx context.Context, q querier, table, entity string, id int64) error {
	tag, err := q.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return translate(entity, id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// nonNil keeps empty listings encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
