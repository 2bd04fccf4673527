package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/volunteer-verse/internal/database/common"
	"github.com/Rana718/volunteer-verse/internal/schema"
	"github.com/Rana718/volunteer-verse/internal/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// SQLSTATE class 23 is integrity_constraint_violation.
const integrityViolationClass = "23"

type Adapter struct {
	pool *pgxpool.Pool
	qb   squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return fmt.Errorf("failed to parse connection URL: %w", err)
	}

	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	config.MaxConns = 2
	config.MinConns = 0
	config.MaxConnLifetime = 15 * time.Minute
	config.MaxConnIdleTime = 3 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return common.Unreachable(err)
	}

	p.pool = pool
	return nil
}

func (p *Adapter) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Adapter) Ping(ctx context.Context) error {
	if err := p.pool.Ping(ctx); err != nil {
		return common.Unreachable(err)
	}
	return nil
}

func (p *Adapter) StatementBuilder() squirrel.StatementBuilderType {
	return p.qb
}

func (p *Adapter) ResetSchema(ctx context.Context) error {
	statements, err := schema.Statements("postgres")
	if err != nil {
		return err
	}

	return p.WithTx(ctx, func(tx common.Execer) error {
		for i, stmt := range statements {
			if err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to execute statement %d: %w", i+1, err)
			}
		}
		return nil
	})
}

func (p *Adapter) WithTx(ctx context.Context, fn func(common.Execer) error) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", classify(err))
	}
	defer tx.Rollback(ctx)

	if err := fn(&pgTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", classify(err))
	}
	return nil
}

func (p *Adapter) CountRows(ctx context.Context, table string) (int64, error) {
	query, args, err := common.CountRowsQuery(p.qb, pq.QuoteIdentifier, table)
	if err != nil {
		return 0, err
	}
	return p.scanCount(ctx, query, args)
}

func (p *Adapter) CountOrphans(ctx context.Context, ref types.Reference) (int64, error) {
	query, args, err := common.OrphansQuery(p.qb, pq.QuoteIdentifier, ref)
	if err != nil {
		return 0, err
	}
	return p.scanCount(ctx, query, args)
}

func (p *Adapter) scanCount(ctx context.Context, query string, args []interface{}) (int64, error) {
	var count int64
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, classify(err)
	}
	return count, nil
}

type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) Exec(ctx context.Context, query string, args ...interface{}) error {
	if _, err := t.tx.Exec(ctx, query, args...); err != nil {
		return classify(err)
	}
	return nil
}

// classify recognises both pgx and lib/pq server errors.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == integrityViolationClass {
		return &common.ConstraintError{Constraint: pgErr.ConstraintName, Err: err}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code.Class()) == integrityViolationClass {
		return &common.ConstraintError{Constraint: pqErr.Constraint, Err: err}
	}

	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return common.Unreachable(err)
	}
	return err
}
