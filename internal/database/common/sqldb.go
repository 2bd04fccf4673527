package common

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/volunteer-verse/internal/schema"
	"github.com/Rana718/volunteer-verse/internal/types"
)

// SQLDB carries the database/sql plumbing shared by the MySQL and SQLite adapters.
type SQLDB struct {
	DB       *sql.DB
	Dialect  string
	QB       squirrel.StatementBuilderType
	Quote    Quoter
	Classify func(error) error
}

func (s *SQLDB) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

func (s *SQLDB) Ping(ctx context.Context) error {
	if err := s.DB.PingContext(ctx); err != nil {
		return Unreachable(err)
	}
	return nil
}

func (s *SQLDB) StatementBuilder() squirrel.StatementBuilderType {
	return s.QB
}

func (s *SQLDB) ResetSchema(ctx context.Context) error {
	statements, err := schema.Statements(s.Dialect)
	if err != nil {
		return err
	}

	return s.WithTx(ctx, func(tx Execer) error {
		for i, stmt := range statements {
			if err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to execute statement %d: %w", i+1, err)
			}
		}
		return nil
	})
}

func (s *SQLDB) WithTx(ctx context.Context, fn func(Execer) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", s.classify(err))
	}
	defer tx.Rollback()

	if err := fn(&sqlTx{tx: tx, classify: s.classify}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", s.classify(err))
	}
	return nil
}

func (s *SQLDB) CountRows(ctx context.Context, table string) (int64, error) {
	query, args, err := CountRowsQuery(s.QB, s.Quote, table)
	if err != nil {
		return 0, err
	}
	return s.scanCount(ctx, query, args)
}

func (s *SQLDB) CountOrphans(ctx context.Context, ref types.Reference) (int64, error) {
	query, args, err := OrphansQuery(s.QB, s.Quote, ref)
	if err != nil {
		return 0, err
	}
	return s.scanCount(ctx, query, args)
}

func (s *SQLDB) scanCount(ctx context.Context, query string, args []interface{}) (int64, error) {
	var count int64
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, s.classify(err)
	}
	return count, nil
}

func (s *SQLDB) classify(err error) error {
	if s.Classify == nil {
		return err
	}
	return s.Classify(err)
}

type sqlTx struct {
	tx       *sql.Tx
	classify func(error) error
}

func (t *sqlTx) Exec(ctx context.Context, query string, args ...interface{}) error {
	if _, err := t.tx.ExecContext(ctx, query, args...); err != nil {
		return t.classify(err)
	}
	return nil
}
