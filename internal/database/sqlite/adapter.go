package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/volunteer-verse/internal/database/common"
	"github.com/mattn/go-sqlite3"
)

type Adapter struct {
	*common.SQLDB
}

func New() *Adapter {
	return &Adapter{
		SQLDB: &common.SQLDB{
			Dialect:  "sqlite",
			QB:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
			Quote:    quoteIdentifier,
			Classify: classify,
		},
	}
}

// Connect accepts "sqlite://path", a bare path or ":memory:".
func (s *Adapter) Connect(ctx context.Context, url string) error {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	if strings.Contains(dbPath, "?") {
		dbPath += "&_foreign_keys=on"
	} else {
		dbPath += "?_foreign_keys=on"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// One connection keeps the foreign_keys pragma in force and lets
	// :memory: databases survive across statements.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return common.Unreachable(err)
	}

	s.DB = db
	return nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func classify(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return &common.ConstraintError{Err: err}
	}
	return err
}
