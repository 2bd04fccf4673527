package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/volunteer-verse/internal/database/common"
	mysqldriver "github.com/go-sql-driver/mysql"
)

// Server error numbers treated as constraint violations.
var constraintErrors = map[uint16]string{
	1048: "not null",
	1062: "unique",
	1451: "foreign key (parent row)",
	1452: "foreign key (child row)",
	3819: "check",
}

type Adapter struct {
	*common.SQLDB
}

func New() *Adapter {
	return &Adapter{
		SQLDB: &common.SQLDB{
			Dialect:  "mysql",
			QB:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
			Quote:    quoteIdentifier,
			Classify: classify,
		},
	}
}

// Connect accepts either a go-sql-driver DSN or a mysql:// URL.
func (m *Adapter) Connect(ctx context.Context, dbURL string) error {
	dsn, err := toDSN(dbURL)
	if err != nil {
		return err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(15 * time.Minute)

	m.DB = db
	return nil
}

func toDSN(rawURL string) (string, error) {
	if !strings.HasPrefix(rawURL, "mysql://") {
		cfg, err := mysqldriver.ParseDSN(rawURL)
		if err != nil {
			return "", fmt.Errorf("failed to parse MySQL DSN: %w", err)
		}
		cfg.ParseTime = true
		return cfg.FormatDSN(), nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse MySQL URL: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("missing host in MySQL URL")
	}

	cfg := mysqldriver.NewConfig()
	cfg.Net = "tcp"
	cfg.ParseTime = true
	cfg.Addr = u.Host
	if u.Port() == "" {
		cfg.Addr = u.Host + ":3306"
	}
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
	}

	return cfg.FormatDSN(), nil
}

func quoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func classify(err error) error {
	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) {
		if kind, ok := constraintErrors[mysqlErr.Number]; ok {
			return &common.ConstraintError{Constraint: kind, Err: err}
		}
	}
	if errors.Is(err, mysqldriver.ErrInvalidConn) {
		return common.Unreachable(err)
	}
	return err
}
