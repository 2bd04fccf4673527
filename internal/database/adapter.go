package database

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/volunteer-verse/internal/database/common"
	"github.com/Rana718/volunteer-verse/internal/types"
)

type Execer = common.Execer

var (
	ErrConstraintViolation = common.ErrConstraintViolation
	ErrConnectivity        = common.ErrConnectivity
)

type DatabaseAdapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// Drops and recreates the five Volunteer Verse tables in one transaction.
	ResetSchema(ctx context.Context) error

	// WithTx commits when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(Execer) error) error
	StatementBuilder() squirrel.StatementBuilderType

	CountRows(ctx context.Context, table string) (int64, error)
	CountOrphans(ctx context.Context, ref types.Reference) (int64, error)
}
