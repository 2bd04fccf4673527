package common

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/volunteer-verse/internal/types"
)

// Execer runs a single statement inside the current transaction.
type Execer interface {
	Exec(ctx context.Context, query string, args ...interface{}) error
}

// Quoter quotes an identifier for the target dialect.
type Quoter func(string) string

func CountRowsQuery(qb squirrel.StatementBuilderType, quote Quoter, table string) (string, []interface{}, error) {
	return qb.Select("COUNT(*)").From(quote(table)).ToSql()
}

// OrphansQuery counts child rows whose reference has no matching parent row.
func OrphansQuery(qb squirrel.StatementBuilderType, quote Quoter, ref types.Reference) (string, []interface{}, error) {
	parentKey := "p." + quote(ref.RefColumn)
	return qb.Select("COUNT(*)").
		From(quote(ref.Table) + " c").
		LeftJoin(fmt.Sprintf("%s p ON c.%s = %s", quote(ref.RefTable), quote(ref.Column), parentKey)).
		Where(squirrel.Eq{parentKey: nil}).
		ToSql()
}
