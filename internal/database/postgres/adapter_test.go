package postgres

import (
	"errors"
	"testing"

	"github.com/Rana718/volunteer-verse/internal/database/common"
	"github.com/Rana718/volunteer-verse/internal/types"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint bool
		named      string
	}{
		{"pgx unique", &pgconn.PgError{Code: "23505", ConstraintName: "volunteers_email_key"}, true, "volunteers_email_key"},
		{"pgx foreign key", &pgconn.PgError{Code: "23503", ConstraintName: "events_sup_id_fkey"}, true, "events_sup_id_fkey"},
		{"pgx syntax", &pgconn.PgError{Code: "42601"}, false, ""},
		{"pq unique", &pq.Error{Code: "23505", Constraint: "supervisor_email_key"}, true, "supervisor_email_key"},
		{"plain", errors.New("boom"), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.err)
			if errors.Is(err, common.ErrConstraintViolation) != tt.constraint {
				t.Fatalf("classify(%v) constraint = %v, want %v", tt.err, !tt.constraint, tt.constraint)
			}
			if !tt.constraint {
				return
			}
			var ce *common.ConstraintError
			if !errors.As(err, &ce) {
				t.Fatalf("Expected *ConstraintError, got %T", err)
			}
			if ce.Constraint != tt.named {
				t.Errorf("Expected constraint %q, got %q", tt.named, ce.Constraint)
			}
		})
	}
}

func TestOrphansQueryUsesDollarPlaceholders(t *testing.T) {
	adapter := New()
	ref := types.Reference{Table: "events", Column: "sup_id", RefTable: "supervisors", RefColumn: "sup_id"}

	query, args, err := common.OrphansQuery(adapter.StatementBuilder(), pq.QuoteIdentifier, ref)
	if err != nil {
		t.Fatalf("OrphansQuery failed: %v", err)
	}

	want := `SELECT COUNT(*) FROM "events" c LEFT JOIN "supervisors" p ON c."sup_id" = p."sup_id" WHERE p."sup_id" IS NULL`
	if query != want {
		t.Errorf("Unexpected query:\n got: %s\nwant: %s", query, want)
	}
	if len(args) != 0 {
		t.Errorf("Expected no args, got %v", args)
	}
}
