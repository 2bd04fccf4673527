package seeder

import (
	"context"
	"fmt"

	"github.com/Rana718/volunteer-verse/internal/database"
	"github.com/Rana718/volunteer-verse/internal/types"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

func Verify(ctx context.Context, adapter database.DatabaseAdapter) (*Status, error) {
	status := &Status{Rows: make(map[string]int64)}

	for _, table := range types.InsertionOrder {
		count, err := adapter.CountRows(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		status.Rows[table] = count
	}

	for _, ref := range types.References {
		count, err := adapter.CountOrphans(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", ref, err)
		}
		status.Orphans = append(status.Orphans, Orphans{Reference: ref, Count: count})
	}

	return status, nil
}

func (s *Status) Print() {
	color.Cyan("📋 Rows")
	for _, table := range types.InsertionOrder {
		color.White("  %-20s %s", table+":", humanize.Comma(s.Rows[table]))
	}

	color.Cyan("🔗 References")
	for _, o := range s.Orphans {
		switch {
		case o.Count == 0:
			color.Green("  ✅ %s", o.Reference)
		case o.Reference.Enforced:
			color.Red("  ❌ %s: %s dangling", o.Reference, humanize.Comma(o.Count))
		default:
			color.Yellow("  ⚠️  %s: %s dangling (not enforced)", o.Reference, humanize.Comma(o.Count))
		}
	}
}
