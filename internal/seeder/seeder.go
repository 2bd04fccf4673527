package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/Rana718/volunteer-verse/internal/config"
	"github.com/Rana718/volunteer-verse/internal/database"
	"github.com/Rana718/volunteer-verse/internal/types"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

type Seeder struct {
	config    *config.Config
	adapter   database.DatabaseAdapter
	generator *DataGenerator
	inserter  Inserter
	now       func() time.Time
}

// New prepares a run. The adapter must already be connected.
func New(cfg *config.Config, adapter database.DatabaseAdapter) *Seeder {
	return &Seeder{
		config:   cfg,
		adapter:  adapter,
		inserter: NewInserter(adapter.StatementBuilder()),
		now:      time.Now,
	}
}

// Seed drops and recreates the schema, then fills every table according to
// the plan. The first failing statement aborts the run. Each call starts with
// a fresh DataGenerator, so unique trackers never outlive a run.
func (s *Seeder) Seed(ctx context.Context) (*Report, error) {
	started := s.now()
	plan := NewPlan(s.config.Seed.Volunteers)
	s.generator = NewDataGenerator(s.config.Seed.RandomSeed)

	order, err := VolunteerVerseGraph().BuildInsertionOrder()
	if err != nil {
		return nil, fmt.Errorf("failed to build insertion order: %w", err)
	}

	report := &Report{
		RunID:    uuid.NewString(),
		Plan:     plan,
		Order:    order,
		Inserted: make(map[string]int),
	}

	color.Cyan("🌱 Starting Volunteer Verse seeding (run %s)", report.RunID)
	fmt.Println()
	plan.Print()
	fmt.Println()

	color.Yellow("🗑️  Dropping and recreating tables...")
	if err := s.adapter.ResetSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset schema: %w", err)
	}
	color.Green("✅ Schema ready")
	fmt.Println()

	switch s.config.Seed.Transaction {
	case config.TransactionPerTable:
		for _, table := range order {
			err := s.adapter.WithTx(ctx, func(tx database.Execer) error {
				return s.seedTable(ctx, tx, table, plan, report)
			})
			if err != nil {
				return nil, err
			}
		}
	default:
		color.Cyan("🔒 Single transaction for the whole run")
		err := s.adapter.WithTx(ctx, func(tx database.Execer) error {
			for _, table := range order {
				if err := s.seedTable(ctx, tx, table, plan, report); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			color.Yellow("🔄 Transaction rolled back")
			return nil, err
		}
		color.Cyan("🔓 Transaction committed")
	}

	report.Elapsed = s.now().Sub(started)
	color.Green("\n✅ total rows added: %s (%s)", humanize.Comma(int64(report.Total())), report.Elapsed.Round(time.Millisecond))
	return report, nil
}

func (s *Seeder) seedTable(ctx context.Context, tx database.Execer, table string, plan Plan, report *Report) error {
	count := plan.Count(table)
	color.Cyan("  📝 Seeding %s (%s records)...", table, humanize.Comma(int64(count)))

	now := s.now()
	for i := 0; i < count; i++ {
		if err := s.insertOne(ctx, tx, table, i, plan, now); err != nil {
			return fmt.Errorf("failed to seed table %s (row %d): %w", table, i+1, err)
		}
	}

	report.Inserted[table] = count
	color.Green("  ✅ %s seeded successfully", table)
	return nil
}

func (s *Seeder) insertOne(ctx context.Context, tx database.Execer, table string, i int, plan Plan, now time.Time) error {
	g := s.generator

	switch table {
	case types.TableOrganizations:
		org, err := g.Organization()
		if err != nil {
			return err
		}
		return s.inserter.Organization(ctx, tx, org)
	case types.TableSupervisors:
		sup, err := g.Supervisor(i, plan.Organizations)
		if err != nil {
			return err
		}
		return s.inserter.Supervisor(ctx, tx, sup)
	case types.TableEvents:
		return s.inserter.Event(ctx, tx, g.Event(plan.Supervisors, now))
	case types.TableVolunteers:
		vol, err := g.Volunteer(now)
		if err != nil {
			return err
		}
		return s.inserter.Volunteer(ctx, tx, vol)
	case types.TableSchedule:
		return s.inserter.ScheduleLink(ctx, tx, g.ScheduleLink(plan.Volunteers, plan.Events))
	default:
		return fmt.Errorf("unknown table: %s", table)
	}
}
