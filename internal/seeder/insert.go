package seeder

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/volunteer-verse/internal/database"
	"github.com/Rana718/volunteer-verse/internal/types"
)

// Inserter issues one parameterized INSERT per record.
type Inserter struct {
	qb squirrel.StatementBuilderType
}

func NewInserter(qb squirrel.StatementBuilderType) Inserter {
	return Inserter{qb: qb}
}

// civilDate sends a birthday as "YYYY-MM-DD" so no session time zone can
// shift it to another day.
func civilDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(time.DateOnly)
}

func (in Inserter) exec(ctx context.Context, tx database.Execer, b squirrel.InsertBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return tx.Exec(ctx, query, args...)
}

func (in Inserter) Volunteer(ctx context.Context, tx database.Execer, v types.Volunteer) error {
	return in.exec(ctx, tx, in.qb.Insert(types.TableVolunteers).
		Columns("name", "city", "email", "birthday").
		Values(v.Name, v.City, v.Email, civilDate(v.Birthday)))
}

func (in Inserter) Organization(ctx context.Context, tx database.Execer, o types.Organization) error {
	return in.exec(ctx, tx, in.qb.Insert(types.TableOrganizations).
		Columns("name", "city").
		Values(o.Name, o.City))
}

func (in Inserter) Supervisor(ctx context.Context, tx database.Execer, s types.Supervisor) error {
	return in.exec(ctx, tx, in.qb.Insert(types.TableSupervisors).
		Columns("org_id", "sup_name", "email").
		Values(s.OrgID, s.Name, s.Email))
}

func (in Inserter) Event(ctx context.Context, tx database.Execer, e types.Event) error {
	return in.exec(ctx, tx, in.qb.Insert(types.TableEvents).
		Columns("sup_id", "name", "total_spots", "min_age", "activity_level", "location", "start_time", "end_time", "description").
		Values(e.SupID, e.Name, e.TotalSpots, e.MinAge, e.ActivityLevel, e.Location, e.StartTime, e.EndTime, e.Description))
}

func (in Inserter) ScheduleLink(ctx context.Context, tx database.Execer, l types.ScheduleLink) error {
	return in.exec(ctx, tx, in.qb.Insert(types.TableSchedule).
		Columns("volunteer_id", "event_id").
		Values(l.VolunteerID, l.EventID))
}
