package seeder

import (
	"math"

	"github.com/Rana718/volunteer-verse/internal/types"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// Fixed ratios between table sizes; every count derives from the volunteer count.
const (
	VolunteersPerEvent         = 25.9
	EventsPerOrganization      = 4.3
	SupervisorsPerOrganization = 2.2
	SchedulesPerVolunteer      = 2.7
)

// Plan holds the target row count of every table for one run.
type Plan struct {
	Volunteers    int `json:"volunteers" yaml:"volunteers"`
	Events        int `json:"events" yaml:"events"`
	Organizations int `json:"organizations" yaml:"organizations"`
	Supervisors   int `json:"supervisors" yaml:"supervisors"`
	Schedules     int `json:"schedules" yaml:"schedules"`
}

// NewPlan derives the row counts from the base volunteer count.
// All counts are rounded up, so any base > 0 yields at least one row per table.
func NewPlan(base int) Plan {
	events := int(math.Ceil(float64(base) / VolunteersPerEvent))
	orgs := int(math.Ceil(float64(events) / EventsPerOrganization))

	return Plan{
		Volunteers:    base,
		Events:        events,
		Organizations: orgs,
		Supervisors:   int(math.Ceil(float64(orgs) * SupervisorsPerOrganization)),
		Schedules:     int(math.Ceil(float64(base) * SchedulesPerVolunteer)),
	}
}

func (p Plan) Total() int {
	return p.Volunteers + p.Events + p.Organizations + p.Supervisors + p.Schedules
}

// Tables lists the tables in the order they are filled.
func (p Plan) Tables() []string {
	return append([]string(nil), types.InsertionOrder...)
}

// Count returns the planned rows for a table name.
func (p Plan) Count(table string) int {
	switch table {
	case types.TableVolunteers:
		return p.Volunteers
	case types.TableEvents:
		return p.Events
	case types.TableOrganizations:
		return p.Organizations
	case types.TableSupervisors:
		return p.Supervisors
	case types.TableSchedule:
		return p.Schedules
	}
	return 0
}

func (p Plan) Print() {
	color.Cyan("📊 Planned rows")
	for _, table := range p.Tables() {
		color.White("  %-20s %s", table+":", humanize.Comma(int64(p.Count(table))))
	}
	color.Cyan("  %-20s %s", "total:", humanize.Comma(int64(p.Total())))
}
