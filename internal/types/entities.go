package types

import (
	"time"
)

const (
	TableVolunteers    = "volunteers"
	TableOrganizations = "organizations"
	TableSupervisors   = "supervisors"
	TableEvents        = "events"
	TableSchedule      = "volunteer_schedule"
)

// InsertionOrder is the order in which tables are populated so that every
// foreign key points at rows that already exist.
var InsertionOrder = []string{
	TableOrganizations,
	TableSupervisors,
	TableEvents,
	TableVolunteers,
	TableSchedule,
}

type Volunteer struct {
	Name     string
	City     string
	Email    string
	Birthday *time.Time
}

type Organization struct {
	Name string
	City string
}

type Supervisor struct {
	OrgID int64
	Name  string
	Email string
}

// Event.EndTime is not guaranteed to be after StartTime.
type Event struct {
	SupID         int64
	Name          string
	TotalSpots    int
	MinAge        int
	ActivityLevel int
	Location      string
	StartTime     time.Time
	EndTime       time.Time
	Description   *string
}

type ScheduleLink struct {
	VolunteerID int64
	EventID     int64
}

// Reference describes a child column pointing at a parent key.
type Reference struct {
	Table     string
	Column    string
	RefTable  string
	RefColumn string
	Enforced  bool // backed by a FOREIGN KEY constraint
}

var References = []Reference{
	{Table: TableSupervisors, Column: "org_id", RefTable: TableOrganizations, RefColumn: "org_id", Enforced: true},
	{Table: TableEvents, Column: "sup_id", RefTable: TableSupervisors, RefColumn: "sup_id", Enforced: true},
	{Table: TableSchedule, Column: "volunteer_id", RefTable: TableVolunteers, RefColumn: "volunteer_id", Enforced: true},
	{Table: TableSchedule, Column: "event_id", RefTable: TableEvents, RefColumn: "event_id", Enforced: false},
}

func (r Reference) String() string {
	return r.Table + "." + r.Column + " -> " + r.RefTable + "." + r.RefColumn
}
