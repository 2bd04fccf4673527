package seeder

import (
	"strings"
	"testing"

	"github.com/Rana718/volunteer-verse/internal/types"
)

func TestNewPlan(t *testing.T) {
	tests := []struct {
		base  int
		want  Plan
		total int
	}{
		{1, Plan{Volunteers: 1, Events: 1, Organizations: 1, Supervisors: 3, Schedules: 3}, 9},
		{100, Plan{Volunteers: 100, Events: 4, Organizations: 1, Supervisors: 3, Schedules: 270}, 378},
		{260, Plan{Volunteers: 260, Events: 11, Organizations: 3, Supervisors: 7, Schedules: 702}, 983},
		{1000, Plan{Volunteers: 1000, Events: 39, Organizations: 10, Supervisors: 22, Schedules: 2700}, 3771},
		{265500, Plan{Volunteers: 265500, Events: 10251, Organizations: 2384, Supervisors: 5245, Schedules: 716850}, 1000230},
	}

	for _, tt := range tests {
		got := NewPlan(tt.base)
		if got != tt.want {
			t.Errorf("NewPlan(%d) = %+v, want %+v", tt.base, got, tt.want)
		}
		if got.Total() != tt.total {
			t.Errorf("NewPlan(%d).Total() = %d, want %d", tt.base, got.Total(), tt.total)
		}
	}
}

func TestPlanCountsArePositive(t *testing.T) {
	for base := 1; base <= 5000; base++ {
		p := NewPlan(base)

		for _, table := range types.InsertionOrder {
			if p.Count(table) <= 0 {
				t.Fatalf("NewPlan(%d): %s has %d rows", base, table, p.Count(table))
			}
		}

		if p.Supervisors < p.Organizations {
			t.Fatalf("NewPlan(%d): %d supervisors cannot cover %d organizations", base, p.Supervisors, p.Organizations)
		}

		sum := 0
		for _, table := range p.Tables() {
			sum += p.Count(table)
		}
		if sum != p.Total() {
			t.Fatalf("NewPlan(%d): Total() = %d, sum of tables = %d", base, p.Total(), sum)
		}
	}
}

func TestPlanCountUnknownTable(t *testing.T) {
	if got := NewPlan(1000).Count("attendees"); got != 0 {
		t.Errorf("Expected 0 for unknown table, got %d", got)
	}
}

func TestPlanTablesFollowInsertionOrder(t *testing.T) {
	tables := NewPlan(1000).Tables()
	if strings.Join(tables, ",") != strings.Join(types.InsertionOrder, ",") {
		t.Errorf("Tables() = %v, want %v", tables, types.InsertionOrder)
	}

	tables[0] = "changed"
	if types.InsertionOrder[0] != types.TableOrganizations {
		t.Error("Tables() must return a copy")
	}
}
