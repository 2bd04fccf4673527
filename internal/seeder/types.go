package seeder

import (
	"time"

	"github.com/Rana718/volunteer-verse/internal/types"
)

// Report summarises one seeding run.
type Report struct {
	RunID    string
	Plan     Plan
	Order    []string
	Inserted map[string]int
	Elapsed  time.Duration
}

func (r *Report) Total() int {
	total := 0
	for _, n := range r.Inserted {
		total += n
	}
	return total
}

// Status is the result of Verify: row counts and dangling references.
type Status struct {
	Rows    map[string]int64
	Orphans []Orphans
}

type Orphans struct {
	Reference types.Reference
	Count     int64
}

// OK reports whether every reference backed by a constraint resolves.
func (s *Status) OK() bool {
	for _, o := range s.Orphans {
		if o.Reference.Enforced && o.Count > 0 {
			return false
		}
	}
	return true
}
