package seeder

import (
	"time"

	"github.com/Rana718/volunteer-verse/internal/types"
)

const (
	minVolunteerAge = 6
	maxVolunteerAge = 98

	minTotalSpots     = 15
	maxTotalSpots     = 100
	maxMinAge         = 18
	maxActivityLevel  = 5
	descriptionLength = 5
)

func (g *DataGenerator) Volunteer(now time.Time) (types.Volunteer, error) {
	name := g.Name()
	city := g.City()
	email, err := g.UniqueEmail()
	if err != nil {
		return types.Volunteer{}, err
	}
	birthday := g.DateOfBirth(now, minVolunteerAge, maxVolunteerAge)

	return types.Volunteer{
		Name:     name,
		City:     city,
		Email:    email,
		Birthday: &birthday,
	}, nil
}

func (g *DataGenerator) Organization() (types.Organization, error) {
	name, err := g.UniqueCompany()
	if err != nil {
		return types.Organization{}, err
	}
	return types.Organization{Name: name, City: g.City()}, nil
}

// RoundRobinOrgID spreads supervisors evenly: supervisor i goes to
// organization (i mod numOrgs) + 1.
func RoundRobinOrgID(i, numOrgs int) int64 {
	return int64(i%numOrgs + 1)
}

func (g *DataGenerator) Supervisor(i, numOrgs int) (types.Supervisor, error) {
	name := g.Name()
	email, err := g.UniqueEmail()
	if err != nil {
		return types.Supervisor{}, err
	}
	return types.Supervisor{
		OrgID: RoundRobinOrgID(i, numOrgs),
		Name:  name,
		Email: email,
	}, nil
}

// Event picks its supervisor uniformly, so some supervisors may own no event.
// Start and end are drawn independently; end may precede start.
func (g *DataGenerator) Event(numSups int, now time.Time) types.Event {
	description := g.Sentence(descriptionLength)

	return types.Event{
		SupID:         int64(g.IntBetween(1, numSups)),
		Name:          g.BS(),
		TotalSpots:    g.IntBetween(minTotalSpots, maxTotalSpots),
		MinAge:        g.IntBetween(0, maxMinAge),
		ActivityLevel: g.IntBetween(0, maxActivityLevel),
		Location:      g.City(),
		StartTime:     g.FutureTime(now),
		EndTime:       g.FutureTime(now),
		Description:   &description,
	}
}

// ScheduleLink draws both ids independently; repeated pairs are allowed.
func (g *DataGenerator) ScheduleLink(numVolunteers, numEvents int) types.ScheduleLink {
	return types.ScheduleLink{
		VolunteerID: int64(g.IntBetween(1, numVolunteers)),
		EventID:     int64(g.IntBetween(1, numEvents)),
	}
}
