package seeder

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// maxUniqueAttempts bounds the retries for one unique value.
const maxUniqueAttempts = 1000

// ErrUniqueExhausted is returned when no new unique value could be drawn.
var ErrUniqueExhausted = errors.New("unique values exhausted")

// DataGenerator is the fake-data source for one run. Its unique trackers only
// know the values it issued itself, so a fresh generator is needed per run.
type DataGenerator struct {
	rand      *rand.Rand
	emails    map[string]struct{}
	companies map[string]struct{}
}

// NewDataGenerator seeds the generator; seed 0 uses the clock.
func NewDataGenerator(seed uint64) *DataGenerator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &DataGenerator{
		rand:      rand.New(rand.NewPCG(seed, seed>>1|1)),
		emails:    make(map[string]struct{}),
		companies: make(map[string]struct{}),
	}
}

// IntBetween returns a uniform integer in [lo, hi].
func (g *DataGenerator) IntBetween(lo, hi int) int {
	return lo + g.rand.IntN(hi-lo+1)
}

func (g *DataGenerator) pick(words []string) string {
	return words[g.rand.IntN(len(words))]
}

func (g *DataGenerator) FirstName() string {
	return g.pick(firstNames)
}

func (g *DataGenerator) LastName() string {
	return g.pick(lastNames)
}

func (g *DataGenerator) Name() string {
	return g.FirstName() + " " + g.LastName()
}

func (g *DataGenerator) City() string {
	return g.pick(cities)
}

func (g *DataGenerator) Email() string {
	first := strings.ToLower(g.FirstName())
	last := strings.ToLower(g.LastName())

	var local string
	switch g.rand.IntN(3) {
	case 0:
		local = first + "." + last
	case 1:
		local = first[:1] + last
	default:
		local = first + last
	}
	if g.rand.IntN(2) == 0 {
		local += fmt.Sprintf("%d", g.rand.IntN(1000))
	}
	return local + "@" + g.pick(emailDomains)
}

func (g *DataGenerator) UniqueEmail() (string, error) {
	return g.unique(g.emails, "email", g.Email)
}

func (g *DataGenerator) Company() string {
	switch g.rand.IntN(3) {
	case 0:
		return g.LastName() + " " + g.pick(companySuffixes)
	case 1:
		return g.LastName() + "-" + g.LastName()
	default:
		return fmt.Sprintf("%s, %s and %s", g.LastName(), g.LastName(), g.LastName())
	}
}

func (g *DataGenerator) UniqueCompany() (string, error) {
	return g.unique(g.companies, "company", g.Company)
}

func (g *DataGenerator) unique(seen map[string]struct{}, kind string, next func() string) (string, error) {
	for i := 0; i < maxUniqueAttempts; i++ {
		v := next()
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		return v, nil
	}
	return "", fmt.Errorf("%w: no new %s after %d attempts (%d issued)", ErrUniqueExhausted, kind, maxUniqueAttempts, len(seen))
}

// BS returns a short catch phrase used for event names.
func (g *DataGenerator) BS() string {
	return g.pick(bsVerbs) + " " + g.pick(bsAdjectives) + " " + g.pick(bsNouns)
}

// Sentence returns nbWords lorem words, capitalised and terminated by a period.
func (g *DataGenerator) Sentence(nbWords int) string {
	words := make([]string, nbWords)
	for i := range words {
		words[i] = g.pick(loremWords)
	}
	sentence := strings.Join(words, " ")
	if sentence == "" {
		return ""
	}
	return strings.ToUpper(sentence[:1]) + sentence[1:] + "."
}

// DateOfBirth returns a date for someone between minAge and maxAge years old at now.
func (g *DataGenerator) DateOfBirth(now time.Time, minAge, maxAge int) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	earliest := today.AddDate(-(maxAge + 1), 0, 1)
	latest := today.AddDate(-minAge, 0, 0)

	days := int(latest.Sub(earliest).Hours() / 24)
	return earliest.AddDate(0, 0, g.rand.IntN(days+1))
}

// FutureTime returns a whole-second instant in (now, now+30 days].
func (g *DataGenerator) FutureTime(now time.Time) time.Time {
	const window = 30 * 24 * 60 * 60
	offset := 1 + g.rand.Int64N(window)
	return now.Truncate(time.Second).Add(time.Duration(offset) * time.Second)
}
