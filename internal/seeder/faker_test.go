package seeder

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var fixedNow = time.Date(2026, time.October, 17, 15, 30, 0, 0, time.UTC)

func TestUniqueEmailNeverRepeats(t *testing.T) {
	g := NewDataGenerator(1)
	seen := make(map[string]bool)

	for i := 0; i < 5000; i++ {
		email, err := g.UniqueEmail()
		if err != nil {
			t.Fatalf("UniqueEmail failed after %d values: %v", i, err)
		}
		if seen[email] {
			t.Fatalf("Email %q issued twice", email)
		}
		if !strings.Contains(email, "@") {
			t.Fatalf("Email %q has no domain", email)
		}
		seen[email] = true
	}
}

func TestUniqueCompanyNeverRepeats(t *testing.T) {
	g := NewDataGenerator(2)
	seen := make(map[string]bool)

	for i := 0; i < 2000; i++ {
		name, err := g.UniqueCompany()
		if err != nil {
			t.Fatalf("UniqueCompany failed after %d values: %v", i, err)
		}
		if seen[name] {
			t.Fatalf("Company %q issued twice", name)
		}
		seen[name] = true
	}
}

func TestUniqueTrackersArePerGenerator(t *testing.T) {
	first := NewDataGenerator(42)
	second := NewDataGenerator(42)

	for i := 0; i < 100; i++ {
		a, err := first.UniqueEmail()
		if err != nil {
			t.Fatalf("first generator: %v", err)
		}
		b, err := second.UniqueEmail()
		if err != nil {
			t.Fatalf("second generator: %v", err)
		}
		if a != b {
			t.Fatalf("Expected identical sequences for identical seeds, got %q and %q", a, b)
		}
	}
}

func TestUniqueExhausted(t *testing.T) {
	g := NewDataGenerator(3)
	seen := make(map[string]struct{})
	constant := func() string { return "same@example.com" }

	if _, err := g.unique(seen, "email", constant); err != nil {
		t.Fatalf("First draw should succeed: %v", err)
	}
	if _, err := g.unique(seen, "email", constant); !errors.Is(err, ErrUniqueExhausted) {
		t.Errorf("Expected ErrUniqueExhausted, got %v", err)
	}
}

func TestIntBetween(t *testing.T) {
	g := NewDataGenerator(4)
	hitLow, hitHigh := false, false

	for i := 0; i < 2000; i++ {
		n := g.IntBetween(15, 100)
		if n < 15 || n > 100 {
			t.Fatalf("IntBetween(15, 100) = %d", n)
		}
		hitLow = hitLow || n == 15
		hitHigh = hitHigh || n == 100
	}

	if !hitLow || !hitHigh {
		t.Errorf("Expected both bounds to be reachable (low=%v high=%v)", hitLow, hitHigh)
	}
}

func ageAt(now, birthday time.Time) int {
	age := now.Year() - birthday.Year()
	if now.Month() < birthday.Month() || (now.Month() == birthday.Month() && now.Day() < birthday.Day()) {
		age--
	}
	return age
}

func TestDateOfBirthRange(t *testing.T) {
	g := NewDataGenerator(5)

	for i := 0; i < 5000; i++ {
		dob := g.DateOfBirth(fixedNow, 6, 98)
		if age := ageAt(fixedNow, dob); age < 6 || age > 98 {
			t.Fatalf("DateOfBirth produced %s (age %d)", dob.Format("2006-01-02"), age)
		}
		if dob.Hour() != 0 || dob.Minute() != 0 || dob.Second() != 0 {
			t.Fatalf("DateOfBirth should be a date, got %s", dob)
		}
	}
}

func TestFutureTime(t *testing.T) {
	g := NewDataGenerator(6)
	limit := fixedNow.Add(30 * 24 * time.Hour)

	for i := 0; i < 2000; i++ {
		ts := g.FutureTime(fixedNow)
		if !ts.After(fixedNow) || ts.After(limit) {
			t.Fatalf("FutureTime = %s, want within (%s, %s]", ts, fixedNow, limit)
		}
	}
}

func TestSentence(t *testing.T) {
	g := NewDataGenerator(7)
	sentence := g.Sentence(5)

	if !strings.HasSuffix(sentence, ".") {
		t.Errorf("Sentence %q should end with a period", sentence)
	}
	if words := strings.Fields(sentence); len(words) != 5 {
		t.Errorf("Expected 5 words, got %d in %q", len(words), sentence)
	}
	if first := sentence[:1]; first != strings.ToUpper(first) {
		t.Errorf("Sentence %q should start with a capital letter", sentence)
	}
	if g.Sentence(0) != "" {
		t.Errorf("Expected empty sentence for zero words")
	}
}
