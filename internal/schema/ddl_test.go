package schema

import (
	"regexp"
	"strings"
	"testing"
)

var dropTableRegex = regexp.MustCompile(`(?i)^DROP\s+TABLE\s+IF\s+EXISTS\s+(\w+)`)

// dropOrder lists the tables in the order the script drops them.
func dropOrder(statements []string) []string {
	var order []string
	for _, stmt := range statements {
		if m := dropTableRegex.FindStringSubmatch(strings.TrimSpace(stmt)); m != nil {
			order = append(order, strings.ToLower(m[1]))
		}
	}
	return order
}

func TestSplit(t *testing.T) {
	script := `
-- leading comment; with a semicolon
CREATE TABLE a (id int);
INSERT INTO a VALUES ('x;y');
/* block */;
SELECT 1`

	got := Split(script)
	want := []string{
		"CREATE TABLE a (id int)",
		"INSERT INTO a VALUES ('x;y')",
		"SELECT 1",
	}

	if len(got) != len(want) {
		t.Fatalf("Expected %d statements, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("statement %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSplitBlockComments(t *testing.T) {
	script := `
/* drop everything; then
   recreate it, don't skip */
DROP TABLE a;
CREATE TABLE a (id int /* key; */, note text DEFAULT '/* not a comment; */');`

	got := Split(script)
	want := []string{
		"DROP TABLE a",
		"CREATE TABLE a (id int , note text DEFAULT '/* not a comment; */')",
	}

	if len(got) != len(want) {
		t.Fatalf("Expected %d statements, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("statement %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestStatementsPerDialect(t *testing.T) {
	for _, dialect := range []string{"postgres", "mysql", "sqlite"} {
		t.Run(dialect, func(t *testing.T) {
			statements, err := Statements(dialect)
			if err != nil {
				t.Fatalf("Statements failed: %v", err)
			}

			if len(statements) != 10 {
				t.Fatalf("Expected 5 drops and 5 creates, got %d statements", len(statements))
			}

			order := dropOrder(statements)
			want := []string{"volunteer_schedule", "events", "supervisors", "organizations", "volunteers"}
			if strings.Join(order, ",") != strings.Join(want, ",") {
				t.Errorf("Expected drop order %v, got %v", want, order)
			}

			for i, stmt := range statements[:5] {
				if !strings.HasPrefix(strings.ToUpper(stmt), "DROP TABLE") {
					t.Errorf("statement %d should be a drop, got %q", i, stmt)
				}
			}
			for i, stmt := range statements[5:] {
				if !strings.HasPrefix(strings.ToUpper(stmt), "CREATE TABLE") {
					t.Errorf("statement %d should be a create, got %q", i+5, stmt)
				}
			}
		})
	}
}

func TestPostgresCascadesParents(t *testing.T) {
	statements, err := Statements("postgres")
	if err != nil {
		t.Fatalf("Statements failed: %v", err)
	}

	for _, stmt := range statements[:5] {
		cascaded := strings.HasSuffix(stmt, "CASCADE")
		parent := strings.Contains(stmt, "organizations") ||
			strings.Contains(stmt, "supervisors") ||
			strings.Contains(stmt, "volunteers")
		if parent != cascaded {
			t.Errorf("unexpected cascade setting in %q", stmt)
		}
	}
}

func TestUnknownDialect(t *testing.T) {
	if _, err := Statements("oracle"); err == nil {
		t.Error("Expected error for unknown dialect")
	}
}
