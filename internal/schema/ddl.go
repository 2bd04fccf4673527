package schema

import (
	"embed"
	"fmt"
)

//go:embed sql/*.sql
var ddlFiles embed.FS

// Script returns the raw drop-and-create script for a dialect
// ("postgres", "mysql" or "sqlite").
func Script(dialect string) (string, error) {
	data, err := ddlFiles.ReadFile("sql/" + dialect + ".sql")
	if err != nil {
		return "", fmt.Errorf("no schema for dialect %s: %w", dialect, err)
	}
	return string(data), nil
}

// Statements returns the schema script for a dialect split into statements,
// drops first.
func Statements(dialect string) ([]string, error) {
	script, err := Script(dialect)
	if err != nil {
		return nil, err
	}
	return Split(script), nil
}
