package schema

import (
	"regexp"
	"strings"
)

var (
	commentRegex = regexp.MustCompile(`(?m)^\s*--.*$`)
	// Leftmost match wins, so quotes inside comments and comment markers
	// inside quotes are both handled.
	literalRegex = regexp.MustCompile(`'(?:[^']|'')*'|"(?:[^"]|"")*"|` + "`(?:[^`]|``)*`" + `|(?s:/\*.*?\*/)`)
)

// Split breaks a SQL script into statements on semicolons that sit outside
// quoted literals and block comments. Whole-line "--" comments and
// /* */ comments are dropped.
func Split(script string) []string {
	script = commentRegex.ReplaceAllString(script, "")

	quoted := make(map[int]bool)
	comment := make(map[int]bool)
	for _, match := range literalRegex.FindAllStringIndex(script, -1) {
		mask := quoted
		if strings.HasPrefix(script[match[0]:], "/*") {
			mask = comment
		}
		for i := match[0]; i < match[1]; i++ {
			mask[i] = true
		}
	}

	statements := make([]string, 0, strings.Count(script, ";")+1)
	var current strings.Builder

	flush := func() {
		if stmt := strings.TrimSpace(current.String()); stmt != "" {
			statements = append(statements, stmt)
		}
		current.Reset()
	}

	for i, char := range script {
		switch {
		case comment[i]:
			continue
		case char == ';' && !quoted[i]:
			flush()
			continue
		}
		current.WriteRune(char)
	}
	flush()

	return statements
}
