package usage

import "strings"

// Line joins the program name and the per-argument usage fragments into the
// one-line usage summary.
func Line(program string, fragments ...string) string {
	if len(fragments) == 0 {
		return program
	}
	return program + " " + strings.Join(fragments, " ")
}

// Help composes the full help message: the description, a blank line, the
// usage summary, a blank line and one indented line per argument.
func Help(description, usageLine string, helpLines ...string) string {
	var b strings.Builder
	b.WriteString(description)
	b.WriteString("\n\nUsage:\n  ")
	b.WriteString(usageLine)
	b.WriteString("\n\nArguments:\n")
	for _, line := range helpLines {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
