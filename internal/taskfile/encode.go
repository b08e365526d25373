package taskfile

import (
	"strconv"
	"strings"

	"github.com/nibzard/trackr/internal/task"
)

// Encode renders tasks in the task file layout. An empty list renders as "[\n]\n".
func Encode(tasks []task.Task) string {
	var b strings.Builder
	b.WriteString("[\n")

	for i, t := range tasks {
		b.WriteString("  {\n")
		b.WriteString(`    "id": `)
		b.WriteString(strconv.FormatUint(uint64(t.ID), 10))
		b.WriteString(",\n")
		b.WriteString(`    "description": "`)
		b.WriteString(Escape(t.Description))
		b.WriteString("\",\n")
		b.WriteString(`    "status": "`)
		b.WriteString(t.Status.String())
		b.WriteString("\"\n")
		b.WriteString("  }")
		if i < len(tasks)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}

	b.WriteString("]\n")
	return b.String()
}

// Escape escapes backslash, double quote, newline, carriage return and tab.
// Backslashes are doubled first so the escapes added afterwards stay intact.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return s
}

// Unescape reverses Escape by applying the replacements one after another:
// \" first, then \\, then \n, \r and \t.
//
// The order matches what existing task files were written against. It is
// not a true inverse: a literal backslash followed by n, r or t comes back
// as a control character.
func Unescape(s string) string {
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\\`, `\`)
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\r`, "\r")
	s = strings.ReplaceAll(s, `\t`, "\t")
	return s
}
