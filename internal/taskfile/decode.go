package taskfile

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nibzard/trackr/internal/task"
)

// RejectReason explains why a whole file yielded no tasks.
type RejectReason string

const (
	// RejectNone means the file had the array shape and was scanned.
	RejectNone        RejectReason = ""
	RejectEmpty       RejectReason = "empty"
	RejectInvalidUTF8 RejectReason = "not valid UTF-8"
	RejectNotArray    RejectReason = "not wrapped in [ ]"
)

// Drop describes a candidate object that was not turned into a task.
type Drop struct {
	// Index is the zero-based position of the candidate in the body.
	Index int
	// Missing lists the fields that could not be recovered.
	Missing []string
	// Snippet is the start of the candidate text, flattened to one line.
	Snippet string
}

// Report summarizes a decode.
type Report struct {
	Rejected   RejectReason
	Candidates int
	Dropped    []Drop
	// Unbalanced is set when the body ends inside an object or the brace
	// counter went below zero.
	Unbalanced bool
}

// Accepted returns the number of candidates that became tasks.
func (r Report) Accepted() int {
	return r.Candidates - len(r.Dropped)
}

// Clean reports whether every candidate was accepted and the braces balanced.
func (r Report) Clean() bool {
	return r.Rejected == RejectNone && len(r.Dropped) == 0 && !r.Unbalanced
}

const snippetLimit = 60

// Decode recovers tasks from task file contents. It never fails: anything it
// cannot make sense of is left out. The result is never nil.
func Decode(data []byte) []task.Task {
	tasks, _ := DecodeReport(data)
	return tasks
}

// DecodeReport is Decode plus a report of what was rejected or dropped.
func DecodeReport(data []byte) ([]task.Task, Report) {
	tasks := make([]task.Task, 0)
	var report Report

	if !utf8.Valid(data) {
		report.Rejected = RejectInvalidUTF8
		return tasks, report
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		report.Rejected = RejectEmpty
		return tasks, report
	}
	if !strings.HasPrefix(text, "[") || !strings.HasSuffix(text, "]") {
		report.Rejected = RejectNotArray
		return tasks, report
	}

	body := text[1 : len(text)-1]

	var current strings.Builder
	depth := 0
	for _, r := range body {
		switch {
		case r == '{':
			depth++
			current.WriteRune(r)
		case r == '}':
			current.WriteRune(r)
			depth--
			if depth < 0 {
				report.Unbalanced = true
			}
			if depth == 0 {
				obj := current.String()
				current.Reset()

				index := report.Candidates
				report.Candidates++
				t, missing := parseObject(obj)
				if len(missing) > 0 {
					report.Dropped = append(report.Dropped, Drop{
						Index:   index,
						Missing: missing,
						Snippet: snippet(obj),
					})
					continue
				}
				tasks = append(tasks, t)
			}
		case depth > 0:
			current.WriteRune(r)
		}
	}
	if depth != 0 {
		report.Unbalanced = true
	}

	return tasks, report
}

// parseObject extracts the three fields from one brace-balanced candidate.
// It returns the names of the fields it could not recover.
func parseObject(obj string) (task.Task, []string) {
	var (
		id        uint32
		hasID     bool
		desc      string
		hasDesc   bool
		status    task.Status
		hasStatus bool
	)

	for _, line := range strings.Split(obj, "\n") {
		line = strings.TrimSpace(line)

		// A line counts towards the first field name it mentions.
		switch {
		case strings.Contains(line, `"id"`):
			if v, ok := extractNumber(line); ok {
				id, hasID = v, true
			}
		case strings.Contains(line, `"description"`):
			if v, ok := extractString(line); ok {
				desc, hasDesc = v, true
			}
		case strings.Contains(line, `"status"`):
			if v, ok := extractString(line); ok {
				status, hasStatus = task.ParseStatus(v)
			}
		}
	}

	var missing []string
	if !hasID {
		missing = append(missing, "id")
	}
	if !hasDesc {
		missing = append(missing, "description")
	}
	if !hasStatus {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return task.Task{}, missing
	}
	return task.WithStatus(id, desc, status), nil
}

// extractNumber keeps the ASCII digits after the first colon and parses
// them as a uint32.
func extractNumber(line string) (uint32, bool) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return 0, false
	}

	var digits strings.Builder
	for _, r := range line[colon+1:] {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	n, err := strconv.ParseUint(digits.String(), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// extractString returns the fourth '"'-separated part of the line, unescaped.
// For `"key": "value",` that is the value, provided the value itself holds
// no double quote.
func extractString(line string) (string, bool) {
	parts := strings.Split(line, `"`)
	if len(parts) < 4 {
		return "", false
	}
	return Unescape(parts[3]), true
}

func snippet(obj string) string {
	flat := strings.Join(strings.Fields(obj), " ")
	if utf8.RuneCountInString(flat) <= snippetLimit {
		return flat
	}
	runes := []rune(flat)
	return string(runes[:snippetLimit-3]) + "..."
}
