package data

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// Status of a todo line.
type Status int

const (
	StatusOpen Status = iota
	StatusDone
)

func (s Status) String() string {
	if s == StatusDone {
		return "done"
	}
	return "open"
}

const (
	openMarker = "- [ ] "
	doneMarker = "- [x] "
)

var (
	tagPattern  = regexp.MustCompile(`#([\w-]+)`)
	duePattern  = regexp.MustCompile(`\s*@due\s+(\d{4}-\d{2}-\d{2})`)
	donePattern = regexp.MustCompile(`\s*@done\s+(\d{4}-\d{2}-\d{2})`)
)

// Todo is a single todo line inside a daily note. Raw holds everything after
// the status marker byte-for-byte, so String reproduces the source line
// exactly; Text, Tags, Due and Completed are parsed out of Raw for display
// and filtering only.
//
// Identity for mutation is (File, Line) as observed at read time. An external
// edit between read and write is an accepted race for a single-user tool.
type Todo struct {
	Date      time.Time // owning note date
	File      string    // absolute path to the note file
	Line      int       // 1-based line number within the file
	Status    Status
	Raw       string
	Text      string
	Tags      []string
	Due       string // yyyy-mm-dd from an @due annotation
	Completed string // yyyy-mm-dd from an @done annotation
}

// ParseLine recognizes a todo line. Lines without the marker prefix are not
// an error; they simply report ok=false.
func ParseLine(line string) (Todo, bool) {
	var status Status
	switch {
	case strings.HasPrefix(line, openMarker):
		status = StatusOpen
	case strings.HasPrefix(line, doneMarker):
		status = StatusDone
	default:
		return Todo{}, false
	}

	raw := line[len(openMarker):]
	todo := Todo{Status: status, Raw: raw}

	body := raw
	if m := donePattern.FindStringSubmatch(body); m != nil {
		todo.Completed = m[1]
		body = donePattern.ReplaceAllString(body, "")
	}
	if m := duePattern.FindStringSubmatch(body); m != nil {
		todo.Due = m[1]
		body = duePattern.ReplaceAllString(body, "")
	}
	for _, m := range tagPattern.FindAllStringSubmatch(body, -1) {
		todo.Tags = append(todo.Tags, m[1])
	}
	todo.Tags = NormalizeTags(todo.Tags)
	todo.Text = strings.TrimSpace(tagPattern.ReplaceAllString(body, ""))

	return todo, true
}

// String re-serializes the line. For a todo parsed from disk this differs
// from the source line only in the marker.
func (t Todo) String() string {
	return marker(t.Status) + t.Raw
}

// HasTag reports whether the todo carries the given tag.
func (t Todo) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}

// ComposeLine builds a new open todo line from its parts.
func ComposeLine(text string, tags []string, due string) string {
	line := openMarker + strings.TrimSpace(text)
	if due != "" {
		line += " @due " + due
	}
	for _, tag := range NormalizeTags(tags) {
		line += " #" + tag
	}
	return line
}

func marker(s Status) string {
	if s == StatusDone {
		return doneMarker
	}
	return openMarker
}

// NormalizeTags strips leading #, drops empties and duplicates, and sorts.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, tag := range tags {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
