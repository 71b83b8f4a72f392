package notes

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Note is one day's markdown file inside the store.
type Note struct {
	Title    string    // from frontmatter `title`, or derived from filename
	FilePath string    // absolute path to file
	RelPath  string    // path relative to the notes dir (for display)
	Date     time.Time // from frontmatter `date`, or parsed from filename
}

// ParseNoteFile parses a markdown file as a Note. Returns the note and true
// if the file has a valid date (from frontmatter or filename), otherwise
// false.
func ParseNoteFile(absPath, rootDir string) (Note, bool) {
	content, err := os.ReadFile(absPath)
	if err != nil {
		return Note{}, false
	}

	filename := filepath.Base(absPath)
	relPath, err := filepath.Rel(rootDir, absPath)
	if err != nil {
		relPath = filename
	}

	var noteDate time.Time
	var title string
	hasDate := false

	// Frontmatter wins over the filename
	fmDate, fmTitle := parseFrontmatter(content)
	if !fmDate.IsZero() {
		noteDate = fmDate
		hasDate = true
	}
	if fmTitle != "" {
		title = fmTitle
	}

	if !hasDate {
		if match := datePattern.FindString(filename); match != "" {
			if parsed, err := time.Parse("2006-01-02", match); err == nil {
				noteDate = parsed
				hasDate = true
			}
		}
	}

	if !hasDate {
		return Note{}, false
	}

	if title == "" {
		title = titleFromFilename(filename)
	}

	return Note{
		Title:    title,
		FilePath: absPath,
		RelPath:  relPath,
		Date:     noteDate,
	}, true
}

type noteFrontmatter struct {
	Date  string `yaml:"date"`
	Title string `yaml:"title"`
}

func parseFrontmatter(content []byte) (time.Time, string) {
	body, _ := frontmatterBlock(content)
	if body == nil {
		return time.Time{}, ""
	}

	var fm noteFrontmatter
	if err := yaml.Unmarshal(body, &fm); err != nil {
		return time.Time{}, ""
	}

	var date time.Time
	if fm.Date != "" {
		if parsed, err := time.Parse("2006-01-02", fm.Date); err == nil {
			date = parsed
		}
	}

	return date, fm.Title
}

// frontmatterBlock returns the YAML between the leading `---` fences and the
// number of lines the whole block occupies (fences included). It returns
// (nil, 0) when the file has no frontmatter.
func frontmatterBlock(content []byte) ([]byte, int) {
	lines := bytes.Split(content, []byte("\n"))

	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return nil, 0
	}

	var fmEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			fmEnd = i
			break
		}
	}
	if fmEnd == 0 {
		return nil, 0
	}

	return bytes.Join(lines[1:fmEnd], []byte("\n")), fmEnd + 1
}

func titleFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, ".md")

	if loc := datePattern.FindStringIndex(name); loc != nil {
		after := name[loc[1]:]
		after = strings.TrimPrefix(after, "-")
		if after != "" {
			name = after
		}
	}

	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")

	if name == "" {
		return "Note"
	}
	return name
}
