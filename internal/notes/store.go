package notes

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"nt/internal/todos/data"
)

// Store is the note directory tree: one subdirectory per year, one markdown
// file per day, named so that lexicographic order equals chronological order
// within a year.
type Store struct {
	Home string // nt home directory
	Dir  string // <home>/notes
}

func NewStore(home string) *Store {
	return &Store{
		Home: home,
		Dir:  filepath.Join(home, "notes"),
	}
}

// PathFor returns the note file path for a date, whether or not it exists.
func (s *Store) PathFor(date time.Time) string {
	year := fmt.Sprintf("%04d", date.Year())
	return filepath.Join(s.Dir, year, date.Format("2006-01-02")+".md")
}

// DateOf maps a note path back to its date. Files whose name carries no date
// fall back to frontmatter; anything still undated reports ok=false.
func (s *Store) DateOf(path string) (time.Time, bool) {
	stem := strings.TrimSuffix(filepath.Base(path), ".md")
	if parsed, err := time.Parse("2006-01-02", stem); err == nil {
		return parsed, true
	}
	if note, ok := ParseNoteFile(path, s.Dir); ok {
		return note.Date, true
	}
	return time.Time{}, false
}

// Ensure creates the year directory and the note file for date if absent,
// seeding the file with frontmatter and the Todos/Notes sections. It returns
// the note path.
func (s *Store) Ensure(date time.Time) (string, error) {
	path := s.PathFor(date)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("error creating directory: %v", err)
	}

	skeleton := strings.Join([]string{
		"---",
		"date: " + date.Format("2006-01-02"),
		"title: " + date.Format("Monday, 2 January 2006"),
		"---",
		"",
		"## Todos",
		"",
		"## Notes",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(skeleton), 0644); err != nil {
		return "", fmt.Errorf("error writing %s: %v", path, err)
	}
	return path, nil
}

// Scan returns every dated note under the store, newest first.
func (s *Store) Scan() ([]Note, error) {
	var found []Note
	err := filepath.WalkDir(s.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != s.Dir {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		if note, ok := ParseNoteFile(path, s.Dir); ok {
			found = append(found, note)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool {
		if !found[i].Date.Equal(found[j].Date) {
			return found[i].Date.After(found[j].Date)
		}
		return found[i].RelPath < found[j].RelPath
	})
	return found, nil
}

// ParseDate parses a user-supplied date argument. The empty string means
// today. Both YYYY-MM-DD and DD-MM-YYYY are accepted; anything else is a
// ValidationError, surfaced before any file I/O.
//
// Every returned date is a UTC midnight, the same representation time.Parse
// gives dates read back from filenames and frontmatter, so dates from either
// side compare with Equal.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	for _, layout := range []string{"2006-01-02", "02-01-2006"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, &data.ValidationError{
		Msg: fmt.Sprintf("could not parse date %q; use YYYY-MM-DD or DD-MM-YYYY", value),
	}
}
