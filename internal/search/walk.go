package search

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Walk scans .md files in-process, matching the same prefixes as Pattern.
type Walk struct{}

func (Walk) Search(root string) ([]Match, error) {
	var matches []Match
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for i, line := range strings.Split(string(content), "\n") {
			if strings.HasPrefix(line, "- [ ] ") || strings.HasPrefix(line, "- [x] ") {
				matches = append(matches, Match{Path: path, Line: i + 1, Text: line})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
