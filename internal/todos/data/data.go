package data

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"nt/internal/logs"
)

var mu sync.Mutex

// LoadTodosFromFile parses every todo line of one note file.
func LoadTodosFromFile(path string, date time.Time) ([]Todo, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Msg: fmt.Sprintf("note file %s does not exist", path)}
		}
		return nil, fmt.Errorf("error reading %s: %v", path, err)
	}

	var todos []Todo
	for i, line := range splitLines(string(content)) {
		todo, ok := ParseLine(line)
		if !ok {
			continue
		}
		todo.File = path
		todo.Line = i + 1
		todo.Date = date
		todos = append(todos, todo)
	}
	return todos, nil
}

// SetStatus rewrites the status marker of the line at (path, line), leaving
// every other byte of the file unchanged. It returns false without touching
// the file when the line already has the requested status. A line that no
// longer looks like a todo is a ConsistencyError.
func SetStatus(path string, line int, status Status) (bool, error) {
	mu.Lock()
	defer mu.Unlock()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, &NotFoundError{Msg: fmt.Sprintf("note file %s does not exist", path)}
		}
		return false, fmt.Errorf("error reading %s: %v", path, err)
	}

	// Split on \n without normalizing anything: the trailing empty element
	// (if the file ends with a newline) survives the round trip.
	lines := strings.Split(string(content), "\n")
	if line < 1 || line > lineCount(lines) {
		return false, &NotFoundError{Msg: fmt.Sprintf("%s has no line %d", path, line)}
	}

	current, ok := ParseLine(lines[line-1])
	if !ok {
		return false, &ConsistencyError{
			Msg: fmt.Sprintf("%s:%d is no longer a todo line", path, line),
		}
	}
	if current.Status == status {
		return false, nil
	}

	lines[line-1] = marker(status) + current.Raw
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return false, fmt.Errorf("error writing %s: %v", path, err)
	}

	logs.Logger.Printf("set %s:%d -> %s", path, line, status)
	return true, nil
}

// splitLines splits file content into lines, dropping the empty element a
// trailing newline produces so line numbers match what editors show.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

func lineCount(lines []string) int {
	n := len(lines)
	if n > 0 && lines[n-1] == "" {
		n--
	}
	return n
}
