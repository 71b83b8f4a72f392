package service

import (
	"fmt"
	"sort"
	"time"

	"nt/internal/logs"
	"nt/internal/notes"
	"nt/internal/search"
	"nt/internal/todos/data"
)

// TodoService loads, lists, and mutates todo lines across the note store.
// Todos are rebuilt from disk on every invocation; nothing is cached across
// processes.
type TodoService interface {
	List() ([]data.Todo, error)
	ListByStatus(status data.Status) ([]data.Todo, error)
	Add(date time.Time, text string, tags []string, due string) (*data.Todo, error)
	SetStatus(index int, status data.Status) (*data.Todo, bool, error)
	Reload() error
}

type todoServiceImpl struct {
	store    *notes.Store
	searcher search.Searcher
	todos    []data.Todo
	loaded   bool
}

// NewTodoService wires the service to a store and a searcher. The first
// read triggers the scan.
func NewTodoService(store *notes.Store, searcher search.Searcher) TodoService {
	return &todoServiceImpl{store: store, searcher: searcher}
}

// Reload rescans the store. The searcher may return matches in any order;
// the service sorts them into reverse-chronological file order, then
// top-to-bottom line order within a file.
func (s *todoServiceImpl) Reload() error {
	matches, err := s.searcher.Search(s.store.Dir)
	if err != nil {
		return err
	}

	todos := make([]data.Todo, 0, len(matches))
	for _, m := range matches {
		todo, ok := data.ParseLine(m.Text)
		if !ok {
			continue
		}
		date, ok := s.store.DateOf(m.Path)
		if !ok {
			// Not a daily note; stray .md files don't participate.
			continue
		}
		todo.File = m.Path
		todo.Line = m.Line
		todo.Date = date
		todos = append(todos, todo)
	}

	sort.Slice(todos, func(i, j int) bool {
		if !todos[i].Date.Equal(todos[j].Date) {
			return todos[i].Date.After(todos[j].Date)
		}
		if todos[i].File != todos[j].File {
			return todos[i].File < todos[j].File
		}
		return todos[i].Line < todos[j].Line
	})

	s.todos = todos
	s.loaded = true
	return nil
}

func (s *todoServiceImpl) ensureLoaded() error {
	if s.loaded {
		return nil
	}
	return s.Reload()
}

func (s *todoServiceImpl) List() ([]data.Todo, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return s.todos, nil
}

func (s *todoServiceImpl) ListByStatus(status data.Status) ([]data.Todo, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	var filtered []data.Todo
	for _, t := range s.todos {
		if t.Status == status {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// Add appends a new open todo to the date's note file, creating the year
// directory and file when absent, and returns the record with its resulting
// line number.
func (s *todoServiceImpl) Add(date time.Time, text string, tags []string, due string) (*data.Todo, error) {
	if text == "" {
		return nil, &data.ValidationError{Msg: "todo text required"}
	}

	line := data.ComposeLine(text, tags, due)
	path := s.store.PathFor(date)
	lineNo, err := notes.AppendToSection(path, "Todos", line)
	if err != nil {
		return nil, err
	}
	logs.Logger.Printf("added todo %s:%d", path, lineNo)

	todo, _ := data.ParseLine(line)
	todo.File = path
	todo.Line = lineNo
	todo.Date = date

	if s.loaded {
		if err := s.Reload(); err != nil {
			return nil, err
		}
	}
	return &todo, nil
}

// SetStatus mutates the todo at the given 1-based list index. The returned
// bool reports whether the file changed; requesting the status a todo
// already has is a no-op success.
func (s *todoServiceImpl) SetStatus(index int, status data.Status) (*data.Todo, bool, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, false, err
	}
	if index < 1 || index > len(s.todos) {
		return nil, false, &data.NotFoundError{Msg: fmt.Sprintf("todo #%d does not exist", index)}
	}

	todo := s.todos[index-1]
	changed, err := data.SetStatus(todo.File, todo.Line, status)
	if err != nil {
		return nil, false, err
	}
	if changed {
		todo.Status = status
		if err := s.Reload(); err != nil {
			return nil, false, err
		}
	}
	return &todo, changed, nil
}
