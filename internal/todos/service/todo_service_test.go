package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nt/internal/notes"
	"nt/internal/search"
	"nt/internal/todos/data"
)

func newTestService(t *testing.T) (*notes.Store, TodoService) {
	t.Helper()
	store := notes.NewStore(t.TempDir())
	return store, NewTodoService(store, search.Walk{})
}

func day(value string) time.Time {
	d, _ := time.Parse("2006-01-02", value)
	return d
}

func TestAdd_CreatesYearDirAndFile(t *testing.T) {
	store, svc := newTestService(t)

	todo, err := svc.Add(day("2026-08-23"), "buy milk", nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantPath := filepath.Join(store.Dir, "2026", "2026-08-23.md")
	if todo.File != wantPath {
		t.Errorf("expected %q, got %q", wantPath, todo.File)
	}
	if todo.Line != 1 {
		t.Errorf("expected line 1, got %d", todo.Line)
	}
	if todo.Status != data.StatusOpen {
		t.Error("new todos start open")
	}

	content, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if string(content) != "- [ ] buy milk\n" {
		t.Errorf("fresh note should hold exactly the new todo line, got %q", string(content))
	}
}

func TestAdd_EmptyTextIsValidationError(t *testing.T) {
	_, svc := newTestService(t)

	_, err := svc.Add(day("2026-08-23"), "", nil, "")
	var validation *data.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestList_ReverseChronologicalThenLineOrder(t *testing.T) {
	_, svc := newTestService(t)

	if _, err := svc.Add(day("2024-01-01"), "older first", nil, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Add(day("2024-01-01"), "older second", nil, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Add(day("2024-01-02"), "newer", nil, ""); err != nil {
		t.Fatal(err)
	}

	todos, err := svc.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 3 {
		t.Fatalf("expected 3 todos, got %d", len(todos))
	}

	want := []string{"newer", "older first", "older second"}
	for i, todo := range todos {
		if todo.Text != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], todo.Text)
		}
	}
}

func TestListByStatus(t *testing.T) {
	_, svc := newTestService(t)

	if _, err := svc.Add(day("2026-08-23"), "stays open", nil, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Add(day("2026-08-23"), "gets done", nil, ""); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.SetStatus(2, data.StatusDone); err != nil {
		t.Fatal(err)
	}

	open, err := svc.ListByStatus(data.StatusOpen)
	if err != nil {
		t.Fatal(err)
	}
	if len(open) != 1 || open[0].Text != "stays open" {
		t.Errorf("expected one open todo, got %v", open)
	}

	done, err := svc.ListByStatus(data.StatusDone)
	if err != nil {
		t.Fatal(err)
	}
	if len(done) != 1 || done[0].Text != "gets done" {
		t.Errorf("expected one done todo, got %v", done)
	}
}

func TestSetStatus_MarkerOnlyRewrite(t *testing.T) {
	store, svc := newTestService(t)

	// Build a note with surrounding prose the mutation must not touch
	path, err := store.Ensure(day("2026-08-23"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := notes.AppendToSection(path, "Todos", "- [ ] buy milk"); err != nil {
		t.Fatal(err)
	}
	if _, err := notes.AppendToSection(path, "Notes", "- [09:15] unrelated note"); err != nil {
		t.Fatal(err)
	}
	before, _ := os.ReadFile(path)

	todo, changed, err := svc.SetStatus(1, data.StatusDone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed || todo.Text != "buy milk" {
		t.Fatalf("expected to complete 'buy milk', got changed=%v todo=%v", changed, todo)
	}

	after, _ := os.ReadFile(path)
	want := strings.Replace(string(before), "- [ ] buy milk", "- [x] buy milk", 1)
	if string(after) != want {
		t.Errorf("bytes beyond the marker changed:\n before %q\n after  %q", before, after)
	}
}

func TestSetStatus_AlreadySetIsNoop(t *testing.T) {
	_, svc := newTestService(t)

	if _, err := svc.Add(day("2026-08-23"), "buy milk", nil, ""); err != nil {
		t.Fatal(err)
	}

	_, changed, err := svc.SetStatus(1, data.StatusOpen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed {
		t.Error("reopening an open todo should be a no-op")
	}
}

func TestSetStatus_IndexOutOfRange(t *testing.T) {
	_, svc := newTestService(t)

	_, _, err := svc.SetStatus(1, data.StatusDone)
	var notFound *data.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestReload_PicksUpExternalEdits(t *testing.T) {
	store, svc := newTestService(t)

	if _, err := svc.Add(day("2026-08-23"), "first", nil, ""); err != nil {
		t.Fatal(err)
	}
	if todos, _ := svc.List(); len(todos) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(todos))
	}

	// Simulate an editor writing a todo behind the service's back
	path := store.PathFor(day("2026-08-23"))
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("- [ ] from the editor\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if err := svc.Reload(); err != nil {
		t.Fatal(err)
	}
	todos, _ := svc.List()
	if len(todos) != 2 {
		t.Fatalf("expected 2 todos after reload, got %d", len(todos))
	}
}

func TestReload_SkipsUndatedFiles(t *testing.T) {
	store, svc := newTestService(t)

	if err := os.MkdirAll(store.Dir, 0755); err != nil {
		t.Fatal(err)
	}
	stray := filepath.Join(store.Dir, "scratch.md")
	if err := os.WriteFile(stray, []byte("- [ ] not a daily note\n"), 0644); err != nil {
		t.Fatal(err)
	}

	todos, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(todos) != 0 {
		t.Errorf("stray files should not contribute todos, got %v", todos)
	}
}
