package data

import (
	"testing"
)

func TestParseLine_Open(t *testing.T) {
	todo, ok := ParseLine("- [ ] buy milk")
	if !ok {
		t.Fatal("expected a todo line")
	}
	if todo.Status != StatusOpen {
		t.Errorf("expected open, got %v", todo.Status)
	}
	if todo.Text != "buy milk" {
		t.Errorf("expected 'buy milk', got %q", todo.Text)
	}
}

func TestParseLine_Done(t *testing.T) {
	todo, ok := ParseLine("- [x] ship release")
	if !ok {
		t.Fatal("expected a todo line")
	}
	if todo.Status != StatusDone {
		t.Errorf("expected done, got %v", todo.Status)
	}
}

func TestParseLine_NonTodoLines(t *testing.T) {
	for _, line := range []string{
		"",
		"## Todos",
		"just some prose",
		"- regular list item",
		"- [14:23] quick note with a timestamp",
		"-[ ] missing space",
		"- [X] capital marker is not ours",
	} {
		if _, ok := ParseLine(line); ok {
			t.Errorf("line %q should not parse as a todo", line)
		}
	}
}

func TestParseLine_Tags(t *testing.T) {
	todo, _ := ParseLine("- [ ] call plumber #home #urgent #home")
	if len(todo.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %v", todo.Tags)
	}
	if todo.Tags[0] != "home" || todo.Tags[1] != "urgent" {
		t.Errorf("expected sorted unique tags, got %v", todo.Tags)
	}
	if !todo.HasTag("urgent") {
		t.Error("expected HasTag(urgent)")
	}
	if todo.Text != "call plumber" {
		t.Errorf("expected tags stripped from text, got %q", todo.Text)
	}
}

func TestParseLine_DueAndDone(t *testing.T) {
	todo, _ := ParseLine("- [x] file taxes @due 2026-04-15 @done 2026-04-01 #finance")
	if todo.Due != "2026-04-15" {
		t.Errorf("expected due 2026-04-15, got %q", todo.Due)
	}
	if todo.Completed != "2026-04-01" {
		t.Errorf("expected completed 2026-04-01, got %q", todo.Completed)
	}
	if todo.Text != "file taxes" {
		t.Errorf("expected annotations stripped, got %q", todo.Text)
	}
}

func TestParseLine_RoundTrip(t *testing.T) {
	tests := []string{
		"- [ ] buy milk",
		"- [x] ship release",
		"- [ ] call plumber #home #urgent",
		"- [ ] file taxes @due 2026-04-15 #finance",
		"- [x] weird  spacing   preserved #a",
		"- [ ] trailing space ",
	}

	for _, original := range tests {
		todo, ok := ParseLine(original)
		if !ok {
			t.Fatalf("expected %q to parse", original)
		}
		if got := todo.String(); got != original {
			t.Errorf("round-trip mismatch:\n  original: %q\n  result:   %q", original, got)
		}
	}
}

func TestString_OnlyMarkerChanges(t *testing.T) {
	original := "- [ ] keep  these   bytes #tag @due 2026-01-01 "
	todo, _ := ParseLine(original)
	todo.Status = StatusDone
	if got := todo.String(); got != "- [x]"+original[5:] {
		t.Errorf("expected only the marker to change, got %q", got)
	}
}

func TestComposeLine(t *testing.T) {
	line := ComposeLine("buy lumber", []string{"yard", "#shop", "yard"}, "2026-02-15")
	want := "- [ ] buy lumber @due 2026-02-15 #shop #yard"
	if line != want {
		t.Errorf("expected %q, got %q", want, line)
	}

	todo, ok := ParseLine(line)
	if !ok {
		t.Fatal("composed line should parse")
	}
	if todo.Text != "buy lumber" || todo.Due != "2026-02-15" || len(todo.Tags) != 2 {
		t.Errorf("composed line parsed badly: %+v", todo)
	}
}
