package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"nt/internal/agenda"
	"nt/internal/notes"
	"nt/internal/todos/data"
)

func runTodo(args []string, app *App) int {
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	var tags stringSlice
	fs.Var(&tags, "t", "tag (repeatable)")
	dateFlag := fs.String("date", "", "target date (YYYY-MM-DD or DD-MM-YYYY)")
	dueFlag := fs.String("due", "", "desired completion date")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	text := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if text == "" {
		fmt.Fprintln(os.Stderr, "Error: todo text required")
		fmt.Fprintln(os.Stderr, `Usage: nt todo [-t tag] [--date D] [--due D] "todo text"`)
		return 1
	}

	date, err := notes.ParseDate(*dateFlag)
	if err != nil {
		return fail(err)
	}
	var due string
	if *dueFlag != "" {
		dueDate, err := notes.ParseDate(*dueFlag)
		if err != nil {
			return fail(err)
		}
		due = dueDate.Format("2006-01-02")
	}

	todo, err := app.Todos.Add(date, text, tags, due)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("added todo -> %s\n", todo.Text)
	return 0
}

func runList(args []string, app *App) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	status := fs.String("status", "all", "filter by status: open, done, all")
	today := fs.Bool("today", false, "only today's note")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	switch *status {
	case "open", "done", "all":
	default:
		return fail(&data.ValidationError{Msg: fmt.Sprintf("invalid status %q; use open, done, or all", *status)})
	}

	todos, err := app.Todos.List()
	if err != nil {
		return fail(err)
	}

	var todayDate time.Time
	if *today {
		todayDate, _ = notes.ParseDate("")
	}

	printed := 0
	for i, todo := range todos {
		if *status != "all" && todo.Status.String() != *status {
			continue
		}
		if *today && !todo.Date.Equal(todayDate) {
			continue
		}
		printTodoLine(i+1, todo)
		printed++
	}

	if printed == 0 {
		fmt.Println("no todos recorded.")
	}
	return 0
}

// printTodoLine renders one row of `nt list`. The index is the todo's
// position in the full scan, so it stays valid for done/reopen even when a
// filter hides other rows.
func printTodoLine(index int, todo data.Todo) {
	tagStr := "no tags"
	if len(todo.Tags) > 0 {
		tagStr = strings.Join(todo.Tags, ", ")
	}

	statusLabel := todo.Status.String()
	if todo.Status == data.StatusDone && todo.Completed != "" {
		statusLabel = "done @ " + todo.Completed
	}
	labels := []string{statusLabel}
	if todo.Due != "" {
		labels = append(labels, "due "+todo.Due)
	}

	text := todo.Text
	if todo.Status == data.StatusDone {
		text = doneStyle.Render(text)
	}

	fmt.Printf("%s %s :: %s %s %s\n",
		indexStyle.Render(fmt.Sprintf("%d.", index)),
		createdStyle.Render(todo.Date.Format("2006-01-02")),
		text,
		tagStyle.Render("["+tagStr+"]"),
		indexStyle.Render("("+strings.Join(labels, "; ")+")"),
	)
}

func runAgenda(args []string, app *App) int {
	fs := flag.NewFlagSet("agenda", flag.ContinueOnError)
	var tags stringSlice
	fs.Var(&tags, "t", "only todos carrying this tag (repeatable)")
	openOnly := fs.Bool("open", false, "only open todos")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	todos, err := app.Todos.List()
	if err != nil {
		return fail(err)
	}

	buckets := agenda.Build(todos, agenda.Options{Tags: tags, OpenOnly: *openOnly})
	if len(buckets) == 0 {
		fmt.Println("no todos.")
		return 0
	}

	for _, bucket := range buckets {
		fmt.Println(dateHeaderStyle.Render(bucket.Date.Format("2006-01-02")))
		for _, item := range bucket.Items {
			printAgendaItem(item, app)
		}
	}
	return 0
}

func printAgendaItem(item agenda.Item, app *App) {
	todo := item.Todo

	rel, err := filepath.Rel(app.Store.Home, todo.File)
	if err != nil {
		rel = todo.File
	}

	line := fmt.Sprintf("  %s %s", indexStyle.Render(fmt.Sprintf("[%d]", item.Index)), todo.Text)
	if todo.Status == data.StatusDone {
		line = fmt.Sprintf("  %s %s", indexStyle.Render(fmt.Sprintf("[%d]", item.Index)), doneStyle.Render("x "+todo.Text))
	}
	for _, tag := range todo.Tags {
		line += " " + tagStyle.Render("#"+tag)
	}
	if todo.Due != "" {
		line += " " + dueStyle.Render("(due "+todo.Due+")")
	}
	line += " " + locationStyle.Render(fmt.Sprintf("@ %s:%d", rel, todo.Line))
	fmt.Println(line)
}

func runDone(args []string, app *App) int {
	return runSetStatus(args, data.StatusDone, app)
}

func runReopen(args []string, app *App) int {
	return runSetStatus(args, data.StatusOpen, app)
}

func runSetStatus(args []string, status data.Status, app *App) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: todo number required (see 'nt list')")
		return 1
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fail(&data.ValidationError{Msg: fmt.Sprintf("todo number must be an integer, got %q", args[0])})
	}

	todo, changed, err := app.Todos.SetStatus(index, status)
	if err != nil {
		return fail(err)
	}

	if !changed {
		fmt.Printf("todo #%d already %s.\n", index, status)
		return 0
	}
	fmt.Printf("updated todo #%d -> %s: %s\n", index, status, todo.Text)
	return 0
}

func runOpen(args []string, app *App) int {
	var dateArg string
	if len(args) > 0 {
		dateArg = args[0]
	}

	date, err := notes.ParseDate(dateArg)
	if err != nil {
		return fail(err)
	}

	path, err := app.Store.Ensure(date)
	if err != nil {
		return fail(err)
	}

	if err := app.Editor.Open(path); err != nil {
		return fail(err)
	}
	return 0
}

func runNotes(app *App) int {
	all, err := app.Store.Scan()
	if err != nil {
		return fail(err)
	}
	if len(all) == 0 {
		fmt.Println("no notes recorded.")
		return 0
	}

	candidates := make([]string, len(all))
	for i, note := range all {
		candidates[i] = note.Date.Format("2006-01-02") + "\t" + note.RelPath
	}

	selected, err := app.Picker.Pick(candidates)
	if err != nil {
		return fail(err)
	}
	if len(selected) == 0 {
		return 0 // cancelled
	}

	var paths []string
	for _, line := range selected {
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		path := parts[1]
		if !filepath.IsAbs(path) {
			path = filepath.Join(app.Store.Dir, path)
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return 0
	}

	if err := app.Editor.Open(paths...); err != nil {
		return fail(err)
	}
	return 0
}

func runNote(args []string, app *App) int {
	fs := flag.NewFlagSet("note", flag.ContinueOnError)
	var tags stringSlice
	fs.Var(&tags, "t", "tag (repeatable)")
	dateFlag := fs.String("date", "", "target date (YYYY-MM-DD or DD-MM-YYYY)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	message := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if message == "" {
		fmt.Fprintln(os.Stderr, "Error: note text required")
		fmt.Fprintln(os.Stderr, `Usage: nt note [-t tag] [--date D] "note text"`)
		return 1
	}

	return runQuickNote(message, tags, *dateFlag, app)
}

// runQuickNote appends a timestamped line to the date's Notes section. Quick
// notes never match the todo marker, so they stay out of todo scans.
func runQuickNote(message string, tags []string, dateArg string, app *App) int {
	date, err := notes.ParseDate(dateArg)
	if err != nil {
		return fail(err)
	}

	path, err := app.Store.Ensure(date)
	if err != nil {
		return fail(err)
	}

	line := fmt.Sprintf("- [%s] %s", time.Now().Format("15:04"), message)
	for _, tag := range data.NormalizeTags(tags) {
		line += " #" + tag
	}

	if _, err := notes.AppendToSection(path, "Notes", line); err != nil {
		return fail(err)
	}

	fmt.Printf("logged note -> %s\n", message)
	return 0
}
