// Package cli implements the nt subcommands over the note store.
package cli

import (
	"fmt"
	"os"
	"strings"

	"nt/internal/config"
	"nt/internal/editor"
	"nt/internal/notes"
	"nt/internal/picker"
	"nt/internal/todos/service"
)

// App bundles the collaborators the commands operate on.
type App struct {
	Config *config.Config
	Store  *notes.Store
	Todos  service.TodoService
	Editor editor.Launcher
	Picker picker.Picker
}

// Run executes one nt command and returns the process exit code. Any
// argument that is not a known command files a quick note tagged with the
// leading arguments.
func Run(args []string, app *App) int {
	if len(args) == 0 {
		printUsage()
		return 0
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "todo":
		return runTodo(cmdArgs, app)
	case "list", "ls":
		return runList(cmdArgs, app)
	case "agenda":
		return runAgenda(cmdArgs, app)
	case "done":
		return runDone(cmdArgs, app)
	case "reopen":
		return runReopen(cmdArgs, app)
	case "open":
		return runOpen(cmdArgs, app)
	case "notes":
		return runNotes(app)
	case "note":
		return runNote(cmdArgs, app)
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		// nt <tag...> "message"
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, `usage: nt <tag...> "your message"`)
			return 1
		}
		return runQuickNote(args[len(args)-1], args[:len(args)-1], "", app)
	}
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}

// stringSlice is a repeatable flag value.
type stringSlice []string

func (s *stringSlice) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func printUsage() {
	fmt.Println(`nt - command line notes and todos

Usage: nt [flags] <command> [arguments]

Commands:
  todo <text>        Add a todo to a daily note
                     nt todo -t errands --due 2026-09-01 "buy milk"
  list               List todos across all notes, newest note first
                     nt list --status open|done|all [--today]
  agenda             Todos grouped by date, newest first
                     nt agenda [-t tag] [--open]
  done <n>           Mark todo n from 'nt list' as done
  reopen <n>         Move todo n back to open
  open [date]        Open a daily note in $EDITOR (defaults to today)
  notes              Pick daily notes with the fuzzy picker and open them
  note <text>        Append a quick note without opening an editor
                     nt note -t health "call dentist"
  <tag...> <text>    Shorthand: file a quick note under the leading tags

Flags:
  --home <dir>       Note store directory (or set NT_HOME)

Dates accept YYYY-MM-DD or DD-MM-YYYY. Notes live in $NT_HOME
(default: $HOME/.nt).`)
}
