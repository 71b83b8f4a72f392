package main

import (
	"flag"
	"fmt"
	"os"

	"nt/internal/cli"
	"nt/internal/config"
	"nt/internal/editor"
	"nt/internal/logs"
	"nt/internal/notes"
	"nt/internal/picker"
	"nt/internal/search"
	"nt/internal/todos/service"
)

func main() {
	homeFlag := flag.String("home", "", "Note store directory (overrides NT_HOME)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: nt [--home dir] <command> [arguments]
Run "nt help" for the command list.`)
	}
	flag.Parse()

	cfg, err := config.Load(config.CLIFlags{Home: *homeFlag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := config.EnsureConfigFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create config file: %v\n", err)
	}

	if err := cfg.EnsureHome(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create note directory: %v\n", err)
		os.Exit(1)
	}

	if err := logs.Initialize(cfg.Home); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logger: %v\n", err)
	}

	store := notes.NewStore(cfg.Home)
	app := &cli.App{
		Config: cfg,
		Store:  store,
		Todos:  service.NewTodoService(store, search.ForConfig(cfg.Searcher)),
		Editor: editor.NewExec(cfg.Editor),
		Picker: picker.ForConfig(cfg.Picker),
	}

	code := cli.Run(flag.Args(), app)
	logs.Close()
	os.Exit(code)
}
