package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Launcher opens note files in the user's editor, handing over the terminal
// and blocking until the editor exits. Callers must re-read any file from
// disk afterwards; no in-memory note content survives an editor invocation.
type Launcher interface {
	Open(paths ...string) error
}

// Exec launches the configured editor as a child process.
type Exec struct {
	Editor string
}

// NewExec resolves the editor binary: explicit config, then $EDITOR, then
// nano.
func NewExec(editor string) *Exec {
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "nano"
	}
	return &Exec{Editor: editor}
}

func (e *Exec) Open(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	cmd := exec.Command(e.Editor, paths...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("editor %q not found; set $EDITOR to your preferred editor", e.Editor)
		}
		return fmt.Errorf("editor exited: %v", err)
	}
	return nil
}
