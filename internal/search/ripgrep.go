package search

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Ripgrep shells out to rg. Exit code 1 (no matches) is not an error.
type Ripgrep struct {
	Bin string
}

func NewRipgrep() *Ripgrep {
	return &Ripgrep{Bin: "rg"}
}

// Available reports whether the rg binary is on PATH.
func (r *Ripgrep) Available() bool {
	_, err := exec.LookPath(r.Bin)
	return err == nil
}

func (r *Ripgrep) Search(root string) ([]Match, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	cmd := exec.Command(r.Bin, "--with-filename", "--line-number", "--no-heading", Pattern, root)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) && exit.ExitCode() == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("ripgrep failed: %v: %s", err, strings.TrimSpace(stderr.String()))
	}

	var matches []Match
	for _, line := range strings.Split(stdout.String(), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 3)
		if len(parts) != 3 {
			continue
		}
		lineNo, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		matches = append(matches, Match{Path: parts[0], Line: lineNo, Text: parts[2]})
	}
	return matches, nil
}
