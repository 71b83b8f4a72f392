package picker

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Fzf feeds candidates to fzf on stdin and reads the selection from stdout.
// fzf draws its UI on the controlling terminal, so capturing stdout is safe.
type Fzf struct {
	Bin string
}

func NewFzf() *Fzf {
	return &Fzf{Bin: "fzf"}
}

// Available reports whether the fzf binary is on PATH.
func (f *Fzf) Available() bool {
	_, err := exec.LookPath(f.Bin)
	return err == nil
}

func (f *Fzf) Pick(candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	cmd := exec.Command(f.Bin, "--multi", "--delimiter", "\t", "--with-nth", "1,2")
	cmd.Stdin = strings.NewReader(strings.Join(candidates, "\n"))
	cmd.Stderr = os.Stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			// 130 is fzf's interrupt/cancel, 1 is "no match": both no-ops.
			if code := exit.ExitCode(); code == 130 || code == 1 {
				return nil, nil
			}
			return nil, fmt.Errorf("fzf failed with exit code %d", exit.ExitCode())
		}
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("fzf not found; install fzf or set picker to builtin")
		}
		return nil, err
	}

	var selected []string
	for _, line := range strings.Split(stdout.String(), "\n") {
		if line != "" {
			selected = append(selected, line)
		}
	}
	return selected, nil
}
