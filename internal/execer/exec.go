package execer

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runner runs an executable with an argument list and waits for it to exit.
type Runner interface {
	Run(path string, args []string) error
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(path string, args []string) error

func (f RunnerFunc) Run(path string, args []string) error {
	return f(path, args)
}

// Exec runs processes with os/exec. Arguments are passed as argv entries,
// no shell is involved.
type Exec struct{}

func (Exec) Run(path string, args []string) error {
	cmd := exec.Command(path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{
				Name:     filepath.Base(path),
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
				Err:      err,
			}
		}
		return fmt.Errorf("failed to execute '%s': %w", filepath.Base(path), err)
	}
	return nil
}

// ExitError is returned when a process exits with a non-zero status.
type ExitError struct {
	Name     string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s failed with exit code %d", e.Name, e.ExitCode)
	}
	return fmt.Sprintf("%s failed with exit code %d: %s", e.Name, e.ExitCode, e.Stderr)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
