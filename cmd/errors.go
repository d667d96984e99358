package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"

	"github.com/mblarsen/balloon/internal/execer"
)

// explainError adds a hint for failures a user can fix.
func explainError(err error, configPath string) error {
	var exitErr *execer.ExitError
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		slog.Error("notifu executable not found", "err", err)
		return fmt.Errorf("%w\nnotifu was not found. Set vendor_dir in %s to the directory holding notifu.exe and notifu64.exe", err, configPath)
	case errors.As(err, &exitErr):
		slog.Error("notifu exited with an error", "code", exitErr.ExitCode, "stderr", exitErr.Stderr)
	}
	return err
}
