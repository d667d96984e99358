package execer

import (
	"errors"
	"os/exec"
	"testing"
)

func TestExec_Run(t *testing.T) {
	t.Run("successful run", func(t *testing.T) {
		if err := (Exec{}).Run("true", nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("arguments are passed verbatim", func(t *testing.T) {
		script := `test "$1" = 'some "me'"'"'ss` + "`age`" + `"'`
		if err := (Exec{}).Run("sh", []string{"-c", script, "sh", `some "me'ss` + "`age`" + `"`}); err != nil {
			t.Fatalf("expected argument to arrive unchanged, got %v", err)
		}
	})

	t.Run("command not found", func(t *testing.T) {
		err := (Exec{}).Run("command-that-does-not-exist", nil)
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
		if !errors.Is(err, exec.ErrNotFound) {
			t.Errorf("expected exec.ErrNotFound, got %v", err)
		}
	})

	t.Run("non-zero exit code", func(t *testing.T) {
		err := (Exec{}).Run("false", nil)
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("expected an *ExitError, got %T", err)
		}
		if exitErr.ExitCode != 1 {
			t.Errorf("expected exit code 1, got %d", exitErr.ExitCode)
		}
		if exitErr.Name != "false" {
			t.Errorf("expected name 'false', got %q", exitErr.Name)
		}
	})

	t.Run("stderr is captured", func(t *testing.T) {
		err := (Exec{}).Run("sh", []string{"-c", "echo boom >&2; exit 3"})
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("expected an *ExitError, got %T", err)
		}
		if exitErr.ExitCode != 3 {
			t.Errorf("expected exit code 3, got %d", exitErr.ExitCode)
		}
		if exitErr.Stderr != "boom" {
			t.Errorf("expected stderr 'boom', got %q", exitErr.Stderr)
		}
	})
}

func TestRunnerFunc(t *testing.T) {
	var gotPath string
	var gotArgs []string
	r := RunnerFunc(func(path string, args []string) error {
		gotPath, gotArgs = path, args
		return nil
	})

	if err := r.Run("notifu.exe", []string{"-m", "body"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotPath != "notifu.exe" || len(gotArgs) != 2 {
		t.Errorf("unexpected call %q %v", gotPath, gotArgs)
	}
}
