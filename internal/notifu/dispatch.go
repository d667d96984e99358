package notifu

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/mblarsen/balloon/internal/execer"
)

// Dispatcher runs notifu in the background.
type Dispatcher struct {
	runner execer.Runner
}

// NewDispatcher creates a dispatcher that starts processes with runner.
func NewDispatcher(runner execer.Runner) *Dispatcher {
	return &Dispatcher{runner: runner}
}

// Dispatch runs path with args once and returns without waiting. onComplete
// is called exactly once from another goroutine, with nil when the process
// exited cleanly and a *DispatchError otherwise. Failed runs are not retried.
func (d *Dispatcher) Dispatch(path string, args []string, onComplete func(error)) {
	args = slices.Clone(args)

	var once sync.Once
	complete := func(err error) {
		once.Do(func() {
			if onComplete != nil {
				onComplete(err)
			}
		})
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				complete(&DispatchError{Path: path, Err: fmt.Errorf("runner panicked: %v", r)})
			}
		}()

		slog.Debug("Dispatching notification", "cmdline", CommandLine(path, args))
		if err := d.runner.Run(path, args); err != nil {
			slog.Debug("Notification failed", "err", err)
			complete(&DispatchError{Path: path, Err: err})
			return
		}
		complete(nil)
	}()
}
