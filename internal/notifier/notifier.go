package notifier

import (
	"fmt"
	"log/slog"

	"github.com/mblarsen/balloon/internal/config"
	"github.com/mblarsen/balloon/internal/desktop"
	"github.com/mblarsen/balloon/internal/execer"
	"github.com/mblarsen/balloon/internal/notifu"
	"github.com/mblarsen/balloon/internal/platform"
	"github.com/mblarsen/balloon/internal/request"
)

// Backend delivers validated notifications. Deliver must not block and must
// call onComplete exactly once.
type Backend interface {
	Deliver(v *request.Validated, onComplete func(error))
}

// Notifier validates requests and hands them to a backend.
type Notifier struct {
	backend  Backend
	defaults map[string]any
}

// New creates a notifier. defaults are merged under every request.
func New(backend Backend, defaults map[string]any) *Notifier {
	return &Notifier{backend: backend, defaults: defaults}
}

// Notify delivers req and reports the outcome to onComplete exactly once.
// An invalid request is reported before Notify returns and never reaches the
// backend; otherwise onComplete runs once delivery finished.
func (n *Notifier) Notify(req request.Request, onComplete func(error)) {
	if onComplete == nil {
		onComplete = func(error) {}
	}

	v, err := request.Validate(req.WithDefaults(n.defaults))
	if err != nil {
		slog.Debug("Rejected notification", "err", err)
		onComplete(err)
		return
	}
	n.backend.Deliver(v, onComplete)
}

// Send delivers req and waits for the outcome.
func (n *Notifier) Send(req request.Request) error {
	done := make(chan error, 1)
	n.Notify(req, func(err error) { done <- err })
	return <-done
}

// Select returns the backend cfg asks for on the host described by facts.
// With the auto backend, Windows hosts get notifu and everything else the
// desktop backend.
func Select(cfg *config.Config, facts platform.Facts, runner execer.Runner) (Backend, error) {
	backend := cfg.Backend
	if backend == config.BackendAuto || backend == "" {
		backend = config.BackendDesktop
		if platform.IsWindows(facts) {
			backend = config.BackendNotifu
		}
	}

	switch backend {
	case config.BackendNotifu:
		vendorDir, err := cfg.ResolveVendorDir()
		if err != nil {
			return nil, err
		}
		resolver, err := notifu.NewResolver(vendorDir, facts, notifu.WithExecutables(cfg.Executable32, cfg.Executable64))
		if err != nil {
			return nil, err
		}
		slog.Debug("Using notifu backend", "vendor_dir", vendorDir)
		return notifu.NewBackend(resolver, notifu.NewDispatcher(runner)), nil
	case config.BackendDesktop:
		slog.Debug("Using desktop backend")
		return desktop.New(cfg.AppIcon), nil
	default:
		return nil, fmt.Errorf("unknown backend '%s'", cfg.Backend)
	}
}
