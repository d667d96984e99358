package notifu

import (
	"github.com/mblarsen/balloon/internal/request"
)

// Backend delivers notifications through notifu.
type Backend struct {
	resolver   *Resolver
	dispatcher *Dispatcher
}

// NewBackend creates a notifu backend.
func NewBackend(resolver *Resolver, dispatcher *Dispatcher) *Backend {
	return &Backend{resolver: resolver, dispatcher: dispatcher}
}

// Deliver compiles v and dispatches it to the notifu build for the host.
func (b *Backend) Deliver(v *request.Validated, onComplete func(error)) {
	b.dispatcher.Dispatch(b.resolver.Resolve(), Compile(v), onComplete)
}

// CommandLine returns the command line Deliver would run for v.
func (b *Backend) CommandLine(v *request.Validated) string {
	return CommandLine(b.resolver.Resolve(), Compile(v))
}
