package desktop

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/mblarsen/balloon/internal/request"
)

// Backend delivers notifications through the desktop notification service
// of the host (D-Bus on Linux, Notification Center on macOS).
type Backend struct {
	appIcon string
	notify  func(title, message, icon string) error
	alert   func(title, message, icon string) error
}

// New creates a desktop backend. appIcon is shown when a request has no icon.
func New(appIcon string) *Backend {
	return &Backend{
		appIcon: appIcon,
		notify:  func(title, message, icon string) error { return beeep.Notify(title, message, icon) },
		alert:   func(title, message, icon string) error { return beeep.Alert(title, message, icon) },
	}
}

// Deliver shows v in the background and calls onComplete once. Requests that
// are not quiet are shown as alerts, which play a sound.
func (b *Backend) Deliver(v *request.Validated, onComplete func(error)) {
	go func() {
		err := b.send(v)
		if onComplete != nil {
			onComplete(err)
		}
	}()
}

func (b *Backend) send(v *request.Validated) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &Error{Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	icon := b.icon(v)
	send := b.notify
	if !v.Quiet {
		send = b.alert
	}
	if err := send(v.Title, v.Message, icon); err != nil {
		return &Error{Err: err}
	}
	return nil
}

func (b *Backend) icon(v *request.Validated) string {
	for _, key := range []string{"icon", "i"} {
		if s, ok := request.Text(v.Options[key]); ok && s != "" {
			return s
		}
	}
	return b.appIcon
}

// Error is reported when the desktop notification service rejected a
// notification.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("could not deliver desktop notification: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
