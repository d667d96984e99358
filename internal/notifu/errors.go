package notifu

import (
	"fmt"
	"path/filepath"
)

// DispatchError is reported when notifu could not be started or exited with
// an error.
type DispatchError struct {
	Path string
	Err  error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("could not deliver notification with %s: %v", filepath.Base(e.Path), e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// UnsupportedPlatformError describes a host whose architecture does not map
// onto a notifu build. The resolver logs it and falls back to the 32-bit
// executable.
type UnsupportedPlatformError struct {
	OS   string
	Arch string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("no notifu build for %s/%s", e.OS, e.Arch)
}
