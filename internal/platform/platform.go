package platform

import (
	"runtime"
	"strings"
	"sync"
)

// Facts reports the host properties the notifier backends care about.
type Facts interface {
	// OSFamily returns the operating system family, e.g. "windows".
	OSFamily() string
	// Arch returns the CPU architecture, e.g. "amd64" or "x64".
	Arch() string
}

// Runtime reports the facts of the running binary.
type Runtime struct{}

func (Runtime) OSFamily() string { return runtime.GOOS }
func (Runtime) Arch() string     { return runtime.GOARCH }

// Static reports fixed facts.
type Static struct {
	OS           string
	Architecture string
}

func (s Static) OSFamily() string { return s.OS }
func (s Static) Arch() string     { return s.Architecture }

type cached struct {
	osFamily func() string
	arch     func() string
}

func (c *cached) OSFamily() string { return c.osFamily() }
func (c *cached) Arch() string     { return c.arch() }

// Cached asks f for each fact at most once. It is safe for concurrent use.
func Cached(f Facts) Facts {
	return &cached{
		osFamily: sync.OnceValue(f.OSFamily),
		arch:     sync.OnceValue(f.Arch),
	}
}

// IsWindows reports whether f describes the Windows family.
func IsWindows(f Facts) bool {
	switch strings.ToLower(f.OSFamily()) {
	case "windows", "windows_nt":
		return true
	default:
		return false
	}
}

// WithArch returns facts that report arch instead of f's architecture. An
// empty arch returns f unchanged.
func WithArch(f Facts, arch string) Facts {
	if arch == "" {
		return f
	}
	return Static{OS: f.OSFamily(), Architecture: arch}
}
