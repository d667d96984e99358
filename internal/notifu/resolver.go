package notifu

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mblarsen/balloon/internal/fileutil"
	"github.com/mblarsen/balloon/internal/platform"
)

// Default executable names of the two notifu builds.
const (
	Executable32 = "notifu.exe"
	Executable64 = "notifu64.exe"
)

var arch64 = map[string]bool{
	"x64":      true,
	"amd64":    true,
	"x86_64":   true,
	"arm64":    true,
	"aarch64":  true,
	"ppc64":    true,
	"ppc64le":  true,
	"s390x":    true,
	"riscv64":  true,
	"loong64":  true,
	"mips64":   true,
	"mips64le": true,
}

var arch32 = map[string]bool{
	"ia32": true,
	"x86":  true,
	"386":  true,
	"arm":  true,
}

// Is64Bit reports whether arch names a 64-bit architecture.
func Is64Bit(arch string) bool {
	return arch64[strings.ToLower(arch)]
}

// Resolver picks the notifu executable for the host.
type Resolver struct {
	facts  platform.Facts
	path32 string
	path64 string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*resolverOptions)

type resolverOptions struct {
	name32 string
	name64 string
}

// WithExecutables overrides the executable names looked up in the vendor
// directory.
func WithExecutables(name32, name64 string) ResolverOption {
	return func(o *resolverOptions) {
		if name32 != "" {
			o.name32 = name32
		}
		if name64 != "" {
			o.name64 = name64
		}
	}
}

// NewResolver returns a resolver for the notifu builds in vendorDir. The
// executable names must stay inside vendorDir.
func NewResolver(vendorDir string, facts platform.Facts, opts ...ResolverOption) (*Resolver, error) {
	o := resolverOptions{name32: Executable32, name64: Executable64}
	for _, opt := range opts {
		opt(&o)
	}

	path32, err := fileutil.JoinInsideRoot(vendorDir, o.name32)
	if err != nil {
		return nil, fmt.Errorf("invalid 32-bit notifu executable: %w", err)
	}
	path64, err := fileutil.JoinInsideRoot(vendorDir, o.name64)
	if err != nil {
		return nil, fmt.Errorf("invalid 64-bit notifu executable: %w", err)
	}

	return &Resolver{facts: facts, path32: path32, path64: path64}, nil
}

// Resolve returns the path of the notifu build matching the host
// architecture. Architectures it does not recognize get the 32-bit build,
// which runs on every Windows host.
func (r *Resolver) Resolve() string {
	arch := strings.ToLower(r.facts.Arch())
	switch {
	case arch64[arch]:
		return r.path64
	case arch32[arch]:
		return r.path32
	default:
		slog.Warn("Unknown architecture, using 32-bit notifu.",
			"err", &UnsupportedPlatformError{OS: r.facts.OSFamily(), Arch: arch})
		return r.path32
	}
}
