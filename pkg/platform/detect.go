// pkg/platform/detect.go
package platform

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Platform represents the detected build platform.
type Platform struct {
	OS          string // linux, darwin, windows
	Arch        string // amd64, arm64, 386, arm
	CompatLayer bool   // running under the Windows-compatibility POSIX layer
}

// Detect detects the current build platform.
func Detect() *Platform {
	return &Platform{
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		CompatLayer: detectCompatLayer(),
	}
}

// NeedsPlaceholderSource reports whether the platform's build front end only
// accepts a foreign-compiler override when at least one compiled source file
// is present. That constraint exists solely under the Windows-compatibility
// POSIX layer.
func (p *Platform) NeedsPlaceholderSource() bool {
	return p.CompatLayer
}

// detectCompatLayer recognizes the CYGWIN/MSYS POSIX layer, which reports
// itself through the environment rather than through GOOS.
func detectCompatLayer() bool {
	if runtime.GOOS != "windows" {
		return false
	}
	if strings.Contains(strings.ToLower(os.Getenv("OSTYPE")), "cygwin") {
		return true
	}
	return os.Getenv("MSYSTEM") != ""
}

// String returns a string representation of the platform.
func (p *Platform) String() string {
	if p.CompatLayer {
		return fmt.Sprintf("%s/%s (compat layer)", p.OS, p.Arch)
	}
	return fmt.Sprintf("%s/%s", p.OS, p.Arch)
}
