// pkg/toolbox/info.go
package toolbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/sigkit/extbuild/pkg/pkgconf"
)

// ErrVersionUnknown indicates the toolbox version could not be determined
// from the package-description provider. There is no meaningful build
// without a known toolbox version, so this aborts the whole session.
var ErrVersionUnknown = errors.New("toolbox version unknown")

// Info describes where the toolbox is installed. One Info is loaded per
// session and treated as immutable afterwards; Load never produces a
// partial record.
type Info struct {
	Version    string // toolbox version, never empty
	LibDir     string // base library directory
	IncludeDir string // base include directory

	parsed *semver.Version
}

// Load queries the provider for the toolbox's version and base directories.
// A version that cannot be retrieved or parsed is fatal.
func Load(ctx context.Context, client *pkgconf.Client) (*Info, error) {
	version, ok := client.ModVersion(ctx, client.ToolboxPkg())
	if !ok || version == "" {
		return nil, fmt.Errorf("querying %s: %w", client.ToolboxPkg(), ErrVersionUnknown)
	}

	parsed, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("parsing toolbox version %q: %w", version, ErrVersionUnknown)
	}

	libDir, _ := client.Variable(ctx, "libdir")
	includeDir, _ := client.Variable(ctx, "includedir")

	return &Info{
		Version:    version,
		LibDir:     libDir,
		IncludeDir: includeDir,
		parsed:     parsed,
	}, nil
}

// ABISuffix returns the two-component version suffix under which per-ABI
// package descriptions are published, e.g. version 3.11.2 yields "311".
func (i *Info) ABISuffix() string {
	return fmt.Sprintf("%d%d", i.parsed.Major(), i.parsed.Minor())
}

// ABISuffixFor derives the same suffix from an explicit version string,
// for callers that pin the compatible-ABI version in configuration.
func ABISuffixFor(version string) (string, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return "", fmt.Errorf("parsing runtime version %q: %w", version, err)
	}
	return fmt.Sprintf("%d%d", v.Major(), v.Minor()), nil
}
