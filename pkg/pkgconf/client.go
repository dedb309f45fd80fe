// pkg/pkgconf/client.go
package pkgconf

import (
	"context"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
)

// Client queries the external package-description provider. A missing
// provider or an unknown package is a normal outcome for every query form
// except --modversion, whose absence callers must treat as fatal.
type Client struct {
	binary     string
	toolboxPkg string
	logger     *log.Logger
}

// Config controls Client construction.
type Config struct {
	Binary     string // provider executable (default: PKG_CONFIG env, then "pkg-config")
	ToolboxPkg string // package identity of the toolbox itself
	Debug      bool
	Logger     *log.Logger
}

// NewClient creates a provider client with sensible defaults.
func NewClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}

	binary := cfg.Binary
	if binary == "" {
		binary = os.Getenv(BinaryEnv)
	}
	if binary == "" {
		binary = DefaultBinary
	}

	toolboxPkg := cfg.ToolboxPkg
	if toolboxPkg == "" {
		toolboxPkg = DefaultToolboxPackage
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stdout, "[PKGCONF] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &Client{
		binary:     binary,
		toolboxPkg: toolboxPkg,
		logger:     logger,
	}
}

// ToolboxPkg returns the package identity used for toolbox-global queries.
func (c *Client) ToolboxPkg() string {
	return c.toolboxPkg
}

// Query asks the provider for the combined link and compile flags of pkg and
// classifies them. The second return distinguishes "description found" from
// "description absent": a non-zero exit (or a provider that is not installed
// at all) yields an empty FlagSet and false, never an error — a missing
// optional package is not a failure.
func (c *Client) Query(ctx context.Context, pkg string) (*FlagSet, bool) {
	output, ok := c.run(ctx, "--libs", "--cflags", pkg)
	if !ok {
		return NewFlagSet(), false
	}
	return Classify(output), true
}

// Variable fetches a single named variable from the toolbox's own package
// description, trimmed of surrounding whitespace. Returns false on non-zero
// exit.
func (c *Client) Variable(ctx context.Context, name string) (string, bool) {
	output, ok := c.run(ctx, "--variable="+name, c.toolboxPkg)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(output), true
}

// ModVersion fetches the published version of pkg. Callers querying the
// toolbox itself must treat false as fatal: without a discoverable version
// the toolbox cannot be used at all.
func (c *Client) ModVersion(ctx context.Context, pkg string) (string, bool) {
	output, ok := c.run(ctx, "--modversion", pkg)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(output), true
}

// run invokes the provider once and captures combined output as UTF-8 text.
func (c *Client) run(ctx context.Context, args ...string) (string, bool) {
	cmd := exec.CommandContext(ctx, c.binary, args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		c.logger.Printf("%s %s: %v", c.binary, strings.Join(args, " "), err)
		return "", false
	}

	return string(output), true
}
