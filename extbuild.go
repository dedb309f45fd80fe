// extbuild.go
package extbuild

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/sigkit/extbuild/pkg/core"
	"github.com/sigkit/extbuild/pkg/extension"
	"github.com/sigkit/extbuild/pkg/linker"
	"github.com/sigkit/extbuild/pkg/pkgconf"
	"github.com/sigkit/extbuild/pkg/platform"
	"github.com/sigkit/extbuild/pkg/toolbox"
)

// Re-export commonly used types for convenience
type (
	Config      = core.Config
	Descriptor  = extension.Descriptor
	Spec        = extension.Spec
	FlagSet     = pkgconf.FlagSet
	ToolboxInfo = toolbox.Info
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Orchestrator wires the package query client, the toolbox record, the
// descriptor builder and the linker prober for one build session.
type Orchestrator struct {
	client  *pkgconf.Client
	info    *toolbox.Info
	builder *extension.Builder
	prober  *linker.Prober
	config  *core.Config
}

// New creates an Orchestrator from config. It fails outright when the
// toolbox version cannot be determined: no partial session is ever produced.
func New(ctx context.Context, cfg *core.Config) (*Orchestrator, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}

	var logger *log.Logger
	if cfg.Debug {
		logger = log.New(os.Stderr, "[extbuild] ", log.LstdFlags)
	} else {
		logger = log.New(io.Discard, "", 0)
	}

	client := pkgconf.NewClient(&pkgconf.Config{
		Binary:     cfg.PkgConfig,
		ToolboxPkg: cfg.Toolbox,
		Logger:     logger,
	})

	info, err := toolbox.Load(ctx, client)
	if err != nil {
		return nil, &Error{Op: "loading toolbox", Err: err}
	}

	suffix := info.ABISuffix()
	if cfg.RuntimeVersion != "" {
		if suffix, err = toolbox.ABISuffixFor(cfg.RuntimeVersion); err != nil {
			return nil, &Error{Op: "deriving ABI suffix", Err: err}
		}
	}

	placeholder := platform.Detect().NeedsPlaceholderSource()
	if cfg.PlaceholderSource != nil {
		placeholder = *cfg.PlaceholderSource
	}

	builder := extension.NewBuilder(client, info, &extension.BuilderConfig{
		CagingRoot:        cfg.CagingRoot,
		ABISuffix:         suffix,
		PlaceholderSource: placeholder,
		Logger:            logger,
	})

	return &Orchestrator{
		client:  client,
		info:    info,
		builder: builder,
		prober:  linker.NewProber(cfg.Linker, logger),
		config:  cfg,
	}, nil
}

// Toolbox returns the immutable toolbox record loaded for this session.
func (o *Orchestrator) Toolbox() *toolbox.Info {
	return o.info
}

// Build resolves one logical extension into a descriptor.
func (o *Orchestrator) Build(ctx context.Context, name, pkgID string) (*Descriptor, error) {
	descriptor, err := o.builder.Build(ctx, name, pkgID)
	if err != nil {
		return nil, &Error{Op: "building", Extension: name, Err: err}
	}
	return descriptor, nil
}

// BuildAll resolves every spec in order; see extension.Builder.BuildAll for
// the optional-skip and stop-on-failure semantics.
func (o *Orchestrator) BuildAll(ctx context.Context, specs []Spec, stopOnFailure bool) ([]*Descriptor, error) {
	return o.builder.BuildAll(ctx, specs, stopOnFailure)
}

// LinkerCapable reports the memoized unused-symbols-removable verdict.
func (o *Orchestrator) LinkerCapable(ctx context.Context) bool {
	return o.prober.Capable(ctx)
}

// LinkArgs returns the sanitized linker invocation for this session, with
// the capability flag appended when supported.
func (o *Orchestrator) LinkArgs(ctx context.Context) []string {
	return o.prober.LinkArgs(ctx)
}
