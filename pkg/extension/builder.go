// pkg/extension/builder.go
package extension

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/sigkit/extbuild/pkg/pkgconf"
	"github.com/sigkit/extbuild/pkg/toolbox"
)

// PlaceholderSource is the compiled placeholder included on platforms whose
// build front end only accepts a foreign-compiler override when at least one
// source file is present.
const PlaceholderSource = "empty.c"

// Builder assembles ready-to-compile extension descriptors from classified
// provider flags and platform/staging rules. It performs no caching across
// calls: flag sets can differ per extension, so each logical name is rebuilt
// independently.
type Builder struct {
	client      *pkgconf.Client
	info        *toolbox.Info
	cagingRoot  string
	abiSuffix   string
	placeholder bool
	logger      *log.Logger
}

// BuilderConfig controls descriptor assembly.
type BuilderConfig struct {
	// CagingRoot is the staged alternate filesystem root under which the
	// toolbox is considered pre-installed. Empty means "install normally".
	CagingRoot string

	// ABISuffix is appended to package identities, since flag sets are
	// published per compatible-ABI version.
	ABISuffix string

	// PlaceholderSource turns on the one-platform workaround of shipping a
	// single placeholder source file with every descriptor.
	PlaceholderSource bool

	Logger *log.Logger
}

// NewBuilder creates a descriptor builder for one build session.
func NewBuilder(client *pkgconf.Client, info *toolbox.Info, cfg *BuilderConfig) *Builder {
	if cfg == nil {
		cfg = &BuilderConfig{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Builder{
		client:      client,
		info:        info,
		cagingRoot:  cfg.CagingRoot,
		abiSuffix:   cfg.ABISuffix,
		placeholder: cfg.PlaceholderSource,
		logger:      logger,
	}
}

// Build resolves one logical extension into a complete descriptor.
//
// The package identity is suffixed with the compatible-ABI version before
// querying. Discovered include and library directories that do not exist on
// disk are dropped silently — descriptions may list speculative paths. When
// a caging root is configured, staged-root-relative paths are searched
// before normally discovered ones. An extension that resolves to zero
// required libraries cannot link meaningfully and is a hard failure.
func (b *Builder) Build(ctx context.Context, name, pkgID string) (*Descriptor, error) {
	concrete := pkgID + b.abiSuffix

	flags, found := b.client.Query(ctx, concrete)
	if !found {
		b.logger.Printf("no package description for %s", concrete)
	}

	includeDirs := existingDirs(flags.IncludeDirs)
	libraryDirs := existingDirs(flags.LibraryDirs)

	if b.cagingRoot != "" {
		sep := string(os.PathSeparator)
		cagedLib := filepath.Join(b.cagingRoot, strings.TrimLeft(b.info.LibDir, sep))
		cagedInclude := filepath.Join(b.cagingRoot, strings.Trim(b.info.IncludeDir, sep))
		libraryDirs = append([]string{cagedLib}, libraryDirs...)
		includeDirs = append([]string{cagedInclude}, includeDirs...)
	}

	var sources []string
	if b.placeholder {
		sources = []string{PlaceholderSource}
	}

	if len(flags.Libraries) == 0 {
		return nil, &UnresolvedError{Name: name, Package: concrete}
	}

	return &Descriptor{
		Name:               name,
		IncludeDirs:        includeDirs,
		LibraryDirs:        libraryDirs,
		RuntimeLibraryDirs: append([]string{}, libraryDirs...),
		Libraries:          flags.Libraries,
		Sources:            sources,
	}, nil
}

// BuildAll resolves a list of extension specs in order. Optional specs whose
// package description is absent are skipped without error. When
// stopOnFailure is false, failed extensions do not abort their siblings; the
// first error encountered is still returned alongside the partial results.
func (b *Builder) BuildAll(ctx context.Context, specs []Spec, stopOnFailure bool) ([]*Descriptor, error) {
	var descriptors []*Descriptor
	var firstErr error

	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			break
		}

		if spec.Optional {
			if _, found := b.client.Query(ctx, spec.Package+b.abiSuffix); !found {
				b.logger.Printf("skipping optional extension %s", spec.Name)
				continue
			}
		}

		descriptor, err := b.Build(ctx, spec.Name, spec.Package)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if stopOnFailure {
				break
			}
			continue
		}

		descriptors = append(descriptors, descriptor)
	}

	return descriptors, firstErr
}

// existingDirs filters paths down to those present on disk at build time.
func existingDirs(paths []string) []string {
	existing := make([]string, 0, len(paths))
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	return existing
}
