// pkg/linker/prober.go
package linker

import (
	"context"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// CapabilityFlag asks the linker to keep symbols from libraries that appear
// unused at link time. Only linkers that understand the flag accept it, so
// support is probed once per session.
const CapabilityFlag = "-Wl,--no-as-needed"

// trivialLib is a minimal library reference every functional linker can
// resolve, used for the throwaway probe link.
const trivialLib = "-lm"

// Prober answers, once per build session, whether the active linker supports
// the unused-symbols-removable link mode. The verdict is memoized behind a
// one-shot guard and never re-probed, even if conditions change.
type Prober struct {
	base   []string
	logger *log.Logger

	once    sync.Once
	capable bool
}

// NewProber sanitizes the base linker invocation and wraps it for probing.
// Any token carrying a pre-seeded -L search path is dropped so a stale path
// cannot leak into every later link.
func NewProber(linkerCmd []string, logger *log.Logger) *Prober {
	base := make([]string, 0, len(linkerCmd))
	for _, token := range linkerCmd {
		if strings.HasPrefix(token, "-L") {
			continue
		}
		base = append(base, token)
	}

	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Prober{base: base, logger: logger}
}

// Base returns a copy of the sanitized linker invocation.
func (p *Prober) Base() []string {
	return append([]string{}, p.base...)
}

// Capable probes the linker on first call and returns the memoized verdict
// afterwards without re-invoking it. A failed probe means "capability
// absent", never an error.
func (p *Prober) Capable(ctx context.Context) bool {
	p.once.Do(func() {
		p.capable = p.probe(ctx)
	})
	return p.capable
}

// LinkArgs returns the linker invocation for subsequent links, with the
// capability flag appended when the probe succeeded.
func (p *Prober) LinkArgs(ctx context.Context) []string {
	args := p.Base()
	if p.Capable(ctx) {
		args = append(args, CapabilityFlag)
	}
	return args
}

// probe attempts a trivial link against a throwaway output path. The
// throwaway file is removed on every exit path.
func (p *Prober) probe(ctx context.Context) bool {
	if len(p.base) == 0 {
		return false
	}

	tmp, err := os.CreateTemp("", "extbuild-probe-*")
	if err != nil {
		p.logger.Printf("probe temp file: %v", err)
		return false
	}
	name := tmp.Name()
	tmp.Close()
	defer os.Remove(name)

	args := append(p.Base()[1:], CapabilityFlag, trivialLib, "-o", name)
	cmd := exec.CommandContext(ctx, p.base[0], args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		p.logger.Printf("probe link failed: %v\n%s", err, output)
		return false
	}

	return true
}
