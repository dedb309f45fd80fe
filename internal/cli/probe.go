// internal/cli/probe.go
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/sigkit/extbuild/pkg/linker"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Probe the linker for the unused-symbols-removable capability",
	Long: `Probe whether the configured linker accepts ` + linker.CapabilityFlag + `
by attempting a trivial link. The verdict decides whether the flag is
appended to every link command of the session.`,
	RunE: runProbe,
}

func runProbe(cmd *cobra.Command, args []string) error {
	logger := log.New(io.Discard, "", 0)
	if config.Debug {
		logger = log.New(os.Stderr, "[linker] ", log.LstdFlags)
	}

	prober := linker.NewProber(config.Linker, logger)

	if prober.Capable(cmd.Context()) {
		color.Green.Printf("✓ linker supports %s\n", linker.CapabilityFlag)
	} else {
		color.Yellow.Printf("✗ linker does not support %s\n", linker.CapabilityFlag)
	}

	fmt.Println("link command:", strings.Join(prober.LinkArgs(cmd.Context()), " "))
	return nil
}
