// internal/cli/stage.go
package cli

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/sigkit/extbuild/pkg/stage"
)

var stageCmd = &cobra.Command{
	Use:   "stage <artifact.tar.xz>",
	Short: "Pack the caged install root into a tar.xz artifact",
	Long: `Pack the caged install root (--destdir or $DESTDIR) into a
distributable tar.xz artifact and print its BLAKE3 checksum.`,
	Args: cobra.ExactArgs(1),
	RunE: runStage,
}

func runStage(cmd *cobra.Command, args []string) error {
	if config.CagingRoot == "" {
		return fmt.Errorf("no caged install root configured: set --destdir or $DESTDIR")
	}

	artifact := args[0]
	if err := stage.Pack(config.CagingRoot, artifact); err != nil {
		return fmt.Errorf("packing %s: %w", config.CagingRoot, err)
	}

	sum, err := stage.Checksum(artifact)
	if err != nil {
		return err
	}

	color.Green.Printf("✓ %s\n", artifact)
	fmt.Printf("  blake3: %s\n", sum)
	return nil
}
