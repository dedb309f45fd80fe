// internal/cli/filter.go
package cli

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/sigkit/extbuild/pkg/filter"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Apply a registered filter to an image",
	Long: `Apply one of the registered filter variants. Each variant is a
subcommand whose flags come from the variant's own option schema.

Examples:
  extbuild filter crop -x 10 -y 10 --width 64 --height 64 in.png out.png
  extbuild filter grayscale in.png out.png`,
}

func init() {
	// One subcommand per registered variant, flags materialized from the
	// variant's declared option schema.
	for _, name := range filter.Names() {
		f, _ := filter.Get(name)
		filterCmd.AddCommand(filterCommand(f))
	}
}

func filterCommand(f filter.Filter) *cobra.Command {
	use := f.Name()
	if args := f.Arguments(); len(args) > 0 {
		use += " <" + strings.Join(args, "> <") + ">"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: f.Synopsis(),
		Args:  cobra.ExactArgs(len(f.Arguments())),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.Run(cmd.Context(), cmd.Flags(), args); err != nil {
				return fmt.Errorf("filter %s: %w", f.Name(), err)
			}
			color.Green.Printf("✓ %s -> %s\n", args[0], args[len(args)-1])
			return nil
		},
	}

	if err := filter.BindOptions(f, cmd.Flags()); err != nil {
		// A schema that cannot bind is a declaration bug in the variant.
		panic(err)
	}

	return cmd
}
