// internal/cli/build.go
package cli

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sigkit/extbuild"
	"github.com/sigkit/extbuild/pkg/extension"
)

var (
	buildOutput   string
	buildContinue bool
)

var buildCmd = &cobra.Command{
	Use:   "build [extension...]",
	Short: "Resolve extension descriptors",
	Long: `Resolve one or more logical extensions into ready-to-compile
descriptors. With no arguments, the extensions declared in the
configuration file are built.

Examples:
  extbuild build core
  extbuild build core io math --continue-on-error
  extbuild build --destdir=/stage --output=descriptors.yaml`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "write descriptors to file instead of stdout")
	buildCmd.Flags().BoolVar(&buildContinue, "continue-on-error", false, "keep building siblings after a failed extension")
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	orch, err := extbuild.New(ctx, config)
	if err != nil {
		return err
	}

	if config.Debug {
		fmt.Printf("Toolbox %s (libdir: %s)\n", orch.Toolbox().Version, orch.Toolbox().LibDir)
	}

	specs := config.Extensions
	if len(args) > 0 {
		specs = specsFor(args)
	}
	if len(specs) == 0 {
		return fmt.Errorf("no extensions to build: name some on the command line or declare them in the config")
	}

	descriptors, buildErr := orch.BuildAll(ctx, specs, !buildContinue)
	for _, d := range descriptors {
		color.Green.Printf("✓ %s (%d libraries)\n", d.Name, len(d.Libraries))
	}
	if buildErr != nil {
		color.Red.Printf("✗ %v\n", buildErr)
	}

	if len(descriptors) > 0 {
		if err := writeDescriptors(descriptors); err != nil {
			return err
		}
	}

	return buildErr
}

// specsFor maps command-line names onto config specs, falling back to the
// convention that the package identity matches the logical name.
func specsFor(names []string) []extension.Spec {
	declared := make(map[string]extension.Spec, len(config.Extensions))
	for _, spec := range config.Extensions {
		declared[spec.Name] = spec
	}

	specs := make([]extension.Spec, 0, len(names))
	for _, name := range names {
		if spec, ok := declared[name]; ok {
			specs = append(specs, spec)
			continue
		}
		specs = append(specs, extension.Spec{Name: name, Package: name})
	}
	return specs
}

func writeDescriptors(descriptors []*extension.Descriptor) error {
	data, err := yaml.Marshal(descriptors)
	if err != nil {
		return fmt.Errorf("marshaling descriptors: %w", err)
	}

	if buildOutput == "" {
		fmt.Print(string(data))
		return nil
	}

	if err := os.WriteFile(buildOutput, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", buildOutput, err)
	}
	fmt.Printf("Wrote %d descriptors to %s\n", len(descriptors), buildOutput)
	return nil
}
