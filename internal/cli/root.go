// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sigkit/extbuild/pkg/core"
)

var (
	cfgFile    string
	pkgConfig  string
	toolboxPkg string
	destDir    string
	debug      bool
	config     *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "extbuild",
	Short: "Native extension build orchestrator",
	Long: `extbuild - Native extension build orchestrator

Discovers compiler and linker flags for toolbox extensions through
pkg-config, probes the linker for optional capabilities, and produces
ready-to-compile extension descriptors, including caged (staged-root)
builds.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/extbuild/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&pkgConfig, "pkg-config", "", "package-description provider binary")
	rootCmd.PersistentFlags().StringVar(&toolboxPkg, "toolbox", "", "package identity of the toolbox")
	rootCmd.PersistentFlags().StringVar(&destDir, "destdir", "", "caged install root (defaults to $DESTDIR)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(filtersCmd)
	rootCmd.AddCommand(stageCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if pkgConfig != "" {
		config.PkgConfig = pkgConfig
	}
	if toolboxPkg != "" {
		config.Toolbox = toolboxPkg
	}
	if destDir != "" {
		config.CagingRoot = destDir
	}
	if debug {
		config.Debug = true
	}
}
