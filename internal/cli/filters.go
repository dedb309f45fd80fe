// internal/cli/filters.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sigkit/extbuild/pkg/filter"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List registered filter variants and their option schemas",
	Run:   runFilters,
}

func runFilters(cmd *cobra.Command, args []string) {
	names := filter.Names()
	if len(names) == 0 {
		fmt.Println("No filters registered.")
		return
	}

	for _, name := range names {
		f, _ := filter.Get(name)

		fmt.Printf("%s - %s\n", f.Name(), f.Synopsis())
		fmt.Printf("  arguments: %s\n", strings.Join(f.Arguments(), " "))

		for _, opt := range f.Options() {
			metavar := opt.Metavar
			if metavar == "" {
				metavar = "VALUE"
			}
			fmt.Printf("  %s %s (default %v): %s\n",
				strings.Join(opt.Aliases, ", "), metavar, opt.Default, opt.Help)
		}
		fmt.Println()
	}
}
