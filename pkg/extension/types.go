// pkg/extension/types.go
package extension

import "fmt"

// Descriptor is one buildable extension, ready for the compiled-artifact
// build driver. Immutable once returned by the builder.
type Descriptor struct {
	Name               string   `yaml:"name"`
	IncludeDirs        []string `yaml:"include_dirs"`
	LibraryDirs        []string `yaml:"library_dirs"`
	RuntimeLibraryDirs []string `yaml:"runtime_library_dirs"`
	Libraries          []string `yaml:"libraries"`
	Sources            []string `yaml:"sources,omitempty"`
}

// Spec names one logical extension and the package description it resolves
// through. Optional extensions are skipped silently when their description
// is absent rather than failing the build.
type Spec struct {
	Name     string `yaml:"name"`
	Package  string `yaml:"package"`
	Optional bool   `yaml:"optional,omitempty"`
}

// UnresolvedError reports an extension whose package description yielded no
// required libraries — either the description was not found at all, or it
// describes nothing linkable.
type UnresolvedError struct {
	Name    string // logical extension name
	Package string // concrete package identity that was queried
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("extension %s: package description %q resolved no libraries", e.Name, e.Package)
}
