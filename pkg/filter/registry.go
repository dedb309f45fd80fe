// pkg/filter/registry.go
package filter

import (
	"fmt"
	"sort"
)

// registry holds every declared filter variant, keyed by name. Variants
// register themselves from init() at load time; after that the table is
// read-only.
var registry = map[string]Filter{}

// Register adds a filter variant to the registry. It is meant to be called
// from an init() in the variant's own file and panics on a duplicate name,
// since that is always a programming error.
func Register(f Filter) {
	if f == nil {
		panic("filter: Register called with nil filter")
	}
	if _, dup := registry[f.Name()]; dup {
		panic(fmt.Sprintf("filter: duplicate registration of %q", f.Name()))
	}
	registry[f.Name()] = f
}

// Get returns the variant registered under name.
func Get(name string) (Filter, bool) {
	f, ok := registry[name]
	return f, ok
}

// All returns every registered variant. Enumeration order is not specified;
// callers that need determinism should use Names and look each one up.
func All() []Filter {
	filters := make([]Filter, 0, len(registry))
	for _, f := range registry {
		filters = append(filters, f)
	}
	return filters
}

// Names returns the registered variant names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
