// pkg/filter/filter.go
package filter

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"
)

// Filter is the single capability concrete variants implement. The
// interface itself is never a variant: only registered implementations
// appear in enumeration.
type Filter interface {
	// Name is the variant's declared identity, used for dispatch.
	Name() string

	// Synopsis is a one-line description for listings.
	Synopsis() string

	// Options returns the variant's CLI option schema. The schema is
	// declared once per variant, not rebuilt per enumeration.
	Options() []Option

	// Arguments returns the fixed ordered positional-argument names the
	// variant expects.
	Arguments() []string

	// Run applies the filter with the parsed option values and positional
	// arguments.
	Run(ctx context.Context, opts *pflag.FlagSet, args []string) error
}

// Kind is the value type of one option.
type Kind int

const (
	Int Kind = iota
	String
	Float
	Bool
)

// Option describes one CLI option a filter variant exposes: an alias set
// plus metadata for command construction.
type Option struct {
	Aliases []string    // flag spellings, e.g. ["-w", "--width"]
	Dest    string      // storage key
	Kind    Kind        // value type
	Default interface{} // default value, matching Kind
	Metavar string      // display placeholder, e.g. "INT"
	Help    string
}

// FlagName returns the name the option is registered under: its long alias
// when one exists, otherwise the storage key.
func (o Option) FlagName() string {
	for _, alias := range o.Aliases {
		if len(alias) > 2 {
			return alias[2:]
		}
	}
	return o.Dest
}

// Shorthand returns the option's one-letter alias, or empty.
func (o Option) Shorthand() string {
	for _, alias := range o.Aliases {
		if len(alias) == 2 {
			return alias[1:]
		}
	}
	return ""
}

// BindOptions materializes a variant's option schema on a pflag set, for
// downstream command construction.
func BindOptions(f Filter, fs *pflag.FlagSet) error {
	for _, opt := range f.Options() {
		name, short := opt.FlagName(), opt.Shorthand()

		switch opt.Kind {
		case Int:
			def, ok := opt.Default.(int)
			if !ok {
				return fmt.Errorf("filter %s: option %s: default %v is not an int", f.Name(), name, opt.Default)
			}
			fs.IntP(name, short, def, opt.Help)
		case String:
			def, ok := opt.Default.(string)
			if !ok {
				return fmt.Errorf("filter %s: option %s: default %v is not a string", f.Name(), name, opt.Default)
			}
			fs.StringP(name, short, def, opt.Help)
		case Float:
			def, ok := opt.Default.(float64)
			if !ok {
				return fmt.Errorf("filter %s: option %s: default %v is not a float", f.Name(), name, opt.Default)
			}
			fs.Float64P(name, short, def, opt.Help)
		case Bool:
			def, ok := opt.Default.(bool)
			if !ok {
				return fmt.Errorf("filter %s: option %s: default %v is not a bool", f.Name(), name, opt.Default)
			}
			fs.BoolP(name, short, def, opt.Help)
		default:
			return fmt.Errorf("filter %s: option %s: unknown kind %d", f.Name(), name, opt.Kind)
		}
	}
	return nil
}
