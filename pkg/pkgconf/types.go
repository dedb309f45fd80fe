// pkg/pkgconf/types.go
package pkgconf

// FlagSet holds the classified compiler and linker flags reported for one
// package. Every bucket keeps first-occurrence order and is free of
// duplicates; ordering matters because compiler and linker argument order
// can affect symbol resolution.
type FlagSet struct {
	IncludeDirs      []string // -I values
	LibraryDirs      []string // -L values
	Libraries        []string // -l values
	ExtraCompileArgs []string // everything else, verbatim
}

// NewFlagSet returns a FlagSet with all four buckets present but empty.
func NewFlagSet() *FlagSet {
	return &FlagSet{
		IncludeDirs:      []string{},
		LibraryDirs:      []string{},
		Libraries:        []string{},
		ExtraCompileArgs: []string{},
	}
}

// Empty reports whether no flags at all were classified.
func (fs *FlagSet) Empty() bool {
	return len(fs.IncludeDirs) == 0 &&
		len(fs.LibraryDirs) == 0 &&
		len(fs.Libraries) == 0 &&
		len(fs.ExtraCompileArgs) == 0
}
