// pkg/pkgconf/parser.go
package pkgconf

import "strings"

// Classify splits whitespace-tokenized pkg-config output into typed flag
// buckets. Tokens are matched on a fixed two-character prefix (-I, -L, -l)
// with the remainder taken as the value; anything else goes verbatim into
// ExtraCompileArgs. Classify is a pure function: empty input yields a
// FlagSet with all buckets present but empty.
func Classify(output string) *FlagSet {
	fs := NewFlagSet()

	for _, token := range strings.Fields(output) {
		if len(token) >= 2 {
			switch token[:2] {
			case "-I":
				fs.IncludeDirs = append(fs.IncludeDirs, token[2:])
				continue
			case "-L":
				fs.LibraryDirs = append(fs.LibraryDirs, token[2:])
				continue
			case "-l":
				fs.Libraries = append(fs.Libraries, token[2:])
				continue
			}
		}
		fs.ExtraCompileArgs = append(fs.ExtraCompileArgs, token)
	}

	fs.IncludeDirs = uniq(fs.IncludeDirs)
	fs.LibraryDirs = uniq(fs.LibraryDirs)
	fs.Libraries = uniq(fs.Libraries)
	fs.ExtraCompileArgs = uniq(fs.ExtraCompileArgs)

	return fs
}

// uniq removes duplicates while keeping the first occurrence's position.
// This is a stable dedup, not a sort.
func uniq(seq []string) []string {
	seen := make(map[string]struct{}, len(seq))
	result := seq[:0]

	for _, item := range seq {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}

	return result
}
