// errors.go
package extbuild

import (
	"fmt"

	"github.com/sigkit/extbuild/pkg/toolbox"
)

// ErrVersionUnknown is re-exported for callers that only import the facade.
var ErrVersionUnknown = toolbox.ErrVersionUnknown

// Error wraps an error with additional context.
type Error struct {
	Op        string // Operation that failed
	Extension string // Logical extension name if applicable
	Err       error  // Underlying error
}

func (e *Error) Error() string {
	if e.Extension != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Extension, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
