package mecab

import (
	"fmt"

	"github.com/morphokit/mecab-go/internal/bindings"
)

// ErrNotBuilt reports that the binary was built without the native MeCab
// library (no cgo, or Windows). Construction calls fail with it.
var ErrNotBuilt = bindings.ErrNotBuilt

// Error wraps a native failure with the operation that hit it.
type Error struct {
	Op  string // operation that failed, e.g. "Parse"
	Err error  // underlying cause
}

func (e *Error) Error() string {
	return fmt.Sprintf("mecab.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func opErrorf(op, format string, args ...any) error {
	return &Error{Op: op, Err: fmt.Errorf(format, args...)}
}

// LastError reads the process-wide last-error slot maintained by the
// native library. It is overwritten by the most recent failing
// construction call on any thread and is never cleared, so read it
// immediately after the failing call, before any other call on any
// thread can overwrite it.
func LastError() string {
	return bindings.GlobalError()
}

// Version reports the native library version, or "" when the bindings
// are not built in.
func Version() string {
	return bindings.Version()
}
