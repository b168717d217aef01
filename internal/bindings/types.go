package bindings

import "errors"

var (
	// ErrNotBuilt reports that the native MeCab library was not linked
	// into the current binary (non-cgo or Windows build).
	ErrNotBuilt = errors.New("mecab/internal/bindings: native bindings not built")
)
