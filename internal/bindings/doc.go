// Package bindings contains all CGO bindings to the MeCab C API.
//
// # Design Principles
//
// 1. Isolation: ALL CGO code lives in this package. No other package in
//    the module imports "C". pkg/mecab/internalcheck enforces this.
//
// 2. Minimal Surface: one Go function per native entry point the public
//    API needs, nothing more. Raw handles are plain unsafe.Pointer; the
//    public layer owns all lifecycle and aliasing rules.
//
// 3. Memory: native objects are created and destroyed here, exactly once,
//    driven by the wrappers in pkg/mecab. Buffers the native library
//    retains past a call (sentences, feature constraints, prefix-search
//    input) are copied into C memory with AllocBytes and freed with Free
//    by their owning wrapper, never left pointing at Go memory.
//
// 4. Errors: construction failures return a Go error carrying the
//    process-wide MeCab diagnostic. Everything else reports through the
//    native per-object error slots, read via TaggerError/LatticeError.
//
// 5. Portability: the real implementation builds under cgo on non-Windows
//    targets; bindings_stub.go keeps the module compiling everywhere else,
//    failing construction with ErrNotBuilt.
package bindings
