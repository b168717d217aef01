// Package internalcheck holds source-level invariant tests for the
// binding. They walk the module's packages with go/packages and fail
// when cgo or the raw binding layer leaks outside the boundaries the
// design relies on.
package internalcheck
