package mecab

import (
	"errors"
	"runtime"
	"unsafe"

	"github.com/morphokit/mecab-go/internal/bindings"
)

// Tagger runs the native search algorithm over a Lattice. It holds no
// per-call state of its own: one Tagger may serve many goroutines
// concurrently as long as no two of them pass the same Lattice.
type Tagger struct {
	model *Model // keeps the owning model reachable
	ptr   unsafe.Pointer
}

// Parse runs the search over lat's current sentence and request flags,
// populating its node/path graph in place. Existing Node and Path views
// of lat are invalidated. On failure the returned error wraps the
// lattice's diagnostic.
//
// Parse must not be called on the same Lattice from two goroutines at
// once.
func (t *Tagger) Parse(lat *Lattice) error {
	if t == nil || t.ptr == nil {
		panic("mecab: Tagger used after Close")
	}
	lat.invalidate()
	ok := bindings.TaggerParse(t.ptr, lat.handle())
	runtime.KeepAlive(t)
	runtime.KeepAlive(lat)
	if !ok {
		return &Error{Op: "Parse", Err: errors.New(lat.Error())}
	}
	return nil
}

// Error returns the tagger's native diagnostic slot.
func (t *Tagger) Error() string {
	if t == nil || t.ptr == nil {
		panic("mecab: Tagger used after Close")
	}
	s := bindings.TaggerError(t.ptr)
	runtime.KeepAlive(t)
	return s
}

// Close releases the native tagger. Safe to call more than once.
func (t *Tagger) Close() error {
	if t == nil || t.ptr == nil {
		return nil
	}
	bindings.TaggerDestroy(t.ptr)
	t.ptr = nil
	t.model = nil
	runtime.SetFinalizer(t, nil)
	return nil
}
