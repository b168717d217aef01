package mecab

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/morphokit/mecab-go/internal/bindings"
)

// Model owns one loaded dictionary/model resource and is the factory for
// Taggers and Lattices. A Model is safe to share across goroutines; Swap
// is the only internally synchronized mutation.
//
// Close releases the native resource exactly once. A finalizer is set as
// a safety net, but Taggers and Lattices keep their Model reachable, so
// an explicit deferred Close is the reliable path.
type Model struct {
	mu  sync.RWMutex // guards ptr against Close and Swap consumption
	ptr unsafe.Pointer
}

// New creates a Model from one of the ModelArgs configuration shapes.
// On failure the returned error carries the process-wide diagnostic; see
// also LastError.
func New(args ModelArgs) (*Model, error) {
	ptr, err := args.newModel()
	if err != nil {
		return nil, &Error{Op: "New", Err: err}
	}
	m := &Model{ptr: ptr}
	runtime.SetFinalizer(m, func(m *Model) { _ = m.Close() })
	return m, nil
}

// Close releases the native model. It is safe to call more than once;
// only the first call destroys the resource. Outstanding Taggers and
// Lattices created from the model must be closed first.
func (m *Model) Close() error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ptr == nil {
		return nil
	}
	bindings.ModelDestroy(m.ptr)
	m.ptr = nil
	runtime.SetFinalizer(m, nil)
	return nil
}

// handle returns the native pointer. Callers must hold mu (read) so the
// pointer cannot be destroyed mid-call.
func (m *Model) handle() unsafe.Pointer {
	if m == nil || m.ptr == nil {
		panic("mecab: Model used after Close")
	}
	return m.ptr
}

// DictionaryInfo returns a view of the head of the model's dictionary
// list (system dictionary first). The view and everything reachable from
// it are owned by the model and valid until Close.
func (m *Model) DictionaryInfo() DictionaryInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw := bindings.ModelDictionaryInfo(m.handle())
	runtime.KeepAlive(m)
	return newDictionaryInfo(raw, m)
}

// TransitionCost returns the connection cost from the right attribute of
// one morpheme to the left attribute of its successor.
func (m *Model) TransitionCost(right, left Attribute) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c := bindings.ModelTransitionCost(m.handle(), uint16(right), uint16(left))
	runtime.KeepAlive(m)
	return c
}

// Swap atomically replaces the model's underlying native state with
// other's, consuming other: its native resource is transferred whether
// or not the swap succeeds, and other must not be used afterwards.
//
// Swap is thread-safe with respect to parses in flight on Taggers and
// Lattices created from this model; each parse observes either the old
// or the new state, never a mix. It returns false when the native engine
// rejects the replacement (the original state is retained).
func (m *Model) Swap(other *Model) bool {
	if other == nil {
		panic("mecab: Swap with nil Model")
	}

	// Take ownership of other's handle before the native call; the
	// native side frees it in both outcomes.
	other.mu.Lock()
	optr := other.ptr
	if optr == nil {
		other.mu.Unlock()
		panic("mecab: Swap with a closed Model")
	}
	other.ptr = nil
	runtime.SetFinalizer(other, nil)
	other.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()
	ok := bindings.ModelSwap(m.handle(), optr)
	runtime.KeepAlive(m)
	runtime.KeepAlive(other)
	return ok
}

// NewTagger creates a parse executor bound to this model.
func (m *Model) NewTagger() (*Tagger, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ptr, err := bindings.ModelNewTagger(m.handle())
	runtime.KeepAlive(m)
	if err != nil {
		return nil, &Error{Op: "NewTagger", Err: err}
	}
	t := &Tagger{model: m, ptr: ptr}
	runtime.SetFinalizer(t, func(t *Tagger) { _ = t.Close() })
	return t, nil
}

// NewLattice creates a per-sentence analysis buffer bound to this model.
func (m *Model) NewLattice() (*Lattice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ptr, err := bindings.ModelNewLattice(m.handle())
	runtime.KeepAlive(m)
	if err != nil {
		return nil, &Error{Op: "NewLattice", Err: err}
	}
	return newLattice(ptr, m), nil
}

// PrefixSearch performs a common-prefix dictionary lookup starting at the
// beginning of text, writing intermediate state into lat. It returns the
// first matching node, or ok=false when nothing in the dictionary
// matches. The node's lifetime is bound to lat, not to text: the text is
// copied into lattice-owned memory first.
//
// The lookup reuses lat's internal allocator, so any Node or Path views
// from a previous parse of lat are invalidated.
func (m *Model) PrefixSearch(text string, lat *Lattice) (Node, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	buf := bindings.AllocBytes([]byte(text))
	lat.retain(buf)
	lat.invalidate()

	ptr := bindings.ModelLookup(m.handle(), lat.handle(), buf, len(text))
	runtime.KeepAlive(m)
	return lat.node(ptr)
}
