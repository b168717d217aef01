package mecab

import (
	"iter"
	"runtime"
	"unsafe"

	"github.com/morphokit/mecab-go/internal/bindings"
)

// BoundaryType is a per-byte partial-parse hint used with Partial mode.
type BoundaryType int

const (
	// AnyBoundary lets the parser decide freely (the default).
	AnyBoundary BoundaryType = iota
	// TokenBoundary forces a token boundary at the position.
	TokenBoundary
	// InsideToken forbids a boundary at the position.
	InsideToken
)

// Lattice is the mutable per-sentence analysis buffer: input text,
// request flags, constraints, and, after a parse, the resulting
// node/path graph. A Lattice must not be mutated from two goroutines
// concurrently.
//
// Every mutation (SetSentence, Parse, NextNBest, Clear, Close) bumps an
// internal generation counter; Node and Path views minted before the
// mutation panic on their next access. The native engine may reuse its
// buffers as early as SetSentence, so invalidation is deliberately
// conservative.
type Lattice struct {
	model *Model // nil for the standalone construction form
	ptr   unsafe.Pointer
	gen   uint64

	// C memory the native lattice references but does not own: the
	// current sentence, plus feature-constraint and prefix-search
	// buffers. Freed on Clear/Close (the sentence also on replacement).
	sentence unsafe.Pointer
	cbufs    []unsafe.Pointer

	what string // host-side error slot, shadows the native one once set
}

func newLattice(ptr unsafe.Pointer, m *Model) *Lattice {
	l := &Lattice{model: m, ptr: ptr}
	runtime.SetFinalizer(l, func(l *Lattice) { _ = l.Close() })
	return l
}

// NewLattice creates a Lattice not bound to any Model. It is useful for
// preparing sentences and request flags before a model exists; parsing
// still requires a Tagger.
func NewLattice() (*Lattice, error) {
	ptr, err := bindings.LatticeNew()
	if err != nil {
		return nil, &Error{Op: "NewLattice", Err: err}
	}
	return newLattice(ptr, nil), nil
}

func (l *Lattice) handle() unsafe.Pointer {
	if l == nil || l.ptr == nil {
		panic("mecab: Lattice used after Close")
	}
	return l.ptr
}

// invalidate revokes all outstanding Node/Path views.
func (l *Lattice) invalidate() {
	l.handle() // closed-lattice check
	l.gen++
}

// retain records a C buffer the native lattice now references; it is
// freed on Clear or Close.
func (l *Lattice) retain(buf unsafe.Pointer) {
	l.cbufs = append(l.cbufs, buf)
}

func (l *Lattice) freeRetained() {
	if l.sentence != nil {
		bindings.Free(l.sentence)
		l.sentence = nil
	}
	for _, b := range l.cbufs {
		bindings.Free(b)
	}
	l.cbufs = nil
}

// Close releases the native lattice and every buffer it referenced.
// Safe to call more than once. All Node/Path views become invalid.
func (l *Lattice) Close() error {
	if l == nil || l.ptr == nil {
		return nil
	}
	l.gen++
	bindings.LatticeDestroy(l.ptr)
	l.ptr = nil
	l.freeRetained()
	l.model = nil
	runtime.SetFinalizer(l, nil)
	return nil
}

// SetSentence sets the input text for the next parse and invalidates any
// Node/Path views from a previous one. The text is copied into memory
// owned by the lattice.
func (l *Lattice) SetSentence(sentence string) {
	l.invalidate()
	buf := bindings.AllocBytes([]byte(sentence))
	bindings.LatticeSetSentence(l.handle(), buf, len(sentence))
	if l.sentence != nil {
		bindings.Free(l.sentence)
	}
	l.sentence = buf
	runtime.KeepAlive(l)
}

// Sentence returns the current input text.
func (l *Lattice) Sentence() string {
	s := bindings.LatticeSentence(l.handle())
	runtime.KeepAlive(l)
	return s
}

// Size returns the byte length of the current input text.
func (l *Lattice) Size() int {
	n := bindings.LatticeSize(l.handle())
	runtime.KeepAlive(l)
	return n
}

// Clear resets the lattice to its empty state, releasing its internal
// allocations eagerly and invalidating all Node/Path views.
func (l *Lattice) Clear() {
	l.invalidate()
	bindings.LatticeClear(l.handle())
	l.freeRetained()
	l.what = ""
	runtime.KeepAlive(l)
}

// IsAvailable reports whether the lattice holds a completed analysis.
func (l *Lattice) IsAvailable() bool {
	ok := bindings.LatticeIsAvailable(l.handle())
	runtime.KeepAlive(l)
	return ok
}

// BOSNode returns the beginning-of-sentence sentinel of the current
// graph, or ok=false before a successful parse.
func (l *Lattice) BOSNode() (Node, bool) {
	ptr := bindings.LatticeBOSNode(l.handle())
	runtime.KeepAlive(l)
	return l.node(ptr)
}

// EOSNode returns the end-of-sentence sentinel of the current graph, or
// ok=false before a successful parse.
func (l *Lattice) EOSNode() (Node, bool) {
	ptr := bindings.LatticeEOSNode(l.handle())
	runtime.KeepAlive(l)
	return l.node(ptr)
}

// Nodes returns a lazy, restartable sequence over the nodes of the best
// (or current N-best) path, from BOS to EOS. Iteration never mutates the
// lattice.
func (l *Lattice) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		n, ok := l.BOSNode()
		for ok {
			if !yield(n) {
				return
			}
			n, ok = n.Next()
		}
	}
}

// NodesReverse is Nodes in reverse order: EOS to BOS along prev links.
func (l *Lattice) NodesReverse() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		n, ok := l.EOSNode()
		for ok {
			if !yield(n) {
				return
			}
			n, ok = n.Prev()
		}
	}
}

// NextNBest advances to the next best segmentation, re-populating the
// node/path graph in place (previous views are invalidated). It returns
// false when the enumeration is exhausted. Requires a parse with the
// NBest flag set.
func (l *Lattice) NextNBest() bool {
	l.invalidate()
	ok := bindings.LatticeNext(l.handle())
	runtime.KeepAlive(l)
	return ok
}

// RequestType returns the current request flags.
func (l *Lattice) RequestType() RequestType {
	rt := bindings.LatticeRequestType(l.handle())
	runtime.KeepAlive(l)
	return RequestType(rt)
}

// HasRequestType reports whether flag rt is set.
func (l *Lattice) HasRequestType(rt RequestType) bool {
	ok := bindings.LatticeHasRequestType(l.handle(), int(rt))
	runtime.KeepAlive(l)
	return ok
}

// SetRequestType replaces the request flags.
func (l *Lattice) SetRequestType(rt RequestType) {
	bindings.LatticeSetRequestType(l.handle(), int(rt))
	runtime.KeepAlive(l)
}

// AddRequestType sets the given flags in addition to the current ones.
func (l *Lattice) AddRequestType(rt RequestType) {
	bindings.LatticeAddRequestType(l.handle(), int(rt))
	runtime.KeepAlive(l)
}

// RemoveRequestType clears the given flags.
func (l *Lattice) RemoveRequestType(rt RequestType) {
	bindings.LatticeRemoveRequestType(l.handle(), int(rt))
	runtime.KeepAlive(l)
}

// String formats the current best result using the model's output
// format. The error carries the lattice diagnostic.
func (l *Lattice) String() (string, error) {
	s, ok := bindings.LatticeToString(l.handle())
	runtime.KeepAlive(l)
	if !ok {
		return "", opErrorf("String", "%s", l.Error())
	}
	return s, nil
}

// NBestString formats the top n results. Requires a parse with the
// NBest flag set.
func (l *Lattice) NBestString(n int) (string, error) {
	s, ok := bindings.LatticeNBestToString(l.handle(), n)
	runtime.KeepAlive(l)
	if !ok {
		return "", opErrorf("NBestString", "%s", l.Error())
	}
	return s, nil
}

// Error returns the per-lattice diagnostic: the host-side slot if
// SetError was called, otherwise the native slot. Independent of the
// process-wide LastError slot.
func (l *Lattice) Error() string {
	if l.what != "" {
		return l.what
	}
	s := bindings.LatticeError(l.handle())
	runtime.KeepAlive(l)
	return s
}

// SetError sets the host-side diagnostic slot. Clear resets it.
func (l *Lattice) SetError(what string) {
	l.handle() // closed-lattice check
	l.what = what
}

// HasConstraint reports whether any boundary or feature constraint is
// installed.
func (l *Lattice) HasConstraint() bool {
	ok := bindings.LatticeHasConstraint(l.handle())
	runtime.KeepAlive(l)
	return ok
}

// BoundaryConstraint returns the boundary hint at byte position pos.
func (l *Lattice) BoundaryConstraint(pos int) BoundaryType {
	b := bindings.LatticeBoundaryConstraint(l.handle(), pos)
	runtime.KeepAlive(l)
	return BoundaryType(b)
}

// SetBoundaryConstraint installs a boundary hint at byte position pos.
// Constraints must be in place before the parse and take effect in
// Partial mode.
func (l *Lattice) SetBoundaryConstraint(pos int, b BoundaryType) {
	bindings.LatticeSetBoundaryConstraint(l.handle(), pos, int(b))
	runtime.KeepAlive(l)
}

// FeatureConstraint returns the feature constraint covering byte
// position pos, or "".
func (l *Lattice) FeatureConstraint(pos int) string {
	s := bindings.LatticeFeatureConstraint(l.handle(), pos)
	runtime.KeepAlive(l)
	return s
}

// SetFeatureConstraint pins the byte range [begin, end) to the given
// feature in Partial mode. The feature string is copied into
// lattice-owned memory.
func (l *Lattice) SetFeatureConstraint(begin, end int, feature string) {
	buf := bindings.AllocBytes([]byte(feature))
	l.retain(buf)
	bindings.LatticeSetFeatureConstraint(l.handle(), begin, end, buf)
	runtime.KeepAlive(l)
}

// Z returns the normalization factor of the current analysis (meaningful
// under MarginalProb).
func (l *Lattice) Z() float64 {
	z := bindings.LatticeZ(l.handle())
	runtime.KeepAlive(l)
	return z
}

// SetZ sets the normalization factor.
func (l *Lattice) SetZ(z float64) {
	bindings.LatticeSetZ(l.handle(), z)
	runtime.KeepAlive(l)
}

// Theta returns the softmax temperature used for marginal probabilities.
func (l *Lattice) Theta() float32 {
	t := bindings.LatticeTheta(l.handle())
	runtime.KeepAlive(l)
	return t
}

// SetTheta sets the softmax temperature.
func (l *Lattice) SetTheta(theta float32) {
	bindings.LatticeSetTheta(l.handle(), theta)
	runtime.KeepAlive(l)
}
