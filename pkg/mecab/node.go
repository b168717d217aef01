package mecab

import (
	"unicode/utf8"
	"unsafe"

	"github.com/morphokit/mecab-go/internal/layout"
)

// Attribute is a left or right context attribute ID from the model's
// connection matrix.
type Attribute uint16

// NodeStatus classifies a node in the analysis graph.
type NodeStatus uint8

const (
	// NodeNormal is a morpheme defined in the dictionary.
	NodeNormal NodeStatus = iota
	// NodeUnknown is a morpheme not found in the dictionary.
	NodeUnknown
	// NodeBOS is the beginning-of-sentence sentinel.
	NodeBOS
	// NodeEOS is the end-of-sentence sentinel.
	NodeEOS
	// NodeEON is the end-of-N-best-enumeration sentinel.
	NodeEON
)

func (s NodeStatus) IsNormal() bool  { return s == NodeNormal }
func (s NodeStatus) IsUnknown() bool { return s == NodeUnknown }
func (s NodeStatus) IsBOS() bool     { return s == NodeBOS }
func (s NodeStatus) IsEOS() bool     { return s == NodeEOS }
func (s NodeStatus) IsEON() bool     { return s == NodeEON }

func (s NodeStatus) String() string {
	switch s {
	case NodeNormal:
		return "Normal"
	case NodeUnknown:
		return "Unknown"
	case NodeBOS:
		return "BOS"
	case NodeEOS:
		return "EOS"
	case NodeEON:
		return "EON"
	}
	return "NodeStatus(?)"
}

// Node is a read-only view of one candidate morpheme in a Lattice's
// analysis graph. The underlying memory is owned by the Lattice: a Node
// is valid only until the Lattice is next mutated or closed, and any
// later access panics. Node values are cheap to copy.
type Node struct {
	raw *layout.Node
	lat *Lattice
	gen uint64
}

// node mints a view of the native node at ptr under the lattice's
// current generation. ok is false for a nil pointer.
func (l *Lattice) node(ptr unsafe.Pointer) (Node, bool) {
	if ptr == nil {
		return Node{}, false
	}
	return Node{raw: (*layout.Node)(ptr), lat: l, gen: l.gen}, true
}

func (l *Lattice) path(p *layout.Path) (Path, bool) {
	if p == nil {
		return Path{}, false
	}
	return Path{raw: p, lat: l, gen: l.gen}, true
}

func (n Node) check() {
	if n.raw == nil || n.lat == nil {
		panic("mecab: use of zero Node")
	}
	if n.gen != n.lat.gen {
		panic("mecab: Node used after its Lattice was mutated or closed")
	}
}

// Same reports whether two views reference the same underlying node.
func (n Node) Same(other Node) bool {
	return n.raw != nil && n.raw == other.raw
}

// Status classifies the node (normal, unknown, or a sentinel).
func (n Node) Status() NodeStatus {
	n.check()
	switch n.raw.Stat {
	case layout.StatNormal:
		return NodeNormal
	case layout.StatUnknown:
		return NodeUnknown
	case layout.StatBOS:
		return NodeBOS
	case layout.StatEOS:
		return NodeEOS
	}
	return NodeEON
}

// Surface returns the surface form as a borrowed byte span. It is not
// NUL-terminated; the length comes from the node itself. The bytes alias
// lattice-owned memory and must not be retained past the next mutation.
func (n Node) Surface() []byte {
	n.check()
	if n.raw.Surface == nil || n.raw.Length == 0 {
		return nil
	}
	return unsafe.Slice(n.raw.Surface, n.raw.Length)
}

// SurfaceString returns a copy of the surface form.
func (n Node) SurfaceString() string {
	return string(n.Surface())
}

// Feature returns the raw feature string (without the terminating NUL)
// as a borrowed byte span. The allocation is independent of the surface
// buffer but equally owned by the Lattice.
func (n Node) Feature() []byte {
	n.check()
	return cstrBytes(n.raw.Feature)
}

// FeatureString returns a copy of the raw feature string.
func (n Node) FeatureString() string {
	return string(n.Feature())
}

// Features decodes the feature string into its delimited fields.
func (n Node) Features() (Features, error) {
	return ParseFeatures(n.Feature())
}

// ID is the node's unique id within the lattice.
func (n Node) ID() uint32 { n.check(); return n.raw.ID }

// Length is the byte length of the surface form.
func (n Node) Length() int { n.check(); return int(n.raw.Length) }

// RLength is the byte length of the surface form including the
// whitespace that precedes it.
func (n Node) RLength() int { n.check(); return int(n.raw.RLength) }

// RCAttr is the right context attribute ID.
func (n Node) RCAttr() Attribute { n.check(); return Attribute(n.raw.RCAttr) }

// LCAttr is the left context attribute ID.
func (n Node) LCAttr() Attribute { n.check(); return Attribute(n.raw.LCAttr) }

// POSID is the part-of-speech ID defined by the dictionary's pos.def.
func (n Node) POSID() uint16 { n.check(); return n.raw.POSID }

// CharType is the character class of the surface.
func (n Node) CharType() uint8 { n.check(); return n.raw.CharType }

// IsBest reports whether the node lies on the best path.
func (n Node) IsBest() bool { n.check(); return n.raw.IsBest == 1 }

// Alpha is the forward log sum. Meaningful only under MarginalProb.
func (n Node) Alpha() float32 { n.check(); return n.raw.Alpha }

// Beta is the backward log sum. Meaningful only under MarginalProb.
func (n Node) Beta() float32 { n.check(); return n.raw.Beta }

// Prob is the marginal probability. Meaningful only under MarginalProb.
func (n Node) Prob() float32 { n.check(); return n.raw.Prob }

// WCost is the word cost of the node itself.
func (n Node) WCost() int16 { n.check(); return n.raw.WCost }

// Cost is the best accumulated cost from BOS to this node.
func (n Node) Cost() int64 { n.check(); return n.raw.Cost }

// Next returns the following node on the current path.
func (n Node) Next() (Node, bool) {
	n.check()
	return n.lat.node(unsafe.Pointer(n.raw.Next))
}

// Prev returns the preceding node on the current path.
func (n Node) Prev() (Node, bool) {
	n.check()
	return n.lat.node(unsafe.Pointer(n.raw.Prev))
}

// ENext returns the next node ending at the same byte offset
// (alternative segmentations).
func (n Node) ENext() (Node, bool) {
	n.check()
	return n.lat.node(unsafe.Pointer(n.raw.ENext))
}

// BNext returns the next node beginning at the same byte offset.
func (n Node) BNext() (Node, bool) {
	n.check()
	return n.lat.node(unsafe.Pointer(n.raw.BNext))
}

// LPath returns the first incoming path edge. Absent in OneBest mode.
func (n Node) LPath() (Path, bool) {
	n.check()
	return n.lat.path(n.raw.LPath)
}

// RPath returns the first outgoing path edge. Absent in OneBest mode.
func (n Node) RPath() (Path, bool) {
	n.check()
	return n.lat.path(n.raw.RPath)
}

// Path is a read-only view of a scored edge between two adjacent nodes.
// Like Node it is owned by its Lattice and generation-guarded.
type Path struct {
	raw *layout.Path
	lat *Lattice
	gen uint64
}

func (p Path) check() {
	if p.raw == nil || p.lat == nil {
		panic("mecab: use of zero Path")
	}
	if p.gen != p.lat.gen {
		panic("mecab: Path used after its Lattice was mutated or closed")
	}
}

// Same reports whether two views reference the same underlying path.
func (p Path) Same(other Path) bool {
	return p.raw != nil && p.raw == other.raw
}

// LNode returns the left endpoint.
func (p Path) LNode() (Node, bool) {
	p.check()
	return p.lat.node(unsafe.Pointer(p.raw.LNode))
}

// RNode returns the right endpoint.
func (p Path) RNode() (Node, bool) {
	p.check()
	return p.lat.node(unsafe.Pointer(p.raw.RNode))
}

// LNext returns the next alternative path sharing the right endpoint.
func (p Path) LNext() (Path, bool) {
	p.check()
	return p.lat.path(p.raw.LNext)
}

// RNext returns the next alternative path sharing the left endpoint.
func (p Path) RNext() (Path, bool) {
	p.check()
	return p.lat.path(p.raw.RNext)
}

// Cost is the local cost of the edge.
func (p Path) Cost() int { p.check(); return int(p.raw.Cost) }

// Prob is the edge's marginal probability under MarginalProb mode.
func (p Path) Prob() float32 { p.check(); return p.raw.Prob }

// cstrBytes views a NUL-terminated native string as a byte slice,
// excluding the terminator.
func cstrBytes(p *byte) []byte {
	if p == nil {
		return nil
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	if n == 0 {
		return nil
	}
	return unsafe.Slice(p, n)
}

// validUTF8String copies b as a string after checking it decodes as
// UTF-8. Shared by the text accessors that promise valid text.
func validUTF8String(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", opErrorf("Text", "invalid UTF-8 sequence")
	}
	return string(b), nil
}
