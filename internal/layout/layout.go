// Package layout holds byte-exact Go mirrors of the MeCab C structures
// that the binding reads directly from native memory.
//
// The field order, widths, and alignment of these structs MUST match the
// mecab_node_t, mecab_path_t, and mecab_dictionary_info_t definitions in
// mecab.h for the target ABI, including fields the public API never
// exposes. Pointers here always point into memory owned by the native
// library; nothing in this package allocates or frees.
//
// The package is pure Go so that it compiles in non-cgo (stub) builds.
// layout_test.go pins the offsets and sizes for 64-bit targets.
package layout

// Node mirrors mecab_node_t.
type Node struct {
	Prev  *Node
	Next  *Node
	ENext *Node
	BNext *Node

	RPath *Path
	LPath *Path

	Surface *byte // not NUL-terminated; Length gives the span
	Feature *byte // NUL-terminated

	ID      uint32
	Length  uint16
	RLength uint16

	RCAttr uint16
	LCAttr uint16
	POSID  uint16

	CharType uint8
	Stat     uint8
	IsBest   uint8

	Alpha float32
	Beta  float32
	Prob  float32
	WCost int16
	Cost  int64 // C long; 64-bit on the supported targets
}

// Node stat values, matching MECAB_*_NODE in mecab.h.
const (
	StatNormal  = 0
	StatUnknown = 1
	StatBOS     = 2
	StatEOS     = 3
	StatEON     = 4
)

// Path mirrors mecab_path_t.
type Path struct {
	RNode *Node
	RNext *Path
	LNode *Node
	LNext *Path

	Cost int32
	Prob float32
}

// DictionaryInfo mirrors mecab_dictionary_info_t. Unlike the node and
// path structs it carries its own intrusive list pointer (Next), which
// the native library uses to chain the system dictionary, user
// dictionaries, and the unknown-word dictionary.
type DictionaryInfo struct {
	Filename *byte
	Charset  *byte
	Size     uint32
	Type     int32
	LSize    uint32
	RSize    uint32
	Version  uint16
	Next     *DictionaryInfo
}

// Dictionary type values, matching MECAB_*_DIC in mecab.h.
const (
	DicSystem  = 0
	DicUser    = 1
	DicUnknown = 2
)
