package mecab

import (
	"iter"
	"unsafe"

	"github.com/morphokit/mecab-go/internal/layout"
)

// DictionaryType classifies an entry of the model's dictionary list.
type DictionaryType int

const (
	// SystemDictionary is the main dictionary.
	SystemDictionary DictionaryType = iota
	// UserDictionary is an additional user-supplied dictionary.
	UserDictionary
	// UnknownWordDictionary handles words absent from the others.
	UnknownWordDictionary
)

func (t DictionaryType) String() string {
	switch t {
	case SystemDictionary:
		return "system"
	case UserDictionary:
		return "user"
	case UnknownWordDictionary:
		return "unknown-word"
	}
	return "DictionaryType(?)"
}

// DictionaryInfo is a read-only view of one entry in a Model's
// dictionary list (system dictionary, optional user dictionaries, and
// the unknown-word dictionary, chained via Next). The underlying memory
// is owned by the Model and valid until it is closed.
type DictionaryInfo struct {
	raw   *layout.DictionaryInfo
	model *Model // keeps the owner reachable
}

func newDictionaryInfo(ptr unsafe.Pointer, m *Model) DictionaryInfo {
	return DictionaryInfo{raw: (*layout.DictionaryInfo)(ptr), model: m}
}

func (d DictionaryInfo) check() {
	if d.raw == nil || d.model == nil {
		panic("mecab: use of zero DictionaryInfo")
	}
}

// Filename is the path the dictionary was loaded from.
func (d DictionaryInfo) Filename() string {
	d.check()
	return string(cstrBytes(d.raw.Filename))
}

// Charset is the character set of the dictionary (e.g. "UTF-8",
// "EUC-JP"). See CharsetEncoding for decoding helpers.
func (d DictionaryInfo) Charset() string {
	d.check()
	return string(cstrBytes(d.raw.Charset))
}

// Size is the number of words in the dictionary.
func (d DictionaryInfo) Size() uint32 { d.check(); return d.raw.Size }

// Type classifies the dictionary.
func (d DictionaryInfo) Type() DictionaryType {
	d.check()
	switch d.raw.Type {
	case layout.DicSystem:
		return SystemDictionary
	case layout.DicUser:
		return UserDictionary
	}
	return UnknownWordDictionary
}

// LSize is the number of left context attributes.
func (d DictionaryInfo) LSize() uint32 { d.check(); return d.raw.LSize }

// RSize is the number of right context attributes.
func (d DictionaryInfo) RSize() uint32 { d.check(); return d.raw.RSize }

// Version is the dictionary format version.
func (d DictionaryInfo) Version() uint16 { d.check(); return d.raw.Version }

// Next returns the following entry in the dictionary list, or ok=false
// at the end.
func (d DictionaryInfo) Next() (DictionaryInfo, bool) {
	d.check()
	if d.raw.Next == nil {
		return DictionaryInfo{}, false
	}
	return DictionaryInfo{raw: d.raw.Next, model: d.model}, true
}

// All iterates the dictionary list starting at this entry.
func (d DictionaryInfo) All() iter.Seq[DictionaryInfo] {
	return func(yield func(DictionaryInfo) bool) {
		cur, ok := d, true
		for ok {
			if !yield(cur) {
				return
			}
			cur, ok = cur.Next()
		}
	}
}
