//go:build amd64 || arm64

package layout

import (
	"testing"
	"unsafe"
)

// The binding reads these structs straight out of native memory, so any
// drift from the mecab.h layout is memory corruption. Offsets below are
// the LP64 layout (8-byte pointers, 8-byte long).

func TestNodeLayout(t *testing.T) {
	var n Node

	offsets := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Prev", unsafe.Offsetof(n.Prev), 0},
		{"Next", unsafe.Offsetof(n.Next), 8},
		{"ENext", unsafe.Offsetof(n.ENext), 16},
		{"BNext", unsafe.Offsetof(n.BNext), 24},
		{"RPath", unsafe.Offsetof(n.RPath), 32},
		{"LPath", unsafe.Offsetof(n.LPath), 40},
		{"Surface", unsafe.Offsetof(n.Surface), 48},
		{"Feature", unsafe.Offsetof(n.Feature), 56},
		{"ID", unsafe.Offsetof(n.ID), 64},
		{"Length", unsafe.Offsetof(n.Length), 68},
		{"RLength", unsafe.Offsetof(n.RLength), 70},
		{"RCAttr", unsafe.Offsetof(n.RCAttr), 72},
		{"LCAttr", unsafe.Offsetof(n.LCAttr), 74},
		{"POSID", unsafe.Offsetof(n.POSID), 76},
		{"CharType", unsafe.Offsetof(n.CharType), 78},
		{"Stat", unsafe.Offsetof(n.Stat), 79},
		{"IsBest", unsafe.Offsetof(n.IsBest), 80},
		{"Alpha", unsafe.Offsetof(n.Alpha), 84},
		{"Beta", unsafe.Offsetof(n.Beta), 88},
		{"Prob", unsafe.Offsetof(n.Prob), 92},
		{"WCost", unsafe.Offsetof(n.WCost), 96},
		{"Cost", unsafe.Offsetof(n.Cost), 104},
	}
	for _, f := range offsets {
		if f.got != f.want {
			t.Errorf("Node.%s offset = %d, want %d", f.name, f.got, f.want)
		}
	}
	if size := unsafe.Sizeof(n); size != 112 {
		t.Errorf("Node size = %d, want 112", size)
	}
}

func TestPathLayout(t *testing.T) {
	var p Path

	offsets := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"RNode", unsafe.Offsetof(p.RNode), 0},
		{"RNext", unsafe.Offsetof(p.RNext), 8},
		{"LNode", unsafe.Offsetof(p.LNode), 16},
		{"LNext", unsafe.Offsetof(p.LNext), 24},
		{"Cost", unsafe.Offsetof(p.Cost), 32},
		{"Prob", unsafe.Offsetof(p.Prob), 36},
	}
	for _, f := range offsets {
		if f.got != f.want {
			t.Errorf("Path.%s offset = %d, want %d", f.name, f.got, f.want)
		}
	}
	if size := unsafe.Sizeof(p); size != 40 {
		t.Errorf("Path size = %d, want 40", size)
	}
}

func TestDictionaryInfoLayout(t *testing.T) {
	var d DictionaryInfo

	offsets := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Filename", unsafe.Offsetof(d.Filename), 0},
		{"Charset", unsafe.Offsetof(d.Charset), 8},
		{"Size", unsafe.Offsetof(d.Size), 16},
		{"Type", unsafe.Offsetof(d.Type), 20},
		{"LSize", unsafe.Offsetof(d.LSize), 24},
		{"RSize", unsafe.Offsetof(d.RSize), 28},
		{"Version", unsafe.Offsetof(d.Version), 32},
		{"Next", unsafe.Offsetof(d.Next), 40},
	}
	for _, f := range offsets {
		if f.got != f.want {
			t.Errorf("DictionaryInfo.%s offset = %d, want %d", f.name, f.got, f.want)
		}
	}
	if size := unsafe.Sizeof(d); size != 48 {
		t.Errorf("DictionaryInfo size = %d, want 48", size)
	}
}
