//go:build cgo && !windows

package bindings

/*
#cgo LDFLAGS: -lmecab
#cgo CFLAGS: -I/usr/local/include
#cgo LDFLAGS: -L/usr/local/lib

#include <stdlib.h>
#include <string.h>
#include <mecab.h>
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Version returns the native library version (mecab_version).
func Version() string {
	return C.GoString(C.mecab_version())
}

// GlobalError reads the process-wide last-error slot. The slot is
// overwritten by the next failing construction call on any thread, so
// callers must read it immediately after a failure.
func GlobalError() string {
	e := C.mecab_strerror(nil)
	if e == nil {
		return ""
	}
	return C.GoString(e)
}

// AllocBytes copies b into NUL-terminated C memory. The caller owns the
// returned pointer and must release it with Free. Used for buffers the
// native library retains past the call that hands them over.
func AllocBytes(b []byte) unsafe.Pointer {
	p := C.malloc(C.size_t(len(b) + 1))
	if p == nil {
		panic("mecab/internal/bindings: C.malloc failed")
	}
	if len(b) > 0 {
		C.memcpy(p, unsafe.Pointer(&b[0]), C.size_t(len(b)))
	}
	*(*byte)(unsafe.Pointer(uintptr(p) + uintptr(len(b)))) = 0
	return p
}

// Free releases memory obtained from AllocBytes.
func Free(p unsafe.Pointer) {
	if p != nil {
		C.free(p)
	}
}

// Model

// ModelNew wraps mecab_model_new(argc, argv).
func ModelNew(argv []string) (unsafe.Pointer, error) {
	cArgs := make([]*C.char, len(argv))
	for i, a := range argv {
		cArgs[i] = C.CString(a)
		defer C.free(unsafe.Pointer(cArgs[i]))
	}
	var argvPtr **C.char
	if len(cArgs) > 0 {
		argvPtr = (**C.char)(unsafe.Pointer(&cArgs[0]))
	}

	m := C.mecab_model_new(C.int(len(cArgs)), argvPtr)
	runtime.KeepAlive(cArgs)
	if m == nil {
		return nil, fmt.Errorf("mecab_model_new: %s", GlobalError())
	}
	return unsafe.Pointer(m), nil
}

// ModelNewSingle wraps mecab_model_new2(arg).
func ModelNewSingle(arg string) (unsafe.Pointer, error) {
	cArg := C.CString(arg)
	defer C.free(unsafe.Pointer(cArg))

	m := C.mecab_model_new2(cArg)
	if m == nil {
		return nil, fmt.Errorf("mecab_model_new2: %s", GlobalError())
	}
	return unsafe.Pointer(m), nil
}

func ModelDestroy(m unsafe.Pointer) {
	C.mecab_model_destroy((*C.mecab_model_t)(m))
}

// ModelDictionaryInfo returns the head of the native dictionary list.
// The memory is owned by the model.
func ModelDictionaryInfo(m unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.mecab_model_dictionary_info((*C.mecab_model_t)(m)))
}

func ModelTransitionCost(m unsafe.Pointer, rcAttr, lcAttr uint16) int {
	return int(C.mecab_model_transition_cost((*C.mecab_model_t)(m), C.ushort(rcAttr), C.ushort(lcAttr)))
}

// ModelSwap wraps mecab_model_swap. The native side takes ownership of
// newM in both outcomes; callers must not destroy newM afterwards.
func ModelSwap(m, newM unsafe.Pointer) bool {
	return C.mecab_model_swap((*C.mecab_model_t)(m), (*C.mecab_model_t)(newM)) != 0
}

func ModelNewTagger(m unsafe.Pointer) (unsafe.Pointer, error) {
	t := C.mecab_model_new_tagger((*C.mecab_model_t)(m))
	if t == nil {
		return nil, fmt.Errorf("mecab_model_new_tagger: %s", GlobalError())
	}
	return unsafe.Pointer(t), nil
}

func ModelNewLattice(m unsafe.Pointer) (unsafe.Pointer, error) {
	l := C.mecab_model_new_lattice((*C.mecab_model_t)(m))
	if l == nil {
		return nil, fmt.Errorf("mecab_model_new_lattice: %s", GlobalError())
	}
	return unsafe.Pointer(l), nil
}

// ModelLookup wraps mecab_model_lookup. text must be C memory (see
// AllocBytes) because the returned nodes alias it; the lattice wrapper
// keeps it alive for as long as the nodes are valid.
func ModelLookup(m, lat, text unsafe.Pointer, n int) unsafe.Pointer {
	begin := (*C.char)(text)
	end := (*C.char)(unsafe.Pointer(uintptr(text) + uintptr(n)))
	node := C.mecab_model_lookup((*C.mecab_model_t)(m), begin, end, (*C.mecab_lattice_t)(lat))
	return unsafe.Pointer(node)
}

// Tagger

func TaggerDestroy(t unsafe.Pointer) {
	C.mecab_destroy((*C.mecab_t)(t))
}

func TaggerParse(t, lat unsafe.Pointer) bool {
	return C.mecab_parse_lattice((*C.mecab_t)(t), (*C.mecab_lattice_t)(lat)) != 0
}

func TaggerError(t unsafe.Pointer) string {
	e := C.mecab_strerror((*C.mecab_t)(t))
	if e == nil {
		return ""
	}
	return C.GoString(e)
}

// Lattice

// LatticeNew wraps mecab_lattice_new, the model-free construction form.
func LatticeNew() (unsafe.Pointer, error) {
	l := C.mecab_lattice_new()
	if l == nil {
		return nil, fmt.Errorf("mecab_lattice_new: %s", GlobalError())
	}
	return unsafe.Pointer(l), nil
}

func LatticeDestroy(l unsafe.Pointer) {
	C.mecab_lattice_destroy((*C.mecab_lattice_t)(l))
}

func LatticeClear(l unsafe.Pointer) {
	C.mecab_lattice_clear((*C.mecab_lattice_t)(l))
}

func LatticeIsAvailable(l unsafe.Pointer) bool {
	return C.mecab_lattice_is_available((*C.mecab_lattice_t)(l)) != 0
}

// LatticeSetSentence wraps mecab_lattice_set_sentence2. The native
// library does not copy; buf must be C memory owned by the lattice
// wrapper until the next SetSentence/Clear/Close.
func LatticeSetSentence(l, buf unsafe.Pointer, n int) {
	C.mecab_lattice_set_sentence2((*C.mecab_lattice_t)(l), (*C.char)(buf), C.size_t(n))
}

func LatticeSentence(l unsafe.Pointer) string {
	s := C.mecab_lattice_get_sentence((*C.mecab_lattice_t)(l))
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

func LatticeSize(l unsafe.Pointer) int {
	return int(C.mecab_lattice_get_size((*C.mecab_lattice_t)(l)))
}

func LatticeBOSNode(l unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.mecab_lattice_get_bos_node((*C.mecab_lattice_t)(l)))
}

func LatticeEOSNode(l unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.mecab_lattice_get_eos_node((*C.mecab_lattice_t)(l)))
}

// LatticeNext advances the N-best enumeration. False means exhausted.
func LatticeNext(l unsafe.Pointer) bool {
	return C.mecab_lattice_next((*C.mecab_lattice_t)(l)) != 0
}

func LatticeRequestType(l unsafe.Pointer) int {
	return int(C.mecab_lattice_get_request_type((*C.mecab_lattice_t)(l)))
}

func LatticeHasRequestType(l unsafe.Pointer, rt int) bool {
	return C.mecab_lattice_has_request_type((*C.mecab_lattice_t)(l), C.int(rt)) != 0
}

func LatticeSetRequestType(l unsafe.Pointer, rt int) {
	C.mecab_lattice_set_request_type((*C.mecab_lattice_t)(l), C.int(rt))
}

func LatticeAddRequestType(l unsafe.Pointer, rt int) {
	C.mecab_lattice_add_request_type((*C.mecab_lattice_t)(l), C.int(rt))
}

func LatticeRemoveRequestType(l unsafe.Pointer, rt int) {
	C.mecab_lattice_remove_request_type((*C.mecab_lattice_t)(l), C.int(rt))
}

// LatticeToString returns the formatted best result. The second return
// is false when the native call failed (diagnostic in LatticeError).
func LatticeToString(l unsafe.Pointer) (string, bool) {
	s := C.mecab_lattice_tostr((*C.mecab_lattice_t)(l))
	if s == nil {
		return "", false
	}
	return C.GoString(s), true
}

// LatticeNBestToString formats the top n results after an N-best parse.
func LatticeNBestToString(l unsafe.Pointer, n int) (string, bool) {
	s := C.mecab_lattice_nbest_tostr((*C.mecab_lattice_t)(l), C.size_t(n))
	if s == nil {
		return "", false
	}
	return C.GoString(s), true
}

func LatticeError(l unsafe.Pointer) string {
	e := C.mecab_lattice_strerror((*C.mecab_lattice_t)(l))
	if e == nil {
		return ""
	}
	return C.GoString(e)
}

func LatticeHasConstraint(l unsafe.Pointer) bool {
	return C.mecab_lattice_has_constraint((*C.mecab_lattice_t)(l)) != 0
}

func LatticeBoundaryConstraint(l unsafe.Pointer, pos int) int {
	return int(C.mecab_lattice_get_boundary_constraint((*C.mecab_lattice_t)(l), C.size_t(pos)))
}

func LatticeSetBoundaryConstraint(l unsafe.Pointer, pos, kind int) {
	C.mecab_lattice_set_boundary_constraint((*C.mecab_lattice_t)(l), C.size_t(pos), C.int(kind))
}

func LatticeFeatureConstraint(l unsafe.Pointer, pos int) string {
	s := C.mecab_lattice_get_feature_constraint((*C.mecab_lattice_t)(l), C.size_t(pos))
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

// LatticeSetFeatureConstraint installs a partial-parse hint for the byte
// range [begin, end). feature must be C memory owned by the lattice
// wrapper (see AllocBytes).
func LatticeSetFeatureConstraint(l unsafe.Pointer, begin, end int, feature unsafe.Pointer) {
	C.mecab_lattice_set_feature_constraint((*C.mecab_lattice_t)(l), C.size_t(begin), C.size_t(end), (*C.char)(feature))
}

func LatticeZ(l unsafe.Pointer) float64 {
	return float64(C.mecab_lattice_get_z((*C.mecab_lattice_t)(l)))
}

func LatticeSetZ(l unsafe.Pointer, z float64) {
	C.mecab_lattice_set_z((*C.mecab_lattice_t)(l), C.double(z))
}

// LatticeTheta and LatticeSetTheta narrow to float32: the C API speaks
// double but the engine stores theta as a float.
func LatticeTheta(l unsafe.Pointer) float32 {
	return float32(C.mecab_lattice_get_theta((*C.mecab_lattice_t)(l)))
}

func LatticeSetTheta(l unsafe.Pointer, theta float32) {
	C.mecab_lattice_set_theta((*C.mecab_lattice_t)(l), C.double(theta))
}
