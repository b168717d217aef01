//go:build !cgo || windows

package bindings

import "unsafe"

// Stub implementations for non-CGO builds or Windows. They keep the
// module compiling; construction fails with ErrNotBuilt, and the
// remaining entry points are unreachable because no handle can exist.

func Version() string { return "" }

func GlobalError() string { return ErrNotBuilt.Error() }

func AllocBytes([]byte) unsafe.Pointer { return nil }

func Free(unsafe.Pointer) {}

func ModelNew([]string) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func ModelNewSingle(string) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func ModelDestroy(unsafe.Pointer) {}

func ModelDictionaryInfo(unsafe.Pointer) unsafe.Pointer { return nil }

func ModelTransitionCost(unsafe.Pointer, uint16, uint16) int { return 0 }

func ModelSwap(unsafe.Pointer, unsafe.Pointer) bool { return false }

func ModelNewTagger(unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func ModelNewLattice(unsafe.Pointer) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func ModelLookup(unsafe.Pointer, unsafe.Pointer, unsafe.Pointer, int) unsafe.Pointer { return nil }

func TaggerDestroy(unsafe.Pointer) {}

func TaggerParse(unsafe.Pointer, unsafe.Pointer) bool { return false }

func TaggerError(unsafe.Pointer) string { return "" }

func LatticeNew() (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func LatticeDestroy(unsafe.Pointer) {}

func LatticeClear(unsafe.Pointer) {}

func LatticeIsAvailable(unsafe.Pointer) bool { return false }

func LatticeSetSentence(unsafe.Pointer, unsafe.Pointer, int) {}

func LatticeSentence(unsafe.Pointer) string { return "" }

func LatticeSize(unsafe.Pointer) int { return 0 }

func LatticeBOSNode(unsafe.Pointer) unsafe.Pointer { return nil }

func LatticeEOSNode(unsafe.Pointer) unsafe.Pointer { return nil }

func LatticeNext(unsafe.Pointer) bool { return false }

func LatticeRequestType(unsafe.Pointer) int { return 0 }

func LatticeHasRequestType(unsafe.Pointer, int) bool { return false }

func LatticeSetRequestType(unsafe.Pointer, int) {}

func LatticeAddRequestType(unsafe.Pointer, int) {}

func LatticeRemoveRequestType(unsafe.Pointer, int) {}

func LatticeToString(unsafe.Pointer) (string, bool) { return "", false }

func LatticeNBestToString(unsafe.Pointer, int) (string, bool) { return "", false }

func LatticeError(unsafe.Pointer) string { return "" }

func LatticeHasConstraint(unsafe.Pointer) bool { return false }

func LatticeBoundaryConstraint(unsafe.Pointer, int) int { return 0 }

func LatticeSetBoundaryConstraint(unsafe.Pointer, int, int) {}

func LatticeFeatureConstraint(unsafe.Pointer, int) string { return "" }

func LatticeSetFeatureConstraint(unsafe.Pointer, int, int, unsafe.Pointer) {}

func LatticeZ(unsafe.Pointer) float64 { return 0 }

func LatticeSetZ(unsafe.Pointer, float64) {}

func LatticeTheta(unsafe.Pointer) float32 { return 0 }

func LatticeSetTheta(unsafe.Pointer, float32) {}
