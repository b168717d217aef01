package mecab_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/morphokit/mecab-go/pkg/mecab"
)

// Integration tests against a real dictionary. They skip unless the
// native bindings are built in and MECAB_DICDIR points at a dictionary
// directory (e.g. /usr/local/lib/mecab/dic/ipadic).

func testDicdir(t *testing.T) string {
	t.Helper()
	if mecab.Version() == "" {
		t.Skip("native bindings not built")
	}
	dicdir := os.Getenv("MECAB_DICDIR")
	if dicdir == "" {
		t.Skip("MECAB_DICDIR not set")
	}
	return dicdir
}

func newTestModel(t *testing.T) *mecab.Model {
	t.Helper()
	m, err := mecab.New(mecab.Options{{Key: mecab.Dicdir, Value: testDicdir(t)}})
	if err != nil {
		t.Fatalf("New: %v (last error: %s)", err, mecab.LastError())
	}
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func parseSentence(t *testing.T, tagger *mecab.Tagger, lat *mecab.Lattice, s string) {
	t.Helper()
	lat.SetSentence(s)
	if err := tagger.Parse(lat); err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
}

func surfaces(lat *mecab.Lattice) []string {
	var out []string
	for node := range lat.Nodes() {
		if node.Status().IsNormal() || node.Status().IsUnknown() {
			out = append(out, node.SurfaceString())
		}
	}
	return out
}

func TestModelLifecycle(t *testing.T) {
	m := newTestModel(t)

	info := m.DictionaryInfo()
	if info.Filename() == "" {
		t.Error("DictionaryInfo.Filename is empty")
	}
	if info.Charset() == "" {
		t.Error("DictionaryInfo.Charset is empty")
	}
	if info.Type() != mecab.SystemDictionary {
		t.Errorf("first dictionary type = %v, want system", info.Type())
	}
	count := 0
	for range info.All() {
		count++
	}
	if count == 0 {
		t.Error("dictionary list is empty")
	}

	tagger, err := m.NewTagger()
	if err != nil {
		t.Fatalf("NewTagger: %v", err)
	}
	defer tagger.Close()

	lat, err := m.NewLattice()
	if err != nil {
		t.Fatalf("NewLattice: %v", err)
	}
	defer lat.Close()
}

func TestParseReconstructsSentence(t *testing.T) {
	m := newTestModel(t)
	tagger, err := m.NewTagger()
	if err != nil {
		t.Fatalf("NewTagger: %v", err)
	}
	defer tagger.Close()
	lat, err := m.NewLattice()
	if err != nil {
		t.Fatalf("NewLattice: %v", err)
	}
	defer lat.Close()

	sentences := []string{
		"こんにちは世界",
		"すもももももももものうち",
		"hello world",
	}
	for _, s := range sentences {
		t.Run(s, func(t *testing.T) {
			parseSentence(t, tagger, lat, s)

			first := surfaces(lat)
			// Surfaces exclude the whitespace that separates tokens, so
			// the concatenation reconstructs the sentence minus spaces.
			want := strings.Join(strings.Fields(s), "")
			if got := strings.Join(first, ""); got != want {
				t.Errorf("concatenated surfaces = %q, want %q", got, want)
			}

			bos, ok := lat.BOSNode()
			if !ok || !bos.Status().IsBOS() {
				t.Error("missing BOS sentinel")
			}
			eos, ok := lat.EOSNode()
			if !ok || !eos.Status().IsEOS() {
				t.Error("missing EOS sentinel")
			}

			// Re-parsing the same input after Clear yields the same
			// segmentation.
			lat.Clear()
			parseSentence(t, tagger, lat, s)
			second := surfaces(lat)
			if strings.Join(first, "\x00") != strings.Join(second, "\x00") {
				t.Errorf("re-parse segmentation differs: %q vs %q", first, second)
			}
		})
	}
}

func TestNodesReverse(t *testing.T) {
	m := newTestModel(t)
	tagger, err := m.NewTagger()
	if err != nil {
		t.Fatalf("NewTagger: %v", err)
	}
	defer tagger.Close()
	lat, err := m.NewLattice()
	if err != nil {
		t.Fatalf("NewLattice: %v", err)
	}
	defer lat.Close()

	parseSentence(t, tagger, lat, "こんにちは世界")

	var fwd, rev []string
	for node := range lat.Nodes() {
		fwd = append(fwd, node.SurfaceString())
	}
	for node := range lat.NodesReverse() {
		rev = append(rev, node.SurfaceString())
	}
	if len(fwd) != len(rev) {
		t.Fatalf("forward %d nodes, reverse %d", len(fwd), len(rev))
	}
	for i := range fwd {
		if fwd[i] != rev[len(rev)-1-i] {
			t.Errorf("node %d: forward %q, reverse %q", i, fwd[i], rev[len(rev)-1-i])
		}
	}
}

func TestNBestEnumeration(t *testing.T) {
	m := newTestModel(t)
	tagger, err := m.NewTagger()
	if err != nil {
		t.Fatalf("NewTagger: %v", err)
	}
	defer tagger.Close()
	lat, err := m.NewLattice()
	if err != nil {
		t.Fatalf("NewLattice: %v", err)
	}
	defer lat.Close()

	lat.AddRequestType(mecab.NBest)
	if !lat.HasRequestType(mecab.NBest) {
		t.Fatal("NBest flag not set")
	}
	parseSentence(t, tagger, lat, "すもももももももものうち")

	const limit = 64
	var prev int64 = -1 << 62
	n := 0
	for ; n < limit; n++ {
		eos, ok := lat.EOSNode()
		if !ok {
			t.Fatal("no EOS node during enumeration")
		}
		cost := eos.Cost()
		if cost < prev {
			t.Errorf("enumeration %d: cost %d below previous %d", n, cost, prev)
		}
		prev = cost
		if !lat.NextNBest() {
			break
		}
	}
	if n == limit {
		t.Fatalf("N-best enumeration did not terminate within %d steps", limit)
	}
	if n == 0 {
		t.Error("N-best enumeration produced no alternatives")
	}
}

func TestFeaturesFromNode(t *testing.T) {
	m := newTestModel(t)
	tagger, err := m.NewTagger()
	if err != nil {
		t.Fatalf("NewTagger: %v", err)
	}
	defer tagger.Close()
	lat, err := m.NewLattice()
	if err != nil {
		t.Fatalf("NewLattice: %v", err)
	}
	defer lat.Close()

	parseSentence(t, tagger, lat, "こんにちは世界")

	for node := range lat.Nodes() {
		if !node.Status().IsNormal() {
			continue
		}
		f, err := node.Features()
		if err != nil {
			t.Fatalf("Features(%q): %v", node.SurfaceString(), err)
		}
		if f.Len() == 0 {
			t.Errorf("node %q has no feature fields", node.SurfaceString())
		}
		if _, ok := f.Get(f.Len()); ok {
			t.Error("Get(Len()) must be out of range")
		}
	}
}

func TestPrefixSearch(t *testing.T) {
	m := newTestModel(t)
	lat, err := m.NewLattice()
	if err != nil {
		t.Fatalf("NewLattice: %v", err)
	}
	defer lat.Close()

	node, ok := m.PrefixSearch("東京都に住む", lat)
	if !ok {
		t.Skip("no dictionary entry matched the prefix")
	}
	if got := node.SurfaceString(); !strings.HasPrefix("東京都に住む", got) {
		t.Errorf("PrefixSearch surface %q is not a prefix of the input", got)
	}
	// Walk the alternatives ending at the same offset.
	for alt, ok := node.ENext(); ok; alt, ok = alt.ENext() {
		if alt.Same(node) {
			t.Error("ENext cycled back to the first node")
			break
		}
	}
}

func TestSwapConsumesReplacement(t *testing.T) {
	dicdir := testDicdir(t)
	m := newTestModel(t)

	replacement, err := mecab.New(mecab.Options{{Key: mecab.Dicdir, Value: dicdir}})
	if err != nil {
		t.Fatalf("New(replacement): %v", err)
	}

	if !m.Swap(replacement) {
		t.Fatal("Swap of a compatible model failed")
	}
	// The original must remain fully usable after the swap.
	tagger, err := m.NewTagger()
	if err != nil {
		t.Fatalf("NewTagger after Swap: %v", err)
	}
	defer tagger.Close()
	lat, err := m.NewLattice()
	if err != nil {
		t.Fatalf("NewLattice after Swap: %v", err)
	}
	defer lat.Close()
	parseSentence(t, tagger, lat, "こんにちは")

	// replacement was consumed; Close must be a no-op, not a double free.
	if err := replacement.Close(); err != nil {
		t.Errorf("Close of consumed model: %v", err)
	}
}

func TestInvalidDictionary(t *testing.T) {
	if mecab.Version() == "" {
		t.Skip("native bindings not built")
	}
	_, err := mecab.New(mecab.Options{{Key: mecab.Dicdir, Value: "/nonexistent/dicdir"}})
	if err == nil {
		t.Fatal("New with an invalid dictionary path succeeded")
	}
	if mecab.LastError() == "" {
		t.Error("global error slot is empty after a failed construction")
	}
}

func TestStaleNodePanics(t *testing.T) {
	m := newTestModel(t)
	tagger, err := m.NewTagger()
	if err != nil {
		t.Fatalf("NewTagger: %v", err)
	}
	defer tagger.Close()
	lat, err := m.NewLattice()
	if err != nil {
		t.Fatalf("NewLattice: %v", err)
	}
	defer lat.Close()

	parseSentence(t, tagger, lat, "こんにちは")
	bos, ok := lat.BOSNode()
	if !ok {
		t.Fatal("no BOS node")
	}

	lat.SetSentence("世界") // invalidates bos

	defer func() {
		if recover() == nil {
			t.Error("stale Node access did not panic")
		}
	}()
	_ = bos.Status()
}

func TestErrNotBuilt(t *testing.T) {
	if mecab.Version() != "" {
		t.Skip("native bindings are built in")
	}
	_, err := mecab.New(mecab.Arg(""))
	if !errors.Is(err, mecab.ErrNotBuilt) {
		t.Errorf("New without bindings: %v, want ErrNotBuilt", err)
	}
}
