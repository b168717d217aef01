// Package mecab is a Go binding to the MeCab part-of-speech and
// morphological analyzer. It wraps the native library's opaque objects
// (models, taggers, and lattices) and the intrusive node/path graph a
// parse produces, managing their lifecycle and aliasing across the cgo
// boundary.
//
// # Object model
//
// A Model owns a loaded dictionary set and is the factory for Taggers
// (parse executors) and Lattices (per-sentence analysis buffers). A
// Tagger.Parse call populates the Lattice's node graph in place; Node and
// Path values are read-only views into memory owned by that Lattice.
//
//	model, err := mecab.New(mecab.Arg("-d /usr/local/lib/mecab/dic/ipadic"))
//	if err != nil {
//		log.Fatalf("%v (last error: %s)", err, mecab.LastError())
//	}
//	defer model.Close()
//
//	tagger, err := model.NewTagger()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer tagger.Close()
//
//	lattice, err := model.NewLattice()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer lattice.Close()
//
//	lattice.SetSentence("こんにちは世界")
//	if err := tagger.Parse(lattice); err != nil {
//		log.Fatal(err)
//	}
//	for node := range lattice.Nodes() {
//		fmt.Printf("%s\t%s\n", node.SurfaceString(), node.FeatureString())
//	}
//
// # Lifetimes
//
// Node, Path, DictionaryInfo, and Features values never own native
// memory. A Node or Path is valid only until its Lattice is next mutated
// (SetSentence, Parse, NextNBest, Clear) or closed; each view carries the
// lattice generation it was minted under and every access revalidates it,
// panicking on stale use. That panic always indicates a bug in the
// caller, not a runtime condition to handle.
//
// Model, Tagger, and Lattice each release their native resource exactly
// once: on the first Close, or from a finalizer if the caller forgot.
// Always prefer an explicit deferred Close.
//
// # Concurrency
//
// A Model is safe to share across goroutines, including hot-swapping it
// with Swap while parses are in flight. A Tagger may serve many
// goroutines as long as each call gets its own Lattice. A single Lattice
// must not be mutated concurrently.
package mecab
