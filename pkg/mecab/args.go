package mecab

import (
	"unsafe"

	"github.com/morphokit/mecab-go/internal/bindings"
)

// programName is the synthesized argv[0] for the argc/argv construction
// form. The native option parser only uses it when printing usage text.
const programName = "mecab-go"

// ModelArgs is the configuration for New. It is a closed set of shapes
// (Arg, Argv, Options, RawArgv) that all funnel into one of the two
// native construction entry points: single option string, or argc/argv.
type ModelArgs interface {
	// newModel invokes the native constructor this shape maps to.
	newModel() (unsafe.Pointer, error)
}

// Arg is a single pre-formatted option string, e.g.
// "-d /usr/local/lib/mecab/dic/ipadic -O wakati". An empty Arg loads the
// system default configuration.
type Arg string

func (a Arg) newModel() (unsafe.Pointer, error) {
	return bindings.ModelNewSingle(string(a))
}

// Argv is an ordered list of discrete argv-style tokens, e.g.
// Argv{"-d", dicdir, "-O", "wakati"}. A placeholder program name is
// prepended before the native call.
type Argv []string

func (a Argv) newModel() (unsafe.Pointer, error) {
	return bindings.ModelNew(a.tokens())
}

func (a Argv) tokens() []string {
	argv := make([]string, 0, len(a)+1)
	argv = append(argv, programName)
	return append(argv, a...)
}

// RawArgv is a low-level pass-through of an argv token array: no program
// name is synthesized and no reformatting happens.
type RawArgv []string

func (a RawArgv) newModel() (unsafe.Pointer, error) {
	return bindings.ModelNew([]string(a))
}

// Option is one (key, value) configuration pair.
type Option struct {
	Key   OptionKey
	Value string
}

// Options is an ordered list of (key, value) pairs. Each key is expanded
// to its canonical long-flag spelling, so
// Options{{Dicdir, d}, {OutputFormatType, "wakati"}} is equivalent to
// Argv{"--dicdir", d, "--output-format-type", "wakati"}.
type Options []Option

func (o Options) newModel() (unsafe.Pointer, error) {
	return bindings.ModelNew(o.tokens())
}

func (o Options) tokens() []string {
	argv := make([]string, 0, 2*len(o)+1)
	argv = append(argv, programName)
	for _, opt := range o {
		argv = append(argv, opt.Key.Flag(), opt.Value)
	}
	return argv
}

// OptionKey enumerates the startup options New understands in Options
// form. Options that only affect command-line usage of MeCab (help,
// version dumps) are omitted.
type OptionKey int

const (
	// Rcfile is the path of a resource file.
	Rcfile OptionKey = iota
	// Dicdir is the path of the system dictionary directory.
	Dicdir
	// Userdic is the path of a user dictionary file.
	Userdic
	// OutputFormatType selects the output format ("wakati", "none", ...).
	OutputFormatType
	// MaxGroupingSize caps grouping of unknown words (int).
	MaxGroupingSize
	// NodeFormat is the user-defined node format.
	NodeFormat
	// UnkFormat is the user-defined unknown-node format.
	UnkFormat
	// BosFormat is the user-defined beginning-of-sentence format.
	BosFormat
	// EosFormat is the user-defined end-of-sentence format.
	EosFormat
	// EonFormat is the user-defined end-of-NBest format.
	EonFormat
	// UnkFeature is the feature string used for unknown words.
	UnkFeature
	// InputBufferSize sets the input buffer size (int).
	InputBufferSize
	// CostFactor sets the cost factor (int).
	CostFactor
)

var optionFlags = map[OptionKey]string{
	Rcfile:           "--rcfile",
	Dicdir:           "--dicdir",
	Userdic:          "--userdic",
	OutputFormatType: "--output-format-type",
	MaxGroupingSize:  "--max-grouping-size",
	NodeFormat:       "--node-format",
	UnkFormat:        "--unk-format",
	BosFormat:        "--bos-format",
	EosFormat:        "--eos-format",
	EonFormat:        "--eon-format",
	UnkFeature:       "--unk-feature",
	InputBufferSize:  "--input-buffer-size",
	CostFactor:       "--cost-factor",
}

// Flag returns the canonical long-flag spelling of the key.
func (k OptionKey) Flag() string {
	if f, ok := optionFlags[k]; ok {
		return f
	}
	return "--unknown"
}

func (k OptionKey) String() string { return k.Flag() }
