// Command mecab-go is a small morphological-analysis front end over the
// mecab package. It reads sentences from the command line or stdin and
// prints one analysis per sentence.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/morphokit/mecab-go/pkg/mecab"
)

type options struct {
	dicdir       string
	userdic      string
	outputFormat string
	nbest        int
	allMorphs    bool
	marginal     bool
	verbose      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mecab-go [sentence...]",
		Short: "Morphological analysis via the native MeCab engine",
		Long: `mecab-go analyzes Japanese text with the MeCab engine and prints
one line per morpheme ("surface\tfeature"). Sentences come from the
command line, or from stdin when no arguments are given.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dicdir, "dicdir", "d", "", "system dictionary directory")
	cmd.Flags().StringVarP(&opts.userdic, "userdic", "u", "", "user dictionary file")
	cmd.Flags().StringVarP(&opts.outputFormat, "output-format-type", "O", "", "native output format (e.g. wakati)")
	cmd.Flags().IntVarP(&opts.nbest, "nbest", "N", 1, "print the N best analyses")
	cmd.Flags().BoolVarP(&opts.allMorphs, "all-morphs", "a", false, "print all candidate morphemes, not only the best path")
	cmd.Flags().BoolVar(&opts.marginal, "marginal", false, "compute marginal probabilities")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	v := mecab.Version()
	if v == "" {
		return fmt.Errorf("native bindings not built: %w", mecab.ErrNotBuilt)
	}
	logger.Debug("engine loaded", zap.String("mecab_version", v))

	model, err := mecab.New(modelOptions(opts))
	if err != nil {
		logger.Error("model construction failed",
			zap.Error(err),
			zap.String("diagnostic", mecab.LastError()))
		return err
	}
	defer func() { _ = model.Close() }()

	info := model.DictionaryInfo()
	for d := range info.All() {
		logger.Debug("dictionary",
			zap.String("file", d.Filename()),
			zap.String("charset", d.Charset()),
			zap.Stringer("type", d.Type()),
			zap.Uint32("entries", d.Size()))
	}

	tagger, err := model.NewTagger()
	if err != nil {
		return err
	}
	defer func() { _ = tagger.Close() }()

	lat, err := model.NewLattice()
	if err != nil {
		return err
	}
	defer func() { _ = lat.Close() }()

	lat.SetRequestType(requestType(opts))

	out := cmd.OutOrStdout()
	analyze := func(sentence string) error {
		lat.SetSentence(sentence)
		if err := tagger.Parse(lat); err != nil {
			logger.Error("parse failed", zap.String("sentence", sentence), zap.Error(err))
			return err
		}
		return printResult(out, lat, opts)
	}

	if len(args) > 0 {
		for _, sentence := range args {
			if err := analyze(sentence); err != nil {
				return err
			}
		}
		return nil
	}

	sc := bufio.NewScanner(cmd.InOrStdin())
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := analyze(line); err != nil {
			return err
		}
	}
	return sc.Err()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}

func modelOptions(opts *options) mecab.Options {
	var mo mecab.Options
	if opts.dicdir != "" {
		mo = append(mo, mecab.Option{Key: mecab.Dicdir, Value: opts.dicdir})
	}
	if opts.userdic != "" {
		mo = append(mo, mecab.Option{Key: mecab.Userdic, Value: opts.userdic})
	}
	if opts.outputFormat != "" {
		mo = append(mo, mecab.Option{Key: mecab.OutputFormatType, Value: opts.outputFormat})
	}
	return mo
}

func requestType(opts *options) mecab.RequestType {
	rt := mecab.OneBest
	if opts.nbest > 1 {
		rt |= mecab.NBest
	}
	if opts.allMorphs {
		rt |= mecab.AllMorphs
	}
	if opts.marginal {
		rt |= mecab.MarginalProb
	}
	return rt
}

func printResult(out io.Writer, lat *mecab.Lattice, opts *options) error {
	// The native formatter honors --output-format-type and N-best, so
	// prefer it whenever either is in play.
	if opts.outputFormat != "" || opts.nbest > 1 {
		var (
			s   string
			err error
		)
		if opts.nbest > 1 {
			s, err = lat.NBestString(opts.nbest)
		} else {
			s, err = lat.String()
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, s)
		return err
	}

	for node := range lat.Nodes() {
		switch {
		case node.Status().IsBOS():
			continue
		case node.Status().IsEOS():
			if _, err := fmt.Fprintln(out, "EOS"); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(out, "%s\t%s\n", node.SurfaceString(), node.FeatureString()); err != nil {
				return err
			}
		}
	}
	return nil
}
