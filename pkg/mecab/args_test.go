package mecab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgvTokens(t *testing.T) {
	got := Argv{"-d", "/dic/ipadic", "-O", "wakati"}.tokens()
	assert.Equal(t, []string{programName, "-d", "/dic/ipadic", "-O", "wakati"}, got)

	assert.Equal(t, []string{programName}, Argv{}.tokens())
}

func TestOptionsTokens(t *testing.T) {
	got := Options{
		{Dicdir, "/dic/ipadic"},
		{OutputFormatType, "wakati"},
		{UnkFeature, "UNK"},
	}.tokens()
	want := []string{
		programName,
		"--dicdir", "/dic/ipadic",
		"--output-format-type", "wakati",
		"--unk-feature", "UNK",
	}
	assert.Equal(t, want, got)
}

func TestOptionKeyFlags(t *testing.T) {
	flags := map[OptionKey]string{
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
	for key, want := range flags {
		assert.Equal(t, want, key.Flag())
	}
}
