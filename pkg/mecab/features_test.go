package mecab

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeatures(t *testing.T) {
	raw := []byte("名詞,一般,*,*,*,*,こんにちは,コンニチハ,コンニチワ")

	f, err := ParseFeatures(raw)
	require.NoError(t, err)
	require.Equal(t, 9, f.Len())
	assert.False(t, f.IsEmpty())

	// Fields round-trip against the comma-delimited raw string.
	want := bytes.Split(raw, []byte(","))
	for i := range want {
		got, ok := f.Get(i)
		require.True(t, ok, "field %d", i)
		assert.Equal(t, want[i], got.Bytes(), "field %d", i)
	}

	_, ok := f.Get(f.Len())
	assert.False(t, ok, "Get(Len()) must report out of range")
	_, ok = f.Get(-1)
	assert.False(t, ok)
}

func TestParseFeaturesQuotedField(t *testing.T) {
	// Chemical names in IPADIC embed commas inside quoted fields.
	f, err := ParseFeatures([]byte(`名詞,一般,"1,2-ジクロロエタン",*`))
	require.NoError(t, err)
	require.Equal(t, 4, f.Len())
	assert.Equal(t, "1,2-ジクロロエタン", f.At(2).String())
}

func TestParseFeaturesEmpty(t *testing.T) {
	f, err := ParseFeatures(nil)
	require.NoError(t, err)
	assert.True(t, f.IsEmpty())
	assert.Equal(t, 0, f.Len())

	_, ok := f.Get(0)
	assert.False(t, ok)
}

func TestParseFeaturesEmptyFields(t *testing.T) {
	f, err := ParseFeatures([]byte("a,,c"))
	require.NoError(t, err)
	require.Equal(t, 3, f.Len())
	assert.Equal(t, "", f.At(1).String())
	assert.Equal(t, "c", f.At(2).String())
}

func TestFeaturesAll(t *testing.T) {
	f, err := ParseFeatures([]byte("x,y,z"))
	require.NoError(t, err)

	var got []string
	for field := range f.All() {
		got = append(got, field.String())
	}
	assert.Equal(t, []string{"x", "y", "z"}, got)

	// The sequence restarts on re-iteration.
	n := 0
	for range f.All() {
		n++
	}
	assert.Equal(t, 3, n)
}

func TestFeatureText(t *testing.T) {
	ok := Feature{raw: "名詞"}
	s, err := ok.Text()
	require.NoError(t, err)
	assert.Equal(t, "名詞", s)

	// EUC-JP bytes are not valid UTF-8; Text must fail while Bytes
	// stays usable.
	bad := Feature{raw: string([]byte{0xb5, 0xad, 0xb9, 0xe6})}
	_, err = bad.Text()
	assert.Error(t, err)
	assert.Len(t, bad.Bytes(), 4)
}
