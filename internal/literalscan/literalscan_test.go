package literalscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trieql/trieql/pattern"
)

func tokens(t *testing.T, pat string) []pattern.Token {
	t.Helper()
	toks, err := pattern.Parse([]byte(pat))
	require.Nil(t, err)
	return toks
}

func TestExtractFragments(t *testing.T) {
	frags := ExtractFragments(tokens(t, "ab*cd[xy]ef{1}gh"), 2)
	want := [][]byte{[]byte("ab"), []byte("cd"), []byte("ef"), []byte("gh")}
	require.Len(t, frags, len(want))
	for i, f := range frags {
		assert.Equal(t, want[i], f)
	}
}

func TestExtractFragmentsRespectsMinLen(t *testing.T) {
	frags := ExtractFragments(tokens(t, "a*bc*d"), 2)
	require.Len(t, frags, 1)
	assert.Equal(t, []byte("bc"), frags[0])
}

func TestExtractFragmentsNoLiterals(t *testing.T) {
	frags := ExtractFragments(tokens(t, "*[ab]{1}"), 2)
	assert.Empty(t, frags)
}

func TestFilterMayContain(t *testing.T) {
	f, err := Build([][]byte{[]byte("cat"), []byte("dog")})
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.True(t, f.MayContain([]byte("concatenate")))
	assert.True(t, f.MayContain([]byte("doghouse")))
	assert.False(t, f.MayContain([]byte("banana")))
}

func TestNilFilterAlwaysMayContain(t *testing.T) {
	var f *Filter
	assert.True(t, f.MayContain([]byte("anything")))
}
