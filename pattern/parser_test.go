package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, pat string) []Token {
	t.Helper()
	toks, err := Parse([]byte(pat))
	require.Nil(t, err, "unexpected parse error: %v", err)
	return toks
}

func TestParseLiteral(t *testing.T) {
	toks := mustParse(t, "cat")
	require.Len(t, toks, 3)
	assert.Equal(t, NewChar('c'), toks[0])
	assert.Equal(t, NewChar('a'), toks[1])
	assert.Equal(t, NewChar('t'), toks[2])
}

func TestParseWildcard(t *testing.T) {
	toks := mustParse(t, "*")
	require.Len(t, toks, 1)
	assert.Equal(t, Wildcard, toks[0].Kind)
}

func TestParseInclusionExclusion(t *testing.T) {
	toks := mustParse(t, "[co][^xy]")
	require.Len(t, toks, 2)
	assert.Equal(t, Inclusion, toks[0].Kind)
	assert.ElementsMatch(t, []byte("co"), toks[0].Set.Bytes())
	assert.Equal(t, Exclusion, toks[1].Kind)
	assert.ElementsMatch(t, []byte("xy"), toks[1].Set.Bytes())
}

func TestParseCaptureUnconstrained(t *testing.T) {
	toks := mustParse(t, "{name}")
	require.Len(t, toks, 1)
	assert.Equal(t, Capture, toks[0].Kind)
	assert.Equal(t, "name", toks[0].Name)
}

func TestParseCaptureConstrained(t *testing.T) {
	toks := mustParse(t, "{1[abc]}")
	require.Len(t, toks, 1)
	assert.Equal(t, CaptureIn, toks[0].Kind)
	assert.Equal(t, "1", toks[0].Name)
	assert.ElementsMatch(t, []byte("abc"), toks[0].Set.Bytes())

	toks = mustParse(t, "{1[^abc]}")
	require.Len(t, toks, 1)
	assert.Equal(t, CaptureEx, toks[0].Kind)
}

func TestParseEscapes(t *testing.T) {
	for _, m := range []byte{'*', '^', '[', ']', '{', '}'} {
		pat := []byte{'\\', m}
		toks, err := Parse(pat)
		require.Nil(t, err, "escaping %q should not error", m)
		require.Len(t, toks, 1)
		assert.Equal(t, NewChar(m), toks[0])
	}
}

func TestParseEscapeInsideGroupAndCaptureName(t *testing.T) {
	toks := mustParse(t, `[a\]b]`)
	require.Len(t, toks, 1)
	assert.ElementsMatch(t, []byte("a]b"), toks[0].Set.Bytes())

	toks = mustParse(t, `{a\}b}`)
	require.Len(t, toks, 1)
	assert.Equal(t, "a}b", toks[0].Name)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		message string
		column  int
	}{
		{
			name:    "dangling exclusion at top level",
			pattern: "ab*[^zsd",
			message: "Dangling group (exclusion) starting at column 4, expecting ]",
			column:  4,
		},
		{
			name:    "unnamed capture cannot be empty",
			pattern: "ab*[^zsd]{}",
			message: "Unnamed capture starting at column 10, capture cannot be empty",
			column:  10,
		},
		{
			name:    "inner group must be trailing in capture",
			pattern: "ab*[^zsd]{1[^abc]a}",
			message: "Group (exclusion) must in the tail position of capture starting at column 10",
			column:  10,
		},
		{
			name:    "unnamed capture before group",
			pattern: "{[abc]}",
			message: "Unnamed capture starting at column 1, capture must be named before group",
			column:  1,
		},
		{
			name:    "dangling inclusion",
			pattern: "[abc",
			message: "Dangling group (inclusion) starting at column 1, expecting ]",
			column:  1,
		},
		{
			name:    "dangling capture",
			pattern: "{abc",
			message: "Dangling group (capture) starting at column 1, expecting }",
			column:  1,
		},
		{
			name:    "unescaped symbol at top level",
			pattern: "a^b",
			message: "Unescaped symbol ^ at column 2",
			column:  2,
		},
		{
			name:    "unescaped symbol inside group body",
			pattern: "[a{b]",
			message: "Unescaped symbol { at column 3",
			column:  3,
		},
		{
			name:    "unescaped symbol inside capture name",
			pattern: "{a*b}",
			message: "Unescaped symbol * at column 3",
			column:  3,
		},
		{
			name:    "dangling capture via unterminated inner group",
			pattern: "{1[abc",
			message: "Dangling group (capture) starting at column 1, expecting }",
			column:  1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Parse([]byte(tc.pattern))
			require.Nil(t, toks)
			require.NotNil(t, err)
			assert.Equal(t, tc.message, err.Error())
			assert.Equal(t, tc.column, err.Column)
		})
	}
}

func TestParseEmptyPattern(t *testing.T) {
	toks := mustParse(t, "")
	assert.Empty(t, toks)
}
