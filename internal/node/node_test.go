package node

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertContains(t *testing.T) {
	n := New()
	n.Insert([]byte("apple"))
	n.Insert([]byte("apply"))
	n.Insert([]byte("ape"))

	assert.True(t, n.Contains([]byte("apple")))
	assert.True(t, n.Contains([]byte("apply")))
	assert.True(t, n.Contains([]byte("ape")))
	assert.False(t, n.Contains([]byte("app")))
	assert.False(t, n.Contains([]byte("apples")))
	assert.False(t, n.Contains([]byte("banana")))
}

func TestInsertEmptyString(t *testing.T) {
	n := New()
	assert.False(t, n.Contains([]byte("")))
	n.Insert([]byte(""))
	assert.True(t, n.Contains([]byte("")))
}

func TestInsertIdempotent(t *testing.T) {
	n := New()
	n.Insert([]byte("cat"))
	before := collect(n, "")
	n.Insert([]byte("cat"))
	after := collect(n, "")
	assert.Equal(t, before, after)
}

func TestDescendMissingPath(t *testing.T) {
	n := New()
	n.Insert([]byte("cat"))
	require.Nil(t, n.Descend([]byte("dog")))
	require.NotNil(t, n.Descend([]byte("ca")))
}

func TestWalkPrefixOrderIsLexicographic(t *testing.T) {
	words := []string{"apple", "apply", "ape", "bed", "between"}
	n := New()
	for _, w := range words {
		n.Insert([]byte(w))
	}

	got := collect(n, "")
	want := append([]string{}, words...)
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestWalkPrefixFromSubtree(t *testing.T) {
	n := New()
	for _, w := range []string{"apple", "apply", "ape", "bed"} {
		n.Insert([]byte(w))
	}

	sub := n.Descend([]byte("ap"))
	require.NotNil(t, sub)

	got := collect(sub, "ap")
	assert.Equal(t, []string{"ape", "apple", "apply"}, got)
}

func TestGoStringReportsOwnEdgesNotSubtree(t *testing.T) {
	n := New()
	n.Insert([]byte("cat"))
	n.Insert([]byte("car"))

	root := n.GoString()
	assert.Contains(t, root, "Terminal: (bool)false")
	assert.Contains(t, root, "children: ([]uint8)[99]") // 'c'

	ca := n.Descend([]byte("ca"))
	require.NotNil(t, ca)
	assert.Contains(t, ca.GoString(), "children: ([]uint8)[114 116]") // 'r', 't'
}

func collect(n *Node, prefix string) []string {
	var out []string
	n.WalkPrefix([]byte(prefix), func(s []byte) {
		out = append(out, string(s))
	})
	return out
}
