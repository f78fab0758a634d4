// Package literalscan provides a literal-fragment prefilter for pattern
// queries, mirroring the teacher's own "literal engine bypass": before
// paying for a full trie descent, check whether any stored key can even
// contain the pattern's required literal fragments.
package literalscan

import (
	"github.com/coregx/ahocorasick"
)

// Filter answers "could s possibly satisfy a pattern requiring at least
// one of these literal fragments" in O(len(s)) via a shared Aho-Corasick
// automaton, instead of one substring search per fragment.
type Filter struct {
	auto *ahocorasick.Automaton
}

// Build compiles fragments into a Filter. Fragments shorter than the
// caller's minimum literal length should be excluded by the caller before
// calling Build — Build itself does not filter by length.
func Build(fragments [][]byte) (*Filter, error) {
	builder := ahocorasick.NewBuilder()
	for _, f := range fragments {
		builder.AddPattern(f)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Filter{auto: auto}, nil
}

// MayContain reports whether s contains at least one of the filter's
// literal fragments. A false result conclusively rules s out; a true
// result only means s is a candidate for the full matcher.
func (f *Filter) MayContain(s []byte) bool {
	if f == nil {
		return true
	}
	return f.auto.IsMatch(s)
}
