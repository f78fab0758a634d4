package literalscan

import "github.com/trieql/trieql/pattern"

// ExtractFragments returns every maximal run of consecutive Char tokens
// in tokens whose length is at least minLen. These are the byte runs a
// matching stored key is guaranteed to contain verbatim, regardless of
// how any wildcard/class/capture tokens elsewhere in the pattern resolve.
func ExtractFragments(tokens []pattern.Token, minLen int) [][]byte {
	var frags [][]byte
	var cur []byte

	flush := func() {
		if len(cur) >= minLen {
			frags = append(frags, cur)
		}
		cur = nil
	}

	for _, tok := range tokens {
		if tok.Kind == pattern.Char {
			cur = append(cur, tok.Byte)
			continue
		}
		flush()
	}
	flush()

	return frags
}
