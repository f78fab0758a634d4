// Package trieql implements a byte-keyed trie with a pattern-matching
// query engine: exact membership, prefix enumeration, and a small DSL of
// wildcards, character classes, and named back-reference captures.
//
// Basic usage:
//
//	t := trieql.New("apple", "apply", "ape")
//	t.Contains("apple")           // true
//	t.Prefix("app")               // ["apple", "apply"]
//	t.Pattern("*{1}{1}**")        // ["apple", "apply"]
//
// The pattern grammar is documented in full on Trie.Pattern.
package trieql

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/davecgh/go-spew/spew"
	"github.com/panjf2000/ants/v2"

	"github.com/trieql/trieql/internal/literalscan"
	"github.com/trieql/trieql/internal/node"
	"github.com/trieql/trieql/match"
	"github.com/trieql/trieql/pattern"
)

// Trie is an in-memory ordered set of byte strings, queryable by exact
// membership, prefix, or pattern.
//
// Trie chooses mutable, single-owner semantics (spec.md §9's option (b)):
// Insert mutates the receiver in place rather than returning a new,
// structurally-shared value. Per spec.md §5, a Trie not currently being
// mutated is safe for concurrent reads from multiple goroutines; Insert
// itself takes an exclusive lock.
type Trie struct {
	mu     sync.RWMutex
	root   *node.Node
	config Config
	keys   []string // sorted; mirrors root's content for the prefilter

	cacheMu sync.Mutex
	cache   map[uint64][]pattern.Token
}

// New returns a Trie containing every string in initial, configured with
// DefaultConfig.
func New(initial ...string) *Trie {
	return newTrie(DefaultConfig(), initial...)
}

// NewWithConfig is New with an explicit Config, rejecting it with a
// *ConfigError before construction if Validate reports it invalid —
// mirroring the teacher's meta.CompileWithConfig, which validates its
// Config up front rather than letting an out-of-range field surface as a
// confusing failure deep inside later use.
func NewWithConfig(config Config, initial ...string) (*Trie, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return newTrie(config, initial...), nil
}

func newTrie(config Config, initial ...string) *Trie {
	t := &Trie{
		root:   node.New(),
		config: config,
		cache:  make(map[uint64][]pattern.Token, config.PatternCacheSize),
	}
	t.Insert(initial...)
	return t
}

// Insert adds every string in ss to the trie. Already-present strings are
// left unchanged (insertion is idempotent).
func (t *Trie) Insert(ss ...string) {
	if len(ss) == 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, s := range ss {
		if t.root.Contains([]byte(s)) {
			continue
		}
		t.root.Insert([]byte(s))
		t.insertKeySorted(s)
	}
}

// insertKeySorted inserts s into t.keys, keeping it sorted. Called with
// t.mu already held for writing.
func (t *Trie) insertKeySorted(s string) {
	i := sort.SearchStrings(t.keys, s)
	t.keys = append(t.keys, "")
	copy(t.keys[i+1:], t.keys[i:])
	t.keys[i] = s
}

// Contains reports whether s was inserted.
func (t *Trie) Contains(s string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root.Contains([]byte(s))
}

// Prefix returns every stored string beginning with p, in lexicographic
// order. Returns nil if no stored string begins with p.
func (t *Trie) Prefix(p string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	sub := t.root.Descend([]byte(p))
	if sub == nil {
		return nil
	}

	var out []string
	sub.WalkPrefix([]byte(p), func(s []byte) {
		out = append(out, string(s))
	})
	return out
}

// Pattern compiles pat and returns every stored string it matches, in the
// depth-first, lexicographic-by-child-byte order spec.md §4.3 guarantees.
// A syntactically invalid pattern returns a *pattern.ParseError naming the
// offending construct and its 1-based column; a syntactically valid
// pattern with no matches returns (nil, nil).
//
// Grammar:
//
//	literal byte       match that byte
//	*                  any one byte
//	[abc]              any one of the enclosed bytes
//	[^abc]             any byte not enclosed
//	{name}             any byte; first use binds name, later uses require equality
//	{name[abc]}        first use binds name restricted to the class; later uses unrestricted
//	{name[^abc]}        same, exclusion
//	\X for X in *^[]{}  literal X
func (t *Trie) Pattern(pat string) ([]string, error) {
	return t.PatternContext(context.Background(), pat)
}

// PatternContext is Pattern with external cancellation: ctx is checked at
// every node visited during the search, per spec.md §5's "long pattern
// searches can be bounded externally by a wrapping timeout".
func (t *Trie) PatternContext(ctx context.Context, pat string) ([]string, error) {
	if len(pat) > t.config.MaxPatternLength {
		return nil, &ArgumentError{Arg: "pat", Message: "exceeds MaxPatternLength"}
	}

	tokens, err := t.compile(pat)
	if err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.config.EnablePrefilter && !t.mayMatchAny(tokens) {
		log.WithField("pattern", pat).Debug("prefilter ruled out every stored key")
		return nil, nil
	}

	return match.RunContext(ctx, t.root, tokens)
}

// compile parses pat into tokens, consulting and populating the
// xxhash-keyed cache. Cache lookups key on the pattern text, not a
// pointer, so identical pattern strings always hit regardless of which
// caller produced them.
func (t *Trie) compile(pat string) ([]pattern.Token, error) {
	key := xxhash.Sum64String(pat)

	t.cacheMu.Lock()
	if tokens, ok := t.cache[key]; ok {
		t.cacheMu.Unlock()
		log.WithField("pattern", pat).Debug("pattern cache hit")
		return tokens, nil
	}
	t.cacheMu.Unlock()

	tokens, parseErr := pattern.Parse([]byte(pat))
	if parseErr != nil {
		return nil, parseErr
	}

	t.cacheMu.Lock()
	if t.config.PatternCacheSize > 0 {
		if len(t.cache) >= t.config.PatternCacheSize {
			// Bounded memory via clear-and-rebuild, same policy the
			// teacher's dfa/lazy.Cache uses for its DFA state cache.
			t.cache = make(map[uint64][]pattern.Token, t.config.PatternCacheSize)
		}
		t.cache[key] = tokens
	}
	t.cacheMu.Unlock()

	return tokens, nil
}

// mayMatchAny reports whether at least one stored key could possibly
// satisfy tokens, using the Aho-Corasick literal prefilter over tokens'
// fixed literal runs. A false result conclusively means Pattern would
// return no matches; a true result (including "no fragments to check")
// means the full matcher must run. Called with t.mu already held for
// reading.
func (t *Trie) mayMatchAny(tokens []pattern.Token) bool {
	fragments := literalscan.ExtractFragments(tokens, t.config.MinLiteralLen)
	if len(fragments) == 0 {
		return true
	}

	filter, err := literalscan.Build(fragments)
	if err != nil {
		// A prefilter we can't build is not grounds to refuse a query:
		// fall through to the real matcher.
		log.WithError(err).Debug("failed to build literal prefilter")
		return true
	}

	for _, k := range t.keys {
		if filter.MayContain([]byte(k)) {
			return true
		}
	}
	return false
}

// PatternAllConcurrent evaluates every pattern in pats against t
// concurrently, via a bounded ants.Pool, exploiting spec.md §5's
// guarantee that multiple readers may share a trie that is not currently
// being mutated. results[i] corresponds to pats[i]; a parse or
// cancellation error for one pattern does not block the others, but is
// returned once, arbitrarily attributed to whichever failing query
// the pool happens to report first.
func (t *Trie) PatternAllConcurrent(pats []string) ([][]string, error) {
	results := make([][]string, len(pats))

	pool, err := ants.NewPool(t.config.WorkerPoolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	var (
		wg      sync.WaitGroup
		errMu   sync.Mutex
		firstErr error
	)

	for i, pat := range pats {
		i, pat := i, pat
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			out, err := t.Pattern(pat)
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
				return
			}
			results[i] = out
		})
		if submitErr != nil {
			wg.Done()
			errMu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			errMu.Unlock()
		}
	}

	wg.Wait()
	return results, firstErr
}

// Dump returns a spew-formatted structural dump of the trie's stored
// keys and its node tree, for debugging and test failure messages. It is
// not part of the query surface and its format is not stable.
func (t *Trie) Dump() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "keys: %s", spew.Sdump(t.keys))
	dumpNode(&sb, t.root, 0, 0, false)
	return sb.String()
}

// dumpNode writes n's GoString and recurses into its children, so the
// tree dump reflects each level's own shape without spew ever following
// a *Node pointer into another GoStringer (see Node.GoString's doc).
func dumpNode(sb *strings.Builder, n *node.Node, depth int, b byte, hasByte bool) {
	indent := strings.Repeat("  ", depth)
	if hasByte {
		fmt.Fprintf(sb, "%s%q -> %#v\n", indent, b, n)
	} else {
		fmt.Fprintf(sb, "%sroot -> %#v\n", indent, n)
	}
	n.Range(func(cb byte, child *node.Node) {
		dumpNode(sb, child, depth+1, cb, true)
	})
}

// Len returns the number of distinct strings stored in the trie.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.keys)
}
