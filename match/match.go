// Package match executes a compiled pattern token sequence against a trie
// node, per spec.md §4.3: a recursive descent indexed by the current
// node, the remaining token suffix, the capture environment, and the
// accumulated byte string.
package match

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/trieql/trieql/internal/node"
	"github.com/trieql/trieql/pattern"
)

// Env binds a capture name to the single byte matched at its first
// occurrence. It is mutated in place during descent and restored by
// deleting the binding when a branch backtracks — the same
// bind-then-undo shape as the teacher's backtracking NFA engine restores
// its own position on an unsuccessful branch.
type Env map[string]byte

// Run executes tokens against root and returns every stored string
// satisfying them, in the depth-first, lexicographic-by-child-byte order
// spec.md §4.3 guarantees.
func Run(root *node.Node, tokens []pattern.Token) []string {
	out, _ := RunContext(context.Background(), root, tokens)
	return out
}

// RunContext is Run with external cancellation. It checks ctx at every
// node visited; once ctx is done, descent unwinds without visiting
// further children and RunContext returns ctx.Err(). This is spec.md
// §5's "long pattern searches can be bounded externally by a wrapping
// timeout" made concrete, not a new matching semantic — a search that
// completes before ctx fires behaves identically to Run.
func RunContext(ctx context.Context, root *node.Node, tokens []pattern.Token) ([]string, error) {
	var out []string
	env := make(Env)
	err := run(ctx, root, tokens, env, nil, func(s []byte) {
		out = append(out, string(s))
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func run(ctx context.Context, n *node.Node, tokens []pattern.Token, env Env, acc []byte, emit func([]byte)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(tokens) == 0 {
		if n.Terminal {
			emit(acc)
		}
		return nil
	}

	tok, rest := tokens[0], tokens[1:]
	log.WithField("kind", tok.Kind).Debug("token consumed")
	switch tok.Kind {
	case pattern.Char:
		child := n.Child(tok.Byte)
		if child == nil {
			log.WithField("byte", tok.Byte).Debug("branch pruned: no matching child")
			return nil
		}
		log.WithField("byte", tok.Byte).Debug("byte tried")
		return run(ctx, child, rest, env, append(acc, tok.Byte), emit)

	case pattern.Wildcard:
		return runEach(ctx, n, rest, env, acc, emit, nil)

	case pattern.Inclusion:
		set := tok.Set
		return runEach(ctx, n, rest, env, acc, emit, set.Contains)

	case pattern.Exclusion:
		set := tok.Set
		return runEach(ctx, n, rest, env, acc, emit, func(b byte) bool { return !set.Contains(b) })

	case pattern.Capture:
		return runCapture(ctx, n, tok.Name, nil, rest, env, acc, emit)

	case pattern.CaptureIn:
		set := tok.Set
		return runCapture(ctx, n, tok.Name, set.Contains, rest, env, acc, emit)

	case pattern.CaptureEx:
		set := tok.Set
		return runCapture(ctx, n, tok.Name, func(b byte) bool { return !set.Contains(b) }, rest, env, acc, emit)

	default:
		return nil
	}
}

// runEach visits every child of n whose byte satisfies in (or every
// child, if in is nil), recursing on each in ascending byte order.
func runEach(ctx context.Context, n *node.Node, rest []pattern.Token, env Env, acc []byte, emit func([]byte), in func(byte) bool) error {
	var firstErr error
	tried := 0
	visit := func(b byte, child *node.Node) {
		if firstErr != nil {
			return
		}
		tried++
		log.WithField("byte", b).Debug("byte tried")
		if err := run(ctx, child, rest, env, append(acc, b), emit); err != nil {
			firstErr = err
		}
	}
	if in == nil {
		n.Range(visit)
	} else {
		n.RangeIn(in, visit)
	}
	if tried == 0 {
		log.Debug("branch pruned: class matched no children")
	}
	return firstErr
}

// runCapture resolves a Capture/CaptureIn/CaptureEx token. If name is
// already bound, the class (in, possibly nil) is not re-checked — only
// the bound byte is tried, per spec.md §9's preserved-as-specified open
// question. Otherwise it binds each candidate byte in turn, restoring the
// environment after each branch so sibling branches never see a stale
// binding.
func runCapture(ctx context.Context, n *node.Node, name string, in func(byte) bool, rest []pattern.Token, env Env, acc []byte, emit func([]byte)) error {
	if bound, ok := env[name]; ok {
		log.WithFields(logrus.Fields{"name": name, "byte": bound}).Debug("capture reused: bound byte required")
		child := n.Child(bound)
		if child == nil {
			log.WithField("name", name).Debug("branch pruned: bound byte has no matching child")
			return nil
		}
		return run(ctx, child, rest, env, append(acc, bound), emit)
	}

	var firstErr error
	tried := 0
	visit := func(b byte, child *node.Node) {
		if firstErr != nil {
			return
		}
		tried++
		env[name] = b
		log.WithFields(logrus.Fields{"name": name, "byte": b}).Debug("capture bound")
		err := run(ctx, child, rest, env, append(acc, b), emit)
		delete(env, name)
		log.WithField("name", name).Debug("capture restored")
		if err != nil {
			firstErr = err
		}
	}
	if in == nil {
		n.Range(visit)
	} else {
		n.RangeIn(in, visit)
	}
	if tried == 0 {
		log.WithField("name", name).Debug("branch pruned: class matched no children")
	}
	return firstErr
}
