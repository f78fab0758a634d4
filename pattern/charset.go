package pattern

import (
	"sort"

	"github.com/RoaringBitmap/roaring"
	"golang.org/x/exp/slices"
)

// Charset is a set of bytes, used by Inclusion/Exclusion tokens and by the
// inner class of a constrained capture ([abc] in {name[abc]}). It is
// backed by a roaring.Bitmap over the 0..255 universe rather than a
// hand-rolled bit vector: the universe is tiny, so the choice costs
// nothing, and it keeps the same dense-set library the rest of the
// retrieval pack reaches for (m3db's postings lists) rather than a
// bespoke [256]bool.
type Charset struct {
	bits *roaring.Bitmap
}

// NewCharset builds a Charset from the given bytes, deduplicating and
// discarding order. Spec.md §3 requires |S| >= 1 for any Inclusion or
// Exclusion token; NewCharset does not itself enforce that — the parser
// rejects an empty group body before a Charset is ever built.
func NewCharset(bs []byte) *Charset {
	sorted := append([]byte(nil), bs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	sorted = slices.Compact(sorted)

	bm := roaring.New()
	for _, b := range sorted {
		bm.Add(uint32(b))
	}
	return &Charset{bits: bm}
}

// Contains reports whether b is a member of the set.
func (c *Charset) Contains(b byte) bool {
	return c.bits.Contains(uint32(b))
}

// Len returns the number of distinct bytes in the set.
func (c *Charset) Len() int {
	return int(c.bits.GetCardinality())
}

// Bytes returns the set's members in ascending order.
func (c *Charset) Bytes() []byte {
	out := make([]byte, 0, c.Len())
	it := c.bits.Iterator()
	for it.HasNext() {
		out = append(out, byte(it.Next()))
	}
	return out
}
