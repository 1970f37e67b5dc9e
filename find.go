package strview

import (
	"bytes"

	"github.com/rawbytedev/strview/internal/common"
)

// SkipTable is a Boyer-Moore-Horspool skip table. Precompute it with
// MakeSkipTable when the same pattern is searched repeatedly.
type SkipTable [256]int

// MakeSkipTable builds the skip table for pat.
func MakeSkipTable(pat string) SkipTable {
	var t SkipTable
	m := len(pat)
	for i := range t {
		t[i] = m
	}
	for i := 0; i < m-1; i++ {
		t[pat[i]] = m - 1 - i
	}
	return t
}

// searchBounds translates the view-relative [from, last] window into
// absolute buffer coordinates. A negative last means High(); last past
// High() is clamped. ok is false when the window is unusable and the
// caller must answer -1.
func (s Slice) searchBounds(from, last int) (lo, hi int, ok bool) {
	if s.buf == nil || from < 0 {
		return 0, 0, false
	}
	if last < 0 || last > s.High() {
		last = s.High()
	}
	if from > last {
		return 0, 0, false
	}
	return s.start + from, s.start + last, true
}

// IndexByte returns the view-relative index of the first occurrence of
// c within [from, last], or -1. A negative last means the end of the
// view.
func (s Slice) IndexByte(c byte, from, last int) int {
	lo, hi, ok := s.searchBounds(from, last)
	if !ok {
		return -1
	}
	i := bytes.IndexByte(s.buf.data[lo:hi+1], c)
	if i < 0 {
		return -1
	}
	return lo + i - s.start
}

// IndexString returns the view-relative index of the first occurrence
// of pat within [from, last], or -1. The match must fit entirely
// inside the view: an occurrence whose tail runs past the view's last
// character is rejected even when the underlying buffer contains it.
func (s Slice) IndexString(pat string, from, last int) int {
	tbl := MakeSkipTable(pat)
	return s.IndexTable(&tbl, pat, from, last)
}

// IndexTable is IndexString with a caller-precomputed skip table,
// amortizing the preprocessing across repeated searches of pat.
func (s Slice) IndexTable(tbl *SkipTable, pat string, from, last int) int {
	lo, hi, ok := s.searchBounds(from, last)
	if !ok {
		return -1
	}
	if len(pat) == 0 {
		return lo - s.start
	}
	i := searchHorspool(s.buf.data[lo:hi+1], common.UnsafeBytes(pat), tbl)
	if i < 0 {
		return -1
	}
	return lo + i - s.start
}

// Index locates o inside the view within [from, last], returning the
// view-relative offset or -1. When both views share a buffer the match
// is resolved by pure index containment, no byte comparison at all.
// Distinct buffers fall back to materializing o and searching by
// content.
func (s Slice) Index(o Slice, from, last int) int {
	if o.buf != nil && o.buf == s.buf {
		lo, hi, ok := s.searchBounds(from, last)
		if !ok {
			return -1
		}
		if o.start >= lo && o.stop <= hi {
			return o.start - s.start
		}
		return -1
	}
	return s.IndexString(o.String(), from, last)
}

// searchHorspool finds pat in w using the precomputed table, returning
// the offset within w or -1.
func searchHorspool(w, pat []byte, tbl *SkipTable) int {
	n, m := len(w), len(pat)
	pos := 0
	for pos <= n-m {
		if bytes.Equal(w[pos:pos+m], pat) {
			return pos
		}
		pos += tbl[w[pos+m-1]]
	}
	return -1
}
