// Package scan tokenizes text as zero-copy views. Every returned
// slice shares the input's backing buffer; nothing here allocates
// buffer contents, only the slice headers of the result.
package scan

import (
	"github.com/rawbytedev/strview"
	"github.com/rawbytedev/strview/internal/common"
)

// SplitByte cuts v at every occurrence of sep. Like strings.Split, the
// result has one element more than the number of separators; adjacent
// separators produce empty views.
func SplitByte(v strview.Slice, sep byte) []strview.Slice {
	var out []strview.Slice
	from := 0
	for {
		i := v.IndexByte(sep, from, -1)
		if i < 0 {
			rest, _ := v.SliceToEnd(from, 1)
			return append(out, rest)
		}
		part, _ := v.Slice(from, i-1)
		out = append(out, part)
		from = i + 1
	}
}

// Lines splits v on '\n', dropping a final empty element after a
// trailing newline and stripping one '\r' from each line end, so CRLF
// input works unchanged.
func Lines(v strview.Slice) []strview.Slice {
	parts := SplitByte(v, '\n')
	if n := len(parts); n > 0 && parts[n-1].Len() == 0 {
		parts = parts[:n-1]
	}
	for i, p := range parts {
		if h := p.High(); h >= 0 && p.Byte(h) == '\r' {
			parts[i], _ = p.Slice(0, h-1)
		}
	}
	return parts
}

// Fields splits v around runs of ASCII whitespace. There are no empty
// fields in the result.
func Fields(v strview.Slice) []strview.Slice {
	var out []strview.Slice
	i, n := 0, v.Len()
	for i < n {
		for i < n && common.IsSpace(v.Byte(i)) {
			i++
		}
		if i >= n {
			break
		}
		j := i
		for j < n && !common.IsSpace(v.Byte(j)) {
			j++
		}
		w, _ := v.Slice(i, j-1)
		out = append(out, w)
		i = j
	}
	return out
}

// Cut splits v around the first occurrence of sep. When sep is absent
// it returns v itself, a null view, and false.
func Cut(v strview.Slice, sep byte) (before, after strview.Slice, ok bool) {
	i := v.IndexByte(sep, 0, -1)
	if i < 0 {
		return v, strview.Slice{}, false
	}
	before, _ = v.Slice(0, i-1)
	after, _ = v.SliceToEnd(i+1, 1)
	return before, after, true
}

// Strings materializes views into owned strings, the escape hatch for
// callers that must outlive the buffer.
func Strings(views []strview.Slice) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.String()
	}
	return out
}
