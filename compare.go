package strview

import (
	"bytes"

	"github.com/rawbytedev/strview/internal/common"
)

// Equal reports positional content equality. Views over different
// buffers with identical content are equal; length mismatch returns
// false immediately. A null view equals nothing, including another
// null view.
func (s Slice) Equal(o Slice) bool {
	if s.buf == nil || o.buf == nil {
		return false
	}
	if s.Len() != o.Len() {
		return false
	}
	return bytes.Equal(s.window(), o.window())
}

// EqualString compares the window against t. A null view compares
// unequal to everything, the empty string included.
func (s Slice) EqualString(t string) bool {
	if s.buf == nil {
		return false
	}
	if s.Len() != len(t) {
		return false
	}
	return bytes.Equal(s.window(), common.UnsafeBytes(t))
}

// HasPrefix reports whether the view starts with o. A candidate longer
// than the view is false without any comparison.
func (s Slice) HasPrefix(o Slice) bool {
	if s.buf == nil || o.buf == nil {
		return false
	}
	if o.Len() > s.Len() {
		return false
	}
	return bytes.HasPrefix(s.window(), o.window())
}

// HasPrefixString reports whether the view starts with p.
func (s Slice) HasPrefixString(p string) bool {
	if s.buf == nil {
		return false
	}
	if len(p) > s.Len() {
		return false
	}
	return bytes.HasPrefix(s.window(), common.UnsafeBytes(p))
}
