package strview

import (
	"errors"
	"iter"

	"github.com/rawbytedev/strview/internal/common"
)

var (
	ErrIndex = errors.New("slice index out of range")
	ErrRange = errors.New("backward offset out of range")
)

// Buffer is the mutable backing store shared by every Slice derived
// from it. Mutating it through one owner is visible to all views; the
// caller supplies synchronization if that happens across goroutines.
type Buffer struct {
	data []byte
}

// NewBuffer copies s into a fresh backing store.
func NewBuffer(s string) *Buffer {
	return &Buffer{data: []byte(s)}
}

func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// SetByte overwrites position i in place. Every Slice over this
// buffer observes the write.
func (b *Buffer) SetByte(i int, c byte) {
	b.data[i] = c
}

// Bytes returns the live storage, not a copy.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

func (b *Buffer) String() string {
	if b == nil {
		return ""
	}
	return string(b.data)
}

// Slice is a zero-copy view into a shared Buffer: the buffer handle
// plus an inclusive [start, stop] range. stop < start is the legal
// empty state. The zero value is the null view: it has no buffer,
// renders as "" and compares unequal to everything.
//
// Slices are cheap to copy; only Concat allocates a new buffer.
type Slice struct {
	buf   *Buffer
	start int
	stop  int
}

// New copies s into a fresh Buffer and returns the view covering it.
func New(s string) Slice {
	return FromBuffer(NewBuffer(s))
}

// FromBuffer returns the full-coverage view over an existing buffer.
func FromBuffer(b *Buffer) Slice {
	return Slice{buf: b, start: 0, stop: b.Len() - 1}
}

// High is the view-relative index of the last character, -1 when empty
// or null.
func (s Slice) High() int {
	if s.buf == nil {
		return -1
	}
	return s.stop - s.start
}

func (s Slice) Len() int {
	if n := s.High() + 1; n > 0 {
		return n
	}
	return 0
}

// Buffer exposes the shared backing store handle. Two views share
// storage exactly when their Buffer pointers are equal.
func (s Slice) Buffer() *Buffer { return s.buf }

// window is the live byte range [start, stop], nil when empty or null.
func (s Slice) window() []byte {
	if s.buf == nil || s.stop < s.start {
		return nil
	}
	return s.buf.data[s.start : s.stop+1]
}

// Byte returns the character at view-relative index i, which must be
// within [0, High()].
func (s Slice) Byte(i int) byte {
	return s.buf.data[s.start+i]
}

// Slice derives a sub-view [a, b] in the view's own coordinates, b
// inclusive. The buffer is shared, never copied. Returns ErrIndex when
// a is negative, the resulting length would be negative, or b is past
// High().
func (s Slice) Slice(a, b int) (Slice, error) {
	if a < 0 || b+1 < a || b > s.High() {
		return Slice{}, ErrIndex
	}
	return Slice{buf: s.buf, start: s.start + a, stop: s.start + b}, nil
}

// SliceToEnd derives the sub-view [a, ^k]: k counts 1-based from one
// past the logical end, so k=1 keeps everything from a onward. Returns
// ErrIndex when a is outside [0, Len()] and ErrRange when k is not in
// [1, Len()+1].
func (s Slice) SliceToEnd(a, k int) (Slice, error) {
	if a < 0 || a > s.Len() {
		return Slice{}, ErrIndex
	}
	if k < 1 || k > s.Len()+1 {
		return Slice{}, ErrRange
	}
	return Slice{buf: s.buf, start: s.start + a, stop: s.stop - k + 1}, nil
}

// String materializes a fresh copy of the window. A null view renders
// as the empty string.
func (s Slice) String() string {
	return string(s.window())
}

// UnsafeString aliases the window as a string without copying. The
// result is only valid while the buffer is live and unmutated; use it
// for transient lookups, never for storage.
func (s Slice) UnsafeString() string {
	return common.UnsafeString(s.window())
}

// Bytes returns the live window. Mutations through the buffer are
// visible here, consistent with the shared-ownership contract.
func (s Slice) Bytes() []byte {
	return s.window()
}

// TrimSpace returns a view with ASCII whitespace excluded from the
// active ends. The buffer stays shared; an all-whitespace view trims
// to the legal empty state.
func (s Slice) TrimSpace(leading, trailing bool) Slice {
	if s.buf == nil {
		return s
	}
	start, stop := s.start, s.stop
	if leading {
		for start <= stop && common.IsSpace(s.buf.data[start]) {
			start++
		}
	}
	if trailing {
		for stop >= start && common.IsSpace(s.buf.data[stop]) {
			stop--
		}
	}
	return Slice{buf: s.buf, start: start, stop: stop}
}

// Concat is the one allocating operation: it materializes both
// operands into a brand-new independently owned buffer. The result
// does not observe later mutation of either input's buffer. Callers
// concatenating repeatedly should batch instead.
func (s Slice) Concat(o Slice) Slice {
	data := make([]byte, 0, s.Len()+o.Len())
	data = append(data, s.window()...)
	data = append(data, o.window()...)
	return FromBuffer(&Buffer{data: data})
}

// Chars yields the characters of [start, stop] in order. The sequence
// is restartable and reads the buffer at yield time, not a snapshot,
// so a write through another view lands mid-iteration.
func (s Slice) Chars() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		if s.buf == nil {
			return
		}
		for i := s.start; i <= s.stop; i++ {
			if !yield(s.buf.data[i]) {
				return
			}
		}
	}
}
