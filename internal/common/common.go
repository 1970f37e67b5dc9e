package common

import "unsafe"

// asciiSpace marks the raw whitespace code units. Indexing is byte
// based on purpose; multi-byte runes are never whitespace here.
var asciiSpace = [256]bool{'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true}

// IsSpace reports whether c is an ASCII whitespace byte.
func IsSpace(c byte) bool {
	return asciiSpace[c]
}

// UnsafeString aliases b as a string without copying. The caller must
// not mutate b while the string is reachable.
func UnsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// UnsafeBytes aliases s as a byte slice without copying. The result
// must never be written to.
func UnsafeBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
