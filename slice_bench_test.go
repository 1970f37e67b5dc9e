package strview

import (
	"strings"
	"testing"
)

var corpus = strings.Repeat("the quick brown fox jumps over the lazy dog\n", 64)

func BenchmarkResliceZeroAllocs(b *testing.B) {
	v := New(corpus)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w, _ := v.SliceToEnd(i%32, 1)
		_ = w.Len()
	}
}

func BenchmarkIndexSameBuffer(b *testing.B) {
	v := New(corpus)
	w, _ := v.Slice(100, 140)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.Index(w, 0, -1)
	}
}

func BenchmarkIndexCrossBuffer(b *testing.B) {
	v := New(corpus)
	o := New("lazy dog")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.Index(o, 0, -1)
	}
}

func BenchmarkIndexTable(b *testing.B) {
	v := New(corpus)
	tbl := MakeSkipTable("lazy dog")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.IndexTable(&tbl, "lazy dog", 0, -1)
	}
}

func BenchmarkStringsIndexBaseline(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = strings.Index(corpus, "lazy dog")
	}
}

func BenchmarkSubstringCopyBaseline(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sub := string([]byte(corpus[i%32:]))
		_ = len(sub)
	}
}

func BenchmarkTrimSpace(b *testing.B) {
	v := New("   \t padded value \t   ")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.TrimSpace(true, true)
	}
}
