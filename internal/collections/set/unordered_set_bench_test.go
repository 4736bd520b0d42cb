package set

import (
	"strconv"
	"testing"
)

func BenchmarkInsert(b *testing.B) {
	s := New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Insert(i)
	}
}

func BenchmarkContain(b *testing.B) {
	s := New[int]()
	for i := 0; i < 100000; i++ {
		s.Insert(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Contain(i % 100000)
	}
}

func BenchmarkInsertStringKeys(b *testing.B) {
	s := New[string]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Insert(strconv.Itoa(i))
	}
}
