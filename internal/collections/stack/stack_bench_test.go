package stack

import "testing"

func generateIntData(n int) []int {
	data := make([]int, n)
	for i := 0; i < n; i++ {
		data[i] = i
	}
	return data
}

func BenchmarkPush(b *testing.B) {
	data := generateIntData(10000)
	s := New[int]()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, v := range data {
			s.Push(v)
		}
	}
}

func BenchmarkPop(b *testing.B) {
	data := generateIntData(10000)
	s := New[int]()
	for _, v := range data {
		s.Push(v)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if s.IsEmpty() {
			for _, v := range data {
				s.Push(v)
			}
		}
		_, _ = s.Pop()
	}
}

func BenchmarkPeek(b *testing.B) {
	data := generateIntData(10000)
	s := New[int]()
	for _, v := range data {
		s.Push(v)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = s.Peek()
	}
}

