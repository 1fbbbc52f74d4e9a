package sizeclass

import "testing"

func BenchmarkIndex(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Index(i%MaxSize + 1)
	}
}

func BenchmarkRoundUp(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = RoundUp(i%MaxSize + 1)
	}
}
