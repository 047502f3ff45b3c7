package angle

import "testing"

func BenchmarkResolve(b *testing.B) {
	listener, source := 350.0, 10.0

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Resolve(listener, source)
	}
}

func BenchmarkNormalize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Normalize(10000)
	}
}

func BenchmarkFoldLateral(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = FoldLateral(-120)
	}
}
