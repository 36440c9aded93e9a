package zinclha_test

import (
	"testing"

	zinclha "github.com/kuhlklay/zinc-lha"
)

func BenchmarkSum_3(b *testing.B) {
	data := []byte("abc")
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = zinclha.Sum(data)
	}
}

func BenchmarkSum_64(b *testing.B) {
	data := patternBytes(64)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = zinclha.Sum(data)
	}
}

func BenchmarkSum_1K(b *testing.B) {
	data := patternBytes(1024)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = zinclha.Sum(data)
	}
}
