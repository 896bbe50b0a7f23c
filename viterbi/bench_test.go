package viterbi_test

import (
	"testing"

	"github.com/katalvlaran/viterbi/viterbi"
)

// benchmarkDecode runs DecodeModel on a random model with k states over a
// sequence of length n. Setup is excluded from timing.
func benchmarkDecode(b *testing.B, k, n int, opts ...viterbi.Option) {
	m, vocab := randomModel(1, k, 50, 0.1)
	obs := randomSequence(2, vocab, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := viterbi.DecodeModel(m, obs, opts...); err != nil {
			b.Fatalf("DecodeModel failed: %v", err)
		}
	}
}

// BenchmarkDecode_Small benchmarks a tagger-sized model (12 states, 30 tokens).
func BenchmarkDecode_Small(b *testing.B) {
	benchmarkDecode(b, 12, 30)
}

// BenchmarkDecode_Wide benchmarks 128 states over 200 observations.
func BenchmarkDecode_Wide(b *testing.B) {
	benchmarkDecode(b, 128, 200)
}

// BenchmarkDecode_WideWorkers benchmarks the same input with 8 workers per layer.
func BenchmarkDecode_WideWorkers(b *testing.B) {
	benchmarkDecode(b, 128, 200, viterbi.WithWorkers(8))
}

// BenchmarkDecode_Strict measures the cost of strict lookups on a dense model.
func BenchmarkDecode_Strict(b *testing.B) {
	benchmarkDecode(b, 32, 100, viterbi.WithStrict())
}
