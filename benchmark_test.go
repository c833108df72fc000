package seqpack_test

import (
	"fmt"
	"slices"
	"testing"

	"seqpack/seqs"
	"seqpack/unpack"
)

// BenchmarkUnpack compares the streaming window algorithm against
// materializing the whole sequence and slicing it. The streaming side
// should stay flat in allocations as the input grows.
func BenchmarkUnpack(b *testing.B) {
	pattern := unpack.MustCompile([]string{"head", "*", "x", "y", "z"})

	for _, size := range []int{1_000, 100_000, 1_000_000} {
		b.Run(fmt.Sprintf("Streaming/%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := unpack.Run(pattern, seqs.Range(0, size, 1)); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(fmt.Sprintf("Materialize/%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				all := slices.Collect(seqs.Range(0, size, 1))
				head := all[:1]
				trailing := all[len(all)-3:]
				_, _ = head, trailing
			}
		})
	}
}
