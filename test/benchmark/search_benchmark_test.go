package benchmark

import (
	"testing"
)

// BenchmarkMarkerQuery measures lookups that only clone a precomputed set.
func BenchmarkMarkerQuery(b *testing.B) {
	eng := buildEngine(b, 2000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := eng.FirstPitchOfABEvents()
		_ = s
	}
}

// BenchmarkCategoricalQuery measures a single-bucket categorical lookup.
func BenchmarkCategoricalQuery(b *testing.B) {
	eng := buildEngine(b, 2000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := eng.ResultEvents("Strikeout")
		if err != nil {
			b.Fatalf("result query: %v", err)
		}
		_ = s
	}
}

// BenchmarkThresholdQuery measures the at-least expansion over an ordinal
// axis, which unions several buckets.
func BenchmarkThresholdQuery(b *testing.B) {
	eng := buildEngine(b, 2000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := eng.StrikeEventsSigned(-2)
		_ = s
	}
}

// BenchmarkRunnerQuery measures the required/optional/excluded base algebra.
func BenchmarkRunnerQuery(b *testing.B) {
	eng := buildEngine(b, 2000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := eng.RunnerOnBaseEvents([]int{1, -2})
		if err != nil {
			b.Fatalf("runner query: %v", err)
		}
		_ = s
	}
}

// BenchmarkMultiAxisIntersection measures combining three axes the way the
// HTTP search endpoint does.
func BenchmarkMultiAxisIntersection(b *testing.B) {
	eng := buildEngine(b, 2000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hits := eng.HitResultEvents(0)
		strikes := eng.StrikeEventsSigned(-1)
		outs := eng.OutsInInningEventsSigned(1)
		s := hits.Intersect(strikes).Intersect(outs)
		_ = s
	}
}

// BenchmarkQueryParallel checks that a built engine scales under concurrent
// readers, which is how the search service drives it.
func BenchmarkQueryParallel(b *testing.B) {
	eng := buildEngine(b, 2000)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s, err := eng.ResultEvents("Single")
			if err != nil {
				b.Fatalf("result query: %v", err)
			}
			_ = s.Intersect(eng.StealEvents())
		}
	})
}
