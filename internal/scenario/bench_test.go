package scenario_test

import (
	"testing"

	"github.com/noah-isme/bundle-pricing/internal/scenario"
)

const benchLeaves = 100000

var sink float64

func BenchmarkDynamicTotalPrice(b *testing.B) {
	bundle := scenario.LargeDynamic(benchLeaves)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = bundle.TotalPrice()
	}
}

func BenchmarkStaticTotalPrice(b *testing.B) {
	bundle := scenario.LargeStatic(benchLeaves)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = bundle.TotalPrice()
	}
}

func BenchmarkDynamicGamingTotalPrice(b *testing.B) {
	bundle := scenario.GamingDynamic()
	for i := 0; i < b.N; i++ {
		sink = bundle.TotalPrice()
	}
}

func BenchmarkStaticGamingTotalPrice(b *testing.B) {
	bundle := scenario.GamingStatic()
	for i := 0; i < b.N; i++ {
		sink = bundle.TotalPrice()
	}
}
