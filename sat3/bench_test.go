package sat3_test

import (
	"testing"

	"github.com/katalvlaran/cliquegen/sat3"
)

func BenchmarkBuild_Small(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sat3.Build(150, 0.08, 48); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_Large(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sat3.Build(300, 0.12, 49); err != nil {
			b.Fatal(err)
		}
	}
}
