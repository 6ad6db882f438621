package rmat_test

import (
	"testing"

	"github.com/katalvlaran/cliquegen/rmat"
)

func BenchmarkGenerate_ErdosRenyi(b *testing.B) {
	p := rmat.ErdosRenyi(500, 8000, 43)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := rmat.Generate(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate_SkewedType2(b *testing.B) {
	p := rmat.SkewedType2(500, 10000, 47)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := rmat.Generate(p); err != nil {
			b.Fatal(err)
		}
	}
}
