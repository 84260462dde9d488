package vecmath_test

import (
	"testing"

	"github.com/gravkit/octforce/vecmath"
)

func BenchmarkForceCoeff(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, d2 := vecmath.Displacement(0, 0, 0, 1.5, 2.5, 3.5)
		_ = vecmath.ForceCoeff(1, 1, d2, 1e-3)
	}
}
