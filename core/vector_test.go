package core

import (
	"math"
	"testing"
)

func TestNormalizeVector(t *testing.T) {
	v := NormalizeVector([]float32{3, 4})

	var magnitude float64
	for _, val := range v {
		magnitude += float64(val) * float64(val)
	}
	magnitude = math.Sqrt(magnitude)

	if math.Abs(magnitude-1.0) > 1e-6 {
		t.Errorf("NormalizeVector() magnitude = %f, want 1.0", magnitude)
	}
}

func TestNormalizeVector_ZeroVector(t *testing.T) {
	v := NormalizeVector([]float32{0, 0, 0})
	for i, val := range v {
		if val != 0 {
			t.Errorf("NormalizeVector() zero vector element %d = %f, want 0", i, val)
		}
	}
}

func TestNormalizeVector_Empty(t *testing.T) {
	if v := NormalizeVector(nil); len(v) != 0 {
		t.Errorf("NormalizeVector(nil) = %v, want empty", v)
	}
}

func TestDotProduct(t *testing.T) {
	got := DotProduct([]float32{1, 2, 3}, []float32{4, 5, 6})
	if got != 32 {
		t.Errorf("DotProduct() = %f, want 32", got)
	}
}

func TestSquaredDistance(t *testing.T) {
	got := SquaredDistance([]float32{1, 0}, []float32{0, 1})
	if got != 2 {
		t.Errorf("SquaredDistance() = %f, want 2", got)
	}

	if d := SquaredDistance([]float32{0.5, 0.5}, []float32{0.5, 0.5}); d != 0 {
		t.Errorf("SquaredDistance() identical vectors = %f, want 0", d)
	}
}
