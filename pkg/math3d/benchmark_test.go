package math3d

import (
	"testing"
)

func BenchmarkVec3Unit(b *testing.B) {
	v := V3(1.0, 2.0, 3.0)

	for b.Loop() {
		_ = v.Unit()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1.0, 2.0, 3.0)
	v2 := V3(4.0, 5.0, 6.0)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVec3Dot(b *testing.B) {
	v1 := V3(1.0, 2.0, 3.0)
	v2 := V3(4.0, 5.0, 6.0)

	for b.Loop() {
		_ = v1.Dot(v2)
	}
}

func BenchmarkVec3DotInt(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Dot(v2)
	}
}

func BenchmarkRayAt(b *testing.B) {
	r := NewRay(V3(0.0, 0.0, 0.0), V3(0.3, -0.2, -1.0))

	for b.Loop() {
		_ = r.At(2.5)
	}
}
