// Package math3d provides the vector and ray primitives for the ray tracer.
//
// Vectors are generic over [Number], so the same algebra runs on integers
// (exact, handy in tests) and on floats (used for rendering). A [Point] is
// the same type as a [Vec3]; the name only marks that a value is a position
// rather than a direction.
package math3d

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the scalar set a Vec3 can be built over.
type Number interface {
	constraints.Signed | constraints.Float
}

// Vec3 represents a 3D vector.
type Vec3[N Number] struct {
	X, Y, Z N
}

// Point is a position in space. It shares its representation with Vec3.
type Point[N Number] = Vec3[N]

// V3 creates a new Vec3.
func V3[N Number](x, y, z N) Vec3[N] {
	return Vec3[N]{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3[N Number]() Vec3[N] {
	return Vec3[N]{}
}

// Add returns the vector sum a + b.
func (a Vec3[N]) Add(b Vec3[N]) Vec3[N] {
	return Vec3[N]{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3[N]) Sub(b Vec3[N]) Vec3[N] {
	return Vec3[N]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3[N]) Scale(s N) Vec3[N] {
	return Vec3[N]{a.X * s, a.Y * s, a.Z * s}
}

// Div returns the scalar division a / s.
// Dividing by zero panics for integer N and yields Inf or NaN for float N.
func (a Vec3[N]) Div(s N) Vec3[N] {
	return Vec3[N]{a.X / s, a.Y / s, a.Z / s}
}

// Dot returns the dot product a · b.
func (a Vec3[N]) Dot(b Vec3[N]) N {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3[N]) Cross(b Vec3[N]) Vec3[N] {
	return Vec3[N]{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// MagnitudeSquared returns a · a.
func (a Vec3[N]) MagnitudeSquared() N {
	return a.Dot(a)
}

// Magnitude returns the length of the vector. The square root is taken in
// float64 and converted back to N, so integer vectors get a truncated length.
func (a Vec3[N]) Magnitude() N {
	return N(math.Sqrt(float64(a.MagnitudeSquared())))
}

// Unit returns the vector scaled to length 1.
// The zero vector has no direction; callers must not pass it.
func (a Vec3[N]) Unit() Vec3[N] {
	return a.Div(a.Magnitude())
}

// Negate returns the negated vector.
func (a Vec3[N]) Negate() Vec3[N] {
	return Vec3[N]{-a.X, -a.Y, -a.Z}
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec3[N]) Lerp(b Vec3[N], t N) Vec3[N] {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// AddAssign adds b to a in place.
func (a *Vec3[N]) AddAssign(b Vec3[N]) {
	a.X += b.X
	a.Y += b.Y
	a.Z += b.Z
}

// SubAssign subtracts b from a in place.
func (a *Vec3[N]) SubAssign(b Vec3[N]) {
	a.X -= b.X
	a.Y -= b.Y
	a.Z -= b.Z
}

// ScaleAssign multiplies a by s in place.
func (a *Vec3[N]) ScaleAssign(s N) {
	a.X *= s
	a.Y *= s
	a.Z *= s
}

// DivAssign divides a by s in place.
func (a *Vec3[N]) DivAssign(s N) {
	a.X /= s
	a.Y /= s
	a.Z /= s
}

func (a Vec3[N]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", a.X, a.Y, a.Z)
}
