package math3d

// Ray is a half-line starting at an origin and extending along a direction.
// The direction is not required to be a unit vector.
type Ray[N Number] struct {
	origin    Point[N]
	direction Vec3[N]
}

// NewRay creates a ray from origin along direction.
func NewRay[N Number](origin Point[N], direction Vec3[N]) Ray[N] {
	return Ray[N]{origin: origin, direction: direction}
}

// Origin returns the starting point of the ray.
func (r Ray[N]) Origin() Point[N] {
	return r.origin
}

// Direction returns the direction of the ray.
func (r Ray[N]) Direction() Vec3[N] {
	return r.direction
}

// At returns the point origin + direction*t.
// Negative t gives points behind the origin.
func (r Ray[N]) At(t N) Point[N] {
	return r.origin.Add(r.direction.Scale(t))
}
