package geometry

import (
	"fmt"
	"math"
)

// Circumcircle calculates the circle passing through three 2D points using
// the determinant formula:
//
//	D = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//	cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//	cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
//
// Used by the arc tool to derive center and radius from three clicked sketch
// points. Returns an error when the points are collinear.
func Circumcircle(p1, p2, p3 Vector2) (Vector2, float64, error) {
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	x3, y3 := p3.X, p3.Y

	d := 2.0 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(d) < 1e-10 {
		return Vector2{}, 0, fmt.Errorf("points are collinear")
	}

	s1 := x1*x1 + y1*y1
	s2 := x2*x2 + y2*y2
	s3 := x3*x3 + y3*y3

	center := Vector2{
		X: (s1*(y2-y3) + s2*(y3-y1) + s3*(y1-y2)) / d,
		Y: (s1*(x3-x2) + s2*(x1-x3) + s3*(x2-x1)) / d,
	}
	return center, center.Distance(p1), nil
}

// ArcAngles returns the start and end angles (radians) of an arc centered at
// center, starting at from and ending at to.
func ArcAngles(center, from, to Vector2) (float64, float64) {
	start := math.Atan2(from.Y-center.Y, from.X-center.X)
	end := math.Atan2(to.Y-center.Y, to.X-center.X)
	return start, end
}
