package geometry

import (
	"math"
	"testing"
)

func TestVector2Distance(t *testing.T) {
	a := NewVector2(0, 0)
	b := NewVector2(3, 4)
	distance := a.Distance(b)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector2Normalized(t *testing.T) {
	unit, length := NewVector2(3, 4).Normalized()

	if math.Abs(length-5.0) > 1e-10 {
		t.Errorf("Normalized length failed: expected 5, got %v", length)
	}
	if math.Abs(unit.X-0.6) > 1e-10 || math.Abs(unit.Y-0.8) > 1e-10 {
		t.Errorf("Normalized direction failed: expected (0.6, 0.8), got %v", unit)
	}
}

func TestVector2NormalizedZero(t *testing.T) {
	unit, length := NewVector2(0, 0).Normalized()

	if unit != (Vector2{}) || length != 0 {
		t.Errorf("Normalized zero failed: expected zero vector and 0, got %v, %v", unit, length)
	}
}

func TestVector2NormalizedBelowEpsilon(t *testing.T) {
	// Vectors shorter than Epsilon2D must not be normalized
	unit, length := NewVector2(1e-5, 1e-5).Normalized()

	if unit != (Vector2{}) || length != 0 {
		t.Errorf("Normalized tiny vector failed: expected zero vector and 0, got %v, %v", unit, length)
	}
}

func TestMidpoint(t *testing.T) {
	m := Midpoint(NewVector2(0, 0), NewVector2(4, 6))

	expected := NewVector2(2, 3)
	if m != expected {
		t.Errorf("Midpoint failed: expected %v, got %v", expected, m)
	}
}

func TestVector2Translate(t *testing.T) {
	p := NewVector2(1, 1).Translate(2, -3)

	expected := NewVector2(3, -2)
	if p != expected {
		t.Errorf("Translate failed: expected %v, got %v", expected, p)
	}
}

func TestVector2Cross(t *testing.T) {
	cross := NewVector2(1, 0).Cross(NewVector2(0, 1))

	if math.Abs(cross-1.0) > 1e-10 {
		t.Errorf("Cross failed: expected 1, got %v", cross)
	}
}

func TestVector3Add(t *testing.T) {
	result := NewVector3(1, 2, 3).Add(NewVector3(4, 5, 6))

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Cross(t *testing.T) {
	result := NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0))

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Normalize(t *testing.T) {
	normalized := NewVector3(3, 4, 0).Normalize()

	if math.Abs(normalized.Length()-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected unit length, got %v", normalized.Length())
	}
}

func TestVector3NormalizeZero(t *testing.T) {
	normalized := Vector3{}.Normalize()

	if normalized != (Vector3{}) {
		t.Errorf("Normalize zero failed: expected zero vector, got %v", normalized)
	}
}

func TestCircumcircle(t *testing.T) {
	// Unit circle through three known points
	center, radius, err := Circumcircle(NewVector2(1, 0), NewVector2(0, 1), NewVector2(-1, 0))
	if err != nil {
		t.Fatalf("Circumcircle failed: %v", err)
	}

	if math.Abs(center.X) > 1e-10 || math.Abs(center.Y) > 1e-10 {
		t.Errorf("Circumcircle center failed: expected origin, got %v", center)
	}
	if math.Abs(radius-1.0) > 1e-10 {
		t.Errorf("Circumcircle radius failed: expected 1, got %v", radius)
	}
}

func TestCircumcircleCollinear(t *testing.T) {
	_, _, err := Circumcircle(NewVector2(0, 0), NewVector2(1, 1), NewVector2(2, 2))
	if err == nil {
		t.Error("Circumcircle should fail for collinear points")
	}
}
