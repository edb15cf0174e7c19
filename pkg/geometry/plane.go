package geometry

import "fmt"

// SketchPlane identifies one of the three axis-aligned planes a sketch can be
// attached to. The plane plus an offset along its normal fully locates the
// 2D sketch coordinate system in world space.
type SketchPlane int

const (
	// PlaneXY has normal +Z; sketch (u, v) maps to world (u, v, offset).
	PlaneXY SketchPlane = iota
	// PlaneXZ has normal +Y; sketch (u, v) maps to world (u, offset, v).
	PlaneXZ
	// PlaneYZ has normal +X; sketch (u, v) maps to world (offset, u, v).
	PlaneYZ
)

// String returns the conventional plane name
func (p SketchPlane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneXZ:
		return "XZ"
	case PlaneYZ:
		return "YZ"
	default:
		return "unknown"
	}
}

// ParsePlane converts a plane name ("XY", "XZ", "YZ") to a SketchPlane
func ParsePlane(name string) (SketchPlane, error) {
	switch name {
	case "XY", "xy":
		return PlaneXY, nil
	case "XZ", "xz":
		return PlaneXZ, nil
	case "YZ", "yz":
		return PlaneYZ, nil
	default:
		return PlaneXY, fmt.Errorf("unknown sketch plane: %q", name)
	}
}

// Normal returns the plane's unit normal in world space
func (p SketchPlane) Normal() Vector3 {
	switch p {
	case PlaneXZ:
		return Vector3{Y: 1}
	case PlaneYZ:
		return Vector3{X: 1}
	default:
		return Vector3{Z: 1}
	}
}

// ToWorld maps a 2D sketch point to world space for a sketch on this plane
// at the given offset along the normal. It is the exact inverse of FromWorld.
func (p SketchPlane) ToWorld(pt Vector2, offset float64) Vector3 {
	switch p {
	case PlaneXZ:
		return Vector3{X: pt.X, Y: offset, Z: pt.Y}
	case PlaneYZ:
		return Vector3{X: offset, Y: pt.X, Z: pt.Y}
	default:
		return Vector3{X: pt.X, Y: pt.Y, Z: offset}
	}
}

// FromWorld maps a world-space point back to 2D sketch coordinates plus the
// offset along the plane normal. It is the exact inverse of ToWorld.
func (p SketchPlane) FromWorld(w Vector3) (Vector2, float64) {
	switch p {
	case PlaneXZ:
		return Vector2{X: w.X, Y: w.Z}, w.Y
	case PlaneYZ:
		return Vector2{X: w.Y, Y: w.Z}, w.X
	default:
		return Vector2{X: w.X, Y: w.Y}, w.Z
	}
}

// PlaneFromNormal classifies a face normal to the sketch plane it is most
// aligned with and returns the offset of the given point along that plane's
// normal. Faces at odd angles snap to the dominant axis.
func PlaneFromNormal(normal, point Vector3) (SketchPlane, float64) {
	a := normal.Abs()
	if a.Z >= a.X && a.Z >= a.Y {
		return PlaneXY, point.Z
	}
	if a.Y >= a.X && a.Y >= a.Z {
		return PlaneXZ, point.Y
	}
	return PlaneYZ, point.X
}

// FaceCoordSystem is an orthonormal 2D basis anchored on a 3D face, used to
// express sketch coordinates directly on that face.
type FaceCoordSystem struct {
	Origin Vector3
	U      Vector3
	V      Vector3
	Normal Vector3
}

// NewFaceCoordSystem builds a right-handed basis from a face origin and
// normal. The U axis is chosen perpendicular to the normal and to whichever
// world axis the normal is least aligned with, keeping the basis stable.
func NewFaceCoordSystem(origin, normal Vector3) FaceCoordSystem {
	n := normal.Normalize()
	ref := Vector3{Z: 1}
	a := n.Abs()
	if a.Z >= a.X && a.Z >= a.Y {
		ref = Vector3{X: 1}
	}
	u := ref.Cross(n).Normalize()
	v := n.Cross(u)
	return FaceCoordSystem{Origin: origin, U: u, V: v, Normal: n}
}

// World maps face-local (u, v) coordinates to world space
func (f FaceCoordSystem) World(u, v float64) Vector3 {
	return f.Origin.Add(f.U.Mul(u)).Add(f.V.Mul(v))
}

// Local maps a world-space point to face-local (u, v) coordinates.
// Inverse of World for points on the face plane.
func (f FaceCoordSystem) Local(p Vector3) Vector2 {
	d := p.Sub(f.Origin)
	return Vector2{X: d.Dot(f.U), Y: d.Dot(f.V)}
}
