// Package sketch defines the 2D sketch document model: elements drawn on an
// axis-aligned plane attached to a body, plus the command payloads the UI
// emits for sketch operations.
package sketch

import (
	"math"

	"github.com/google/uuid"

	"github.com/gocadlabs/govcad/pkg/geometry"
)

// Sketch is a 2D drawing on a plane at an offset along the plane's normal.
// SymmetryAxisID optionally designates a line element usable as mirror axis.
type Sketch struct {
	ID             string               `json:"id"`
	Plane          geometry.SketchPlane `json:"plane"`
	Offset         float64              `json:"offset"`
	Elements       []Element            `json:"elements"`
	SymmetryAxisID string               `json:"symmetryAxisId,omitempty"`
}

// New creates an empty sketch on the given plane
func New(plane geometry.SketchPlane, offset float64) *Sketch {
	return &Sketch{ID: uuid.NewString(), Plane: plane, Offset: offset}
}

// AddElement appends an element and returns its ID
func (s *Sketch) AddElement(e Element) string {
	s.Elements = append(s.Elements, e)
	return e.ID
}

// ElementByID returns the element with the given ID
func (s *Sketch) ElementByID(id string) (Element, bool) {
	for _, e := range s.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}

// RemoveElement deletes the element with the given ID. Clearing the
// designated symmetry axis also clears SymmetryAxisID.
func (s *Sketch) RemoveElement(id string) bool {
	for i, e := range s.Elements {
		if e.ID == id {
			s.Elements = append(s.Elements[:i], s.Elements[i+1:]...)
			if s.SymmetryAxisID == id {
				s.SymmetryAxisID = ""
			}
			return true
		}
	}
	return false
}

// SymmetryAxis resolves the designated symmetry-axis element. Only line
// elements qualify; a dangling or non-line reference reports false.
func (s *Sketch) SymmetryAxis() (Element, bool) {
	if s.SymmetryAxisID == "" {
		return Element{}, false
	}
	e, ok := s.ElementByID(s.SymmetryAxisID)
	if !ok || e.Kind != KindLine {
		return Element{}, false
	}
	return e, true
}

// SetSymmetryAxis designates a line element as the sketch's symmetry axis
func (s *Sketch) SetSymmetryAxis(id string) bool {
	e, ok := s.ElementByID(id)
	if !ok || e.Kind != KindLine {
		return false
	}
	s.SymmetryAxisID = id
	return true
}

// WorldPoint maps a 2D sketch point into world space
func (s *Sketch) WorldPoint(p geometry.Vector2) geometry.Vector3 {
	return s.Plane.ToWorld(p, s.Offset)
}

// Bounds returns the axis-aligned 2D extent of all elements. The second
// return is false for an empty sketch.
func (s *Sketch) Bounds() (min, max geometry.Vector2, ok bool) {
	if len(s.Elements) == 0 {
		return geometry.Vector2{}, geometry.Vector2{}, false
	}
	first := true
	extend := func(p geometry.Vector2) {
		if first {
			min, max = p, p
			first = false
			return
		}
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	for _, e := range s.Elements {
		switch e.Kind {
		case KindCircle, KindArc:
			extend(geometry.NewVector2(e.Center.X-e.Radius, e.Center.Y-e.Radius))
			extend(geometry.NewVector2(e.Center.X+e.Radius, e.Center.Y+e.Radius))
		default:
			extend(e.Start)
			extend(e.End)
		}
	}
	return min, max, true
}
