package sketch

import (
	"github.com/google/uuid"

	"github.com/gocadlabs/govcad/pkg/geometry"
)

// ElementKind identifies the geometric type of a sketch element
type ElementKind string

const (
	KindLine      ElementKind = "line"
	KindCircle    ElementKind = "circle"
	KindArc       ElementKind = "arc"
	KindRectangle ElementKind = "rectangle"
)

// Element is a single 2D entity in a sketch. The fields used depend on Kind:
// lines and rectangles use Start/End (corner-to-corner for rectangles),
// circles and arcs use Center/Radius, arcs additionally StartAngle/EndAngle.
type Element struct {
	ID           string           `json:"id"`
	Kind         ElementKind      `json:"kind"`
	Start        geometry.Vector2 `json:"start,omitempty"`
	End          geometry.Vector2 `json:"end,omitempty"`
	Center       geometry.Vector2 `json:"center,omitempty"`
	Radius       float64          `json:"radius,omitempty"`
	StartAngle   float64          `json:"startAngle,omitempty"`
	EndAngle     float64          `json:"endAngle,omitempty"`
	Construction bool             `json:"construction,omitempty"`
}

// NewLine creates a line element between two points
func NewLine(start, end geometry.Vector2) Element {
	return Element{ID: uuid.NewString(), Kind: KindLine, Start: start, End: end}
}

// NewCircle creates a circle element
func NewCircle(center geometry.Vector2, radius float64) Element {
	return Element{ID: uuid.NewString(), Kind: KindCircle, Center: center, Radius: radius}
}

// NewArc creates an arc element from center, radius and angles in radians
func NewArc(center geometry.Vector2, radius, startAngle, endAngle float64) Element {
	return Element{
		ID:         uuid.NewString(),
		Kind:       KindArc,
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}
}

// NewRectangle creates a rectangle element from two opposite corners
func NewRectangle(corner, opposite geometry.Vector2) Element {
	return Element{ID: uuid.NewString(), Kind: KindRectangle, Start: corner, End: opposite}
}

// Midpoint returns the midpoint of a line element, or the center for
// circles and arcs.
func (e Element) Midpoint() geometry.Vector2 {
	switch e.Kind {
	case KindCircle, KindArc:
		return e.Center
	default:
		return geometry.Midpoint(e.Start, e.End)
	}
}
