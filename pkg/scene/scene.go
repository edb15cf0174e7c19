// Package scene holds the 3D document model: bodies built from parametric
// features, starting with a base sketch. The viewport reads and mutates a
// single Scene; persistence is a versioned JSON document.
package scene

import (
	"github.com/google/uuid"

	"github.com/gocadlabs/govcad/pkg/sketch"
)

// FeatureKind identifies a parametric operation in a body's history
type FeatureKind string

const (
	FeatureSketch  FeatureKind = "sketch"
	FeatureExtrude FeatureKind = "extrude"
	FeaturePattern FeatureKind = "pattern"
	FeatureMirror  FeatureKind = "mirror"
)

// Feature is one step in a body's build history. Sketch features carry the
// sketch itself; other kinds carry their parameters.
type Feature struct {
	ID     string         `json:"id"`
	Kind   FeatureKind    `json:"kind"`
	Sketch *sketch.Sketch `json:"sketch,omitempty"`
	Height float64        `json:"height,omitempty"`
}

// Body is a named object in the scene with an ordered feature history
type Body struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Visible  bool      `json:"visible"`
	Features []Feature `json:"features"`
}

// Scene is the whole document
type Scene struct {
	Bodies []*Body `json:"bodies"`
}

// New creates an empty scene
func New() *Scene {
	return &Scene{}
}

// NewBody creates a body containing a single sketch feature and adds it to
// the scene. Returns the new body.
func (s *Scene) NewBody(name string, sk *sketch.Sketch) *Body {
	body := &Body{
		ID:      uuid.NewString(),
		Name:    name,
		Visible: true,
		Features: []Feature{{
			ID:     uuid.NewString(),
			Kind:   FeatureSketch,
			Sketch: sk,
		}},
	}
	s.Bodies = append(s.Bodies, body)
	return body
}

// Body returns the body with the given ID
func (s *Scene) Body(id string) (*Body, bool) {
	for _, b := range s.Bodies {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// RemoveBody deletes the body with the given ID
func (s *Scene) RemoveBody(id string) bool {
	for i, b := range s.Bodies {
		if b.ID == id {
			s.Bodies = append(s.Bodies[:i], s.Bodies[i+1:]...)
			return true
		}
	}
	return false
}

// SetBodyVisible toggles a body's visibility flag
func (s *Scene) SetBodyVisible(id string, visible bool) {
	if b, ok := s.Body(id); ok {
		b.Visible = visible
	}
}

// AddFeature appends a non-sketch feature to the body's history and returns
// its ID.
func (b *Body) AddFeature(kind FeatureKind) string {
	f := Feature{ID: uuid.NewString(), Kind: kind}
	b.Features = append(b.Features, f)
	return f.ID
}

// AddSketchFeature appends a sketch feature carrying the given sketch and
// returns its ID.
func (b *Body) AddSketchFeature(sk *sketch.Sketch) string {
	f := Feature{ID: uuid.NewString(), Kind: FeatureSketch, Sketch: sk}
	b.Features = append(b.Features, f)
	return f.ID
}

// SketchFeature returns the body's sketch feature matching featureID, or its
// first sketch feature when featureID is empty.
func (b *Body) SketchFeature(featureID string) (*Feature, bool) {
	for i := range b.Features {
		f := &b.Features[i]
		if f.Kind != FeatureSketch {
			continue
		}
		if featureID == "" || f.ID == featureID {
			return f, true
		}
	}
	return nil, false
}

// HasSketchElements reports whether the body's first sketch has any elements
func (b *Body) HasSketchElements() bool {
	f, ok := b.SketchFeature("")
	return ok && f.Sketch != nil && len(f.Sketch.Elements) > 0
}
