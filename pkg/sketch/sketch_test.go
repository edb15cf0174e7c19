package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gocadlabs/govcad/pkg/geometry"
)

func TestElementLookup(t *testing.T) {
	s := New(geometry.PlaneXY, 0)
	id := s.AddElement(NewLine(geometry.NewVector2(0, 0), geometry.NewVector2(1, 0)))

	e, ok := s.ElementByID(id)
	assert.True(t, ok)
	assert.Equal(t, KindLine, e.Kind)

	_, ok = s.ElementByID("missing")
	assert.False(t, ok)
}

func TestSymmetryAxisOnlyLines(t *testing.T) {
	s := New(geometry.PlaneXY, 0)
	lineID := s.AddElement(NewLine(geometry.NewVector2(0, -1), geometry.NewVector2(0, 1)))
	circleID := s.AddElement(NewCircle(geometry.NewVector2(1, 1), 0.5))

	assert.False(t, s.SetSymmetryAxis(circleID))
	assert.True(t, s.SetSymmetryAxis(lineID))

	axis, ok := s.SymmetryAxis()
	assert.True(t, ok)
	assert.Equal(t, lineID, axis.ID)
}

func TestRemoveElementClearsSymmetryAxis(t *testing.T) {
	s := New(geometry.PlaneXY, 0)
	lineID := s.AddElement(NewLine(geometry.NewVector2(0, -1), geometry.NewVector2(0, 1)))
	s.SetSymmetryAxis(lineID)

	assert.True(t, s.RemoveElement(lineID))
	assert.Empty(t, s.SymmetryAxisID)

	_, ok := s.SymmetryAxis()
	assert.False(t, ok)
}

func TestWorldPoint(t *testing.T) {
	s := New(geometry.PlaneXZ, 2)
	w := s.WorldPoint(geometry.NewVector2(3, 4))
	assert.Equal(t, geometry.NewVector3(3, 2, 4), w)
}

func TestBounds(t *testing.T) {
	s := New(geometry.PlaneXY, 0)
	_, _, ok := s.Bounds()
	assert.False(t, ok)

	s.AddElement(NewLine(geometry.NewVector2(-1, 2), geometry.NewVector2(4, 3)))
	s.AddElement(NewCircle(geometry.NewVector2(0, 0), 2))

	min, max, ok := s.Bounds()
	assert.True(t, ok)
	assert.Equal(t, geometry.NewVector2(-2, -2), min)
	assert.Equal(t, geometry.NewVector2(4, 3), max)
}

func TestElementIDsUnique(t *testing.T) {
	a := NewCircle(geometry.NewVector2(0, 0), 1)
	b := NewCircle(geometry.NewVector2(0, 0), 1)
	assert.NotEqual(t, a.ID, b.ID)
}
