package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocadlabs/govcad/pkg/geometry"
	"github.com/gocadlabs/govcad/pkg/sketch"
)

func TestNewBodyHasSketchFeature(t *testing.T) {
	s := New()
	body := s.NewBody("Body 1", sketch.New(geometry.PlaneXY, 0))

	f, ok := body.SketchFeature("")
	require.True(t, ok)
	assert.Equal(t, FeatureSketch, f.Kind)
	assert.NotNil(t, f.Sketch)
	assert.True(t, body.Visible)
}

func TestBodyLookupAndRemove(t *testing.T) {
	s := New()
	body := s.NewBody("Body 1", sketch.New(geometry.PlaneXY, 0))

	got, ok := s.Body(body.ID)
	require.True(t, ok)
	assert.Equal(t, body, got)

	assert.True(t, s.RemoveBody(body.ID))
	assert.False(t, s.RemoveBody(body.ID))
	assert.Empty(t, s.Bodies)
}

func TestSetBodyVisible(t *testing.T) {
	s := New()
	body := s.NewBody("Body 1", sketch.New(geometry.PlaneXY, 0))

	s.SetBodyVisible(body.ID, false)
	assert.False(t, body.Visible)
}

func TestHasSketchElements(t *testing.T) {
	sk := sketch.New(geometry.PlaneXY, 0)
	s := New()
	body := s.NewBody("Body 1", sk)
	assert.False(t, body.HasSketchElements())

	sk.AddElement(sketch.NewCircle(geometry.NewVector2(0, 0), 1))
	assert.True(t, body.HasSketchElements())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	sk := sketch.New(geometry.PlaneXZ, 1.5)
	lineID := sk.AddElement(sketch.NewLine(geometry.NewVector2(0, 0), geometry.NewVector2(2, 0)))
	sk.AddElement(sketch.NewArc(geometry.NewVector2(1, 1), 0.5, 0, 1.5))
	sk.SetSymmetryAxis(lineID)

	s := New()
	s.NewBody("Plate", sk)

	path := filepath.Join(t.TempDir(), "plate.vcad.json")
	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Bodies, 1)

	body := loaded.Bodies[0]
	assert.Equal(t, "Plate", body.Name)

	f, ok := body.SketchFeature("")
	require.True(t, ok)
	assert.Equal(t, geometry.PlaneXZ, f.Sketch.Plane)
	assert.Equal(t, 1.5, f.Sketch.Offset)
	assert.Len(t, f.Sketch.Elements, 2)
	assert.Equal(t, lineID, f.Sketch.SymmetryAxisID)
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.vcad.json")
	require.NoError(t, writeFile(path, `{"version":"99","bodies":[]}`))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.vcad.json"))
	assert.Error(t, err)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
