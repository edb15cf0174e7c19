package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocadlabs/govcad/pkg/geometry"
)

func TestFaceSelectionStart(t *testing.T) {
	fs := NewFaceSelection()
	assert.False(t, fs.Active())
	assert.Equal(t, FaceIdle, fs.Phase())

	fs.Start()
	assert.True(t, fs.Active())
	assert.Equal(t, FaceSelecting, fs.Phase())
	_, ok := fs.Hovered()
	assert.False(t, ok, "fresh mode must not carry a hovered face")
}

func TestFaceSelectionHoverLastWriteWins(t *testing.T) {
	fs := NewFaceSelection()
	fs.Start()

	fs.SetHovered(&SelectedFace{BodyID: "a", FaceType: FaceTop, Plane: geometry.PlaneXY})
	fs.SetHovered(&SelectedFace{BodyID: "b", FaceType: FaceSide, Plane: geometry.PlaneXZ})

	face, ok := fs.Hovered()
	require.True(t, ok)
	assert.Equal(t, "b", face.BodyID)
	assert.Equal(t, FaceSide, face.FaceType)

	fs.SetHovered(nil)
	_, ok = fs.Hovered()
	assert.False(t, ok)
}

func TestFaceSelectionHoverIgnoredWhenIdle(t *testing.T) {
	fs := NewFaceSelection()
	fs.SetHovered(&SelectedFace{BodyID: "a"})
	_, ok := fs.Hovered()
	assert.False(t, ok)
}

func TestFaceSelectionSelectKeepsModeActive(t *testing.T) {
	fs := NewFaceSelection()
	fs.Start()
	fs.Select(SelectedFace{BodyID: "a", Plane: geometry.PlaneYZ, Offset: 5})

	assert.True(t, fs.Active(), "commit must not end the mode")
	assert.Equal(t, FaceCommitted, fs.Phase())

	face, ok := fs.TakeCommitted()
	require.True(t, ok)
	assert.Equal(t, "a", face.BodyID)
	assert.Equal(t, geometry.PlaneYZ, face.Plane)
	assert.Equal(t, 5.0, face.Offset)

	fs.Exit()
	assert.False(t, fs.Active())
	_, ok = fs.TakeCommitted()
	assert.False(t, ok)
}

func TestFaceSelectionSelectIgnoredWhenIdle(t *testing.T) {
	fs := NewFaceSelection()
	fs.Select(SelectedFace{BodyID: "a"})
	assert.Equal(t, FaceIdle, fs.Phase())
	_, ok := fs.TakeCommitted()
	assert.False(t, ok)
}

func TestFaceSelectionExitClearsEverything(t *testing.T) {
	fs := NewFaceSelection()
	fs.Start()
	fs.SetHovered(&SelectedFace{BodyID: "a"})
	fs.Exit()

	assert.Equal(t, FaceIdle, fs.Phase())
	_, ok := fs.Hovered()
	assert.False(t, ok)

	// Re-entering starts clean.
	fs.Start()
	_, ok = fs.Hovered()
	assert.False(t, ok)
}

func TestFaceSelectionRestartResetsCommitment(t *testing.T) {
	fs := NewFaceSelection()
	fs.Start()
	fs.Select(SelectedFace{BodyID: "a"})
	fs.Start()

	assert.Equal(t, FaceSelecting, fs.Phase())
	_, ok := fs.TakeCommitted()
	assert.False(t, ok)
}

func TestFacePhaseString(t *testing.T) {
	assert.Equal(t, "idle", FaceIdle.String())
	assert.Equal(t, "selecting", FaceSelecting.String())
	assert.Equal(t, "committed", FaceCommitted.String())
}
