package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocadlabs/govcad/pkg/geometry"
)

func TestViewportMenuOpenClose(t *testing.T) {
	surface := NewUISurface()
	menu := NewViewportMenu(surface)
	assert.False(t, menu.Visible())

	menu.Open(200, 150, "body-1", nil)
	assert.True(t, menu.Visible())
	x, y := menu.Position()
	assert.Equal(t, 200.0, x)
	assert.Equal(t, 150.0, y)
	assert.Equal(t, "body-1", menu.BodyID())

	menu.Close()
	assert.False(t, menu.Visible())
	assert.Empty(t, menu.BodyID())
	assert.Equal(t, SurfaceNone, surface.Active())
}

func TestViewportMenuOpenReplacesOpen(t *testing.T) {
	surface := NewUISurface()
	menu := NewViewportMenu(surface)

	menu.Open(10, 10, "body-1", &FaceInfo{BodyID: "body-1", Plane: geometry.PlaneXY})
	menu.Open(300, 40, "body-2", nil)

	assert.True(t, menu.Visible())
	assert.Equal(t, "body-2", menu.BodyID())
	x, y := menu.Position()
	assert.Equal(t, 300.0, x)
	assert.Equal(t, 40.0, y)
	_, ok := menu.Face()
	assert.False(t, ok, "face info from the replaced menu must not survive")
}

func TestViewportMenuFaceInfo(t *testing.T) {
	surface := NewUISurface()
	menu := NewViewportMenu(surface)

	info := &FaceInfo{
		BodyID: "body-1",
		Plane:  geometry.PlaneXZ,
		Offset: 12,
	}
	menu.Open(0, 0, "body-1", info)

	face, ok := menu.Face()
	require.True(t, ok)
	assert.Equal(t, geometry.PlaneXZ, face.Plane)
	assert.Equal(t, 12.0, face.Offset)
}

func TestViewportMenuSharesSurfaceWithDialogs(t *testing.T) {
	surface := NewUISurface()
	menu := NewViewportMenu(surface)

	menu.Open(50, 50, "body-1", nil)
	assert.Equal(t, SurfaceViewportMenu, surface.Active())

	// Opening a dialog takes over the surface; the menu is no longer visible.
	surface.OpenDialog(SurfaceLinearPatternDialog, "el-1")
	assert.False(t, menu.Visible())
	_, ok := menu.Face()
	assert.False(t, ok)

	// Closing the menu now must not disturb the dialog.
	menu.Close()
	assert.Equal(t, SurfaceLinearPatternDialog, surface.Active())
}
