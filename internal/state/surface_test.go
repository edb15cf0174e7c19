package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocadlabs/govcad/pkg/sketch"
)

func TestSurfaceOpenDialogReplacesPrevious(t *testing.T) {
	s := NewUISurface()
	s.OpenDialog(SurfaceOffsetDialog, "el-1")
	s.OpenDialog(SurfaceMirrorDialog, "el-2")

	assert.Equal(t, SurfaceMirrorDialog, s.Active())
	id, ok := s.Element()
	require.True(t, ok)
	assert.Equal(t, "el-2", id)
}

func TestSurfaceCloseClearsElement(t *testing.T) {
	s := NewUISurface()
	s.OpenDialog(SurfaceLinearPatternDialog, "el-1")
	s.Close()

	assert.Equal(t, SurfaceNone, s.Active())
	_, ok := s.Element()
	assert.False(t, ok)
}

func TestSurfaceRejectsNonDialogKinds(t *testing.T) {
	s := NewUISurface()
	s.OpenDialog(SurfaceViewportMenu, "el-1")
	assert.Equal(t, SurfaceNone, s.Active())

	s.OpenDialog(SurfaceNone, "el-1")
	assert.Equal(t, SurfaceNone, s.Active())
}

func TestSurfaceConstraintTwoStepFlow(t *testing.T) {
	s := NewUISurface()
	s.OpenConstraintDialog("el-1", sketch.KindLine, sketch.ConstraintParallel)

	c, ok := s.Constraint()
	require.True(t, ok)
	assert.True(t, c.NeedsSecond)
	_, ok = s.ConstraintCommand()
	assert.False(t, ok, "command must not exist before the second element")

	s.SetSecondElement("el-2")
	cmd, ok := s.ConstraintCommand()
	require.True(t, ok)
	assert.Equal(t, sketch.ConstraintParallel, cmd.Type)
	assert.Equal(t, "el-1", cmd.ElementID)
	assert.Equal(t, "el-2", cmd.SecondElementID)
}

func TestSurfaceSecondElementIgnoredWhenSatisfied(t *testing.T) {
	s := NewUISurface()
	s.OpenConstraintDialog("el-1", sketch.KindLine, sketch.ConstraintEqual)
	s.SetSecondElement("el-2")
	s.SetSecondElement("el-3")

	cmd, ok := s.ConstraintCommand()
	require.True(t, ok)
	assert.Equal(t, "el-2", cmd.SecondElementID)
}

func TestSurfaceSecondElementIgnoredWithoutDialog(t *testing.T) {
	s := NewUISurface()
	s.SetSecondElement("el-2")
	_, ok := s.Constraint()
	assert.False(t, ok)
}

func TestSurfaceToolsMenu(t *testing.T) {
	s := NewUISurface()
	s.OpenToolsMenu(120, 80, "el-1")

	assert.Equal(t, SurfaceToolsMenu, s.Active())
	x, y := s.MenuPosition()
	assert.Equal(t, 120.0, x)
	assert.Equal(t, 80.0, y)

	// A dialog open replaces the menu and its position.
	s.OpenDialog(SurfaceOffsetDialog, "el-2")
	assert.Equal(t, SurfaceOffsetDialog, s.Active())
	x, y = s.MenuPosition()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestSurfaceKindString(t *testing.T) {
	assert.Equal(t, "none", SurfaceNone.String())
	assert.Equal(t, "mirror-dialog", SurfaceMirrorDialog.String())
	assert.Equal(t, "viewport-menu", SurfaceViewportMenu.String())
}
