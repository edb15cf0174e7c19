package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocadlabs/govcad/pkg/geometry"
)

func TestSketchEditEnterExit(t *testing.T) {
	e := NewSketchEdit()
	assert.False(t, e.Editing())

	e.Enter("body-1")
	assert.True(t, e.Editing())
	assert.Equal(t, "body-1", e.BodyID())
	assert.Empty(t, e.FeatureID())
	assert.Equal(t, ToolSelect, e.Tool())

	e.Exit()
	assert.False(t, e.Editing())
	assert.Empty(t, e.BodyID())
}

func TestSketchEditEnterFeature(t *testing.T) {
	e := NewSketchEdit()
	e.EnterFeature("body-1", "feat-7")
	assert.Equal(t, "feat-7", e.FeatureID())
}

func TestSketchEditEnterResetsDrawing(t *testing.T) {
	e := NewSketchEdit()
	e.Enter("body-1")
	e.SetTool(ToolLine)
	e.AddPoint(geometry.NewVector2(1, 2))
	p := geometry.NewVector2(3, 4)
	e.SetPreview(&p)

	e.Enter("body-2")
	assert.Empty(t, e.Points())
	assert.Equal(t, ToolSelect, e.Tool())
	_, ok := e.Preview()
	assert.False(t, ok)
}

func TestSketchEditToolChangeClearsDrawing(t *testing.T) {
	e := NewSketchEdit()
	e.Enter("body-1")
	e.SetTool(ToolArc)
	e.AddPoint(geometry.NewVector2(0, 0))
	e.AddPoint(geometry.NewVector2(1, 0))

	e.SetTool(ToolCircle)
	assert.Empty(t, e.Points())
	assert.Equal(t, ToolCircle, e.Tool())
}

func TestSketchEditReadyToFinalize(t *testing.T) {
	e := NewSketchEdit()
	e.Enter("body-1")

	e.SetTool(ToolLine)
	e.AddPoint(geometry.NewVector2(0, 0))
	assert.False(t, e.ReadyToFinalize())
	e.AddPoint(geometry.NewVector2(5, 0))
	assert.True(t, e.ReadyToFinalize())

	e.SetTool(ToolArc)
	e.AddPoint(geometry.NewVector2(0, 0))
	e.AddPoint(geometry.NewVector2(1, 1))
	assert.False(t, e.ReadyToFinalize())
	e.AddPoint(geometry.NewVector2(2, 0))
	assert.True(t, e.ReadyToFinalize())

	e.SetTool(ToolSelect)
	e.AddPoint(geometry.NewVector2(0, 0))
	assert.False(t, e.ReadyToFinalize(), "select tool never finalizes an element")
}

func TestSketchEditClearDrawingKeepsMode(t *testing.T) {
	e := NewSketchEdit()
	e.Enter("body-1")
	e.SetTool(ToolRectangle)
	e.AddPoint(geometry.NewVector2(0, 0))

	e.ClearDrawing()
	assert.True(t, e.Editing())
	assert.Equal(t, ToolRectangle, e.Tool())
	assert.Empty(t, e.Points())
}

func TestSketchEditPreview(t *testing.T) {
	e := NewSketchEdit()
	e.Enter("body-1")

	p := geometry.NewVector2(2.5, -1)
	e.SetPreview(&p)
	got, ok := e.Preview()
	require.True(t, ok)
	assert.Equal(t, p, got)

	e.SetPreview(nil)
	_, ok = e.Preview()
	assert.False(t, ok)
}

func TestToolClassification(t *testing.T) {
	assert.True(t, ToolMirror.IsModification())
	assert.True(t, ToolLinearPattern.IsModification())
	assert.False(t, ToolLine.IsModification())
	assert.False(t, ToolSelect.IsModification())

	assert.Equal(t, 2, ToolLine.RequiredPoints())
	assert.Equal(t, 3, ToolArc.RequiredPoints())
	assert.Zero(t, ToolSelect.RequiredPoints())
}
