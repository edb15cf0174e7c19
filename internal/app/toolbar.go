package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/gocadlabs/govcad/internal/notify"
	"github.com/gocadlabs/govcad/internal/state"
	"github.com/gocadlabs/govcad/pkg/geometry"
	"github.com/gocadlabs/govcad/pkg/sketch"
)

var drawingTools = []state.Tool{
	state.ToolSelect,
	state.ToolLine,
	state.ToolCircle,
	state.ToolArc,
	state.ToolRectangle,
}

// toolbarButton draws one button and reports whether it was clicked
func (app *App) toolbarButton(bounds rl.Rectangle, label string, active bool) bool {
	mouse := app.Interaction.lastMousePos
	hovered := rl.CheckCollisionPointRec(mouse, bounds)

	bg := rl.NewColor(40, 45, 60, 230)
	if active {
		bg = rl.NewColor(70, 110, 170, 240)
	} else if hovered {
		bg = rl.NewColor(55, 62, 82, 240)
	}
	rl.DrawRectangleRounded(bounds, 0.2, 4, bg)

	textW := rl.MeasureText(label, 12)
	rl.DrawText(label,
		int32(bounds.X+(bounds.Width-float32(textW))/2),
		int32(bounds.Y+(bounds.Height-12)/2),
		12, rl.RayWhite)

	return hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// drawToolbar draws the left-hand toolbar. Outside sketch editing it offers
// scene-level actions; inside it shows the drawing tools and the operation
// launchers.
func (app *App) drawToolbar() {
	x := float32(12)
	y := float32(16)
	w := float32(84)
	h := float32(26)
	gap := float32(6)

	startY := y
	if !app.Stores.SketchEdit.Editing() {
		if app.toolbarButton(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, "Sketch", app.Stores.Faces.Active()) {
			if app.Stores.Faces.Active() {
				app.Stores.Faces.Exit()
			} else if len(app.Scene.Bodies) == 0 {
				app.newBaseSketch()
			} else {
				app.Stores.Faces.Start()
			}
		}
		y += h + gap
		if app.toolbarButton(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, "New Body", false) {
			app.newBaseSketch()
		}
		y += h + gap
		if app.toolbarButton(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, "Save", false) {
			app.saveScene()
		}
		y += h + gap
	} else {
		for _, tool := range drawingTools {
			if app.toolbarButton(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, tool.Label(), app.Stores.SketchEdit.Tool() == tool) {
				app.Stores.SketchEdit.SetTool(tool)
			}
			y += h + gap
		}
		y += gap

		// Operation launchers act on the selected element
		type launcher struct {
			label string
			kind  state.SurfaceKind
		}
		for _, l := range []launcher{
			{"Offset", state.SurfaceOffsetDialog},
			{"Mirror", state.SurfaceMirrorDialog},
			{"Pattern", state.SurfaceLinearPatternDialog},
			{"C-Pattern", state.SurfaceCircularPatternDialog},
		} {
			if app.toolbarButton(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, l.label, app.Stores.Surface.Active() == l.kind) {
				app.openOperationDialog(l.kind)
			}
			y += h + gap
		}
		if app.toolbarButton(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, "Parallel", app.Stores.Surface.Active() == state.SurfaceConstraintDialog) {
			app.openConstraintFlow()
		}
		y += h + gap
		y += gap
		if app.toolbarButton(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, "Done", false) {
			app.Stores.SketchEdit.Exit()
		}
		y += h + gap
	}

	app.UI.toolbarBounds = rl.Rectangle{X: x - 6, Y: startY - 6, Width: w + 12, Height: y - startY + 6}
}

// newBaseSketch creates a body with an empty sketch on the ground plane and
// enters edit mode.
func (app *App) newBaseSketch() {
	sk := sketch.New(app.defaultPlane(), 0)
	body := app.Scene.NewBody("Body", sk)
	app.Stores.SketchEdit.Enter(body.ID)
	app.Stores.Selection.Select(body.ID)
	app.Stores.Notifications.Show("New sketch started", notify.Info)
}

// defaultPlane is the ground plane new base sketches start on
func (app *App) defaultPlane() geometry.SketchPlane {
	return geometry.PlaneXZ
}

// openConstraintFlow starts the two-step constraint selection on the
// selected element; the second element is picked in the viewport.
func (app *App) openConstraintFlow() {
	_, sk, ok := app.editedSketch()
	if !ok {
		return
	}
	idx, hasElement := app.Stores.Selection.Element()
	if !hasElement || idx >= len(sk.Elements) {
		app.Stores.Notifications.Show("Select an element first", notify.Warning)
		return
	}
	element := sk.Elements[idx]
	app.Stores.Surface.OpenConstraintDialog(element.ID, element.Kind, sketch.ConstraintParallel)
}

// openOperationDialog opens the dialog for the selected element
func (app *App) openOperationDialog(kind state.SurfaceKind) {
	_, sk, ok := app.editedSketch()
	if !ok {
		return
	}
	idx, hasElement := app.Stores.Selection.Element()
	if !hasElement || idx >= len(sk.Elements) {
		app.Stores.Notifications.Show("Select an element first", notify.Warning)
		return
	}
	element := sk.Elements[idx]

	app.Stores.Surface.OpenDialog(kind, element.ID)
	app.UI.focusedField = 0
	switch kind {
	case state.SurfaceOffsetDialog:
		app.Dialogs.Offset.Open(element.ID)
	case state.SurfaceMirrorDialog:
		var axis *sketch.Element
		if a, ok := sk.SymmetryAxis(); ok {
			axis = &a
		}
		app.Dialogs.Mirror.Open(element.ID, axis)
	case state.SurfaceLinearPatternDialog:
		app.Dialogs.LinearPattern.Open(element.ID)
	case state.SurfaceCircularPatternDialog:
		app.Dialogs.CircularPattern.Open(element.ID)
	}
}
