package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/gocadlabs/govcad/internal/notify"
	"github.com/gocadlabs/govcad/internal/state"
	"github.com/gocadlabs/govcad/pkg/geometry"
	"github.com/gocadlabs/govcad/pkg/sketch"
)

func isDialogSurface(kind state.SurfaceKind) bool {
	switch kind {
	case state.SurfaceOffsetDialog, state.SurfaceMirrorDialog,
		state.SurfaceLinearPatternDialog, state.SurfaceCircularPatternDialog,
		state.SurfaceConstraintDialog:
		return true
	default:
		return false
	}
}

// pointerOverUI reports whether the mouse is over any 2D panel whose bounds
// were stored during the previous frame's draw.
func (app *App) pointerOverUI(pos rl.Vector2) bool {
	if rl.CheckCollisionPointRec(pos, app.UI.toolbarBounds) {
		return true
	}
	if isDialogSurface(app.Stores.Surface.Active()) && rl.CheckCollisionPointRec(pos, app.UI.dialogBounds) {
		return true
	}
	if app.Stores.Menu.Visible() && rl.CheckCollisionPointRec(pos, app.UI.menuBounds) {
		return true
	}
	for _, b := range app.ViewCube.faceBounds {
		if rl.CheckCollisionPointRec(pos, b) {
			return true
		}
	}
	return false
}

// handleInput processes user input for one frame
func (app *App) handleInput() {
	app.Interaction.lastMousePos = rl.GetMousePosition()
	mouse := app.Interaction.lastMousePos

	dialogOpen := isDialogSurface(app.Stores.Surface.Active())

	// Keyboard shortcuts are suppressed while a dialog captures text input
	if !dialogOpen {
		if rl.IsKeyPressed(rl.KeyHome) {
			app.resetCameraView()
		}
		if rl.IsKeyPressed(rl.KeyT) {
			app.setCameraTopView()
		}
		if rl.IsKeyPressed(rl.KeyB) {
			app.setCameraBottomView()
		}
		if rl.IsKeyPressed(rl.KeyOne) {
			app.setCameraFrontView()
		}
		if rl.IsKeyPressed(rl.KeyTwo) {
			app.setCameraBackView()
		}
		if rl.IsKeyPressed(rl.KeyThree) {
			app.setCameraLeftView()
		}
		if rl.IsKeyPressed(rl.KeyFour) {
			app.setCameraRightView()
		}
		if rl.IsKeyPressed(rl.KeyG) {
			app.View.showGrid = !app.View.showGrid
		}
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyS) {
			app.saveScene()
		}
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		app.handleEscape()
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !app.pointerOverUI(mouse) {
		app.doZoom(wheel)
	}

	// Track mouse down for click vs drag detection
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.mouseDownPos = mouse
		app.Interaction.mouseMoved = false
		shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		app.Interaction.isPanning = shiftPressed
	}

	// Camera panning with Shift + drag or middle mouse drag
	if (rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.isPanning) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.Interaction.mouseMoved = true
			app.doPan(delta)
		}
	} else if rl.IsMouseButtonDown(rl.MouseLeftButton) && !app.pointerOverUI(app.Interaction.mouseDownPos) {
		// Camera rotation with mouse drag
		delta := rl.GetMouseDelta()
		if math.Abs(float64(delta.X)) > 1.0 || math.Abs(float64(delta.Y)) > 1.0 {
			app.Interaction.mouseMoved = true
		}
		if delta.X != 0 || delta.Y != 0 {
			app.Camera.angleY += delta.X * 0.01
			app.Camera.angleX -= delta.Y * 0.01

			// Clamp vertical rotation
			if app.Camera.angleX > 1.5 {
				app.Camera.angleX = 1.5
			}
			if app.Camera.angleX < -1.5 {
				app.Camera.angleX = -1.5
			}
		}
	}

	app.updateHover(mouse)

	// Right click: viewport context menu
	if rl.IsMouseButtonPressed(rl.MouseRightButton) && !app.pointerOverUI(mouse) {
		if hit, ok := app.pickFace(mouse); ok {
			app.Stores.Menu.Open(float64(mouse.X), float64(mouse.Y), hit.face.BodyID, faceInfoFor(hit))
		} else {
			app.Stores.Menu.Close()
		}
	}

	// Click actions (release without drag)
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		dragDistance := rl.Vector2Distance(app.Interaction.mouseDownPos, mouse)
		isClick := !app.Interaction.mouseMoved && !app.Interaction.isPanning && dragDistance < 5.0
		app.Interaction.isPanning = false
		if isClick && !app.pointerOverUI(mouse) {
			app.handleViewportClick(mouse)
		}
	}
}

// updateHover refreshes per-frame hover state: the face-selection candidate
// and the sketch drawing preview point.
func (app *App) updateHover(mouse rl.Vector2) {
	if app.Stores.Faces.Phase() == state.FaceSelecting && !app.pointerOverUI(mouse) {
		if hit, ok := app.pickFace(mouse); ok {
			face := hit.face
			app.Stores.Faces.SetHovered(&face)
		} else {
			app.Stores.Faces.SetHovered(nil)
		}
	}

	if app.Stores.SketchEdit.Editing() && len(app.Stores.SketchEdit.Points()) > 0 {
		if p, ok := app.pickSketchPoint(mouse); ok {
			app.Stores.SketchEdit.SetPreview(&p)
		} else {
			app.Stores.SketchEdit.SetPreview(nil)
		}
	}
}

// handleEscape dismisses the innermost active UI state: surface, then face
// selection, then sketch editing, then body selection.
func (app *App) handleEscape() {
	if app.Stores.Surface.Active() != state.SurfaceNone {
		app.cancelDialogs()
		app.Stores.Menu.Close()
		app.Stores.Surface.Close()
		return
	}
	if app.Stores.Faces.Active() {
		app.Stores.Faces.Exit()
		return
	}
	if app.Stores.SketchEdit.Editing() {
		if len(app.Stores.SketchEdit.Points()) > 0 {
			app.Stores.SketchEdit.ClearDrawing()
			return
		}
		app.Stores.SketchEdit.Exit()
		return
	}
	app.Stores.Selection.Clear()
}

func (app *App) cancelDialogs() {
	app.Dialogs.LinearPattern.Cancel()
	app.Dialogs.CircularPattern.Cancel()
	app.Dialogs.Mirror.Cancel()
	app.Dialogs.Offset.Cancel()
	app.UI.focusedField = -1
}

// handleViewportClick runs the click priority chain for the 3D viewport
func (app *App) handleViewportClick(mouse rl.Vector2) {
	// An open menu eats the click that dismisses it
	if app.Stores.Menu.Visible() {
		app.Stores.Menu.Close()
		return
	}
	if app.Stores.Surface.Active() == state.SurfaceConstraintDialog {
		app.handleConstraintPick(mouse)
		return
	}
	if isDialogSurface(app.Stores.Surface.Active()) {
		return
	}

	if app.Stores.Faces.Phase() == state.FaceSelecting {
		if face, ok := app.Stores.Faces.Hovered(); ok {
			app.Stores.Faces.Select(face)
			app.consumeCommittedFace()
		}
		return
	}

	if app.Stores.SketchEdit.Editing() {
		app.handleSketchClick(mouse)
		return
	}

	// Body selection
	ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	if hit, ok := app.pickFace(mouse); ok {
		if ctrlPressed {
			app.Stores.Selection.Toggle(hit.face.BodyID)
		} else {
			app.Stores.Selection.Select(hit.face.BodyID)
		}
	} else if !ctrlPressed {
		app.Stores.Selection.Clear()
	}
}

// consumeCommittedFace turns the committed face into a new sketch feature
// and leaves the face-selection mode.
func (app *App) consumeCommittedFace() {
	face, ok := app.Stores.Faces.TakeCommitted()
	if !ok {
		return
	}
	defer app.Stores.Faces.Exit()

	body, ok := app.Scene.Body(face.BodyID)
	if !ok {
		app.Stores.Notifications.Show("Body no longer exists", notify.Warning)
		return
	}
	sk := sketch.New(face.Plane, face.Offset)
	featureID := body.AddSketchFeature(sk)
	app.Stores.SketchEdit.EnterFeature(body.ID, featureID)
	app.Stores.Selection.Select(body.ID)
	app.Stores.Notifications.Showf(notify.Info, "Sketch on %s face of %s", face.FaceType, body.Name)
}

// handleConstraintPick completes the constraint flow with a second element
func (app *App) handleConstraintPick(mouse rl.Vector2) {
	_, sk, ok := app.editedSketch()
	if !ok {
		app.Stores.Surface.Close()
		return
	}
	p, ok := app.pickSketchPoint(mouse)
	if !ok {
		return
	}
	idx, ok := nearestElementIndex(sk, p, app.Settings.Snap.Radius)
	if !ok {
		return
	}
	firstID, _ := app.Stores.Surface.Element()
	secondID := sk.Elements[idx].ID
	if secondID == firstID {
		app.Stores.Notifications.Show("Pick a different element", notify.Warning)
		return
	}
	app.Stores.Surface.SetSecondElement(secondID)
	if cmd, ok := app.Stores.Surface.ConstraintCommand(); ok {
		app.Stores.Notifications.Showf(notify.Info, "%s constraint recorded", cmd.Type)
		app.Stores.Surface.Close()
	}
}

// handleSketchClick handles a click while editing a sketch
func (app *App) handleSketchClick(mouse rl.Vector2) {
	edit := app.Stores.SketchEdit
	_, sk, ok := app.editedSketch()
	if !ok {
		edit.Exit()
		return
	}
	p, ok := app.pickSketchPoint(mouse)
	if !ok {
		return
	}

	if edit.Tool() == state.ToolSelect || edit.Tool().IsModification() {
		tol := app.Settings.Snap.Radius
		if idx, ok := nearestElementIndex(sk, p, tol); ok {
			app.Stores.Selection.SelectElement(idx)
		}
		return
	}

	edit.AddPoint(p)
	if edit.ReadyToFinalize() {
		app.finalizeElement(sk)
	}
}

// finalizeElement builds the element described by the accumulated points
func (app *App) finalizeElement(sk *sketch.Sketch) {
	edit := app.Stores.SketchEdit
	pts := edit.Points()
	defer edit.ClearDrawing()

	switch edit.Tool() {
	case state.ToolLine:
		sk.AddElement(sketch.NewLine(pts[0], pts[1]))
	case state.ToolRectangle:
		sk.AddElement(sketch.NewRectangle(pts[0], pts[1]))
	case state.ToolCircle:
		radius := pts[0].Distance(pts[1])
		if radius < geometry.Epsilon2D {
			app.Stores.Notifications.Show("Circle radius too small", notify.Warning)
			return
		}
		sk.AddElement(sketch.NewCircle(pts[0], radius))
	case state.ToolArc:
		center, radius, err := geometry.Circumcircle(pts[0], pts[1], pts[2])
		if err != nil {
			app.Stores.Notifications.Show("Arc points are collinear", notify.Warning)
			return
		}
		start, end := geometry.ArcAngles(center, pts[0], pts[2])
		sk.AddElement(sketch.NewArc(center, radius, start, end))
	}
}

// nearestElementIndex finds the element closest to a sketch point within tol
func nearestElementIndex(sk *sketch.Sketch, p geometry.Vector2, tol float64) (int, bool) {
	bestIdx := -1
	bestDist := tol
	for i, e := range sk.Elements {
		d := elementDistance(e, p)
		if d <= bestDist {
			bestDist = d
			bestIdx = i
		}
	}
	return bestIdx, bestIdx >= 0
}

func elementDistance(e sketch.Element, p geometry.Vector2) float64 {
	switch e.Kind {
	case sketch.KindCircle, sketch.KindArc:
		return math.Abs(p.Distance(e.Center) - e.Radius)
	case sketch.KindRectangle:
		corners := [4]geometry.Vector2{
			e.Start,
			geometry.NewVector2(e.End.X, e.Start.Y),
			e.End,
			geometry.NewVector2(e.Start.X, e.End.Y),
		}
		best := math.MaxFloat64
		for i := range corners {
			d := segmentDistance(corners[i], corners[(i+1)%4], p)
			best = math.Min(best, d)
		}
		return best
	default:
		return segmentDistance(e.Start, e.End, p)
	}
}

// segmentDistance is the distance from p to the segment ab
func segmentDistance(a, b, p geometry.Vector2) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq < geometry.Epsilon2D*geometry.Epsilon2D {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Add(ab.Mul(t)))
}
