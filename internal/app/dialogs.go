package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/gocadlabs/govcad/internal/notify"
	"github.com/gocadlabs/govcad/internal/state"
	"github.com/gocadlabs/govcad/pkg/sketch"
)

// dialogField is one editable text field in a dialog panel
type dialogField struct {
	label string
	value *string
}

// drawDialogs renders the active operation dialog as a centered panel
func (app *App) drawDialogs() {
	kind := app.Stores.Surface.Active()
	if !isDialogSurface(kind) {
		app.UI.dialogBounds = rl.Rectangle{}
		return
	}

	var title string
	var fields []dialogField
	switch kind {
	case state.SurfaceLinearPatternDialog:
		title = "Linear Pattern"
		d := app.Dialogs.LinearPattern
		fields = []dialogField{
			{"Count", &d.CountText},
			{"dX", &d.DXText},
			{"dY", &d.DYText},
		}
	case state.SurfaceCircularPatternDialog:
		title = "Circular Pattern"
		d := app.Dialogs.CircularPattern
		fields = []dialogField{
			{"Count", &d.CountText},
			{"Angle", &d.AngleText},
		}
	case state.SurfaceOffsetDialog:
		title = "Offset"
		fields = []dialogField{
			{"Distance", &app.Dialogs.Offset.DistanceText},
		}
	case state.SurfaceMirrorDialog:
		title = "Mirror"
	case state.SurfaceConstraintDialog:
		title = "Constraint"
	default:
		return
	}

	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	panelW := float32(240)
	rowH := float32(30)
	rows := float32(len(fields))
	switch kind {
	case state.SurfaceMirrorDialog:
		rows = 3 // Axis options
	case state.SurfaceConstraintDialog:
		rows = 1 // Prompt line
	}
	panelH := 44 + rows*rowH + 44
	panel := rl.Rectangle{
		X:      (screenW - panelW) / 2,
		Y:      (screenH - panelH) / 2,
		Width:  panelW,
		Height: panelH,
	}
	app.UI.dialogBounds = panel

	rl.DrawRectangleRounded(panel, 0.08, 6, rl.NewColor(28, 32, 44, 245))
	rl.DrawRectangleRoundedLines(panel, 0.08, 6, rl.NewColor(80, 95, 130, 255))
	rl.DrawText(title, int32(panel.X+14), int32(panel.Y+12), 16, rl.RayWhite)

	y := panel.Y + 44
	switch kind {
	case state.SurfaceMirrorDialog:
		app.drawMirrorOptions(panel, &y, rowH)
	case state.SurfaceConstraintDialog:
		rl.DrawText("Pick a second element in the viewport", int32(panel.X+14), int32(y+5), 12, rl.LightGray)
	default:
		app.editTextFields(fields, panel, &y, rowH)
	}

	// OK / Cancel; the constraint flow completes by picking, so it only
	// offers Cancel.
	buttonW := float32(90)
	buttonH := float32(26)
	okBounds := rl.Rectangle{X: panel.X + 14, Y: panel.Y + panel.Height - buttonH - 12, Width: buttonW, Height: buttonH}
	cancelBounds := rl.Rectangle{X: panel.X + panel.Width - buttonW - 14, Y: okBounds.Y, Width: buttonW, Height: buttonH}

	if kind != state.SurfaceConstraintDialog {
		enterPressed := rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)
		if app.toolbarButton(okBounds, "OK", false) || enterPressed {
			app.confirmActiveDialog(kind)
		}
	}
	if app.toolbarButton(cancelBounds, "Cancel", false) {
		app.cancelDialogs()
		app.Stores.Surface.Close()
	}
}

// editTextFields renders the fields and routes typed characters into the
// focused one.
func (app *App) editTextFields(fields []dialogField, panel rl.Rectangle, y *float32, rowH float32) {
	mouse := app.Interaction.lastMousePos
	if app.UI.focusedField >= len(fields) {
		app.UI.focusedField = 0
	}

	if rl.IsKeyPressed(rl.KeyTab) && len(fields) > 0 {
		app.UI.focusedField = (app.UI.focusedField + 1) % len(fields)
	}

	for i, f := range fields {
		fieldBounds := rl.Rectangle{X: panel.X + 90, Y: *y, Width: panel.Width - 104, Height: rowH - 6}
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) && rl.CheckCollisionPointRec(mouse, fieldBounds) {
			app.UI.focusedField = i
		}
		focused := i == app.UI.focusedField

		rl.DrawText(f.label, int32(panel.X+14), int32(*y+5), 12, rl.LightGray)
		border := rl.NewColor(70, 80, 105, 255)
		if focused {
			border = rl.NewColor(120, 160, 220, 255)
		}
		rl.DrawRectangleRec(fieldBounds, rl.NewColor(18, 21, 30, 255))
		rl.DrawRectangleLinesEx(fieldBounds, 1, border)

		text := *f.value
		if focused {
			text += "_"
		}
		rl.DrawText(text, int32(fieldBounds.X+6), int32(fieldBounds.Y+5), 12, rl.RayWhite)

		if focused {
			for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
				if ch >= 32 && ch < 127 {
					*f.value += string(rune(ch))
				}
			}
			if rl.IsKeyPressed(rl.KeyBackspace) && len(*f.value) > 0 {
				*f.value = (*f.value)[:len(*f.value)-1]
			}
		}
		*y += rowH
	}
}

// drawMirrorOptions renders the axis radio buttons of the mirror dialog
func (app *App) drawMirrorOptions(panel rl.Rectangle, y *float32, rowH float32) {
	d := app.Dialogs.Mirror
	options := []struct {
		label   string
		axis    sketch.MirrorAxis
		enabled bool
	}{
		{"Horizontal", sketch.MirrorHorizontal, true},
		{"Vertical", sketch.MirrorVertical, true},
		{"Symmetry axis", sketch.MirrorCustom, d.HasCustomAxis()},
	}
	mouse := app.Interaction.lastMousePos

	for _, opt := range options {
		bounds := rl.Rectangle{X: panel.X + 14, Y: *y, Width: panel.Width - 28, Height: rowH - 6}
		color := rl.LightGray
		if !opt.enabled {
			color = rl.NewColor(90, 95, 110, 255)
		} else if d.Axis == opt.axis {
			color = rl.NewColor(120, 180, 255, 255)
		}
		marker := "( )"
		if d.Axis == opt.axis {
			marker = "(x)"
		}
		rl.DrawText(marker+" "+opt.label, int32(bounds.X), int32(bounds.Y+5), 12, color)

		if opt.enabled && rl.IsMouseButtonPressed(rl.MouseLeftButton) && rl.CheckCollisionPointRec(mouse, bounds) {
			d.Axis = opt.axis
		}
		*y += rowH
	}
}

// confirmActiveDialog runs validation and routes failures to notifications
func (app *App) confirmActiveDialog(kind state.SurfaceKind) {
	var err error
	switch kind {
	case state.SurfaceLinearPatternDialog:
		err = app.Dialogs.LinearPattern.Confirm()
	case state.SurfaceCircularPatternDialog:
		err = app.Dialogs.CircularPattern.Confirm()
	case state.SurfaceOffsetDialog:
		err = app.Dialogs.Offset.Confirm()
	case state.SurfaceMirrorDialog:
		err = app.Dialogs.Mirror.Confirm()
	}
	if err != nil {
		app.Stores.Notifications.Showf(notify.Warning, "%v", err)
		return
	}
	app.Stores.Surface.Close()
	app.UI.focusedField = -1
}
