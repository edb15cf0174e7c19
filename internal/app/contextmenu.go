package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/gocadlabs/govcad/internal/notify"
	"github.com/gocadlabs/govcad/pkg/sketch"
)

// drawContextMenu renders the viewport right-click menu and runs the action
// of a clicked item.
func (app *App) drawContextMenu() {
	menu := app.Stores.Menu
	if !menu.Visible() {
		app.UI.menuBounds = rl.Rectangle{}
		return
	}
	body, ok := app.Scene.Body(menu.BodyID())
	if !ok {
		menu.Close()
		return
	}

	type item struct {
		label  string
		action func()
	}
	items := []item{
		{"Focus camera", func() {
			if center, ok := bodyCenter(body); ok {
				app.focusCameraOn(toRl(center))
			}
		}},
		{visibilityLabel(body.Visible), func() {
			app.Scene.SetBodyVisible(body.ID, !body.Visible)
		}},
		{"Edit sketch", func() {
			app.Stores.SketchEdit.Enter(body.ID)
			app.Stores.Selection.Select(body.ID)
		}},
	}
	if face, ok := menu.Face(); ok {
		items = append(items, item{"Sketch on face", func() {
			sk := sketch.New(face.Plane, face.Offset)
			featureID := body.AddSketchFeature(sk)
			app.Stores.SketchEdit.EnterFeature(body.ID, featureID)
			app.Stores.Selection.Select(body.ID)
			app.Stores.Notifications.Showf(notify.Info, "Sketch on face of %s", body.Name)
		}})
	}
	items = append(items, item{"Delete body", func() {
		app.Scene.RemoveBody(body.ID)
		if app.Stores.SketchEdit.BodyID() == body.ID {
			app.Stores.SketchEdit.Exit()
		}
		app.Stores.Selection.Clear()
		app.Stores.Notifications.Showf(notify.Info, "Deleted %s", body.Name)
	}})

	x, y := menu.Position()
	itemH := float32(24)
	menuW := float32(150)
	bounds := rl.Rectangle{X: float32(x), Y: float32(y), Width: menuW, Height: itemH * float32(len(items))}

	// Keep on screen
	if bounds.X+bounds.Width > float32(rl.GetScreenWidth()) {
		bounds.X = float32(rl.GetScreenWidth()) - bounds.Width
	}
	if bounds.Y+bounds.Height > float32(rl.GetScreenHeight()) {
		bounds.Y = float32(rl.GetScreenHeight()) - bounds.Height
	}
	app.UI.menuBounds = bounds

	rl.DrawRectangleRounded(bounds, 0.1, 4, rl.NewColor(28, 32, 44, 245))
	rl.DrawRectangleRoundedLines(bounds, 0.1, 4, rl.NewColor(80, 95, 130, 255))

	mouse := app.Interaction.lastMousePos
	for i, it := range items {
		itemBounds := rl.Rectangle{X: bounds.X, Y: bounds.Y + float32(i)*itemH, Width: bounds.Width, Height: itemH}
		hovered := rl.CheckCollisionPointRec(mouse, itemBounds)
		if hovered {
			rl.DrawRectangleRec(itemBounds, rl.NewColor(55, 75, 110, 255))
		}
		rl.DrawText(it.label, int32(itemBounds.X+10), int32(itemBounds.Y+6), 12, rl.RayWhite)

		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			it.action()
			menu.Close()
			return
		}
	}
}

func visibilityLabel(visible bool) string {
	if visible {
		return "Hide body"
	}
	return "Show body"
}
