package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// View cube face indices
const (
	cubeTop = iota
	cubeBottom
	cubeFront
	cubeBack
	cubeLeft
	cubeRight
)

var cubeLabels = [6]string{"T", "Bo", "F", "Bk", "L", "R"}

// drawViewCube draws the unfolded view cube in the top-right corner and
// handles hover/click on its faces. Clicking a face snaps the camera to the
// matching preset.
func (app *App) drawViewCube() {
	cell := float32(28)
	gap := float32(2)
	right := float32(rl.GetScreenWidth()) - 20
	top := float32(20)

	// Cross layout: Top above Front, Bottom below, Left/Right/Back beside
	originX := right - 4*(cell+gap)
	place := func(col, row int) rl.Rectangle {
		return rl.Rectangle{
			X:      originX + float32(col)*(cell+gap),
			Y:      top + float32(row)*(cell+gap),
			Width:  cell,
			Height: cell,
		}
	}
	app.ViewCube.faceBounds[cubeTop] = place(1, 0)
	app.ViewCube.faceBounds[cubeLeft] = place(0, 1)
	app.ViewCube.faceBounds[cubeFront] = place(1, 1)
	app.ViewCube.faceBounds[cubeRight] = place(2, 1)
	app.ViewCube.faceBounds[cubeBack] = place(3, 1)
	app.ViewCube.faceBounds[cubeBottom] = place(1, 2)

	mouse := app.Interaction.lastMousePos
	app.ViewCube.hoveredFace = -1
	for i, bounds := range app.ViewCube.faceBounds {
		if rl.CheckCollisionPointRec(mouse, bounds) {
			app.ViewCube.hoveredFace = i
		}
	}

	for i, bounds := range app.ViewCube.faceBounds {
		bg := rl.NewColor(40, 45, 60, 220)
		if i == app.ViewCube.hoveredFace {
			bg = rl.NewColor(70, 110, 170, 240)
		}
		rl.DrawRectangleRounded(bounds, 0.25, 4, bg)
		label := cubeLabels[i]
		textW := rl.MeasureText(label, 12)
		rl.DrawText(label,
			int32(bounds.X+(bounds.Width-float32(textW))/2),
			int32(bounds.Y+(bounds.Height-12)/2),
			12, rl.RayWhite)
	}

	if app.ViewCube.hoveredFace >= 0 && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		switch app.ViewCube.hoveredFace {
		case cubeTop:
			app.setCameraTopView()
		case cubeBottom:
			app.setCameraBottomView()
		case cubeFront:
			app.setCameraFrontView()
		case cubeBack:
			app.setCameraBackView()
		case cubeLeft:
			app.setCameraLeftView()
		case cubeRight:
			app.setCameraRightView()
		}
	}
}
