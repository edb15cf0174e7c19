package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/gocadlabs/govcad/internal/state"
	"github.com/gocadlabs/govcad/pkg/geometry"
	"github.com/gocadlabs/govcad/pkg/scene"
	"github.com/gocadlabs/govcad/pkg/sketch"
	"github.com/gocadlabs/govcad/version"
)

const circleSegments = 48

var (
	colorElement      = rl.NewColor(220, 220, 230, 255)
	colorConstruction = rl.NewColor(120, 130, 150, 255)
	colorSelected     = rl.NewColor(255, 200, 60, 255)
	colorDrawing      = rl.NewColor(80, 220, 120, 255)
	colorHoverFace    = rl.NewColor(80, 160, 255, 90)
	colorHiddenBody   = rl.NewColor(90, 90, 100, 120)
)

// drawGrid draws the ground grid sized from the snap settings
func (app *App) drawGrid() {
	spacing := float32(app.Settings.Snap.GridSize)
	if spacing <= 0 {
		spacing = 5
	}
	rl.DrawGrid(40, spacing)
}

// drawBodies draws every body's sketch geometry in world space
func (app *App) drawBodies() {
	editingBody := app.Stores.SketchEdit.BodyID()
	selectedElement := -1
	if idx, ok := app.Stores.Selection.Element(); ok {
		selectedElement = idx
	}

	for _, body := range app.Scene.Bodies {
		for i := range body.Features {
			f := &body.Features[i]
			if f.Kind != scene.FeatureSketch || f.Sketch == nil {
				continue
			}
			for idx, e := range f.Sketch.Elements {
				if e.Construction && !app.View.showConstruction {
					continue
				}
				color := colorElement
				if !body.Visible {
					color = colorHiddenBody
				} else if e.Construction {
					color = colorConstruction
				}
				if app.Stores.Selection.IsSelected(body.ID) && selectedElement < 0 {
					color = colorSelected
				}
				if body.ID == editingBody && idx == selectedElement {
					color = colorSelected
				}
				drawElement(f.Sketch, e, color)
			}
		}
		// Extruded bodies additionally show their top outline
		if h := bodyHeight(body); h != 0 && body.Visible {
			if f, ok := body.SketchFeature(""); ok && f.Sketch != nil {
				lifted := *f.Sketch
				lifted.Offset = f.Sketch.Offset + h
				for _, e := range lifted.Elements {
					if !e.Construction {
						drawElement(&lifted, e, colorElement)
					}
				}
			}
		}
	}
}

// drawElement draws one sketch element as 3D line geometry on its plane
func drawElement(sk *sketch.Sketch, e sketch.Element, color rl.Color) {
	switch e.Kind {
	case sketch.KindLine:
		rl.DrawLine3D(toRl(sk.WorldPoint(e.Start)), toRl(sk.WorldPoint(e.End)), color)
	case sketch.KindRectangle:
		a := e.Start
		b := geometry.NewVector2(e.End.X, e.Start.Y)
		c := e.End
		d := geometry.NewVector2(e.Start.X, e.End.Y)
		rl.DrawLine3D(toRl(sk.WorldPoint(a)), toRl(sk.WorldPoint(b)), color)
		rl.DrawLine3D(toRl(sk.WorldPoint(b)), toRl(sk.WorldPoint(c)), color)
		rl.DrawLine3D(toRl(sk.WorldPoint(c)), toRl(sk.WorldPoint(d)), color)
		rl.DrawLine3D(toRl(sk.WorldPoint(d)), toRl(sk.WorldPoint(a)), color)
	case sketch.KindCircle:
		drawArc(sk, e.Center, e.Radius, 0, 2*math.Pi, color)
	case sketch.KindArc:
		drawArc(sk, e.Center, e.Radius, e.StartAngle, e.EndAngle, color)
	}
}

func drawArc(sk *sketch.Sketch, center geometry.Vector2, radius, start, end float64, color rl.Color) {
	if end < start {
		end += 2 * math.Pi
	}
	span := end - start
	steps := int(float64(circleSegments) * span / (2 * math.Pi))
	if steps < 8 {
		steps = 8
	}
	prev := arcPoint(center, radius, start)
	for i := 1; i <= steps; i++ {
		next := arcPoint(center, radius, start+span*float64(i)/float64(steps))
		rl.DrawLine3D(toRl(sk.WorldPoint(prev)), toRl(sk.WorldPoint(next)), color)
		prev = next
	}
}

func arcPoint(center geometry.Vector2, radius, angle float64) geometry.Vector2 {
	return geometry.NewVector2(center.X+radius*math.Cos(angle), center.Y+radius*math.Sin(angle))
}

// drawSketchOverlay draws the in-progress element while sketch editing
func (app *App) drawSketchOverlay() {
	edit := app.Stores.SketchEdit
	_, sk, ok := app.editedSketch()
	if !ok {
		return
	}

	pts := edit.Points()
	for _, p := range pts {
		rl.DrawSphere(toRl(sk.WorldPoint(p)), 0.6, colorDrawing)
	}
	preview, hasPreview := edit.Preview()
	if len(pts) == 0 || !hasPreview {
		return
	}

	// Rubber-band preview for the element being drawn
	last := pts[len(pts)-1]
	switch edit.Tool() {
	case state.ToolCircle:
		drawArc(sk, pts[0], pts[0].Distance(preview), 0, 2*math.Pi, colorDrawing)
	case state.ToolRectangle:
		ghost := sketch.Element{Kind: sketch.KindRectangle, Start: pts[0], End: preview}
		drawElement(sk, ghost, colorDrawing)
	default:
		rl.DrawLine3D(toRl(sk.WorldPoint(last)), toRl(sk.WorldPoint(preview)), colorDrawing)
	}
}

// drawHoveredFace highlights the face-selection candidate or committed face
func (app *App) drawHoveredFace() {
	if !app.Stores.Faces.Active() {
		return
	}
	face, ok := app.Stores.Faces.Hovered()
	if !ok {
		face, ok = app.Stores.Faces.TakeCommitted()
		if !ok {
			return
		}
	}
	body, okBody := app.Scene.Body(face.BodyID)
	if !okBody {
		return
	}
	feature, okFeature := body.SketchFeature(face.FeatureID)
	if !okFeature || feature.Sketch == nil {
		return
	}
	min, max, okBounds := feature.Sketch.Bounds()
	if !okBounds {
		return
	}

	plane := face.Plane
	a := toRl(plane.ToWorld(min, face.Offset))
	b := toRl(plane.ToWorld(geometry.NewVector2(max.X, min.Y), face.Offset))
	c := toRl(plane.ToWorld(max, face.Offset))
	d := toRl(plane.ToWorld(geometry.NewVector2(min.X, max.Y), face.Offset))

	// Both windings so the highlight is visible from either side
	rl.DrawTriangle3D(a, b, c, colorHoverFace)
	rl.DrawTriangle3D(a, c, d, colorHoverFace)
	rl.DrawTriangle3D(c, b, a, colorHoverFace)
	rl.DrawTriangle3D(d, c, a, colorHoverFace)
}

// drawStatusLine draws version, FPS and the current mode in the corner
func (app *App) drawStatusLine() {
	bottomY := int32(rl.GetScreenHeight()) - 24

	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawText(versionText, 10, bottomY, 12, rl.Gray)

	x := int32(10) + rl.MeasureText(versionText, 12) + 15
	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	rl.DrawText(fpsText, x, bottomY, 12, rl.Lime)
	x += rl.MeasureText(fpsText, 12) + 15

	var mode string
	switch {
	case app.Stores.Faces.Active():
		mode = "Pick a face to sketch on (ESC to cancel)"
	case app.Stores.SketchEdit.Editing():
		mode = fmt.Sprintf("Sketching: %s", app.Stores.SketchEdit.Tool().Label())
	case app.Stores.Selection.Count() > 0:
		mode = fmt.Sprintf("%d selected", app.Stores.Selection.Count())
	}
	if mode != "" {
		rl.DrawText(mode, x, bottomY, 12, rl.SkyBlue)
	}
}
