package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/gocadlabs/govcad/internal/state"
	"github.com/gocadlabs/govcad/pkg/geometry"
	"github.com/gocadlabs/govcad/pkg/scene"
)

func toRl(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func fromRl(v rl.Vector3) geometry.Vector3 {
	return geometry.NewVector3(float64(v.X), float64(v.Y), float64(v.Z))
}

// faceHit is one pickable planar face of a body
type faceHit struct {
	face     state.SelectedFace
	world    geometry.Vector3 // Intersection point
	distance float64          // Along the pick ray
}

// bodyHeight sums the extrude features of a body
func bodyHeight(body *scene.Body) float64 {
	var h float64
	for _, f := range body.Features {
		if f.Kind == scene.FeatureExtrude {
			h += f.Height
		}
	}
	return h
}

// rayPlaneHit intersects a pick ray with an axis-aligned plane and reports
// the intersection in the plane's 2D coordinates.
func rayPlaneHit(ray rl.Ray, plane geometry.SketchPlane, offset float64) (geometry.Vector2, geometry.Vector3, float64, bool) {
	origin := fromRl(ray.Position)
	dir := fromRl(ray.Direction)

	var o, d float64
	switch plane {
	case geometry.PlaneXY:
		o, d = origin.Z, dir.Z
	case geometry.PlaneXZ:
		o, d = origin.Y, dir.Y
	default:
		o, d = origin.X, dir.X
	}
	if math.Abs(d) < 1e-9 {
		return geometry.Vector2{}, geometry.Vector3{}, 0, false
	}
	t := (offset - o) / d
	if t <= 0 {
		return geometry.Vector2{}, geometry.Vector3{}, 0, false
	}
	world := origin.Add(dir.Mul(t))
	local, _ := plane.FromWorld(world)
	return local, world, t, true
}

// pickFace returns the nearest body face under the mouse. Faces are the
// sketch plane of each visible body plus, for extruded bodies, the matching
// plane at the extruded height, bounded by the sketch's 2D extent.
func (app *App) pickFace(mouse rl.Vector2) (faceHit, bool) {
	ray := rl.GetMouseRay(mouse, app.Camera.camera)

	best := faceHit{distance: math.MaxFloat64}
	found := false
	for _, body := range app.Scene.Bodies {
		if !body.Visible {
			continue
		}
		feature, ok := body.SketchFeature("")
		if !ok || feature.Sketch == nil {
			continue
		}
		sk := feature.Sketch
		min, max, ok := sk.Bounds()
		if !ok {
			continue
		}

		type planeFace struct {
			offset   float64
			faceType state.FaceType
		}
		candidates := []planeFace{{sk.Offset, state.FaceBottom}}
		if h := bodyHeight(body); h != 0 {
			candidates = append(candidates, planeFace{sk.Offset + h, state.FaceTop})
		}

		for _, candidate := range candidates {
			local, world, t, ok := rayPlaneHit(ray, sk.Plane, candidate.offset)
			if !ok || t >= best.distance {
				continue
			}
			if local.X < min.X || local.X > max.X || local.Y < min.Y || local.Y > max.Y {
				continue
			}
			best = faceHit{
				face: state.SelectedFace{
					BodyID:    body.ID,
					FeatureID: feature.ID,
					FaceType:  candidate.faceType,
					Plane:     sk.Plane,
					Offset:    candidate.offset,
				},
				world:    world,
				distance: t,
			}
			found = true
		}
	}
	return best, found
}

// faceInfoFor builds the context-menu payload for a picked face
func faceInfoFor(hit faceHit) *state.FaceInfo {
	return &state.FaceInfo{
		BodyID:    hit.face.BodyID,
		FeatureID: hit.face.FeatureID,
		Plane:     hit.face.Plane,
		Offset:    hit.face.Offset,
		Coords:    geometry.NewFaceCoordSystem(hit.world, hit.face.Plane.Normal()),
	}
}

// pickSketchPoint maps the mouse onto the edited sketch's plane, applying
// grid snap when enabled.
func (app *App) pickSketchPoint(mouse rl.Vector2) (geometry.Vector2, bool) {
	_, sk, ok := app.editedSketch()
	if !ok {
		return geometry.Vector2{}, false
	}
	ray := rl.GetMouseRay(mouse, app.Camera.camera)
	local, _, _, ok := rayPlaneHit(ray, sk.Plane, sk.Offset)
	if !ok {
		return geometry.Vector2{}, false
	}
	if app.Settings.Snap.Enabled {
		grid := app.Settings.Snap.GridSize
		local.X = math.Round(local.X/grid) * grid
		local.Y = math.Round(local.Y/grid) * grid
	}
	return local, true
}

// bodyCenter returns the world-space center of a body's sketch extent
func bodyCenter(body *scene.Body) (geometry.Vector3, bool) {
	feature, ok := body.SketchFeature("")
	if !ok || feature.Sketch == nil {
		return geometry.Vector3{}, false
	}
	min, max, ok := feature.Sketch.Bounds()
	if !ok {
		return feature.Sketch.WorldPoint(geometry.Vector2{}), true
	}
	center := geometry.Midpoint(min, max)
	world := feature.Sketch.Plane.ToWorld(center, feature.Sketch.Offset+bodyHeight(body)/2)
	return world, true
}
