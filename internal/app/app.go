package app

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/gocadlabs/govcad/internal/config"
	"github.com/gocadlabs/govcad/internal/dialog"
	"github.com/gocadlabs/govcad/internal/notify"
	"github.com/gocadlabs/govcad/pkg/scene"
	"github.com/gocadlabs/govcad/pkg/sketch"
)

// App is the raylib viewport front-end. All stores are mutated on the main
// loop only.
type App struct {
	Camera      CameraState
	View        ViewSettings
	Interaction InteractionState
	ViewCube    ViewCubeState
	DocWatch    DocWatchState
	UI          UIState
	Stores      *Stores
	Dialogs     Dialogs
	Scene       *scene.Scene
	Settings    config.Settings
}

// New builds an App for an already-loaded scene document
func New(doc *scene.Scene, path string, cfg config.Settings) *App {
	app := &App{
		Scene:    doc,
		Settings: cfg,
		Stores:   NewStores(),
		DocWatch: DocWatchState{path: path},
		View: ViewSettings{
			showGrid:         true,
			showConstruction: true,
		},
		ViewCube: ViewCubeState{hoveredFace: -1},
		UI:       UIState{focusedField: -1},
	}

	app.Camera.distance = float32(cfg.Camera.Distance)
	app.Camera.angleX = float32(cfg.Camera.AngleX)
	app.Camera.angleY = float32(cfg.Camera.AngleY)
	app.Camera.defaultDist = app.Camera.distance
	app.Camera.defaultAngleX = app.Camera.angleX
	app.Camera.defaultAngleY = app.Camera.angleY
	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: app.Camera.distance},
		Target:     app.Camera.target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}

	app.Dialogs = Dialogs{
		LinearPattern:   dialog.NewLinearPattern(app.onLinearPattern),
		CircularPattern: dialog.NewCircularPattern(app.onCircularPattern),
		Mirror:          dialog.NewMirror(app.onMirror),
		Offset:          dialog.NewOffset(app.onOffset),
	}
	return app
}

// Run opens the window and drives the main loop until the user quits.
// A missing document starts an empty scene that will be created on save.
func Run(path string, cfg config.Settings) error {
	doc, err := scene.Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading scene: %w", err)
		}
		doc = scene.New()
		fmt.Printf("Starting new scene %s\n", path)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(60)

	app := New(doc, path, cfg)

	if cfg.Watch.Enabled {
		if err := app.setupDocWatcher(); err != nil {
			fmt.Printf("Warning: failed to watch %s: %v\n", path, err)
			fmt.Println("Auto-reload will not be available")
		} else {
			defer app.DocWatch.docWatcher.Close()
		}
	}

	for {
		// ESC is handled separately for dismissing UI state
		if rl.WindowShouldClose() && !rl.IsKeyPressed(rl.KeyEscape) {
			break
		}
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		if app.DocWatch.needsReload && !app.DocWatch.isLoading {
			app.DocWatch.needsReload = false
			app.reloadScene()
		}
		// Must be on main thread
		app.applyLoadedScene()

		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		if app.View.showGrid {
			app.drawGrid()
		}
		app.drawBodies()
		app.drawSketchOverlay()
		app.drawHoveredFace()
		rl.EndMode3D()

		app.drawViewCube()
		app.drawToolbar()
		app.drawContextMenu()
		app.drawDialogs()
		app.drawNotifications()
		app.drawStatusLine()

		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

// editedSketch resolves the sketch currently being edited
func (app *App) editedSketch() (*scene.Body, *sketch.Sketch, bool) {
	if !app.Stores.SketchEdit.Editing() {
		return nil, nil, false
	}
	body, ok := app.Scene.Body(app.Stores.SketchEdit.BodyID())
	if !ok {
		return nil, nil, false
	}
	feature, ok := body.SketchFeature(app.Stores.SketchEdit.FeatureID())
	if !ok || feature.Sketch == nil {
		return nil, nil, false
	}
	return body, feature.Sketch, true
}

// saveScene writes the document back to disk
func (app *App) saveScene() {
	if err := app.Scene.Save(app.DocWatch.path); err != nil {
		app.Stores.Notifications.Showf(notify.Error, "Save failed: %v", err)
		return
	}
	app.Stores.Notifications.Showf(notify.Info, "Saved %s", app.DocWatch.path)
}

func (app *App) onLinearPattern(cmd sketch.LinearPatternCommand) {
	app.appendPatternFeature(scene.FeaturePattern, fmt.Sprintf("Linear pattern x%d (%.4g, %.4g)", cmd.Count, cmd.DX, cmd.DY))
}

func (app *App) onCircularPattern(cmd sketch.CircularPatternCommand) {
	app.appendPatternFeature(scene.FeaturePattern, fmt.Sprintf("Circular pattern x%d over %.4g deg", cmd.Count, cmd.TotalAngle))
}

func (app *App) onMirror(cmd sketch.MirrorCommand) {
	app.appendPatternFeature(scene.FeatureMirror, fmt.Sprintf("Mirror across %s axis", cmd.Axis))
}

func (app *App) onOffset(cmd sketch.OffsetCommand) {
	app.appendPatternFeature(scene.FeaturePattern, fmt.Sprintf("Offset by %.4g", cmd.Distance))
}

// appendPatternFeature records a confirmed sketch operation as a feature on
// the edited body and reports it.
func (app *App) appendPatternFeature(kind scene.FeatureKind, description string) {
	body, _, ok := app.editedSketch()
	if !ok {
		app.Stores.Notifications.Show("No sketch is being edited", notify.Warning)
		return
	}
	body.AddFeature(kind)
	app.Stores.Notifications.Show(description, notify.Info)
}
