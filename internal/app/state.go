package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/gocadlabs/govcad/internal/dialog"
	"github.com/gocadlabs/govcad/internal/notify"
	"github.com/gocadlabs/govcad/internal/state"
	"github.com/gocadlabs/govcad/pkg/scene"
	"github.com/gocadlabs/govcad/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	defaultDist   float32    // Default camera distance (for reset)
	defaultAngleX float32    // Default camera angle X (for reset)
	defaultAngleY float32    // Default camera angle Y (for reset)
}

// ViewSettings holds display settings
type ViewSettings struct {
	showGrid         bool
	showConstruction bool // Show construction-geometry elements
}

// InteractionState holds mouse and interaction state
type InteractionState struct {
	mouseDownPos rl.Vector2
	mouseMoved   bool
	isPanning    bool
	lastMousePos rl.Vector2
}

// Stores groups the UI state stores shared by both front-ends. One instance
// is created per window; nothing here is global.
type Stores struct {
	Notifications *notify.Store
	Surface       *state.UISurface
	Faces         *state.FaceSelection
	Menu          *state.ViewportMenu
	Selection     *state.Selection
	SketchEdit    *state.SketchEdit
}

// NewStores wires up a fresh store set
func NewStores() *Stores {
	surface := state.NewUISurface()
	return &Stores{
		Notifications: notify.NewStore(),
		Surface:       surface,
		Faces:         state.NewFaceSelection(),
		Menu:          state.NewViewportMenu(surface),
		Selection:     state.NewSelection(),
		SketchEdit:    state.NewSketchEdit(),
	}
}

// Dialogs groups the modal dialog controllers
type Dialogs struct {
	LinearPattern   *dialog.LinearPattern
	CircularPattern *dialog.CircularPattern
	Mirror          *dialog.Mirror
	Offset          *dialog.Offset
}

// DocWatchState holds document watching and reload state. needsReload is the
// only value written from the watcher goroutine; everything else is owned by
// the main loop.
type DocWatchState struct {
	path        string
	docWatcher  *watcher.DocumentWatcher
	needsReload bool
	isLoading   bool
	loadedScene *scene.Scene // Scene loaded in background, applied on main thread
}

// ViewCubeState holds the screen-space view cube widget state
type ViewCubeState struct {
	faceBounds  [6]rl.Rectangle // Top, Bottom, Front, Back, Left, Right
	hoveredFace int             // -1=none
}

// UIState holds 2D panel state: stored bounds for hit testing and the
// focused dialog text field.
type UIState struct {
	toolbarBounds rl.Rectangle
	dialogBounds  rl.Rectangle
	menuBounds    rl.Rectangle
	focusedField  int // -1=none; index into the active dialog's fields
}
