package state

import "github.com/gocadlabs/govcad/pkg/geometry"

// FaceInfo describes the face a context menu was opened over, carrying
// enough to create a sketch there directly from the menu.
type FaceInfo struct {
	BodyID    string
	FeatureID string
	Plane     geometry.SketchPlane
	Offset    float64
	Coords    geometry.FaceCoordSystem
}

// ViewportMenu is the single right-click menu of the 3D viewport. Opening
// while already open silently replaces the previous menu; only one can be
// visually present. Activation is registered on the shared UISurface so the
// menu participates in the one-active-surface guarantee.
type ViewportMenu struct {
	surface *UISurface
	x, y    float64
	bodyID  string
	face    *FaceInfo
}

// NewViewportMenu creates the menu store bound to the given surface tracker
func NewViewportMenu(surface *UISurface) *ViewportMenu {
	return &ViewportMenu{surface: surface}
}

// Open shows the menu at a screen position for a body. face is optional;
// when present the menu offers "sketch on face". Replaces any open surface.
func (m *ViewportMenu) Open(x, y float64, bodyID string, face *FaceInfo) {
	m.surface.markViewportMenu(x, y)
	m.x, m.y = x, y
	m.bodyID = bodyID
	m.face = face
}

// Close dismisses the menu and clears position, body and face info
func (m *ViewportMenu) Close() {
	if m.surface.Active() == SurfaceViewportMenu {
		m.surface.Close()
	}
	m.x, m.y = 0, 0
	m.bodyID = ""
	m.face = nil
}

// Visible reports whether the menu is the active surface
func (m *ViewportMenu) Visible() bool {
	return m.surface.Active() == SurfaceViewportMenu
}

// Position returns the menu's screen position
func (m *ViewportMenu) Position() (float64, float64) {
	return m.x, m.y
}

// BodyID returns the body the menu was opened on
func (m *ViewportMenu) BodyID() string {
	return m.bodyID
}

// Face returns the face info attached to the menu, if any
func (m *ViewportMenu) Face() (FaceInfo, bool) {
	if !m.Visible() || m.face == nil {
		return FaceInfo{}, false
	}
	return *m.face, true
}
