// Package state holds the viewport's interaction-state stores: the active
// UI surface, face-selection mode, viewport context menu, body selection and
// sketch editing. Each store is mutated only through its action methods and
// owned by the UI loop; no store is safe for concurrent writers.
package state

import "github.com/gocadlabs/govcad/pkg/sketch"

// SurfaceKind names the UI surface that currently owns the pointer. Exactly
// one surface can be active at a time; modeling this as a single tagged
// value makes a multi-open state unrepresentable.
type SurfaceKind int

const (
	SurfaceNone SurfaceKind = iota
	SurfaceOffsetDialog
	SurfaceMirrorDialog
	SurfaceLinearPatternDialog
	SurfaceCircularPatternDialog
	SurfaceConstraintDialog
	SurfaceViewportMenu
	SurfaceToolsMenu
)

// String returns a human-readable surface name
func (k SurfaceKind) String() string {
	switch k {
	case SurfaceOffsetDialog:
		return "offset-dialog"
	case SurfaceMirrorDialog:
		return "mirror-dialog"
	case SurfaceLinearPatternDialog:
		return "linear-pattern-dialog"
	case SurfaceCircularPatternDialog:
		return "circular-pattern-dialog"
	case SurfaceConstraintDialog:
		return "constraint-dialog"
	case SurfaceViewportMenu:
		return "viewport-menu"
	case SurfaceToolsMenu:
		return "tools-menu"
	default:
		return "none"
	}
}

// ConstraintDialog carries the two-step constraint creation flow: the first
// element is chosen when the dialog opens; the constraint can only be
// emitted once a compatible second element has been picked.
type ConstraintDialog struct {
	ElementID       string
	ElementType     sketch.ElementKind
	PendingType     sketch.ConstraintType
	SecondElementID string
	NeedsSecond     bool
}

// UISurface tracks which dialog or menu is active and the sketch element it
// operates on. Opening any surface replaces the previous one; closing clears
// the element association so no stale reference survives.
type UISurface struct {
	kind       SurfaceKind
	elementID  string
	constraint ConstraintDialog
	menuX      float64
	menuY      float64
}

// NewUISurface creates the store with no active surface
func NewUISurface() *UISurface {
	return &UISurface{}
}

// Active returns the currently active surface kind
func (u *UISurface) Active() SurfaceKind {
	return u.kind
}

// Element returns the sketch element the active dialog operates on.
// Only valid while a dialog surface is active.
func (u *UISurface) Element() (string, bool) {
	if u.kind == SurfaceNone || u.elementID == "" {
		return "", false
	}
	return u.elementID, true
}

// Close deactivates whatever surface is open and clears all associations
func (u *UISurface) Close() {
	u.kind = SurfaceNone
	u.elementID = ""
	u.constraint = ConstraintDialog{}
	u.menuX, u.menuY = 0, 0
}

// OpenDialog activates one of the element dialogs. kind must be a dialog
// surface; menus have their own open actions.
func (u *UISurface) OpenDialog(kind SurfaceKind, elementID string) {
	switch kind {
	case SurfaceOffsetDialog, SurfaceMirrorDialog, SurfaceLinearPatternDialog, SurfaceCircularPatternDialog:
	default:
		return
	}
	u.Close()
	u.kind = kind
	u.elementID = elementID
}

// OpenConstraintDialog starts the two-step constraint flow on an element
func (u *UISurface) OpenConstraintDialog(elementID string, elementType sketch.ElementKind, pending sketch.ConstraintType) {
	u.Close()
	u.kind = SurfaceConstraintDialog
	u.elementID = elementID
	u.constraint = ConstraintDialog{
		ElementID:   elementID,
		ElementType: elementType,
		PendingType: pending,
		NeedsSecond: true,
	}
}

// Constraint returns the constraint flow state while the dialog is active
func (u *UISurface) Constraint() (ConstraintDialog, bool) {
	if u.kind != SurfaceConstraintDialog {
		return ConstraintDialog{}, false
	}
	return u.constraint, true
}

// SetSecondElement records the second element of the pending constraint.
// Ignored unless the constraint dialog is active and still waiting.
func (u *UISurface) SetSecondElement(elementID string) {
	if u.kind != SurfaceConstraintDialog || !u.constraint.NeedsSecond {
		return
	}
	u.constraint.SecondElementID = elementID
	u.constraint.NeedsSecond = false
}

// ConstraintCommand builds the command for a completed constraint flow.
// Returns false until both elements are in place.
func (u *UISurface) ConstraintCommand() (sketch.ConstraintCommand, bool) {
	c, ok := u.Constraint()
	if !ok || c.NeedsSecond || c.SecondElementID == "" {
		return sketch.ConstraintCommand{}, false
	}
	return sketch.ConstraintCommand{
		Type:            c.PendingType,
		ElementID:       c.ElementID,
		SecondElementID: c.SecondElementID,
	}, true
}

// OpenToolsMenu activates the sketch tools context menu at a screen position
func (u *UISurface) OpenToolsMenu(x, y float64, elementID string) {
	u.Close()
	u.kind = SurfaceToolsMenu
	u.elementID = elementID
	u.menuX, u.menuY = x, y
}

// MenuPosition returns the screen position of the active menu surface
func (u *UISurface) MenuPosition() (float64, float64) {
	return u.menuX, u.menuY
}

// markViewportMenu is set by the ViewportMenu store so the two menu
// surfaces share the single-active-surface guarantee.
func (u *UISurface) markViewportMenu(x, y float64) {
	u.Close()
	u.kind = SurfaceViewportMenu
	u.menuX, u.menuY = x, y
}
