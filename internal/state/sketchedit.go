package state

import "github.com/gocadlabs/govcad/pkg/geometry"

// Tool is the active sketch drawing or modification tool
type Tool int

const (
	ToolSelect Tool = iota
	ToolLine
	ToolCircle
	ToolArc
	ToolRectangle
	ToolOffset
	ToolMirror
	ToolLinearPattern
	ToolCircularPattern
)

// Label returns the toolbar label for the tool
func (t Tool) Label() string {
	switch t {
	case ToolLine:
		return "Line"
	case ToolCircle:
		return "Circle"
	case ToolArc:
		return "Arc"
	case ToolRectangle:
		return "Rect"
	case ToolOffset:
		return "Offset"
	case ToolMirror:
		return "Mirror"
	case ToolLinearPattern:
		return "Pattern"
	case ToolCircularPattern:
		return "C-Pattern"
	default:
		return "Select"
	}
}

// IsModification reports whether the tool operates on existing elements
// rather than drawing new ones. Modification tools open a dialog instead of
// accumulating points.
func (t Tool) IsModification() bool {
	switch t {
	case ToolOffset, ToolMirror, ToolLinearPattern, ToolCircularPattern:
		return true
	default:
		return false
	}
}

// RequiredPoints returns how many clicked points the tool needs before an
// element can be finalized. Zero means the tool does not accumulate points.
func (t Tool) RequiredPoints() int {
	switch t {
	case ToolLine, ToolCircle, ToolRectangle:
		return 2
	case ToolArc:
		return 3
	default:
		return 0
	}
}

// SketchEdit is the sketch-editing mode: which body/feature is being edited,
// the active tool and the points accumulated for the element in progress.
// Entering and exiting reset all transient drawing state.
type SketchEdit struct {
	bodyID    string
	featureID string
	tool      Tool
	points    []geometry.Vector2
	preview   *geometry.Vector2
}

// NewSketchEdit creates the store outside of editing mode
func NewSketchEdit() *SketchEdit {
	return &SketchEdit{}
}

// Editing reports whether a sketch is being edited
func (e *SketchEdit) Editing() bool {
	return e.bodyID != ""
}

// BodyID returns the body whose sketch is being edited
func (e *SketchEdit) BodyID() string {
	return e.bodyID
}

// FeatureID returns the sketch feature being edited; empty selects the
// body's first sketch feature.
func (e *SketchEdit) FeatureID() string {
	return e.featureID
}

// Enter starts editing the first sketch of a body
func (e *SketchEdit) Enter(bodyID string) {
	e.EnterFeature(bodyID, "")
}

// EnterFeature starts editing a specific sketch feature of a body
func (e *SketchEdit) EnterFeature(bodyID, featureID string) {
	e.bodyID = bodyID
	e.featureID = featureID
	e.tool = ToolSelect
	e.points = e.points[:0]
	e.preview = nil
}

// Exit leaves sketch editing and clears all drawing state
func (e *SketchEdit) Exit() {
	e.bodyID = ""
	e.featureID = ""
	e.tool = ToolSelect
	e.points = e.points[:0]
	e.preview = nil
}

// Tool returns the active tool
func (e *SketchEdit) Tool() Tool {
	return e.tool
}

// SetTool switches tools, discarding any in-progress drawing.
// Element selection is deliberately left alone so modification tools can act
// on the current selection.
func (e *SketchEdit) SetTool(tool Tool) {
	e.tool = tool
	e.points = e.points[:0]
	e.preview = nil
}

// AddPoint records a clicked point for the element in progress
func (e *SketchEdit) AddPoint(p geometry.Vector2) {
	e.points = append(e.points, p)
}

// Points returns the accumulated drawing points
func (e *SketchEdit) Points() []geometry.Vector2 {
	return e.points
}

// SetPreview tracks the hover position for rubber-band previews
func (e *SketchEdit) SetPreview(p *geometry.Vector2) {
	e.preview = p
}

// Preview returns the hover position, if any
func (e *SketchEdit) Preview() (geometry.Vector2, bool) {
	if e.preview == nil {
		return geometry.Vector2{}, false
	}
	return *e.preview, true
}

// ClearDrawing resets the in-progress element without leaving the mode
func (e *SketchEdit) ClearDrawing() {
	e.points = e.points[:0]
	e.preview = nil
}

// ReadyToFinalize reports whether enough points are accumulated for the
// active tool to produce an element.
func (e *SketchEdit) ReadyToFinalize() bool {
	need := e.tool.RequiredPoints()
	return need > 0 && len(e.points) >= need
}
