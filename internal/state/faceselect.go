package state

import "github.com/gocadlabs/govcad/pkg/geometry"

// FaceType classifies which side of a body a candidate face is on
type FaceType string

const (
	FaceTop    FaceType = "top"
	FaceBottom FaceType = "bottom"
	FaceSide   FaceType = "side"
)

// SelectedFace is a candidate 3D face the sketch subsystem could attach a
// new sketch to.
type SelectedFace struct {
	BodyID    string
	FeatureID string
	FaceType  FaceType
	Plane     geometry.SketchPlane
	Offset    float64
}

// FacePhase names the phases of the face-selection mode
type FacePhase int

const (
	// FaceIdle: mode inactive, no face state held.
	FaceIdle FacePhase = iota
	// FaceSelecting: mode active, pointer may be hovering a candidate.
	FaceSelecting
	// FaceCommitted: the user clicked a face. The mode stays active until
	// the consumer takes the committed face and calls Exit.
	FaceCommitted
)

// String returns a human-readable phase name
func (p FacePhase) String() string {
	switch p {
	case FaceSelecting:
		return "selecting"
	case FaceCommitted:
		return "committed"
	default:
		return "idle"
	}
}

// FaceSelection drives the exclusive face-picking mode used to start a
// sketch on a body face.
//
// Contract: Select does not end the mode. After reading the committed face
// via TakeCommitted, the consumer MUST call Exit (or Exit on cancel),
// otherwise the mode stays active and keeps capturing pointer input.
type FaceSelection struct {
	phase   FacePhase
	hovered *SelectedFace
}

// NewFaceSelection creates the store in the idle phase
func NewFaceSelection() *FaceSelection {
	return &FaceSelection{}
}

// Phase returns the current phase
func (f *FaceSelection) Phase() FacePhase {
	return f.phase
}

// Active reports whether the mode is engaged (selecting or committed)
func (f *FaceSelection) Active() bool {
	return f.phase != FaceIdle
}

// Start enters the mode with no hovered face. Starting while already active
// resets any hover or commitment.
func (f *FaceSelection) Start() {
	f.phase = FaceSelecting
	f.hovered = nil
}

// Exit leaves the mode and clears all face state regardless of phase
func (f *FaceSelection) Exit() {
	f.phase = FaceIdle
	f.hovered = nil
}

// SetHovered replaces the hovered candidate. Called continuously as the
// pointer moves; last write wins. A nil face clears the hover. Ignored
// outside the selecting phase.
func (f *FaceSelection) SetHovered(face *SelectedFace) {
	if f.phase != FaceSelecting {
		return
	}
	f.hovered = face
}

// Hovered returns the current hover candidate, if any
func (f *FaceSelection) Hovered() (SelectedFace, bool) {
	if f.phase != FaceSelecting || f.hovered == nil {
		return SelectedFace{}, false
	}
	return *f.hovered, true
}

// Select commits a face. The mode remains active in the committed phase;
// see the type contract. Ignored when the mode is idle.
func (f *FaceSelection) Select(face SelectedFace) {
	if f.phase == FaceIdle {
		return
	}
	f.phase = FaceCommitted
	f.hovered = &face
}

// TakeCommitted returns the committed face. The caller is responsible for
// calling Exit after consuming it.
func (f *FaceSelection) TakeCommitted() (SelectedFace, bool) {
	if f.phase != FaceCommitted || f.hovered == nil {
		return SelectedFace{}, false
	}
	return *f.hovered, true
}
