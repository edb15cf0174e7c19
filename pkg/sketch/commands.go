package sketch

// MirrorAxis selects which axis a mirror operation reflects across
type MirrorAxis string

const (
	MirrorHorizontal MirrorAxis = "horizontal"
	MirrorVertical   MirrorAxis = "vertical"
	MirrorCustom     MirrorAxis = "custom"
)

// AxisSegment is an explicit mirror axis given by two endpoints in sketch
// coordinates. Populated for MirrorCustom from the sketch's symmetry axis.
type AxisSegment struct {
	StartX, StartY float64
	EndX, EndY     float64
}

// LinearPatternCommand duplicates an element Count times, each copy shifted
// by (DX, DY) from the previous one. Count includes the original.
type LinearPatternCommand struct {
	ElementID string
	Count     int
	DX, DY    float64
}

// CircularPatternCommand duplicates an element Count times around the
// element's center, spread over TotalAngle degrees.
type CircularPatternCommand struct {
	ElementID  string
	Count      int
	TotalAngle float64
}

// MirrorCommand reflects an element across the chosen axis. Custom is
// non-nil exactly when Axis == MirrorCustom.
type MirrorCommand struct {
	ElementID string
	Axis      MirrorAxis
	Custom    *AxisSegment
}

// OffsetCommand creates a parallel copy of an element at the given distance.
// Negative distances offset to the opposite side.
type OffsetCommand struct {
	ElementID string
	Distance  float64
}

// ConstraintType identifies a geometric constraint between sketch elements
type ConstraintType string

const (
	ConstraintCoincident    ConstraintType = "coincident"
	ConstraintParallel      ConstraintType = "parallel"
	ConstraintPerpendicular ConstraintType = "perpendicular"
	ConstraintEqual         ConstraintType = "equal"
)

// ConstraintCommand applies a constraint between two elements. Both element
// IDs are required; the two-step selection flow in the UI guarantees that.
type ConstraintCommand struct {
	Type            ConstraintType
	ElementID       string
	SecondElementID string
}
