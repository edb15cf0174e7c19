package dialog

import "github.com/gocadlabs/govcad/pkg/sketch"

// Mirror collects the axis choice for a mirror operation. The custom axis
// option is only offered when the sketch has a designated symmetry axis; its
// endpoints are captured at open time so the command carries concrete
// coordinates even if the sketch changes underneath.
type Mirror struct {
	Axis sketch.MirrorAxis

	elementID string
	custom    *sketch.AxisSegment
	open      bool
	onConfirm func(sketch.MirrorCommand)
}

// NewMirror creates the controller
func NewMirror(onConfirm func(sketch.MirrorCommand)) *Mirror {
	return &Mirror{onConfirm: onConfirm}
}

// Open shows the dialog for an element. symmetryAxis is the sketch's
// designated axis line, or nil when the sketch has none.
func (d *Mirror) Open(elementID string, symmetryAxis *sketch.Element) {
	d.elementID = elementID
	d.Axis = sketch.MirrorHorizontal
	d.custom = nil
	if symmetryAxis != nil && symmetryAxis.Kind == sketch.KindLine {
		d.custom = &sketch.AxisSegment{
			StartX: symmetryAxis.Start.X,
			StartY: symmetryAxis.Start.Y,
			EndX:   symmetryAxis.End.X,
			EndY:   symmetryAxis.End.Y,
		}
	}
	d.open = true
}

// IsOpen reports whether the dialog is showing
func (d *Mirror) IsOpen() bool {
	return d.open
}

// ElementID returns the element to mirror
func (d *Mirror) ElementID() string {
	return d.elementID
}

// HasCustomAxis reports whether the custom axis option is available
func (d *Mirror) HasCustomAxis() bool {
	return d.custom != nil
}

// Confirm emits the mirror command. A choice of custom without an available
// axis falls back to horizontal rather than failing; every other choice is
// valid by construction, so Confirm always succeeds.
func (d *Mirror) Confirm() error {
	if !d.open {
		return nil
	}
	axis := d.Axis
	var custom *sketch.AxisSegment
	if axis == sketch.MirrorCustom {
		if d.custom == nil {
			axis = sketch.MirrorHorizontal
		} else {
			seg := *d.custom
			custom = &seg
		}
	}

	cmd := sketch.MirrorCommand{
		ElementID: d.elementID,
		Axis:      axis,
		Custom:    custom,
	}
	d.close()
	if d.onConfirm != nil {
		d.onConfirm(cmd)
	}
	return nil
}

// Cancel closes the dialog without emitting a command
func (d *Mirror) Cancel() {
	d.close()
}

func (d *Mirror) close() {
	d.open = false
	d.elementID = ""
	d.custom = nil
}
