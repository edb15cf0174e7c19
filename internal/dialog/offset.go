package dialog

import "github.com/gocadlabs/govcad/pkg/sketch"

// Offset collects the distance for a parallel-offset copy of an element
type Offset struct {
	DistanceText string

	elementID string
	open      bool
	onConfirm func(sketch.OffsetCommand)
}

// NewOffset creates the controller
func NewOffset(onConfirm func(sketch.OffsetCommand)) *Offset {
	return &Offset{onConfirm: onConfirm}
}

// Open shows the dialog for an element, resetting the field to its default
func (d *Offset) Open(elementID string) {
	d.elementID = elementID
	d.DistanceText = "5"
	d.open = true
}

// IsOpen reports whether the dialog is showing
func (d *Offset) IsOpen() bool {
	return d.open
}

// ElementID returns the element to offset
func (d *Offset) ElementID() string {
	return d.elementID
}

// Confirm validates the distance. Zero is rejected; negative offsets to the
// opposite side and is allowed.
func (d *Offset) Confirm() error {
	if !d.open {
		return nil
	}
	distance, err := parseFloat("distance", d.DistanceText)
	if err != nil {
		return err
	}
	if distance == 0 {
		return invalid("distance", "must be non-zero")
	}

	cmd := sketch.OffsetCommand{
		ElementID: d.elementID,
		Distance:  distance,
	}
	d.close()
	if d.onConfirm != nil {
		d.onConfirm(cmd)
	}
	return nil
}

// Cancel closes the dialog without emitting a command
func (d *Offset) Cancel() {
	d.close()
}

func (d *Offset) close() {
	d.open = false
	d.elementID = ""
}
