package dialog

import "github.com/gocadlabs/govcad/pkg/sketch"

// LinearPattern collects count and per-copy offsets for a linear pattern.
// Text fields start with usable defaults so a bare OK produces a sensible
// pattern.
type LinearPattern struct {
	CountText string
	DXText    string
	DYText    string

	elementID string
	open      bool
	onConfirm func(sketch.LinearPatternCommand)
}

// NewLinearPattern creates the controller. onConfirm receives the validated
// command; it is never called with invalid values.
func NewLinearPattern(onConfirm func(sketch.LinearPatternCommand)) *LinearPattern {
	return &LinearPattern{onConfirm: onConfirm}
}

// Open shows the dialog for an element, resetting fields to defaults
func (d *LinearPattern) Open(elementID string) {
	d.elementID = elementID
	d.CountText = "3"
	d.DXText = "10"
	d.DYText = "0"
	d.open = true
}

// IsOpen reports whether the dialog is showing
func (d *LinearPattern) IsOpen() bool {
	return d.open
}

// ElementID returns the element the pattern will duplicate
func (d *LinearPattern) ElementID() string {
	return d.elementID
}

// Confirm validates the fields. On success the command callback fires once
// and the dialog closes; on failure the dialog stays open unchanged.
func (d *LinearPattern) Confirm() error {
	if !d.open {
		return nil
	}
	count, err := parseCount("count", d.CountText)
	if err != nil {
		return err
	}
	dx, err := parseFloat("dx", d.DXText)
	if err != nil {
		return err
	}
	dy, err := parseFloat("dy", d.DYText)
	if err != nil {
		return err
	}

	cmd := sketch.LinearPatternCommand{
		ElementID: d.elementID,
		Count:     count,
		DX:        dx,
		DY:        dy,
	}
	d.close()
	if d.onConfirm != nil {
		d.onConfirm(cmd)
	}
	return nil
}

// Cancel closes the dialog without emitting a command
func (d *LinearPattern) Cancel() {
	d.close()
}

func (d *LinearPattern) close() {
	d.open = false
	d.elementID = ""
}
