package dialog

import "github.com/gocadlabs/govcad/pkg/sketch"

// CircularPattern collects count and total sweep angle for a circular
// pattern around the element's center.
type CircularPattern struct {
	CountText string
	AngleText string

	elementID string
	open      bool
	onConfirm func(sketch.CircularPatternCommand)
}

// NewCircularPattern creates the controller
func NewCircularPattern(onConfirm func(sketch.CircularPatternCommand)) *CircularPattern {
	return &CircularPattern{onConfirm: onConfirm}
}

// Open shows the dialog for an element, resetting fields to defaults
func (d *CircularPattern) Open(elementID string) {
	d.elementID = elementID
	d.CountText = "6"
	d.AngleText = "360"
	d.open = true
}

// IsOpen reports whether the dialog is showing
func (d *CircularPattern) IsOpen() bool {
	return d.open
}

// ElementID returns the element the pattern will duplicate
func (d *CircularPattern) ElementID() string {
	return d.elementID
}

// Confirm validates count and angle. The angle must be a positive sweep of
// at most a full turn.
func (d *CircularPattern) Confirm() error {
	if !d.open {
		return nil
	}
	count, err := parseCount("count", d.CountText)
	if err != nil {
		return err
	}
	angle, err := parseFloat("angle", d.AngleText)
	if err != nil {
		return err
	}
	if angle <= 0 || angle > 360 {
		return invalid("angle", "must be between 0 and 360 degrees")
	}

	cmd := sketch.CircularPatternCommand{
		ElementID:  d.elementID,
		Count:      count,
		TotalAngle: angle,
	}
	d.close()
	if d.onConfirm != nil {
		d.onConfirm(cmd)
	}
	return nil
}

// Cancel closes the dialog without emitting a command
func (d *CircularPattern) Cancel() {
	d.close()
}

func (d *CircularPattern) close() {
	d.open = false
	d.elementID = ""
}
