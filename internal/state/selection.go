package state

// Selection tracks which bodies are selected, in selection order, plus the
// index of the selected element while a sketch is being edited. Selecting or
// toggling a body always drops the element selection; the two never refer to
// different targets at once.
type Selection struct {
	selected     []string
	elementIndex int
	hasElement   bool
	version      uint64
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{}
}

// Primary returns the first selected body
func (s *Selection) Primary() (string, bool) {
	if len(s.selected) == 0 {
		return "", false
	}
	return s.selected[0], true
}

// All returns the selected body IDs in selection order
func (s *Selection) All() []string {
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// Count returns the number of selected bodies
func (s *Selection) Count() int {
	return len(s.selected)
}

// IsSelected reports whether a body is selected
func (s *Selection) IsSelected(id string) bool {
	for _, b := range s.selected {
		if b == id {
			return true
		}
	}
	return false
}

// Select makes id the only selected body
func (s *Selection) Select(id string) {
	s.selected = s.selected[:0]
	s.selected = append(s.selected, id)
	s.clearElement()
	s.version++
}

// Toggle adds or removes a body from the selection (Ctrl+click)
func (s *Selection) Toggle(id string) {
	for i, b := range s.selected {
		if b == id {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			s.clearElement()
			s.version++
			return
		}
	}
	s.selected = append(s.selected, id)
	s.clearElement()
	s.version++
}

// Clear removes all selection state
func (s *Selection) Clear() {
	s.selected = s.selected[:0]
	s.clearElement()
	s.version++
}

// SelectElement records the selected element index within the edited sketch
func (s *Selection) SelectElement(index int) {
	s.elementIndex = index
	s.hasElement = true
	s.version++
}

// Element returns the selected sketch element index
func (s *Selection) Element() (int, bool) {
	return s.elementIndex, s.hasElement
}

// Version increments on every mutation
func (s *Selection) Version() uint64 {
	return s.version
}

func (s *Selection) clearElement() {
	s.elementIndex = 0
	s.hasElement = false
}
