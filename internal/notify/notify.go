// Package notify holds the queue of transient user-facing messages shown as
// toasts in the viewport and as a list in the inspector.
package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a notification's severity
type Kind int

const (
	Info Kind = iota
	Warning
	Error
)

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Notification is one transient message. IDs are unique across the store's
// lifetime; order of the store's list is insertion order.
type Notification struct {
	ID      string
	Kind    Kind
	Message string
	Time    time.Time
}

// Store is the process-wide notification queue. It never caps or expires
// entries itself; renderers cap visible toasts and expire by TTL.
// Mutation goes through Show/Dismiss only.
type Store struct {
	items   []Notification
	version uint64
}

// NewStore creates an empty notification store
func NewStore() *Store {
	return &Store{}
}

// Show appends a notification and returns its freshly generated ID
func (s *Store) Show(message string, kind Kind) string {
	n := Notification{
		ID:      uuid.NewString(),
		Kind:    kind,
		Message: message,
		Time:    time.Now(),
	}
	s.items = append(s.items, n)
	s.version++
	return n.ID
}

// Showf formats and shows a notification
func (s *Store) Showf(kind Kind, format string, args ...any) string {
	return s.Show(fmt.Sprintf(format, args...), kind)
}

// Dismiss removes the notification with the given ID.
// Dismissing an unknown ID is a no-op, not an error.
func (s *Store) Dismiss(id string) {
	for i, n := range s.items {
		if n.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.version++
			return
		}
	}
}

// DismissOlderThan removes all notifications shown before the cutoff.
// Called by the toast renderer to implement TTL expiry.
func (s *Store) DismissOlderThan(cutoff time.Time) {
	kept := s.items[:0]
	for _, n := range s.items {
		if !n.Time.Before(cutoff) {
			kept = append(kept, n)
		}
	}
	if len(kept) != len(s.items) {
		s.items = kept
		s.version++
	}
}

// All returns the notifications in insertion order. The returned slice is a
// copy; mutating it does not affect the store.
func (s *Store) All() []Notification {
	out := make([]Notification, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of queued notifications
func (s *Store) Len() int {
	return len(s.items)
}

// Version increments on every mutation, letting consumers skip re-reads
func (s *Store) Version() uint64 {
	return s.version
}
