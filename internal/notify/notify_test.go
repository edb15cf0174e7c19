package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowThenDismiss(t *testing.T) {
	s := NewStore()
	id := s.Show("hi", Info)

	require.Equal(t, 1, s.Len())
	assert.Equal(t, "hi", s.All()[0].Message)

	s.Dismiss(id)
	assert.Equal(t, 0, s.Len())
	for _, n := range s.All() {
		assert.NotEqual(t, id, n.ID)
	}
}

func TestDismissUnknownIsNoOp(t *testing.T) {
	s := NewStore()
	s.Show("one", Info)
	s.Show("two", Warning)
	before := s.All()

	s.Dismiss("no-such-id")

	assert.Equal(t, before, s.All())
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := NewStore()
	s.Show("first", Info)
	s.Show("second", Error)
	s.Show("third", Warning)

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Message)
	assert.Equal(t, "second", all[1].Message)
	assert.Equal(t, "third", all[2].Message)
}

func TestIDsUnique(t *testing.T) {
	s := NewStore()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := s.Show("msg", Info)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestDismissOlderThan(t *testing.T) {
	s := NewStore()
	s.Show("old", Info)
	s.Show("also old", Info)

	s.DismissOlderThan(time.Now().Add(time.Second))
	assert.Equal(t, 0, s.Len())
}

func TestVersionBumpsOnMutation(t *testing.T) {
	s := NewStore()
	v0 := s.Version()

	id := s.Show("hi", Info)
	v1 := s.Version()
	assert.Greater(t, v1, v0)

	s.Dismiss(id)
	assert.Greater(t, s.Version(), v1)

	// No-op dismiss must not bump the version
	v2 := s.Version()
	s.Dismiss("missing")
	assert.Equal(t, v2, s.Version())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "error", Error.String())
}
