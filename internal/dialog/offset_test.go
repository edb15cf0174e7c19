package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocadlabs/govcad/pkg/sketch"
)

func TestOffsetValidConfirm(t *testing.T) {
	var got []sketch.OffsetCommand
	d := NewOffset(func(cmd sketch.OffsetCommand) { got = append(got, cmd) })

	d.Open("el-1")
	d.DistanceText = "-2.5"
	require.NoError(t, d.Confirm())
	require.Len(t, got, 1)
	assert.Equal(t, -2.5, got[0].Distance)
	assert.False(t, d.IsOpen())
}

func TestOffsetRejectsZeroAndGarbage(t *testing.T) {
	calls := 0
	d := NewOffset(func(sketch.OffsetCommand) { calls++ })
	d.Open("el-1")

	for _, raw := range []string{"0", "", "five", "Inf"} {
		d.DistanceText = raw
		var verr *ValidationError
		require.ErrorAs(t, d.Confirm(), &verr, "distance %q", raw)
		assert.Equal(t, "distance", verr.Field)
		assert.True(t, d.IsOpen())
	}
	assert.Zero(t, calls)
}
