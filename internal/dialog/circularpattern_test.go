package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocadlabs/govcad/pkg/sketch"
)

func TestCircularPatternValidConfirm(t *testing.T) {
	var got []sketch.CircularPatternCommand
	d := NewCircularPattern(func(cmd sketch.CircularPatternCommand) { got = append(got, cmd) })

	d.Open("el-1")
	d.CountText = "8"
	d.AngleText = "180"
	require.NoError(t, d.Confirm())
	require.Len(t, got, 1)
	assert.Equal(t, 8, got[0].Count)
	assert.Equal(t, 180.0, got[0].TotalAngle)
	assert.False(t, d.IsOpen())
}

func TestCircularPatternAngleRange(t *testing.T) {
	calls := 0
	d := NewCircularPattern(func(sketch.CircularPatternCommand) { calls++ })
	d.Open("el-1")
	d.CountText = "4"

	for _, raw := range []string{"0", "-90", "361", "bogus"} {
		d.AngleText = raw
		var verr *ValidationError
		require.ErrorAs(t, d.Confirm(), &verr, "angle %q", raw)
		assert.Equal(t, "angle", verr.Field)
		assert.True(t, d.IsOpen())
	}
	assert.Zero(t, calls)

	d.AngleText = "360"
	require.NoError(t, d.Confirm())
	assert.Equal(t, 1, calls)
}

func TestCircularPatternDefaults(t *testing.T) {
	d := NewCircularPattern(nil)
	d.Open("el-1")
	assert.Equal(t, "6", d.CountText)
	assert.Equal(t, "360", d.AngleText)
}
