package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocadlabs/govcad/pkg/sketch"
)

func TestLinearPatternValidConfirm(t *testing.T) {
	var got []sketch.LinearPatternCommand
	d := NewLinearPattern(func(cmd sketch.LinearPatternCommand) {
		got = append(got, cmd)
	})

	d.Open("el-1")
	assert.True(t, d.IsOpen())
	d.CountText = "4"
	d.DXText = "12.5"
	d.DYText = "-3"

	err := d.Confirm()
	require.NoError(t, err)
	require.Len(t, got, 1, "callback must fire exactly once")
	assert.Equal(t, "el-1", got[0].ElementID)
	assert.Equal(t, 4, got[0].Count)
	assert.Equal(t, 12.5, got[0].DX)
	assert.Equal(t, -3.0, got[0].DY)
	assert.False(t, d.IsOpen(), "valid confirm must close the dialog")
}

func TestLinearPatternInvalidCount(t *testing.T) {
	calls := 0
	d := NewLinearPattern(func(sketch.LinearPatternCommand) { calls++ })
	d.Open("el-1")

	for _, raw := range []string{"", "abc", "2.5", "1", "0", "-3"} {
		d.CountText = raw
		err := d.Confirm()
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "count %q", raw)
		assert.Equal(t, "count", verr.Field)
		assert.True(t, d.IsOpen(), "invalid confirm must keep the dialog open")
	}
	assert.Zero(t, calls, "callback must never fire on invalid input")
}

func TestLinearPatternInvalidOffsets(t *testing.T) {
	calls := 0
	d := NewLinearPattern(func(sketch.LinearPatternCommand) { calls++ })
	d.Open("el-1")
	d.CountText = "3"

	d.DXText = "not-a-number"
	var verr *ValidationError
	require.ErrorAs(t, d.Confirm(), &verr)
	assert.Equal(t, "dx", verr.Field)

	d.DXText = "1"
	d.DYText = "NaN"
	require.ErrorAs(t, d.Confirm(), &verr)
	assert.Equal(t, "dy", verr.Field)

	d.DYText = "+Inf"
	require.ErrorAs(t, d.Confirm(), &verr)
	assert.Equal(t, "dy", verr.Field)

	assert.Zero(t, calls)
	assert.True(t, d.IsOpen())
}

func TestLinearPatternInputSurvivesFailedConfirm(t *testing.T) {
	d := NewLinearPattern(nil)
	d.Open("el-1")
	d.CountText = "x"
	d.DXText = "7"

	_ = d.Confirm()
	assert.Equal(t, "x", d.CountText)
	assert.Equal(t, "7", d.DXText)
	assert.Equal(t, "el-1", d.ElementID())
}

func TestLinearPatternCancel(t *testing.T) {
	calls := 0
	d := NewLinearPattern(func(sketch.LinearPatternCommand) { calls++ })
	d.Open("el-1")
	d.Cancel()

	assert.False(t, d.IsOpen())
	assert.Zero(t, calls)

	// Confirm after close is a no-op.
	require.NoError(t, d.Confirm())
	assert.Zero(t, calls)
}

func TestLinearPatternOpenResetsDefaults(t *testing.T) {
	d := NewLinearPattern(nil)
	d.Open("el-1")
	d.CountText = "9"
	d.Cancel()

	d.Open("el-2")
	assert.Equal(t, "3", d.CountText)
	assert.Equal(t, "10", d.DXText)
	assert.Equal(t, "0", d.DYText)
	assert.Equal(t, "el-2", d.ElementID())
}
