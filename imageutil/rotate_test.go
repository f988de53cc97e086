package imageutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t2bot/media-canvas/canvas"
	"github.com/t2bot/media-canvas/common"
)

func TestParseDirection(t *testing.T) {
	assert.Equal(t, Left, ParseDirection("left"))
	assert.Equal(t, Right, ParseDirection("right"))
	assert.Equal(t, Right, ParseDirection(""))
	assert.Equal(t, Right, ParseDirection("LEFT"))
}

func TestStepRotationWrapsOnce(t *testing.T) {
	cases := []struct {
		dir      Direction
		steps    int
		expected Rotation
	}{
		{Right, 0, RotateNone},
		{Right, 1, Rotate90},
		{Right, 2, Rotate180},
		{Right, 3, Rotate270},
		{Right, 4, RotateNone},
		{Right, 5, RotateNone},
		{Right, -1, Rotation(-1)},
		{Left, 0, RotateNone},
		{Left, 1, Rotate270},
		{Left, 2, Rotate270},
		{Left, 3, Rotate270},
		{Left, -2, Rotate180},
		{Left, -5, Rotation(5)},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, StepRotation(c.dir, c.steps), "%s %d", c.dir, c.steps)
	}
}

func TestRotationPlans(t *testing.T) {
	p := Rotate90.Plan(100, 200)
	assert.Equal(t, RotationPlan{Swap: true, Width: 200, Height: 100, Angle: math.Pi / 2, OffsetX: 0, OffsetY: -200}, p)

	p = Rotate180.Plan(100, 200)
	assert.Equal(t, RotationPlan{Swap: false, Width: 100, Height: 200, Angle: math.Pi, OffsetX: -100, OffsetY: -200}, p)

	p = Rotate270.Plan(100, 200)
	assert.Equal(t, RotationPlan{Swap: true, Width: 200, Height: 100, Angle: 3 * math.Pi / 2, OffsetX: -100, OffsetY: 0}, p)

	p = RotateNone.Plan(100, 200)
	assert.Equal(t, RotationPlan{Width: 100, Height: 200}, p)

	// out of range draws unrotated
	assert.Equal(t, RotateNone.Plan(100, 200), Rotation(7).Plan(100, 200))
	assert.Equal(t, "0", Rotation(-1).String())
	assert.Equal(t, 270, Rotate270.Degrees())
}

func TestRotateImgQuarterTurn(t *testing.T) {
	src := makeSource(t, 100, 200, true)
	c := canvas.New(100, 200)

	require.NoError(t, RotateImg(src, Right, c, 1))
	assert.Equal(t, 200, c.Width())
	assert.Equal(t, 100, c.Height())

	x, y := c.Context().Transform().TransformPoint(0, -200)
	assert.InDelta(t, 200, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)

	// top of the source ends up on the right
	assert.Equal(t, "red", colorName(c.Image().At(150, 50)))
	assert.Equal(t, "blue", colorName(c.Image().At(50, 50)))
}

func TestRotateImgCounterClockwise(t *testing.T) {
	src := makeSource(t, 100, 200, true)
	c := canvas.New(0, 0)

	require.NoError(t, RotateImg(src, Left, c, 1))
	assert.Equal(t, 200, c.Width())
	assert.Equal(t, 100, c.Height())

	// top of the source ends up on the left
	assert.Equal(t, "red", colorName(c.Image().At(50, 50)))
	assert.Equal(t, "blue", colorName(c.Image().At(150, 50)))
}

func TestRotateImgHalfTurn(t *testing.T) {
	src := makeSource(t, 100, 200, true)
	c := canvas.New(0, 0)

	require.NoError(t, RotateImg(src, Right, c, 2))
	assert.Equal(t, 100, c.Width())
	assert.Equal(t, 200, c.Height())
	assert.Equal(t, "blue", colorName(c.Image().At(50, 50)))
	assert.Equal(t, "red", colorName(c.Image().At(50, 150)))
}

func TestRotateImgNoTurn(t *testing.T) {
	src := makeSource(t, 40, 20, false)
	c := canvas.New(0, 0)

	require.NoError(t, RotateImg(src, Right, c, 0))
	assert.Equal(t, 40, c.Width())
	assert.Equal(t, 20, c.Height())
	assert.Equal(t, "red", colorName(c.Image().At(5, 10)))
	assert.Equal(t, "blue", colorName(c.Image().At(35, 10)))
}

func TestRotateImgFourTurnsCycle(t *testing.T) {
	src := makeSource(t, 100, 200, true)
	for _, dir := range []Direction{Left, Right} {
		c := canvas.New(0, 0)
		for i := 0; i < 4; i++ {
			require.NoError(t, RotateImg(src, dir, c, 1))
		}
		assert.Equal(t, 100, c.Width(), dir)
		assert.Equal(t, 200, c.Height(), dir)
	}
}

func TestRotateImgRequiresInputs(t *testing.T) {
	assert.ErrorIs(t, RotateImg(nil, Right, canvas.New(1, 1), 1), common.ErrNoSource)
	assert.ErrorIs(t, RotateImg(makeSource(t, 2, 2, true), Right, nil, 1), common.ErrNoCanvas)
}
