package imageutil

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t2bot/media-canvas/canvas"
	"github.com/t2bot/media-canvas/common"
)

func fakeSource(srcLen int, w int, h int) *Source {
	return &Source{
		Src:    strings.Repeat("a", srcLen),
		Width:  w,
		Height: h,
		Image:  makeSplitImage(w, h, false),
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 1.0, Ratio(1000, 1000))
	assert.Equal(t, 0.5, Ratio(500, 1000))
	assert.Equal(t, 0.33, Ratio(333, 1000))
	assert.Equal(t, 0.67, Ratio(2, 3))
	assert.Equal(t, 2.0, Ratio(2000, 1000))

	// the quotient's binary value decides ties, not its decimal spelling
	assert.Equal(t, 0.07, Ratio(3, 40))
	assert.Equal(t, 0.17, Ratio(7, 40))
	assert.Equal(t, 0.13, Ratio(1, 8))
	assert.Equal(t, 0.42, Ratio(17, 40))

	assert.True(t, math.IsInf(Ratio(10, 0), 1))
}

func TestCompressImgUsesExactRounding(t *testing.T) {
	src := fakeSource(40, 1000, 100)
	c := canvas.New(0, 0)

	d, err := CompressImg(src, c, 3)
	require.NoError(t, err)
	assert.Equal(t, &Dimensions{Width: 70, Height: 7}, d)

	d, err = CompressImg(fakeSource(40, 4031, 10), c, 17)
	require.NoError(t, err)
	assert.Equal(t, 1693, d.Width)
}

func TestCompressImgNoLimit(t *testing.T) {
	src := fakeSource(1000, 40, 20)
	for _, limit := range []int{0, -1} {
		c := canvas.New(7, 9)
		d, err := CompressImg(src, c, limit)
		assert.NoError(t, err)
		assert.Nil(t, d)
		assert.Equal(t, 7, c.Width())
		assert.Equal(t, 9, c.Height())
	}
}

func TestCompressImgSameSize(t *testing.T) {
	src := fakeSource(1000, 40, 20)
	c := canvas.New(0, 0)

	d, err := CompressImg(src, c, 1000)
	require.NoError(t, err)
	assert.Equal(t, &Dimensions{Width: 40, Height: 20}, d)
	assert.Equal(t, 40, c.Width())
	assert.Equal(t, 20, c.Height())
	assert.Equal(t, "red", colorName(c.Image().At(5, 10)))
	assert.Equal(t, "blue", colorName(c.Image().At(35, 10)))
}

func TestCompressImgTruncates(t *testing.T) {
	src := fakeSource(1000, 101, 51)
	c := canvas.New(0, 0)

	d, err := CompressImg(src, c, 500)
	require.NoError(t, err)
	assert.Equal(t, &Dimensions{Width: 50, Height: 25}, d)
	assert.Equal(t, 50, c.Width())
	assert.Equal(t, 25, c.Height())
}

func TestCompressImgUpscales(t *testing.T) {
	src := fakeSource(1000, 10, 5)
	c := canvas.New(0, 0)

	d, err := CompressImg(src, c, 2000)
	require.NoError(t, err)
	assert.Equal(t, &Dimensions{Width: 20, Height: 10}, d)
}

func TestCompressImgTinyRatio(t *testing.T) {
	src := fakeSource(1000, 10, 10)
	c := canvas.New(3, 3)

	// 1/1000 rounds to 0.00
	d, err := CompressImg(src, c, 1)
	require.NoError(t, err)
	assert.Equal(t, &Dimensions{Width: 0, Height: 0}, d)
	assert.Equal(t, 0, c.Width())
}

func TestCompressImgRequiresInputs(t *testing.T) {
	_, err := CompressImg(nil, canvas.New(1, 1), 10)
	assert.ErrorIs(t, err, common.ErrNoSource)

	_, err = CompressImg(fakeSource(10, 1, 1), nil, 10)
	assert.ErrorIs(t, err, common.ErrNoCanvas)

}

func TestCompressImgEmptySourceCollapses(t *testing.T) {
	c := canvas.New(5, 5)
	d, err := CompressImg(fakeSource(0, 8, 8), c, 10)
	require.NoError(t, err)
	assert.Equal(t, &Dimensions{Width: 0, Height: 0}, d)
	assert.Equal(t, 0, c.Width())
	assert.Equal(t, 0, c.Height())
}
