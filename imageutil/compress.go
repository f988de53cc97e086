package imageutil

import (
	"math"
	"math/big"

	"github.com/t2bot/media-canvas/canvas"
	"github.com/t2bot/media-canvas/common"
	"github.com/t2bot/media-canvas/metrics"
)

type Dimensions struct {
	Width  int
	Height int
}

// Ratio is limit/srcLen rounded to two decimal places, half up, using the
// exact binary value of the quotient: 3/40 is stored just below 0.075 and
// rounds to 0.07. An empty source gives +Inf.
func Ratio(limit int, srcLen int) float64 {
	x := float64(limit) / float64(srcLen)
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	d := new(big.Float).SetPrec(256).SetFloat64(x)
	d.Mul(d, big.NewFloat(100))
	if x < 0 {
		d.Sub(d, big.NewFloat(0.5))
	} else {
		d.Add(d, big.NewFloat(0.5))
	}
	n, _ := d.Int64()
	return float64(n) / 100
}

// scaled truncates n*ratio toward zero. Non-finite products give 0.
func scaled(n int, ratio float64) int {
	v := float64(n) * ratio
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return int(v)
}

// CompressImg draws src onto c scaled so that its encoded size approaches
// limit bytes. The size of src is approximated by the length of src.Src, so
// this is a heuristic and not a size guarantee. A ratio above 1 upscales.
//
// A non-positive limit leaves the canvas untouched and returns nil
// dimensions. An empty src.Src gives an unbounded ratio, which collapses the
// canvas to 0x0.
func CompressImg(src *Source, c *canvas.Canvas, limit int) (*Dimensions, error) {
	if limit <= 0 {
		return nil, nil
	}
	metrics.Operations.WithLabelValues("compress").Inc()
	if src == nil || src.Image == nil {
		metrics.OperationFailures.WithLabelValues("compress").Inc()
		return nil, common.ErrNoSource
	}
	if c == nil {
		metrics.OperationFailures.WithLabelValues("compress").Inc()
		return nil, common.ErrNoCanvas
	}

	ratio := Ratio(limit, len(src.Src))
	if !math.IsInf(ratio, 0) {
		metrics.CompressionRatio.Observe(ratio)
	}

	d := &Dimensions{
		Width:  scaled(src.Width, ratio),
		Height: scaled(src.Height, ratio),
	}

	c.SetSize(d.Width, d.Height)
	c.Context().DrawImage(src.Image, 0, 0, float64(d.Width), float64(d.Height))
	return d, nil
}
