package imageutil

import (
	"math"
	"strconv"

	"github.com/t2bot/media-canvas/canvas"
	"github.com/t2bot/media-canvas/common"
	"github.com/t2bot/media-canvas/metrics"
)

type Direction string

const (
	Left  Direction = "left"  // counter-clockwise
	Right Direction = "right" // clockwise
)

// ParseDirection treats anything other than "left" as right.
func ParseDirection(s string) Direction {
	if Direction(s) == Left {
		return Left
	}
	return Right
}

// Rotation is a clockwise quarter turn count.
type Rotation int

const (
	RotateNone Rotation = 0
	Rotate90   Rotation = 1
	Rotate180  Rotation = 2
	Rotate270  Rotation = 3
)

const (
	minStep = int(RotateNone)
	maxStep = int(Rotate270)
)

func (r Rotation) Degrees() int {
	return int(r.normalized()) * 90
}

func (r Rotation) String() string {
	return strconv.Itoa(r.Degrees())
}

// Values outside the wheel draw like RotateNone.
func (r Rotation) normalized() Rotation {
	if r < RotateNone || r > Rotate270 {
		return RotateNone
	}
	return r
}

// RotationPlan describes how to redraw a w x h image at a given rotation:
// the canvas size, the context rotation, and where to draw the image in the
// rotated coordinate space so it lands inside the canvas.
type RotationPlan struct {
	Swap    bool
	Width   int
	Height  int
	Angle   float64
	OffsetX float64
	OffsetY float64
}

func (r Rotation) Plan(width int, height int) RotationPlan {
	w := float64(width)
	h := float64(height)
	switch r.normalized() {
	case Rotate90:
		return RotationPlan{Swap: true, Width: height, Height: width, Angle: math.Pi / 2, OffsetX: 0, OffsetY: -h}
	case Rotate180:
		return RotationPlan{Swap: false, Width: width, Height: height, Angle: math.Pi, OffsetX: -w, OffsetY: -h}
	case Rotate270:
		return RotationPlan{Swap: true, Width: height, Height: width, Angle: 3 * math.Pi / 2, OffsetX: -w, OffsetY: 0}
	default:
		return RotationPlan{Swap: false, Width: width, Height: height, Angle: 0, OffsetX: 0, OffsetY: 0}
	}
}

// StepRotation turns a direction and step count into a position on the
// four-step wheel. Overflow and underflow are wrapped once rather than taken
// modulo 4: every right turn past 3 gives RotateNone and every left turn of
// one or more steps gives Rotate270. Negative right steps and left steps
// below -3 stay out of range and draw unrotated. Callers that want true
// modulo arithmetic should reduce steps themselves.
func StepRotation(dir Direction, steps int) Rotation {
	step := 0
	if dir == Left {
		step -= steps
		if step < minStep {
			step = maxStep
		}
	} else {
		step += steps
		if step > maxStep {
			step = minStep
		}
	}
	return Rotation(step)
}

// RotateImg redraws src onto c turned by steps quarter turns in dir. The
// canvas size before the call (or the source size, for an empty canvas) is
// taken as the image size, and the canvas is resized and cleared.
func RotateImg(src *Source, dir Direction, c *canvas.Canvas, steps int) error {
	metrics.Operations.WithLabelValues("rotate").Inc()
	if src == nil || src.Image == nil {
		metrics.OperationFailures.WithLabelValues("rotate").Inc()
		return common.ErrNoSource
	}
	if c == nil {
		metrics.OperationFailures.WithLabelValues("rotate").Inc()
		return common.ErrNoCanvas
	}

	width := c.Width()
	if width == 0 {
		width = src.Width
	}
	height := c.Height()
	if height == 0 {
		height = src.Height
	}

	r := StepRotation(dir, steps)
	metrics.Rotations.WithLabelValues(r.String()).Inc()

	plan := r.Plan(width, height)
	c.SetSize(plan.Width, plan.Height)
	ctx := c.Context()
	if plan.Angle != 0 {
		ctx.Rotate(plan.Angle)
	}
	ctx.DrawImage(src.Image, plan.OffsetX, plan.OffsetY, float64(width), float64(height))
	return nil
}
